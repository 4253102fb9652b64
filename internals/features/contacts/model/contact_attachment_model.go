package model

import (
	"gorm.io/datatypes"
)

// Attachment dengan AttachmentRealFileName kosong berstatus "pending upload":
// baris DB sudah ada, file fisiknya belum ditulis.
type ContactAttachmentModel struct {
	AttachmentID           int64          `gorm:"column:attachment_id;primaryKey;autoIncrement" json:"attachment_id"`
	AttachmentContactID    int64          `gorm:"column:attachment_contact_id;not null;index" json:"attachment_contact_id"`
	AttachmentFileName     string         `gorm:"column:attachment_file_name;type:varchar(100);not null" json:"attachment_file_name"`
	AttachmentUploadDate   datatypes.Date `gorm:"column:attachment_upload_date" json:"attachment_upload_date"`
	AttachmentComment      string         `gorm:"column:attachment_comment;type:varchar(100)" json:"attachment_comment"`
	AttachmentRealFileName string         `gorm:"column:attachment_real_file_name;type:varchar(255)" json:"attachment_real_file_name"`
	AttachmentAvailable    bool           `gorm:"column:attachment_available;not null;default:true" json:"attachment_available"`
}

func (ContactAttachmentModel) TableName() string {
	return "attachment"
}
