package model

const (
	PhoneTypeHome   = "HOME"
	PhoneTypeMobile = "MOBILE"
	PhoneTypeWork   = "WORK"
)

var PhoneTypeValues = []string{PhoneTypeHome, PhoneTypeMobile, PhoneTypeWork}

type ContactPhoneModel struct {
	PhoneID           int64  `gorm:"column:phone_id;primaryKey;autoIncrement" json:"phone_id"`
	PhoneContactID    int64  `gorm:"column:phone_contact_id;not null;index" json:"phone_contact_id"`
	PhoneCountryCode  int    `gorm:"column:phone_country_code" json:"phone_country_code"`
	PhoneOperatorCode int    `gorm:"column:phone_operator_code" json:"phone_operator_code"`
	PhoneNumber       int    `gorm:"column:phone_number;not null" json:"phone_number"`
	PhoneType         string `gorm:"column:phone_type;type:varchar(10)" json:"phone_type"`
	PhoneComment      string `gorm:"column:phone_comment;type:varchar(100)" json:"phone_comment"`
	PhoneAvailable    bool   `gorm:"column:phone_available;not null;default:true" json:"phone_available"`
}

func (ContactPhoneModel) TableName() string {
	return "phone"
}
