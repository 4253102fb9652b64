package dto

import (
	"time"

	"gorm.io/datatypes"

	"contactbook_backend/internals/constants"
	"contactbook_backend/internals/features/contacts/model"
)

type ContactPhoneResponse struct {
	PhoneID           int64  `json:"phone_id"`
	PhoneCountryCode  int    `json:"phone_country_code"`
	PhoneOperatorCode int    `json:"phone_operator_code"`
	PhoneNumber       int    `json:"phone_number"`
	PhoneType         string `json:"phone_type,omitempty"`
	PhoneComment      string `json:"phone_comment,omitempty"`
}

type ContactAttachmentResponse struct {
	AttachmentID           int64  `json:"attachment_id"`
	AttachmentFileName     string `json:"attachment_file_name"`
	AttachmentUploadDate   string `json:"attachment_upload_date,omitempty"`
	AttachmentComment      string `json:"attachment_comment,omitempty"`
	AttachmentRealFileName string `json:"attachment_real_file_name,omitempty"`
	AttachmentKind         string `json:"attachment_kind,omitempty"`
	AttachmentPending      bool   `json:"attachment_pending"`
}

type ContactResponse struct {
	ContactID            int64  `json:"contact_id"`
	ContactName          string `json:"contact_name"`
	ContactSurname       string `json:"contact_surname"`
	ContactPatronymic    string `json:"contact_patronymic,omitempty"`
	ContactBirthday      string `json:"contact_birthday,omitempty"`
	ContactGender        string `json:"contact_gender,omitempty"`
	ContactCitizenship   string `json:"contact_citizenship,omitempty"`
	ContactWebsite       string `json:"contact_website,omitempty"`
	ContactEmail         string `json:"contact_email"`
	ContactCompany       string `json:"contact_company"`
	ContactMaritalStatus string `json:"contact_marital_status,omitempty"`

	Country                string `json:"country,omitempty"`
	ContactCity            string `json:"contact_city,omitempty"`
	ContactStreet          string `json:"contact_street,omitempty"`
	ContactHouseNumber     string `json:"contact_house_number,omitempty"`
	ContactApartmentNumber string `json:"contact_apartment_number,omitempty"`
	ContactZipCode         string `json:"contact_zip_code,omitempty"`

	Phones      []ContactPhoneResponse      `json:"phones"`
	Attachments []ContactAttachmentResponse `json:"attachments"`
}

// ContactSummaryResponse: proyeksi ringkas untuk halaman daftar/pencarian
// (tanpa phone & attachment). Tag gorm dipakai waktu scan hasil raw query.
type ContactSummaryResponse struct {
	ContactID              int64          `gorm:"column:contact_id" json:"contact_id"`
	ContactName            string         `gorm:"column:contact_name" json:"contact_name"`
	ContactSurname         string         `gorm:"column:contact_surname" json:"contact_surname"`
	ContactBirthday        datatypes.Date `gorm:"column:contact_birthday" json:"contact_birthday"`
	ContactCompany         string         `gorm:"column:contact_company" json:"contact_company"`
	ContactCity            string         `gorm:"column:contact_city" json:"contact_city,omitempty"`
	ContactStreet          string         `gorm:"column:contact_street" json:"contact_street,omitempty"`
	ContactHouseNumber     string         `gorm:"column:contact_house_number" json:"contact_house_number,omitempty"`
	ContactApartmentNumber string         `gorm:"column:contact_apartment_number" json:"contact_apartment_number,omitempty"`
}

func ToContactResponse(m *model.ContactModel) ContactResponse {
	resp := ContactResponse{
		ContactID:              m.ContactID,
		ContactName:            m.ContactName,
		ContactSurname:         m.ContactSurname,
		ContactPatronymic:      m.ContactPatronymic,
		ContactBirthday:        formatDate(m.ContactBirthday),
		ContactGender:          m.ContactGender,
		ContactCitizenship:     m.ContactCitizenship,
		ContactWebsite:         m.ContactWebsite,
		ContactEmail:           m.ContactEmail,
		ContactCompany:         m.ContactCompany,
		ContactMaritalStatus:   m.ContactMaritalStatus,
		ContactCity:            m.ContactCity,
		ContactStreet:          m.ContactStreet,
		ContactHouseNumber:     m.ContactHouseNumber,
		ContactApartmentNumber: m.ContactApartmentNumber,
		ContactZipCode:         m.ContactZipCode,
		Phones:                 make([]ContactPhoneResponse, 0, len(m.Phones)),
		Attachments:            make([]ContactAttachmentResponse, 0, len(m.Attachments)),
	}
	if m.Country != nil {
		resp.Country = m.Country.CountryFullName
	}
	for i := range m.Phones {
		resp.Phones = append(resp.Phones, ToPhoneResponse(&m.Phones[i]))
	}
	for i := range m.Attachments {
		resp.Attachments = append(resp.Attachments, ToAttachmentResponse(&m.Attachments[i]))
	}
	return resp
}

func ToPhoneResponse(p *model.ContactPhoneModel) ContactPhoneResponse {
	return ContactPhoneResponse{
		PhoneID:           p.PhoneID,
		PhoneCountryCode:  p.PhoneCountryCode,
		PhoneOperatorCode: p.PhoneOperatorCode,
		PhoneNumber:       p.PhoneNumber,
		PhoneType:         p.PhoneType,
		PhoneComment:      p.PhoneComment,
	}
}

func ToAttachmentResponse(a *model.ContactAttachmentModel) ContactAttachmentResponse {
	resp := ContactAttachmentResponse{
		AttachmentID:           a.AttachmentID,
		AttachmentFileName:     a.AttachmentFileName,
		AttachmentUploadDate:   formatDate(a.AttachmentUploadDate),
		AttachmentComment:      a.AttachmentComment,
		AttachmentRealFileName: a.AttachmentRealFileName,
		AttachmentPending:      a.AttachmentRealFileName == "",
	}
	if !resp.AttachmentPending {
		resp.AttachmentKind = constants.DetectFileKindFromExt(a.AttachmentRealFileName)
	}
	return resp
}

func formatDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(BirthdayLayout)
}
