package model

import (
	"time"

	"gorm.io/datatypes"
)

// Nilai enum mengikuti nama deklarasi (match case-exact di form).
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"

	MaritalSingle   = "SINGLE"
	MaritalMarried  = "MARRIED"
	MaritalDivorced = "DIVORCED"
	MaritalWidowed  = "WIDOWED"
)

var (
	GenderValues        = []string{GenderMale, GenderFemale}
	MaritalStatusValues = []string{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed}
)

type ContactModel struct {
	ContactID            int64          `gorm:"column:contact_id;primaryKey;autoIncrement" json:"contact_id"`
	ContactName          string         `gorm:"column:contact_name;type:varchar(45);not null" json:"contact_name"`
	ContactSurname       string         `gorm:"column:contact_surname;type:varchar(45);not null" json:"contact_surname"`
	ContactPatronymic    string         `gorm:"column:contact_patronymic;type:varchar(45)" json:"contact_patronymic"`
	ContactBirthday      datatypes.Date `gorm:"column:contact_birthday" json:"contact_birthday"`
	ContactGender        string         `gorm:"column:contact_gender;type:varchar(10)" json:"contact_gender"`
	ContactCitizenship   string         `gorm:"column:contact_citizenship;type:varchar(45)" json:"contact_citizenship"`
	ContactWebsite       string         `gorm:"column:contact_website;type:varchar(100)" json:"contact_website"`
	ContactEmail         string         `gorm:"column:contact_email;type:varchar(100);not null" json:"contact_email"`
	ContactCompany       string         `gorm:"column:contact_company;type:varchar(100);not null" json:"contact_company"`
	ContactMaritalStatus string         `gorm:"column:contact_marital_status;type:varchar(10)" json:"contact_marital_status"`

	// Alamat dimiliki eksklusif oleh satu kontak → kolom langsung di tabel contact.
	ContactCountryID       *int64 `gorm:"column:contact_country_id;index" json:"contact_country_id,omitempty"`
	ContactCity            string `gorm:"column:contact_city;type:varchar(45)" json:"contact_city"`
	ContactStreet          string `gorm:"column:contact_street;type:varchar(45)" json:"contact_street"`
	ContactHouseNumber     string `gorm:"column:contact_house_number;type:varchar(10)" json:"contact_house_number"`
	ContactApartmentNumber string `gorm:"column:contact_apartment_number;type:varchar(10)" json:"contact_apartment_number"`
	ContactZipCode         string `gorm:"column:contact_zip_code;type:varchar(10)" json:"contact_zip_code"`

	ContactAvailable bool      `gorm:"column:contact_available;not null;default:true" json:"contact_available"`
	ContactCreatedAt time.Time `gorm:"column:contact_created_at;default:current_timestamp" json:"contact_created_at"`

	Country     *CountryModel            `gorm:"foreignKey:ContactCountryID;references:CountryID" json:"country,omitempty"`
	Phones      []ContactPhoneModel      `gorm:"foreignKey:PhoneContactID;references:ContactID" json:"phones,omitempty"`
	Attachments []ContactAttachmentModel `gorm:"foreignKey:AttachmentContactID;references:ContactID" json:"attachments,omitempty"`
}

func (ContactModel) TableName() string {
	return "contact"
}
