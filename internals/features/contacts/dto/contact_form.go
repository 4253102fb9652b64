package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"contactbook_backend/internals/features/contacts/model"
)

// ErrInvalidInput menandai input form yang hilang/rusak. Controller
// memetakan error ini ke 400 "Invalid input." tanpa menyentuh DB.
var ErrInvalidInput = errors.New("Invalid input")

// Format tanggal form mengikuti kontrak lama: dd.MM.yyyy
const BirthdayLayout = "02.01.2006"

// FormFields: hasil flatten field non-file dari request multipart.
type FormFields map[string]string

func (f FormFields) Get(name string) string {
	return f[name]
}

// checkCorrectness versi Go: field wajib tidak boleh kosong.
func (f FormFields) Require(name string) (string, error) {
	v := strings.TrimSpace(f[name])
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, name)
	}
	return v, nil
}

func (f FormFields) RequireInt(name string) (int, error) {
	v, err := f.Require(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s bukan angka", ErrInvalidInput, name)
	}
	return n, nil
}

func (f FormFields) RequireInt64(name string) (int64, error) {
	v, err := f.Require(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s bukan angka", ErrInvalidInput, name)
	}
	return n, nil
}

// parseEnum mencocokkan nilai form dengan nama enum secara case-exact.
// Kosong = tidak diisi; nilai tak dikenal dianggap input rusak.
func parseEnum(field, value string, allowed []string) (string, error) {
	if value == "" {
		return "", nil
	}
	for _, a := range allowed {
		if a == value {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %s=%q", ErrInvalidInput, field, value)
}

func parseBirthday(value string) (datatypes.Date, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("%w: birthday=%q", ErrInvalidInput, value)
	}
	return datatypes.Date(t), nil
}

// BuildNewContact merangkai aggregate kontak baru dari field form.
// Field wajib create: name, surname, email, company, country, city,
// street, houseNumber. Birthday wajib valid (dd.MM.yyyy).
func BuildNewContact(fields FormFields) (*model.ContactModel, error) {
	contact := &model.ContactModel{ContactAvailable: true}
	if err := setPersonalData(contact, fields); err != nil {
		return nil, err
	}
	if err := setAddress(contact, fields, true); err != nil {
		return nil, err
	}
	phones, err := collectPhones(fields, "")
	if err != nil {
		return nil, err
	}
	contact.Phones = phones
	attachments, err := collectAttachments(fields, "")
	if err != nil {
		return nil, err
	}
	contact.Attachments = attachments
	return contact, nil
}

// BuildEditContact merangkai data kontak dari form edit. Alamat boleh
// kosong di sini; baris phone/attachment diproses terpisah lewat
// SplitPhoneGroups / SplitAttachmentGroups.
func BuildEditContact(fields FormFields) (*model.ContactModel, error) {
	id, err := fields.RequireInt64("idContact")
	if err != nil {
		return nil, err
	}
	contact := &model.ContactModel{ContactID: id, ContactAvailable: true}
	if err := setPersonalData(contact, fields); err != nil {
		return nil, err
	}
	if err := setAddress(contact, fields, false); err != nil {
		return nil, err
	}
	return contact, nil
}

func setPersonalData(contact *model.ContactModel, fields FormFields) error {
	var err error
	if contact.ContactName, err = fields.Require("name"); err != nil {
		return err
	}
	if contact.ContactSurname, err = fields.Require("surname"); err != nil {
		return err
	}
	contact.ContactPatronymic = fields.Get("patronymic")

	if contact.ContactBirthday, err = parseBirthday(fields.Get("birthday")); err != nil {
		return err
	}
	if contact.ContactGender, err = parseEnum("gender", fields.Get("gender"), model.GenderValues); err != nil {
		return err
	}
	contact.ContactCitizenship = fields.Get("citizenship")
	contact.ContactWebsite = fields.Get("website")
	if contact.ContactEmail, err = fields.Require("email"); err != nil {
		return err
	}
	if contact.ContactCompany, err = fields.Require("company"); err != nil {
		return err
	}
	if contact.ContactMaritalStatus, err = parseEnum("marital", fields.Get("marital"), model.MaritalStatusValues); err != nil {
		return err
	}
	return nil
}

func setAddress(contact *model.ContactModel, fields FormFields, createMode bool) error {
	country := fields.Get("country")
	// "NONE" adalah sentinel dropdown lama untuk "belum memilih"
	if country == "NONE" {
		country = ""
	}
	if createMode {
		if country == "" {
			return fmt.Errorf("%w: country", ErrInvalidInput)
		}
		var err error
		if contact.ContactCity, err = fields.Require("city"); err != nil {
			return err
		}
		if contact.ContactStreet, err = fields.Require("street"); err != nil {
			return err
		}
		if contact.ContactHouseNumber, err = fields.Require("houseNumber"); err != nil {
			return err
		}
	} else {
		contact.ContactCity = fields.Get("city")
		contact.ContactStreet = fields.Get("street")
		contact.ContactHouseNumber = fields.Get("houseNumber")
	}
	if country != "" {
		// Nama negara diresolve ke country_id oleh modify service.
		contact.Country = &model.CountryModel{CountryFullName: country}
	}
	contact.ContactApartmentNumber = fields.Get("apartmentNumber")
	contact.ContactZipCode = fields.Get("zipCode")
	return nil
}

// collectPhones membaca baris telepon {prefix}countryCode{i}.. mulai
// index 0 sampai index pertama yang tidak ada.
func collectPhones(fields FormFields, prefix string) ([]model.ContactPhoneModel, error) {
	var phones []model.ContactPhoneModel
	for i := 0; ; i++ {
		if _, ok := fields[rowKey(prefix, "countryCode", i)]; !ok {
			break
		}
		phone, err := buildPhoneRow(fields, prefix, i)
		if err != nil {
			return nil, err
		}
		phones = append(phones, *phone)
	}
	return phones, nil
}

func buildPhoneRow(fields FormFields, prefix string, i int) (*model.ContactPhoneModel, error) {
	var phone model.ContactPhoneModel
	var err error
	if phone.PhoneCountryCode, err = fields.RequireInt(rowKey(prefix, "countryCode", i)); err != nil {
		return nil, err
	}
	if phone.PhoneOperatorCode, err = fields.RequireInt(rowKey(prefix, "operatorCode", i)); err != nil {
		return nil, err
	}
	if phone.PhoneNumber, err = fields.RequireInt(rowKey(prefix, "phoneNumber", i)); err != nil {
		return nil, err
	}
	if phone.PhoneType, err = parseEnum(rowKey(prefix, "phoneType", i), fields.Get(rowKey(prefix, "phoneType", i)), model.PhoneTypeValues); err != nil {
		return nil, err
	}
	phone.PhoneComment = fields.Get(rowKey(prefix, "phoneComment", i))
	phone.PhoneAvailable = true
	return &phone, nil
}

// collectAttachments membaca baris lampiran {prefix}fileName{i}.. .
// attachingDate dikirim sebagai epoch millis.
func collectAttachments(fields FormFields, prefix string) ([]model.ContactAttachmentModel, error) {
	var attachments []model.ContactAttachmentModel
	for i := 0; ; i++ {
		if _, ok := fields[rowKey(prefix, "fileName", i)]; !ok {
			break
		}
		attachment, err := buildAttachmentRow(fields, prefix, i)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, *attachment)
	}
	return attachments, nil
}

func buildAttachmentRow(fields FormFields, prefix string, i int) (*model.ContactAttachmentModel, error) {
	var attachment model.ContactAttachmentModel
	var err error
	if attachment.AttachmentFileName, err = fields.Require(rowKey(prefix, "fileName", i)); err != nil {
		return nil, err
	}
	millis, err := fields.RequireInt64(rowKey(prefix, "attachingDate", i))
	if err != nil {
		return nil, err
	}
	attachment.AttachmentUploadDate = datatypes.Date(time.UnixMilli(millis).UTC())
	attachment.AttachmentComment = fields.Get(rowKey(prefix, "attachmentComment", i))
	attachment.AttachmentAvailable = true
	return &attachment, nil
}

func rowKey(prefix, base string, i int) string {
	return prefix + base + strconv.Itoa(i)
}
