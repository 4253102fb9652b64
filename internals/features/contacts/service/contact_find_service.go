package service

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"contactbook_backend/internals/features/contacts/dto"
	"contactbook_backend/internals/features/contacts/model"
)

// ErrContactNotFound: id tidak ada / sudah di-soft-delete → 404 di controller.
var ErrContactNotFound = errors.New("contact tidak ditemukan")

// ContactFindService: jalur baca (listing keyset, detail multi-join, email).
// Dependensi DB di-inject lewat konstruktor, bukan singleton.
type ContactFindService struct {
	db       *gorm.DB
	pageSize int
}

func NewContactFindService(db *gorm.DB, pageSize int) *ContactFindService {
	if pageSize <= 0 {
		pageSize = 11
	}
	return &ContactFindService{db: db, pageSize: pageSize}
}

func (s *ContactFindService) PageSize() int {
	return s.pageSize
}

// GetContacts: satu halaman proyeksi ringkas tanpa filter.
// Kontrak sama dengan filter kosong.
func (s *ContactFindService) GetContacts(ctx context.Context, startID int64, lowerIDs bool) ([]dto.ContactSummaryResponse, error) {
	return s.GetContactsFiltered(ctx, nil, startID, lowerIDs)
}

// GetContactsFiltered: halaman keyset dengan filter opsional. Scan arah
// turun (lowerIDs) memakai ORDER DESC lalu hasilnya di-reverse supaya
// keluaran selalu ascending by contact_id.
func (s *ContactFindService) GetContactsFiltered(ctx context.Context, filter *dto.ContactSearchAttributes, startID int64, lowerIDs bool) ([]dto.ContactSummaryResponse, error) {
	where, args, err := filter.BuildWhere(startID, lowerIDs, s.pageSize)
	if err != nil {
		return nil, err
	}
	query := "SELECT contact_id, contact_name, contact_surname, contact_birthday, contact_company, " +
		"contact_city, contact_street, contact_house_number, contact_apartment_number " +
		"FROM contact WHERE " + where

	var rows []dto.ContactSummaryResponse
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if lowerIDs {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows, nil
}

// GetContact membaca satu kontak lengkap lewat satu query multi-join.
// Join one-to-many ganda menghasilkan baris per pasangan (phone ×
// attachment), jadi anak-anaknya dideduplikasi per id selagi scan.
func (s *ContactFindService) GetContact(ctx context.Context, contactID int64) (*model.ContactModel, error) {
	const query = "SELECT contact.contact_id, contact.contact_name, contact.contact_surname, contact.contact_patronymic, " +
		"contact.contact_birthday, contact.contact_gender, contact.contact_citizenship, contact.contact_website, " +
		"contact.contact_email, contact.contact_company, contact.contact_marital_status, " +
		"country.country_id, country.country_full_name, " +
		"contact.contact_city, contact.contact_street, contact.contact_house_number, contact.contact_apartment_number, contact.contact_zip_code, " +
		"phone.phone_id, phone.phone_country_code, phone.phone_operator_code, phone.phone_number, phone.phone_type, phone.phone_comment, " +
		"attachment.attachment_id, attachment.attachment_file_name, attachment.attachment_upload_date, attachment.attachment_comment, attachment.attachment_real_file_name " +
		"FROM contact " +
		"LEFT JOIN country ON country.country_id = contact.contact_country_id " +
		"LEFT JOIN phone ON phone.phone_contact_id = contact.contact_id AND phone.phone_available = ? " +
		"LEFT JOIN attachment ON attachment.attachment_contact_id = contact.contact_id AND attachment.attachment_available = ? " +
		"WHERE contact.contact_id = ? AND contact.contact_available = ?"

	rows, err := s.db.WithContext(ctx).Raw(query, true, true, contactID, true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contact *model.ContactModel
	seenPhones := map[int64]bool{}
	seenAttachments := map[int64]bool{}

	for rows.Next() {
		var (
			id                                          int64
			name, surname, patronymic                   string
			birthday                                    sql.NullTime
			gender, citizenship, website                string
			email, company, marital                     string
			countryID                                   sql.NullInt64
			countryName                                 sql.NullString
			city, street, houseNumber, apartment, zip   string
			phoneID, countryCode, operatorCode, phoneNo sql.NullInt64
			phoneType, phoneComment                     sql.NullString
			attachmentID                                sql.NullInt64
			fileName                                    sql.NullString
			uploadDate                                  sql.NullTime
			attachmentComment, realFileName             sql.NullString
		)
		if err := rows.Scan(
			&id, &name, &surname, &patronymic,
			&birthday, &gender, &citizenship, &website,
			&email, &company, &marital,
			&countryID, &countryName,
			&city, &street, &houseNumber, &apartment, &zip,
			&phoneID, &countryCode, &operatorCode, &phoneNo, &phoneType, &phoneComment,
			&attachmentID, &fileName, &uploadDate, &attachmentComment, &realFileName,
		); err != nil {
			return nil, err
		}

		if contact == nil {
			contact = &model.ContactModel{
				ContactID:              id,
				ContactName:            name,
				ContactSurname:         surname,
				ContactPatronymic:      patronymic,
				ContactGender:          gender,
				ContactCitizenship:     citizenship,
				ContactWebsite:         website,
				ContactEmail:           email,
				ContactCompany:         company,
				ContactMaritalStatus:   marital,
				ContactCity:            city,
				ContactStreet:          street,
				ContactHouseNumber:     houseNumber,
				ContactApartmentNumber: apartment,
				ContactZipCode:         zip,
				ContactAvailable:       true,
				Phones:                 []model.ContactPhoneModel{},
				Attachments:            []model.ContactAttachmentModel{},
			}
			if birthday.Valid {
				contact.ContactBirthday = datatypes.Date(birthday.Time)
			}
			if countryID.Valid {
				cid := countryID.Int64
				contact.ContactCountryID = &cid
				contact.Country = &model.CountryModel{
					CountryID:       cid,
					CountryFullName: countryName.String,
				}
			}
		}

		if phoneID.Valid && !seenPhones[phoneID.Int64] {
			seenPhones[phoneID.Int64] = true
			contact.Phones = append(contact.Phones, model.ContactPhoneModel{
				PhoneID:           phoneID.Int64,
				PhoneContactID:    id,
				PhoneCountryCode:  int(countryCode.Int64),
				PhoneOperatorCode: int(operatorCode.Int64),
				PhoneNumber:       int(phoneNo.Int64),
				PhoneType:         phoneType.String,
				PhoneComment:      phoneComment.String,
				PhoneAvailable:    true,
			})
		}
		if attachmentID.Valid && !seenAttachments[attachmentID.Int64] {
			seenAttachments[attachmentID.Int64] = true
			attachment := model.ContactAttachmentModel{
				AttachmentID:           attachmentID.Int64,
				AttachmentContactID:    id,
				AttachmentFileName:     fileName.String,
				AttachmentComment:      attachmentComment.String,
				AttachmentRealFileName: realFileName.String,
				AttachmentAvailable:    true,
			}
			if uploadDate.Valid {
				attachment.AttachmentUploadDate = datatypes.Date(uploadDate.Time)
			}
			contact.Attachments = append(contact.Attachments, attachment)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// GetEmails mengumpulkan email untuk daftar id (satu query per id,
// mengikuti kontrak lama; batching belum perlu).
func (s *ContactFindService) GetEmails(ctx context.Context, contactIDs []int64) ([]string, error) {
	emails := make([]string, 0, len(contactIDs))
	for _, id := range contactIDs {
		var email string
		err := s.db.WithContext(ctx).
			Raw("SELECT contact_email FROM contact WHERE contact_id = ?", id).
			Scan(&email).Error
		if err != nil {
			return nil, err
		}
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails, nil
}
