package service

import (
	"context"

	"gorm.io/gorm"

	"contactbook_backend/internals/features/contacts/dto"
	"contactbook_backend/internals/features/contacts/model"
)

// PlacementFunc dijalankan di dalam transaksi setelah baris kontak
// tersimpan (id sudah terisi). Mengembalikan attachment yang baru
// mendapat real file name supaya service mempersist-nya di transaksi
// yang sama. Error dari placement → rollback seluruh write.
type PlacementFunc func(saved *model.ContactModel) ([]model.ContactAttachmentModel, error)

// ContactModifyService: jalur tulis. Semua operasi multi-step dibungkus
// satu transaksi (insert kontak + penempatan file + update real file name).
type ContactModifyService struct {
	db *gorm.DB
}

func NewContactModifyService(db *gorm.DB) *ContactModifyService {
	return &ContactModifyService{db: db}
}

// AddNewContact menyimpan kontak baru beserta baris phone/attachment
// bawaannya, lalu menjalankan placement file di transaksi yang sama.
func (s *ContactModifyService) AddNewContact(ctx context.Context, contact *model.ContactModel, place PlacementFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveCountry(tx, contact); err != nil {
			return err
		}
		if err := tx.Omit("Country").Create(contact).Error; err != nil {
			return err
		}
		return applyPlacement(tx, contact, place)
	})
}

// UpdateContact menerapkan hasil diff form edit: kolom kontak ditimpa,
// baris update di-overwrite per id, baris delete di-soft-delete, baris
// new di-insert. RowsAffected 0 pada kontak = id tidak ada → 404.
func (s *ContactModifyService) UpdateContact(ctx context.Context, contact *model.ContactModel, phones *dto.PhoneGroups, attachments *dto.AttachmentGroups, place PlacementFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveCountry(tx, contact); err != nil {
			return err
		}
		res := tx.Model(&model.ContactModel{}).
			Where("contact_id = ? AND contact_available = ?", contact.ContactID, true).
			Updates(contactColumns(contact))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrContactNotFound
		}
		if err := applyPhoneGroups(tx, contact.ContactID, phones); err != nil {
			return err
		}
		if err := applyAttachmentGroups(tx, contact.ContactID, attachments); err != nil {
			return err
		}
		// Placement butuh daftar attachment pasca-diff (termasuk id baris baru).
		if err := tx.
			Where("attachment_contact_id = ? AND attachment_available = ?", contact.ContactID, true).
			Order("attachment_id ASC").
			Find(&contact.Attachments).Error; err != nil {
			return err
		}
		return applyPlacement(tx, contact, place)
	})
}

// DeleteContacts: soft delete massal. Baris anak dibiarkan; jalur baca
// sudah menyaring lewat contact_available.
func (s *ContactModifyService) DeleteContacts(ctx context.Context, contactIDs []int64) error {
	if len(contactIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.ContactModel{}).
		Where("contact_id IN ?", contactIDs).
		Update("contact_available", false).Error
}

// resolveCountry menukar nama negara dari form menjadi country_id.
// Nama yang belum ada di tabel country dibuat sekalian.
func resolveCountry(tx *gorm.DB, contact *model.ContactModel) error {
	if contact.Country == nil || contact.Country.CountryFullName == "" {
		contact.ContactCountryID = nil
		return nil
	}
	var country model.CountryModel
	if err := tx.Where("country_full_name = ?", contact.Country.CountryFullName).
		FirstOrCreate(&country, model.CountryModel{CountryFullName: contact.Country.CountryFullName}).Error; err != nil {
		return err
	}
	contact.Country = &country
	contact.ContactCountryID = &country.CountryID
	return nil
}

// contactColumns: map eksplisit supaya nilai kosong ikut tertimpa
// (Updates dengan struct men-skip zero value).
func contactColumns(c *model.ContactModel) map[string]any {
	return map[string]any{
		"contact_name":             c.ContactName,
		"contact_surname":          c.ContactSurname,
		"contact_patronymic":       c.ContactPatronymic,
		"contact_birthday":         c.ContactBirthday,
		"contact_gender":           c.ContactGender,
		"contact_citizenship":      c.ContactCitizenship,
		"contact_website":          c.ContactWebsite,
		"contact_email":            c.ContactEmail,
		"contact_company":          c.ContactCompany,
		"contact_marital_status":   c.ContactMaritalStatus,
		"contact_country_id":       c.ContactCountryID,
		"contact_city":             c.ContactCity,
		"contact_street":           c.ContactStreet,
		"contact_house_number":     c.ContactHouseNumber,
		"contact_apartment_number": c.ContactApartmentNumber,
		"contact_zip_code":         c.ContactZipCode,
	}
}

func applyPhoneGroups(tx *gorm.DB, contactID int64, groups *dto.PhoneGroups) error {
	if groups == nil {
		return nil
	}
	for _, p := range groups.Update {
		err := tx.Model(&model.ContactPhoneModel{}).
			Where("phone_id = ? AND phone_contact_id = ?", p.PhoneID, contactID).
			Updates(map[string]any{
				"phone_country_code":  p.PhoneCountryCode,
				"phone_operator_code": p.PhoneOperatorCode,
				"phone_number":        p.PhoneNumber,
				"phone_type":          p.PhoneType,
				"phone_comment":       p.PhoneComment,
			}).Error
		if err != nil {
			return err
		}
	}
	if len(groups.Delete) > 0 {
		ids := make([]int64, 0, len(groups.Delete))
		for _, p := range groups.Delete {
			ids = append(ids, p.PhoneID)
		}
		err := tx.Model(&model.ContactPhoneModel{}).
			Where("phone_id IN ? AND phone_contact_id = ?", ids, contactID).
			Update("phone_available", false).Error
		if err != nil {
			return err
		}
	}
	if len(groups.New) > 0 {
		rows := groups.New
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func applyAttachmentGroups(tx *gorm.DB, contactID int64, groups *dto.AttachmentGroups) error {
	if groups == nil {
		return nil
	}
	for _, a := range groups.Update {
		err := tx.Model(&model.ContactAttachmentModel{}).
			Where("attachment_id = ? AND attachment_contact_id = ?", a.AttachmentID, contactID).
			Updates(map[string]any{
				"attachment_file_name":   a.AttachmentFileName,
				"attachment_upload_date": a.AttachmentUploadDate,
				"attachment_comment":     a.AttachmentComment,
			}).Error
		if err != nil {
			return err
		}
	}
	if len(groups.Delete) > 0 {
		ids := make([]int64, 0, len(groups.Delete))
		for _, a := range groups.Delete {
			ids = append(ids, a.AttachmentID)
		}
		err := tx.Model(&model.ContactAttachmentModel{}).
			Where("attachment_id IN ? AND attachment_contact_id = ?", ids, contactID).
			Update("attachment_available", false).Error
		if err != nil {
			return err
		}
	}
	if len(groups.New) > 0 {
		rows := groups.New
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpdateContactAttachments mempersist real file name hasil penempatan
// file. Jalur normal memanggil ini lewat transaksi create/update; versi
// publiknya dipakai untuk pengisian ulang di luar siklus form.
func (s *ContactModifyService) UpdateContactAttachments(ctx context.Context, attachments []model.ContactAttachmentModel) error {
	return persistRealFileNames(s.db.WithContext(ctx), attachments)
}

func persistRealFileNames(tx *gorm.DB, attachments []model.ContactAttachmentModel) error {
	for _, a := range attachments {
		err := tx.Model(&model.ContactAttachmentModel{}).
			Where("attachment_id = ?", a.AttachmentID).
			Update("attachment_real_file_name", a.AttachmentRealFileName).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func applyPlacement(tx *gorm.DB, contact *model.ContactModel, place PlacementFunc) error {
	if place == nil {
		return nil
	}
	placed, err := place(contact)
	if err != nil {
		return err
	}
	return persistRealFileNames(tx, placed)
}
