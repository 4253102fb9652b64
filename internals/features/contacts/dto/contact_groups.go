package dto

import (
	"strconv"

	"contactbook_backend/internals/features/contacts/model"
)

// Prefix aksi pada nama field form edit. Baris "update"/"delete" dibatasi
// initialCount (jumlah baris saat form dirender); baris "new" open-ended.
const (
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionNew    = "new"
)

// PhoneGroups: rencana diff 3 arah untuk baris telepon.
type PhoneGroups struct {
	Update []model.ContactPhoneModel
	Delete []model.ContactPhoneModel
	New    []model.ContactPhoneModel
}

// AttachmentGroups: rencana diff 3 arah untuk baris lampiran.
type AttachmentGroups struct {
	Update []model.ContactAttachmentModel
	Delete []model.ContactAttachmentModel
	New    []model.ContactAttachmentModel
}

// SplitPhoneGroups membagi baris telepon form edit ke bucket
// update/delete/new. Iterasi berhenti di index pertama yang hilang
// (short-circuit), bukan full scan.
func SplitPhoneGroups(fields FormFields, contactID int64) (*PhoneGroups, error) {
	initialCount, err := readInitialCount(fields, "phonesInitialCount")
	if err != nil {
		return nil, err
	}
	groups := &PhoneGroups{}
	for _, action := range []string{ActionUpdate, ActionDelete} {
		rows, err := collectExistingPhones(fields, action, initialCount, contactID)
		if err != nil {
			return nil, err
		}
		switch action {
		case ActionUpdate:
			groups.Update = rows
		case ActionDelete:
			groups.Delete = rows
		}
	}
	newRows, err := collectPhones(fields, ActionNew)
	if err != nil {
		return nil, err
	}
	for i := range newRows {
		newRows[i].PhoneContactID = contactID
	}
	groups.New = newRows
	return groups, nil
}

func collectExistingPhones(fields FormFields, action string, initialCount int, contactID int64) ([]model.ContactPhoneModel, error) {
	var rows []model.ContactPhoneModel
	for j := 0; j < initialCount; j++ {
		if _, ok := fields[rowKey(action, "countryCode", j)]; !ok {
			break
		}
		phone, err := buildPhoneRow(fields, action, j)
		if err != nil {
			return nil, err
		}
		id, err := fields.RequireInt64("id" + strconv.Itoa(j))
		if err != nil {
			return nil, err
		}
		phone.PhoneID = id
		phone.PhoneContactID = contactID
		rows = append(rows, *phone)
	}
	return rows, nil
}

// SplitAttachmentGroups: padanan SplitPhoneGroups untuk lampiran.
func SplitAttachmentGroups(fields FormFields, contactID int64) (*AttachmentGroups, error) {
	initialCount, err := readInitialCount(fields, "attachmentsInitialCount")
	if err != nil {
		return nil, err
	}
	groups := &AttachmentGroups{}
	for _, action := range []string{ActionUpdate, ActionDelete} {
		rows, err := collectExistingAttachments(fields, action, initialCount, contactID)
		if err != nil {
			return nil, err
		}
		switch action {
		case ActionUpdate:
			groups.Update = rows
		case ActionDelete:
			groups.Delete = rows
		}
	}
	newRows, err := collectAttachments(fields, ActionNew)
	if err != nil {
		return nil, err
	}
	for i := range newRows {
		newRows[i].AttachmentContactID = contactID
	}
	groups.New = newRows
	return groups, nil
}

func collectExistingAttachments(fields FormFields, action string, initialCount int, contactID int64) ([]model.ContactAttachmentModel, error) {
	var rows []model.ContactAttachmentModel
	for j := 0; j < initialCount; j++ {
		if _, ok := fields[rowKey(action, "fileName", j)]; !ok {
			break
		}
		attachment, err := buildAttachmentRow(fields, action, j)
		if err != nil {
			return nil, err
		}
		id, err := fields.RequireInt64("id" + strconv.Itoa(j))
		if err != nil {
			return nil, err
		}
		attachment.AttachmentID = id
		attachment.AttachmentContactID = contactID
		rows = append(rows, *attachment)
	}
	return rows, nil
}

// initialCount: field hilang dianggap 0 baris awal; nilai rusak = input rusak.
func readInitialCount(fields FormFields, name string) (int, error) {
	if _, ok := fields[name]; !ok {
		return 0, nil
	}
	return fields.RequireInt(name)
}
