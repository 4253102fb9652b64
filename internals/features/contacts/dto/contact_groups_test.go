package dto

import (
	"errors"
	"testing"
)

func TestSplitPhoneGroups(t *testing.T) {
	fields := FormFields{
		"phonesInitialCount": "3",

		// baris 0: update
		"updatecountryCode0":  "375",
		"updateoperatorCode0": "29",
		"updatephoneNumber0":  "1112233",
		"updatephoneType0":    "HOME",
		"id0":                 "101",

		// baris 1: delete
		"deletecountryCode1":  "375",
		"deleteoperatorCode1": "29",
		"deletephoneNumber1":  "4445566",
		"id1":                 "102",

		// baris baru (open-ended)
		"newcountryCode0":  "44",
		"newoperatorCode0": "20",
		"newphoneNumber0":  "7778899",
		"newphoneType0":    "WORK",
	}

	groups, err := SplitPhoneGroups(fields, 7)
	if err != nil {
		t.Fatalf("SplitPhoneGroups: %v", err)
	}
	if len(groups.Update) != 1 || groups.Update[0].PhoneID != 101 {
		t.Errorf("update = %+v", groups.Update)
	}
	if groups.Update[0].PhoneContactID != 7 {
		t.Errorf("update contact id = %d, mau 7", groups.Update[0].PhoneContactID)
	}
	if len(groups.Delete) != 0 {
		// delete baris 1 tidak terjangkau: iterasi delete mulai dari
		// index 0 dan berhenti di index pertama yang hilang
		t.Errorf("delete = %+v, mau kosong (short-circuit di index 0)", groups.Delete)
	}
	if len(groups.New) != 1 || groups.New[0].PhoneCountryCode != 44 {
		t.Errorf("new = %+v", groups.New)
	}
	if groups.New[0].PhoneContactID != 7 {
		t.Errorf("new contact id = %d, mau 7", groups.New[0].PhoneContactID)
	}
}

func TestSplitPhoneGroupsDeleteFromZero(t *testing.T) {
	fields := FormFields{
		"phonesInitialCount": "2",

		"deletecountryCode0":  "375",
		"deleteoperatorCode0": "29",
		"deletephoneNumber0":  "1112233",
		"id0":                 "201",
		"deletecountryCode1":  "375",
		"deleteoperatorCode1": "29",
		"deletephoneNumber1":  "4445566",
		"id1":                 "202",
	}
	groups, err := SplitPhoneGroups(fields, 7)
	if err != nil {
		t.Fatalf("SplitPhoneGroups: %v", err)
	}
	if len(groups.Delete) != 2 {
		t.Fatalf("delete = %d baris, mau 2", len(groups.Delete))
	}
	if groups.Delete[0].PhoneID != 201 || groups.Delete[1].PhoneID != 202 {
		t.Errorf("id delete = %+v", groups.Delete)
	}
}

func TestSplitPhoneGroupsInitialCountCapsScan(t *testing.T) {
	fields := FormFields{
		"phonesInitialCount": "1",

		"updatecountryCode0":  "375",
		"updateoperatorCode0": "29",
		"updatephoneNumber0":  "1112233",
		"id0":                 "301",
		// di luar initialCount, harus diabaikan
		"updatecountryCode1":  "375",
		"updateoperatorCode1": "29",
		"updatephoneNumber1":  "9998877",
		"id1":                 "302",
	}
	groups, err := SplitPhoneGroups(fields, 7)
	if err != nil {
		t.Fatalf("SplitPhoneGroups: %v", err)
	}
	if len(groups.Update) != 1 {
		t.Errorf("update = %d baris, mau 1 (dibatasi initialCount)", len(groups.Update))
	}
}

func TestSplitPhoneGroupsMissingInitialCount(t *testing.T) {
	groups, err := SplitPhoneGroups(FormFields{}, 7)
	if err != nil {
		t.Fatalf("tanpa initialCount harus dianggap 0: %v", err)
	}
	if len(groups.Update) != 0 || len(groups.Delete) != 0 || len(groups.New) != 0 {
		t.Errorf("groups = %+v, mau kosong semua", groups)
	}
}

func TestSplitPhoneGroupsMalformedInitialCount(t *testing.T) {
	fields := FormFields{"phonesInitialCount": "banyak"}
	if _, err := SplitPhoneGroups(fields, 7); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("initialCount rusak: err = %v, mau ErrInvalidInput", err)
	}
}

func TestSplitAttachmentGroups(t *testing.T) {
	fields := FormFields{
		"attachmentsInitialCount": "1",

		"updatefileName0":      "contract",
		"updateattachingDate0": "1700000000000",
		"id0":                  "501",

		"newfileName0":      "passport scan",
		"newattachingDate0": "1700000100000",
	}
	groups, err := SplitAttachmentGroups(fields, 7)
	if err != nil {
		t.Fatalf("SplitAttachmentGroups: %v", err)
	}
	if len(groups.Update) != 1 || groups.Update[0].AttachmentID != 501 {
		t.Errorf("update = %+v", groups.Update)
	}
	if len(groups.New) != 1 || groups.New[0].AttachmentFileName != "passport scan" {
		t.Errorf("new = %+v", groups.New)
	}
	if groups.New[0].AttachmentContactID != 7 {
		t.Errorf("new contact id = %d, mau 7", groups.New[0].AttachmentContactID)
	}
}
