package dto

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildWhereEmptyFilter(t *testing.T) {
	var filter *ContactSearchAttributes
	where, args, err := filter.BuildWhere(0, false, 11)
	if err != nil {
		t.Fatalf("BuildWhere: %v", err)
	}
	want := "contact_available = ? AND contact_id > ? ORDER BY contact_id ASC LIMIT ?"
	if where != want {
		t.Errorf("where = %q\nmau      %q", where, want)
	}
	if len(args) != 3 {
		t.Fatalf("args = %v", args)
	}
	if args[0] != true || args[1] != int64(0) || args[2] != 11 {
		t.Errorf("args = %v", args)
	}
}

func TestBuildWhereLowerDirection(t *testing.T) {
	filter := &ContactSearchAttributes{}
	where, args, err := filter.BuildWhere(20, true, 11)
	if err != nil {
		t.Fatalf("BuildWhere: %v", err)
	}
	if !strings.Contains(where, "contact_id < ?") {
		t.Errorf("arah turun harus pakai <: %q", where)
	}
	if !strings.HasSuffix(where, "ORDER BY contact_id DESC LIMIT ?") {
		t.Errorf("arah turun harus DESC: %q", where)
	}
	if args[len(args)-2] != int64(20) {
		t.Errorf("cursor arg = %v", args)
	}
}

func TestBuildWhereOrderedPairs(t *testing.T) {
	filter := &ContactSearchAttributes{
		Surname: "Petrov",
		Country: "Belarus",
		City:    "Minsk",
	}
	where, args, err := filter.BuildWhere(0, false, 11)
	if err != nil {
		t.Fatalf("BuildWhere: %v", err)
	}
	// setiap predicate dan nilainya muncul di posisi yang sama
	wantOrder := []string{
		"contact_available = ?",
		"contact_surname = ?",
		"contact_country_id = (SELECT country_id FROM country WHERE country_full_name = ?)",
		"contact_city = ?",
		"contact_id > ?",
	}
	pos := 0
	for _, clause := range wantOrder {
		idx := strings.Index(where[pos:], clause)
		if idx < 0 {
			t.Fatalf("klausa %q tidak ketemu setelah posisi %d di %q", clause, pos, where)
		}
		pos += idx + len(clause)
	}
	wantArgs := []any{true, "Petrov", "Belarus", "Minsk", int64(0), 11}
	if len(args) != len(wantArgs) {
		t.Fatalf("args = %v", args)
	}
	for i, want := range wantArgs {
		if args[i] != want {
			t.Errorf("args[%d] = %v, mau %v", i, args[i], want)
		}
	}
}

func TestBuildWhereBirthdayRange(t *testing.T) {
	filter := &ContactSearchAttributes{
		BirthdayFrom: "01.01.1980",
		BirthdayTo:   "31.12.1999",
	}
	where, args, err := filter.BuildWhere(0, false, 11)
	if err != nil {
		t.Fatalf("BuildWhere: %v", err)
	}
	if !strings.Contains(where, "contact_birthday >= ?") || !strings.Contains(where, "contact_birthday <= ?") {
		t.Errorf("where = %q", where)
	}
	if len(args) != 5 {
		t.Errorf("args = %v", args)
	}
}

func TestBuildWhereStrictEnum(t *testing.T) {
	filter := &ContactSearchAttributes{Gender: "laki-laki"}
	if _, _, err := filter.BuildWhere(0, false, 11); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("gender tak dikenal: err = %v, mau ErrInvalidInput", err)
	}

	filter = &ContactSearchAttributes{MaritalStatus: "married"}
	if _, _, err := filter.BuildWhere(0, false, 11); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("marital lowercase: err = %v, mau ErrInvalidInput", err)
	}
}

func TestBuildWhereBadDate(t *testing.T) {
	filter := &ContactSearchAttributes{BirthdayFrom: "1980-01-01"}
	if _, _, err := filter.BuildWhere(0, false, 11); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("format tanggal salah: err = %v, mau ErrInvalidInput", err)
	}
}

func TestIsEmpty(t *testing.T) {
	var nilFilter *ContactSearchAttributes
	if !nilFilter.IsEmpty() {
		t.Error("nil harus dianggap kosong")
	}
	if !(&ContactSearchAttributes{}).IsEmpty() {
		t.Error("struct zero harus kosong")
	}
	if (&ContactSearchAttributes{City: "Minsk"}).IsEmpty() {
		t.Error("filter berisi tidak boleh kosong")
	}
}
