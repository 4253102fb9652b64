package dto

import (
	"fmt"
	"strings"
	"time"

	"contactbook_backend/internals/features/contacts/model"
)

// ContactSearchAttributes: deskriptor filter pencarian. Semua field
// opsional; kosong berarti tanpa constraint untuk kolom itu.
type ContactSearchAttributes struct {
	Name          string `json:"name" form:"name"`
	Surname       string `json:"surname" form:"surname"`
	Patronymic    string `json:"patronymic" form:"patronymic"`
	Citizenship   string `json:"citizenship" form:"citizenship"`
	Gender        string `json:"gender" form:"gender"`
	MaritalStatus string `json:"marital" form:"marital"`
	BirthdayFrom  string `json:"birthdayFrom" form:"birthdayFrom"` // dd.MM.yyyy
	BirthdayTo    string `json:"birthdayTo" form:"birthdayTo"`     // dd.MM.yyyy

	Country         string `json:"country" form:"country"`
	City            string `json:"city" form:"city"`
	Street          string `json:"street" form:"street"`
	HouseNumber     string `json:"houseNumber" form:"houseNumber"`
	ApartmentNumber string `json:"apartmentNumber" form:"apartmentNumber"`
	ZipCode         string `json:"zipCode" form:"zipCode"`
}

// IsEmpty: filter yang semua fieldnya kosong harus berperilaku sama
// dengan listing tanpa filter.
func (s *ContactSearchAttributes) IsEmpty() bool {
	if s == nil {
		return true
	}
	return *s == ContactSearchAttributes{}
}

// BuildWhere merakit klausa WHERE + daftar parameter terurut untuk
// listing kontak. Predicate dan nilainya di-append berpasangan, jadi
// posisi placeholder tidak dihitung manual.
//
// Cursor keyset: lowerIDs=true memindai mundur (id < start, DESC);
// hasil di-reverse oleh pemanggil supaya selalu ascending by id.
func (s *ContactSearchAttributes) BuildWhere(startID int64, lowerIDs bool, pageSize int) (string, []any, error) {
	clauses := []string{"contact_available = ?"}
	args := []any{true}

	appendClause := func(clause string, arg any) {
		clauses = append(clauses, clause)
		args = append(args, arg)
	}

	if s != nil {
		if s.Name != "" {
			appendClause("contact_name = ?", s.Name)
		}
		if s.Surname != "" {
			appendClause("contact_surname = ?", s.Surname)
		}
		if s.Patronymic != "" {
			appendClause("contact_patronymic = ?", s.Patronymic)
		}
		if s.Citizenship != "" {
			appendClause("contact_citizenship = ?", s.Citizenship)
		}
		if s.Gender != "" {
			gender, err := parseEnum("gender", s.Gender, model.GenderValues)
			if err != nil {
				return "", nil, err
			}
			appendClause("contact_gender = ?", gender)
		}
		if s.MaritalStatus != "" {
			marital, err := parseEnum("marital", s.MaritalStatus, model.MaritalStatusValues)
			if err != nil {
				return "", nil, err
			}
			appendClause("contact_marital_status = ?", marital)
		}
		if s.BirthdayFrom != "" {
			from, err := parseSearchDate("birthdayFrom", s.BirthdayFrom)
			if err != nil {
				return "", nil, err
			}
			appendClause("contact_birthday >= ?", from)
		}
		if s.BirthdayTo != "" {
			to, err := parseSearchDate("birthdayTo", s.BirthdayTo)
			if err != nil {
				return "", nil, err
			}
			appendClause("contact_birthday <= ?", to)
		}
		if s.Country != "" {
			// country diresolve lewat subquery, bukan join langsung
			appendClause("contact_country_id = (SELECT country_id FROM country WHERE country_full_name = ?)", s.Country)
		}
		if s.City != "" {
			appendClause("contact_city = ?", s.City)
		}
		if s.Street != "" {
			appendClause("contact_street = ?", s.Street)
		}
		if s.HouseNumber != "" {
			appendClause("contact_house_number = ?", s.HouseNumber)
		}
		if s.ApartmentNumber != "" {
			appendClause("contact_apartment_number = ?", s.ApartmentNumber)
		}
		if s.ZipCode != "" {
			appendClause("contact_zip_code = ?", s.ZipCode)
		}
	}

	if lowerIDs {
		appendClause("contact_id < ?", startID)
	} else {
		appendClause("contact_id > ?", startID)
	}

	where := strings.Join(clauses, " AND ")
	if lowerIDs {
		where += " ORDER BY contact_id DESC LIMIT ?"
	} else {
		where += " ORDER BY contact_id ASC LIMIT ?"
	}
	args = append(args, pageSize)
	return where, args, nil
}

func parseSearchDate(field, value string) (time.Time, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%q", ErrInvalidInput, field, value)
	}
	return t, nil
}
