package model

import (
	"gorm.io/gorm"
)

type CountryModel struct {
	CountryID       int64  `gorm:"column:country_id;primaryKey;autoIncrement" json:"country_id"`
	CountryFullName string `gorm:"column:country_full_name;type:varchar(100);not null;uniqueIndex" json:"country_full_name"`
}

func (CountryModel) TableName() string {
	return "country"
}

// SeedCountries mengisi tabel country sekali saja (kalau masih kosong).
func SeedCountries(db *gorm.DB) error {
	var count int64
	if err := db.Model(&CountryModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	names := []string{
		"Belarus", "France", "Germany", "Indonesia", "Italy", "Japan",
		"Kazakhstan", "Lithuania", "Netherlands", "Poland", "Russia",
		"Spain", "Ukraine", "United Kingdom", "United States",
	}
	rows := make([]CountryModel, 0, len(names))
	for _, n := range names {
		rows = append(rows, CountryModel{CountryFullName: n})
	}
	return db.Create(&rows).Error
}
