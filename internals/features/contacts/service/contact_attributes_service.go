package service

import (
	"context"

	"gorm.io/gorm"

	"contactbook_backend/internals/features/contacts/model"
)

// ContactAttributesService: data referensi untuk form (daftar negara).
type ContactAttributesService struct {
	db *gorm.DB
}

func NewContactAttributesService(db *gorm.DB) *ContactAttributesService {
	return &ContactAttributesService{db: db}
}

func (s *ContactAttributesService) GetAllCountries(ctx context.Context) ([]model.CountryModel, error) {
	var countries []model.CountryModel
	err := s.db.WithContext(ctx).
		Order("country_full_name ASC").
		Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}
