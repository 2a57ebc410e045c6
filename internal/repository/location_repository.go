package repository

import (
	"github.com/mikeconel/windrush-insights/internal/model"
	"gorm.io/gorm"
)

type LocationRepository interface {
	FindByPostcode(postcode string) (*model.Location, error)
	Upsert(location *model.Location) error
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) FindByPostcode(postcode string) (*model.Location, error) {
	var location model.Location
	if err := r.db.Where("postcode = ?", postcode).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) Upsert(location *model.Location) error {
	var existing model.Location
	err := r.db.Where("postcode = ?", location.Postcode).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(location).Error
	}
	if err != nil {
		return err
	}
	existing.Lat = location.Lat
	existing.Lon = location.Lon
	return r.db.Save(&existing).Error
}
