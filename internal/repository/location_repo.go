package repository

import (
	"ringkas-aset/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(location *model.Location) error
	FindAll() ([]model.Location, error)
	FindByID(id uuid.UUID) (*model.Location, error)
	Update(location *model.Location) error
	Delete(id uuid.UUID) error
	CountAssets(id uuid.UUID) (int64, error)
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db}
}

func (r *locationRepo) Create(location *model.Location) error {
	return r.db.Create(location).Error
}

func (r *locationRepo) FindAll() ([]model.Location, error) {
	var locations []model.Location
	err := r.db.Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *locationRepo) FindByID(id uuid.UUID) (*model.Location, error) {
	var location model.Location
	err := r.db.First(&location, "id = ?", id).Error
	return &location, err
}

func (r *locationRepo) Update(location *model.Location) error {
	return r.db.Save(location).Error
}

func (r *locationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Location{}, "id = ?", id).Error
}

// CountAssets counts fixed and consumable assets still referencing the
// location. The location delete guard depends on this.
func (r *locationRepo) CountAssets(id uuid.UUID) (int64, error) {
	var fixed, consumable int64
	if err := r.db.Model(&model.FixedAsset{}).Where("location_id = ?", id).Count(&fixed).Error; err != nil {
		return 0, err
	}
	if err := r.db.Model(&model.ConsumableAsset{}).Where("location_id = ?", id).Count(&consumable).Error; err != nil {
		return 0, err
	}
	return fixed + consumable, nil
}
