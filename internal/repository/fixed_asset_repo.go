package repository

import (
	"ringkas-aset/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FixedAssetRepository interface {
	Create(asset *model.FixedAsset) error
	FindAll() ([]model.FixedAsset, error)
	FindByID(id uuid.UUID) (*model.FixedAsset, error)
	Update(asset *model.FixedAsset) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
}

type fixedAssetRepo struct {
	db *gorm.DB
}

func NewFixedAssetRepo(db *gorm.DB) FixedAssetRepository {
	return &fixedAssetRepo{db}
}

func (r *fixedAssetRepo) Create(asset *model.FixedAsset) error {
	return r.db.Create(asset).Error
}

func (r *fixedAssetRepo) FindAll() ([]model.FixedAsset, error) {
	var assets []model.FixedAsset
	err := r.db.Preload("Location").Order("name ASC").Find(&assets).Error
	return assets, err
}

func (r *fixedAssetRepo) FindByID(id uuid.UUID) (*model.FixedAsset, error) {
	var asset model.FixedAsset
	err := r.db.Preload("Location").First(&asset, "id = ?", id).Error
	return &asset, err
}

func (r *fixedAssetRepo) Update(asset *model.FixedAsset) error {
	return r.db.Save(asset).Error
}

// UpdateFields applies a partial update; unspecified columns stay unchanged
func (r *fixedAssetRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&model.FixedAsset{}).Where("id = ?", id).Updates(fields).Error
}

func (r *fixedAssetRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.FixedAsset{}, "id = ?", id).Error
}
