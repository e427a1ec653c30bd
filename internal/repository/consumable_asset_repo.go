package repository

import (
	"ringkas-aset/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsumableAssetRepository interface {
	Create(asset *model.ConsumableAsset) error
	FindAll() ([]model.ConsumableAsset, error)
	FindByID(id uuid.UUID) (*model.ConsumableAsset, error)
	Update(asset *model.ConsumableAsset) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	UpdateQuantity(id uuid.UUID, newQuantity int, updatedBy string) error
	Delete(id uuid.UUID) error
}

type consumableAssetRepo struct {
	db *gorm.DB
}

func NewConsumableAssetRepo(db *gorm.DB) ConsumableAssetRepository {
	return &consumableAssetRepo{db}
}

func (r *consumableAssetRepo) Create(asset *model.ConsumableAsset) error {
	return r.db.Create(asset).Error
}

func (r *consumableAssetRepo) FindAll() ([]model.ConsumableAsset, error) {
	var assets []model.ConsumableAsset
	err := r.db.Preload("Location").Order("name ASC").Find(&assets).Error
	return assets, err
}

func (r *consumableAssetRepo) FindByID(id uuid.UUID) (*model.ConsumableAsset, error) {
	var asset model.ConsumableAsset
	err := r.db.Preload("Location").First(&asset, "id = ?", id).Error
	return &asset, err
}

func (r *consumableAssetRepo) Update(asset *model.ConsumableAsset) error {
	return r.db.Save(asset).Error
}

// UpdateFields applies a partial update; unspecified columns stay unchanged
func (r *consumableAssetRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&model.ConsumableAsset{}).Where("id = ?", id).Updates(fields).Error
}

func (r *consumableAssetRepo) UpdateQuantity(id uuid.UUID, newQuantity int, updatedBy string) error {
	return r.db.Model(&model.ConsumableAsset{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   newQuantity,
			"updated_by": updatedBy,
		}).Error
}

func (r *consumableAssetRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ConsumableAsset{}, "id = ?", id).Error
}
