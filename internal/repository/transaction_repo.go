package repository

import (
	"ringkas-aset/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository is intentionally append-only: audit entries are
// created by the asset coordinator and never updated or deleted.
type TransactionRepository interface {
	Create(tx *model.AssetTransaction) error
	FindAll() ([]model.AssetTransaction, error)
	FindByID(id uuid.UUID) (*model.AssetTransaction, error)
	FindByAssetID(assetID uuid.UUID) ([]model.AssetTransaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *model.AssetTransaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepo) FindAll() ([]model.AssetTransaction, error) {
	var transactions []model.AssetTransaction
	err := r.db.Preload("User").Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.AssetTransaction, error) {
	var transaction model.AssetTransaction
	err := r.db.Preload("User").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

func (r *transactionRepo) FindByAssetID(assetID uuid.UUID) ([]model.AssetTransaction, error) {
	var transactions []model.AssetTransaction
	err := r.db.Preload("User").Where("asset_id = ?", assetID).Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}
