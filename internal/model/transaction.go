package model

import "github.com/google/uuid"

// TransactionType classifies an audit entry
type TransactionType string

const (
	TxTambah     TransactionType = "Tambah"
	TxAmbil      TransactionType = "Ambil"
	TxLaporRusak TransactionType = "Lapor Rusak"
	TxEdit       TransactionType = "Edit"
)

// AssetTransaction is an append-only audit entry. Entries are created by the
// asset coordinator whenever a mutation commits and are never edited or
// deleted afterwards. AssetID is nullable: the referenced asset may have been
// deleted since, and some add flows log before the id is known.
type AssetTransaction struct {
	BaseModel
	AssetID        *uuid.UUID      `gorm:"type:uuid;index" json:"asset_id"`
	AssetKind      AssetKind       `gorm:"type:varchar(20);not null" json:"asset_kind" validate:"required,oneof=Tetap HabisPakai"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id" validate:"uuid_required"`
	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type           TransactionType `gorm:"type:varchar(20);not null" json:"type" validate:"required,oneof=Tambah Ambil 'Lapor Rusak' Edit"`
	QuantityChange *int            `json:"quantity_change,omitempty"`
	Notes          string          `gorm:"type:text" json:"notes"`
}

func (AssetTransaction) TableName() string {
	return "asset_transactions"
}
