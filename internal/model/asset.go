package model

import "github.com/google/uuid"

// AssetKind is the explicit discriminant between the two asset variants.
// Never infer the kind from which fields happen to be set.
type AssetKind string

const (
	KindTetap      AssetKind = "Tetap"      // fixed asset (furniture, electronics)
	KindHabisPakai AssetKind = "HabisPakai" // consumable stock (paper, markers)
)

// AssetStatus is the physical condition of a fixed asset
type AssetStatus string

const (
	StatusBaik        AssetStatus = "Baik"
	StatusRusakRingan AssetStatus = "Rusak Ringan"
	StatusRusakBerat  AssetStatus = "Rusak Berat"
)

// ValidStatus reports whether s is one of the known asset statuses
func ValidStatus(s AssetStatus) bool {
	switch s {
	case StatusBaik, StatusRusakRingan, StatusRusakBerat:
		return true
	}
	return false
}

// FixedAsset is a durable, individually priced item.
// PurchaseDate is stored as an ISO "YYYY-MM-DD" string; string comparison
// on it is valid because the format is zero-padded.
type FixedAsset struct {
	BaseModel
	Name         string      `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Code         string      `gorm:"type:varchar(50);not null" json:"code" validate:"required"`
	LocationID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"location_id" validate:"uuid_required"`
	Location     *Location   `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	PurchaseDate string      `gorm:"type:varchar(10);not null" json:"purchase_date" validate:"required,datetime=2006-01-02"`
	Price        int64       `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Status       AssetStatus `gorm:"type:varchar(20);not null;default:'Baik'" json:"status"`
	PhotoURL     string      `gorm:"type:text" json:"photo_url"`
}

func (FixedAsset) TableName() string {
	return "fixed_assets"
}

// Kind returns the discriminant for a fixed asset
func (FixedAsset) Kind() AssetKind { return KindTetap }

// GetLocationID implements scope.Locatable
func (a FixedAsset) GetLocationID() uuid.UUID { return a.LocationID }

// ConsumableAsset is a quantity-tracked stock item. Quantity never goes
// negative; a take that would drive it below zero is rejected before the write.
type ConsumableAsset struct {
	BaseModel
	Name       string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Code       string    `gorm:"type:varchar(50);not null" json:"code" validate:"required"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id" validate:"uuid_required"`
	Location   *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Quantity   int       `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Unit       string    `gorm:"type:varchar(20);not null" json:"unit" validate:"required"`
}

func (ConsumableAsset) TableName() string {
	return "consumable_assets"
}

// Kind returns the discriminant for a consumable asset
func (ConsumableAsset) Kind() AssetKind { return KindHabisPakai }

// GetLocationID implements scope.Locatable
func (a ConsumableAsset) GetLocationID() uuid.UUID { return a.LocationID }
