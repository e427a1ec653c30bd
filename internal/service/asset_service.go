package service

import (
	"errors"
	"fmt"

	"ringkas-aset/internal/model"
	"ringkas-aset/internal/repository"
	"ringkas-aset/internal/scope"
	"ringkas-aset/internal/ws"
	"ringkas-aset/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrForbidden         = errors.New("asset is outside your responsible locations")
	ErrSaveFailed        = errors.New("failed to save data")
)

// AssetService coordinates asset mutations with the append-only audit log.
// Every mutation performs the asset write first, then appends exactly one
// transaction entry. The two writes are sequential best-effort: a failed
// append is reported but the asset write is not rolled back, and the caller
// is expected to reload its data either way.
type AssetService interface {
	ListFixed(user *model.User) ([]model.FixedAsset, error)
	ListConsumable(user *model.User) ([]model.ConsumableAsset, error)
	GetFixed(user *model.User, id uuid.UUID) (*model.FixedAsset, error)
	GetConsumable(user *model.User, id uuid.UUID) (*model.ConsumableAsset, error)

	CreateFixed(user *model.User, req *CreateFixedAssetRequest) (*model.FixedAsset, error)
	UpdateFixed(user *model.User, id uuid.UUID, req *UpdateFixedAssetRequest) (*model.FixedAsset, error)
	DeleteFixed(user *model.User, id uuid.UUID) error
	ReportDamage(user *model.User, id uuid.UUID, req *ReportDamageRequest) (*model.FixedAsset, error)

	CreateConsumable(user *model.User, req *CreateConsumableAssetRequest) (*model.ConsumableAsset, error)
	UpdateConsumable(user *model.User, id uuid.UUID, req *UpdateConsumableAssetRequest) (*model.ConsumableAsset, error)
	DeleteConsumable(user *model.User, id uuid.UUID) error
	TakeStock(user *model.User, id uuid.UUID, req *TakeStockRequest) (*model.ConsumableAsset, error)
}

type CreateFixedAssetRequest struct {
	Name         string            `json:"name" validate:"required"`
	Code         string            `json:"code" validate:"required"`
	LocationID   uuid.UUID         `json:"location_id" validate:"uuid_required"`
	PurchaseDate string            `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	Price        int64             `json:"price" validate:"gte=0"`
	Status       model.AssetStatus `json:"status" validate:"required,oneof=Baik 'Rusak Ringan' 'Rusak Berat'"`
	PhotoURL     string            `json:"photo_url"`
}

// UpdateFixedAssetRequest is a partial update; nil fields stay unchanged
type UpdateFixedAssetRequest struct {
	Name         *string            `json:"name,omitempty" validate:"omitempty,min=1"`
	Code         *string            `json:"code,omitempty" validate:"omitempty,min=1"`
	LocationID   *uuid.UUID         `json:"location_id,omitempty"`
	PurchaseDate *string            `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Price        *int64             `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status       *model.AssetStatus `json:"status,omitempty" validate:"omitempty,oneof=Baik 'Rusak Ringan' 'Rusak Berat'"`
	PhotoURL     *string            `json:"photo_url,omitempty"`
}

type CreateConsumableAssetRequest struct {
	Name       string    `json:"name" validate:"required"`
	Code       string    `json:"code" validate:"required"`
	LocationID uuid.UUID `json:"location_id" validate:"uuid_required"`
	Quantity   int       `json:"quantity" validate:"gte=0"`
	Unit       string    `json:"unit" validate:"required"`
}

// UpdateConsumableAssetRequest is a partial update; nil fields stay unchanged
type UpdateConsumableAssetRequest struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Code       *string    `json:"code,omitempty" validate:"omitempty,min=1"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	Quantity   *int       `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit       *string    `json:"unit,omitempty" validate:"omitempty,min=1"`
}

type TakeStockRequest struct {
	QuantityChange int    `json:"quantity_change" validate:"required,gt=0"`
	Notes          string `json:"notes"`
}

type ReportDamageRequest struct {
	Status model.AssetStatus `json:"status" validate:"required,oneof='Rusak Ringan' 'Rusak Berat' Baik"`
	Notes  string            `json:"notes"`
}

type assetService struct {
	fixedRepo      repository.FixedAssetRepository
	consumableRepo repository.ConsumableAssetRepository
	locationRepo   repository.LocationRepository
	txRepo         repository.TransactionRepository
	wsHub          *ws.Hub
}

func NewAssetService(
	fixedRepo repository.FixedAssetRepository,
	consumableRepo repository.ConsumableAssetRepository,
	locationRepo repository.LocationRepository,
	txRepo repository.TransactionRepository,
	hub *ws.Hub,
) AssetService {
	return &assetService{
		fixedRepo:      fixedRepo,
		consumableRepo: consumableRepo,
		locationRepo:   locationRepo,
		txRepo:         txRepo,
		wsHub:          hub,
	}
}

// ===== Reads =====

func (s *assetService) ListFixed(user *model.User) ([]model.FixedAsset, error) {
	assets, err := s.fixedRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return scope.VisibleAssets(assets, user), nil
}

func (s *assetService) ListConsumable(user *model.User) ([]model.ConsumableAsset, error) {
	assets, err := s.consumableRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return scope.VisibleAssets(assets, user), nil
}

func (s *assetService) GetFixed(user *model.User, id uuid.UUID) (*model.FixedAsset, error) {
	asset, err := s.fixedRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}
	if !scope.CanAccess(user, asset.LocationID) {
		return nil, ErrForbidden
	}
	return asset, nil
}

func (s *assetService) GetConsumable(user *model.User, id uuid.UUID) (*model.ConsumableAsset, error) {
	asset, err := s.consumableRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}
	if !scope.CanAccess(user, asset.LocationID) {
		return nil, ErrForbidden
	}
	return asset, nil
}

// ===== Fixed asset mutations =====

func (s *assetService) CreateFixed(user *model.User, req *CreateFixedAssetRequest) (*model.FixedAsset, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkLocation(user, req.LocationID); err != nil {
		return nil, err
	}

	asset := &model.FixedAsset{
		Name:         req.Name,
		Code:         req.Code,
		LocationID:   req.LocationID,
		PurchaseDate: req.PurchaseDate,
		Price:        req.Price,
		Status:       req.Status,
		PhotoURL:     req.PhotoURL,
	}
	asset.CreatedBy = user.ID.String()
	asset.UpdatedBy = user.ID.String()

	if err := s.fixedRepo.Create(asset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := s.appendTransaction(&asset.ID, model.KindTetap, user.ID, model.TxTambah, nil, "Aset baru ditambahkan"); err != nil {
		return asset, err
	}

	s.broadcast(user, "fixed_asset_created", fmt.Sprintf("%s menambahkan aset '%s'", user.FullName, asset.Name))
	return asset, nil
}

func (s *assetService) UpdateFixed(user *model.User, id uuid.UUID, req *UpdateFixedAssetRequest) (*model.FixedAsset, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.fixedRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}
	if !scope.CanAccess(user, existing.LocationID) {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{"updated_by": user.ID.String()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Code != nil {
		fields["code"] = *req.Code
	}
	if req.LocationID != nil {
		if err := s.checkLocation(user, *req.LocationID); err != nil {
			return nil, err
		}
		fields["location_id"] = *req.LocationID
	}
	if req.PurchaseDate != nil {
		fields["purchase_date"] = *req.PurchaseDate
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}

	if err := s.fixedRepo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	updated, err := s.fixedRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}

	if err := s.appendTransaction(&id, model.KindTetap, user.ID, model.TxEdit, nil, "Aset diperbarui"); err != nil {
		return updated, err
	}

	s.broadcast(user, "fixed_asset_updated", fmt.Sprintf("%s memperbarui aset '%s'", user.FullName, updated.Name))
	return updated, nil
}

func (s *assetService) DeleteFixed(user *model.User, id uuid.UUID) error {
	existing, err := s.fixedRepo.FindByID(id)
	if err != nil {
		return ErrAssetNotFound
	}
	if !scope.CanAccess(user, existing.LocationID) {
		return ErrForbidden
	}

	if err := s.fixedRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	// Deletions reuse the Edit transaction type with a descriptive note
	if err := s.appendTransaction(&id, model.KindTetap, user.ID, model.TxEdit, nil, "Aset dihapus"); err != nil {
		return err
	}

	s.broadcast(user, "fixed_asset_deleted", fmt.Sprintf("%s menghapus aset '%s'", user.FullName, existing.Name))
	return nil
}

func (s *assetService) ReportDamage(user *model.User, id uuid.UUID, req *ReportDamageRequest) (*model.FixedAsset, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.fixedRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}
	if !scope.CanAccess(user, existing.LocationID) {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{
		"status":     req.Status,
		"updated_by": user.ID.String(),
	}
	if err := s.fixedRepo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	updated, err := s.fixedRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}

	if err := s.appendTransaction(&id, model.KindTetap, user.ID, model.TxLaporRusak, nil, req.Notes); err != nil {
		return updated, err
	}

	s.broadcast(user, "damage_reported", fmt.Sprintf("%s melaporkan kerusakan pada '%s'", user.FullName, updated.Name))
	return updated, nil
}

// ===== Consumable asset mutations =====

func (s *assetService) CreateConsumable(user *model.User, req *CreateConsumableAssetRequest) (*model.ConsumableAsset, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkLocation(user, req.LocationID); err != nil {
		return nil, err
	}

	asset := &model.ConsumableAsset{
		Name:       req.Name,
		Code:       req.Code,
		LocationID: req.LocationID,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
	}
	asset.CreatedBy = user.ID.String()
	asset.UpdatedBy = user.ID.String()

	if err := s.consumableRepo.Create(asset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := s.appendTransaction(&asset.ID, model.KindHabisPakai, user.ID, model.TxTambah, nil, "Barang baru ditambahkan"); err != nil {
		return asset, err
	}

	s.broadcast(user, "consumable_asset_created", fmt.Sprintf("%s menambahkan barang '%s'", user.FullName, asset.Name))
	return asset, nil
}

func (s *assetService) UpdateConsumable(user *model.User, id uuid.UUID, req *UpdateConsumableAssetRequest) (*model.ConsumableAsset, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.consumableRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}
	if !scope.CanAccess(user, existing.LocationID) {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{"updated_by": user.ID.String()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Code != nil {
		fields["code"] = *req.Code
	}
	if req.LocationID != nil {
		if err := s.checkLocation(user, *req.LocationID); err != nil {
			return nil, err
		}
		fields["location_id"] = *req.LocationID
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}

	if err := s.consumableRepo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	updated, err := s.consumableRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}

	if err := s.appendTransaction(&id, model.KindHabisPakai, user.ID, model.TxEdit, nil, "Barang diperbarui"); err != nil {
		return updated, err
	}

	s.broadcast(user, "consumable_asset_updated", fmt.Sprintf("%s memperbarui barang '%s'", user.FullName, updated.Name))
	return updated, nil
}

func (s *assetService) DeleteConsumable(user *model.User, id uuid.UUID) error {
	existing, err := s.consumableRepo.FindByID(id)
	if err != nil {
		return ErrAssetNotFound
	}
	if !scope.CanAccess(user, existing.LocationID) {
		return ErrForbidden
	}

	if err := s.consumableRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	// Deletions reuse the Edit transaction type with a descriptive note
	if err := s.appendTransaction(&id, model.KindHabisPakai, user.ID, model.TxEdit, nil, "Barang dihapus"); err != nil {
		return err
	}

	s.broadcast(user, "consumable_asset_deleted", fmt.Sprintf("%s menghapus barang '%s'", user.FullName, existing.Name))
	return nil
}

// TakeStock withdraws quantity from a consumable. The check against the
// current quantity happens before any write so stock can never go negative.
func (s *assetService) TakeStock(user *model.User, id uuid.UUID, req *TakeStockRequest) (*model.ConsumableAsset, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.consumableRepo.FindByID(id)
	if err != nil {
		return nil, ErrAssetNotFound
	}
	if !scope.CanAccess(user, existing.LocationID) {
		return nil, ErrForbidden
	}
	if req.QuantityChange > existing.Quantity {
		return nil, ErrInsufficientStock
	}

	newQuantity := existing.Quantity - req.QuantityChange
	if err := s.consumableRepo.UpdateQuantity(id, newQuantity, user.ID.String()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	qty := req.QuantityChange
	if err := s.appendTransaction(&id, model.KindHabisPakai, user.ID, model.TxAmbil, &qty, req.Notes); err != nil {
		return existing, err
	}

	existing.Quantity = newQuantity
	s.broadcast(user, "stock_taken", fmt.Sprintf("%s mengambil %d %s '%s'", user.FullName, qty, existing.Unit, existing.Name))
	return existing, nil
}

// ===== Helpers =====

// checkLocation verifies the target location exists and is within the
// caller's responsible set.
func (s *assetService) checkLocation(user *model.User, locationID uuid.UUID) error {
	if _, err := s.locationRepo.FindByID(locationID); err != nil {
		return ErrLocationNotFound
	}
	if !scope.CanAccess(user, locationID) {
		return ErrForbidden
	}
	return nil
}

func (s *assetService) appendTransaction(assetID *uuid.UUID, kind model.AssetKind, userID uuid.UUID, txType model.TransactionType, quantityChange *int, notes string) error {
	entry := &model.AssetTransaction{
		AssetID:        assetID,
		AssetKind:      kind,
		UserID:         userID,
		Type:           txType,
		QuantityChange: quantityChange,
		Notes:          notes,
	}
	entry.CreatedBy = userID.String()
	entry.UpdatedBy = userID.String()

	// No rollback of the preceding asset write on failure; surface the same
	// generic save error and let the caller reload.
	if err := s.txRepo.Create(entry); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func (s *assetService) broadcast(user *model.User, action, message string) {
	if s.wsHub == nil {
		return
	}
	s.wsHub.BroadcastEvent(map[string]interface{}{
		"type":   "inventory_update",
		"action": action,
		"user": map[string]interface{}{
			"id":   user.ID,
			"name": user.FullName,
		},
		"message": message,
	})
}

func validateRequest(req interface{}) error {
	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
