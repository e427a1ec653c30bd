package service

import (
	"errors"

	"ringkas-aset/internal/model"
	"ringkas-aset/internal/repository"
	"ringkas-aset/internal/scope"

	"github.com/google/uuid"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionService exposes the audit log read-only, scoped the same way as
// the assets themselves: Admin sees every entry, other roles only entries
// whose asset sits in one of their responsible locations. Entries for assets
// that no longer exist cannot be resolved to a location, so non-Admins do
// not see them.
type TransactionService interface {
	List(user *model.User) ([]model.AssetTransaction, error)
	Get(user *model.User, id uuid.UUID) (*model.AssetTransaction, error)
}

type transactionService struct {
	txRepo         repository.TransactionRepository
	fixedRepo      repository.FixedAssetRepository
	consumableRepo repository.ConsumableAssetRepository
}

func NewTransactionService(
	txRepo repository.TransactionRepository,
	fixedRepo repository.FixedAssetRepository,
	consumableRepo repository.ConsumableAssetRepository,
) TransactionService {
	return &transactionService{
		txRepo:         txRepo,
		fixedRepo:      fixedRepo,
		consumableRepo: consumableRepo,
	}
}

func (s *transactionService) List(user *model.User) ([]model.AssetTransaction, error) {
	transactions, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return transactions, nil
	}

	visible, err := s.visibleAssetIDs(user)
	if err != nil {
		return nil, err
	}

	scoped := make([]model.AssetTransaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.AssetID != nil && visible[*tx.AssetID] {
			scoped = append(scoped, tx)
		}
	}
	return scoped, nil
}

func (s *transactionService) Get(user *model.User, id uuid.UUID) (*model.AssetTransaction, error) {
	tx, err := s.txRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	if user.IsAdmin() {
		return tx, nil
	}

	visible, err := s.visibleAssetIDs(user)
	if err != nil {
		return nil, err
	}
	if tx.AssetID == nil || !visible[*tx.AssetID] {
		return nil, ErrForbidden
	}
	return tx, nil
}

// visibleAssetIDs collects the ids of every asset, fixed or consumable, the
// user may see.
func (s *transactionService) visibleAssetIDs(user *model.User) (map[uuid.UUID]bool, error) {
	fixed, err := s.fixedRepo.FindAll()
	if err != nil {
		return nil, err
	}
	consumable, err := s.consumableRepo.FindAll()
	if err != nil {
		return nil, err
	}

	ids := make(map[uuid.UUID]bool)
	for _, a := range scope.VisibleAssets(fixed, user) {
		ids[a.ID] = true
	}
	for _, a := range scope.VisibleAssets(consumable, user) {
		ids[a.ID] = true
	}
	return ids, nil
}
