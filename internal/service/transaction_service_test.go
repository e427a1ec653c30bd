package service

import (
	"errors"
	"testing"

	"ringkas-aset/internal/model"

	"github.com/google/uuid"
)

func newTransactionFixture(t *testing.T) (*assetFixture, TransactionService) {
	t.Helper()
	f := newAssetFixture()
	return f, NewTransactionService(f.txRepo, f.fixedRepo, f.consumableRepo)
}

func createFixedAt(t *testing.T, f *assetFixture, name string, locationID uuid.UUID) *model.FixedAsset {
	t.Helper()
	asset, err := f.service.CreateFixed(f.admin, &CreateFixedAssetRequest{
		Name:         name,
		Code:         "FX-" + name,
		LocationID:   locationID,
		PurchaseDate: "2024-01-10",
		Price:        1000,
		Status:       model.StatusBaik,
	})
	if err != nil {
		t.Fatalf("CreateFixed: %v", err)
	}
	return asset
}

func TestTransactionListScopedToResponsibleLocations(t *testing.T) {
	f, svc := newTransactionFixture(t)
	mine := createFixedAt(t, f, "Laptop", f.location.ID)
	createFixedAt(t, f, "Proyektor", f.otherLocation.ID)

	all, err := svc.List(f.admin)
	if err != nil {
		t.Fatalf("List(admin): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see both audit entries, got %d", len(all))
	}

	scoped, err := svc.List(f.guru)
	if err != nil {
		t.Fatalf("List(guru): %v", err)
	}
	if len(scoped) != 1 {
		t.Fatalf("guru should see one audit entry, got %d", len(scoped))
	}
	if scoped[0].AssetID == nil || *scoped[0].AssetID != mine.ID {
		t.Error("the surviving entry must reference the asset at the guru's location")
	}
}

func TestTransactionListHidesDeletedAssetEntriesFromNonAdmins(t *testing.T) {
	f, svc := newTransactionFixture(t)
	asset := createFixedAt(t, f, "Laptop", f.location.ID)

	if err := f.service.DeleteFixed(f.admin, asset.ID); err != nil {
		t.Fatalf("DeleteFixed: %v", err)
	}

	all, err := svc.List(f.admin)
	if err != nil {
		t.Fatalf("List(admin): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should still see the add and delete entries, got %d", len(all))
	}

	scoped, err := svc.List(f.guru)
	if err != nil {
		t.Fatalf("List(guru): %v", err)
	}
	if len(scoped) != 0 {
		t.Errorf("entries for a deleted asset no longer resolve to a location, got %d", len(scoped))
	}
}

func TestTransactionGetForbiddenOutsideScope(t *testing.T) {
	f, svc := newTransactionFixture(t)
	createFixedAt(t, f, "Proyektor", f.otherLocation.ID)
	entry := f.txRepo.entries[0]

	if _, err := svc.Get(f.admin, entry.ID); err != nil {
		t.Fatalf("Get(admin): %v", err)
	}
	if _, err := svc.Get(f.guru, entry.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for a cross-location entry, got %v", err)
	}
}

func TestTransactionGetNotFound(t *testing.T) {
	_, svc := newTransactionFixture(t)

	if _, err := svc.Get(testUser(model.RoleAdmin), uuid.New()); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}
