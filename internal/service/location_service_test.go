package service

import (
	"errors"
	"testing"

	"ringkas-aset/internal/model"
)

func TestDeleteLocationGuardedByAssetReferences(t *testing.T) {
	loc := testLocation("Gudang")
	repo := newFakeLocationRepo(loc)
	repo.assetCounts[loc.ID] = 2
	svc := NewLocationService(repo)

	if err := svc.Delete(loc.ID); !errors.Is(err, ErrLocationInUse) {
		t.Fatalf("expected ErrLocationInUse, got %v", err)
	}
	if _, err := repo.FindByID(loc.ID); err != nil {
		t.Error("location must survive a refused delete")
	}

	repo.assetCounts[loc.ID] = 0
	if err := svc.Delete(loc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(loc.ID); err == nil {
		t.Error("location still present after delete")
	}
}

func TestDeleteLocationNotFound(t *testing.T) {
	svc := NewLocationService(newFakeLocationRepo())

	if err := svc.Delete(testLocation("ghost").ID); !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestLocationListScoped(t *testing.T) {
	a := testLocation("Ruang Kelas 1A")
	b := testLocation("Ruang Guru")
	svc := NewLocationService(newFakeLocationRepo(a, b))

	all, err := svc.List(testUser(model.RoleAdmin))
	if err != nil {
		t.Fatalf("List(admin): %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin should see both locations, got %d", len(all))
	}

	scoped, err := svc.List(testUser(model.RolePenjagaSekolah, b))
	if err != nil {
		t.Fatalf("List(penjaga): %v", err)
	}
	if len(scoped) != 1 || scoped[0].ID != b.ID {
		t.Error("non-admin should see only their responsible locations")
	}
}

func TestCreateLocationRequiresName(t *testing.T) {
	svc := NewLocationService(newFakeLocationRepo())

	if _, err := svc.Create(testUser(model.RoleAdmin), &LocationRequest{}); err == nil {
		t.Fatal("expected validation error for empty name")
	}
}
