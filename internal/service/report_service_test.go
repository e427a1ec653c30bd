package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ringkas-aset/internal/model"
	"ringkas-aset/internal/report"

	"github.com/google/uuid"
)

type reportFixture struct {
	fixedRepo    *fakeFixedRepo
	locationRepo *fakeLocationRepo
	service      ReportService
	location     model.Location
	other        model.Location
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	f := &reportFixture{
		fixedRepo: newFakeFixedRepo(),
		location:  testLocation("Ruang Kelas 1A"),
		other:     testLocation("Gudang"),
	}
	f.locationRepo = newFakeLocationRepo(f.location, f.other)
	f.service = NewReportService(f.fixedRepo, f.locationRepo)
	return f
}

func (f *reportFixture) seedAsset(t *testing.T, locationID uuid.UUID, date string, price int64, status model.AssetStatus) {
	t.Helper()
	asset := &model.FixedAsset{
		Name:         "Aset " + date,
		Code:         "AST-" + date,
		LocationID:   locationID,
		PurchaseDate: date,
		Price:        price,
		Status:       status,
	}
	if err := f.fixedRepo.Create(asset); err != nil {
		t.Fatalf("seed asset: %v", err)
	}
}

func TestInventoryAggregatesVisibleAssets(t *testing.T) {
	f := newReportFixture(t)
	f.seedAsset(t, f.location.ID, "2023-01-15", 100, model.StatusBaik)
	f.seedAsset(t, f.location.ID, "2023-01-20", 50, model.StatusRusakRingan)
	f.seedAsset(t, f.other.ID, "2023-02-01", 200, model.StatusBaik)

	rep, err := f.service.Inventory(testUser(model.RoleAdmin), "", "")
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}

	if rep.Summary.TotalValue != 350 {
		t.Errorf("TotalValue=%d, want 350", rep.Summary.TotalValue)
	}
	if rep.Summary.AssetCount != 3 {
		t.Errorf("AssetCount=%d, want 3", rep.Summary.AssetCount)
	}
	if rep.Summary.DamagedCount != 1 {
		t.Errorf("DamagedCount=%d, want 1", rep.Summary.DamagedCount)
	}

	wantMonths := []report.MonthValue{
		{Month: "2023-01", Total: 150},
		{Month: "2023-02", Total: 200},
	}
	if len(rep.ByMonth) != len(wantMonths) {
		t.Fatalf("ByMonth has %d entries, want %d", len(rep.ByMonth), len(wantMonths))
	}
	for i, want := range wantMonths {
		if rep.ByMonth[i] != want {
			t.Errorf("ByMonth[%d]=%+v, want %+v", i, rep.ByMonth[i], want)
		}
	}
}

func TestInventoryScopesToResponsibleLocations(t *testing.T) {
	f := newReportFixture(t)
	f.seedAsset(t, f.location.ID, "2023-01-15", 100, model.StatusBaik)
	f.seedAsset(t, f.other.ID, "2023-02-01", 200, model.StatusBaik)

	guru := testUser(model.RoleGuru, f.location)
	rep, err := f.service.Inventory(guru, "", "")
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}

	if rep.Summary.AssetCount != 1 || rep.Summary.TotalValue != 100 {
		t.Errorf("summary=%+v, want one asset worth 100", rep.Summary)
	}
	if len(rep.ByLocation) != 1 || rep.ByLocation[0].LocationName != f.location.Name {
		t.Errorf("ByLocation=%+v, want only %q", rep.ByLocation, f.location.Name)
	}
}

func TestInventoryAppliesDateRange(t *testing.T) {
	f := newReportFixture(t)
	f.seedAsset(t, f.location.ID, "2022-12-31", 10, model.StatusBaik)
	f.seedAsset(t, f.location.ID, "2023-01-01", 20, model.StatusBaik)
	f.seedAsset(t, f.location.ID, "2023-06-30", 30, model.StatusBaik)
	f.seedAsset(t, f.location.ID, "2023-07-01", 40, model.StatusBaik)

	rep, err := f.service.Inventory(testUser(model.RoleAdmin), "2023-01-01", "2023-06-30")
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	if rep.Summary.AssetCount != 2 || rep.Summary.TotalValue != 50 {
		t.Errorf("summary=%+v, want both in-range assets and nothing else", rep.Summary)
	}
}

func TestExportPDFWritesDocument(t *testing.T) {
	f := newReportFixture(t)
	f.seedAsset(t, f.location.ID, "2023-01-15", 5000000, model.StatusBaik)

	svc := f.service.(*reportService)
	svc.now = func() time.Time { return time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	if err := f.service.ExportPDF(testUser(model.RoleAdmin), "", "", &buf); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output is not a PDF document")
	}
}
