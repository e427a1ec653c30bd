package service

import (
	"io"
	"time"

	"ringkas-aset/internal/model"
	"ringkas-aset/internal/report"
	"ringkas-aset/internal/repository"
	"ringkas-aset/internal/scope"
	"ringkas-aset/pkg/export"

	"github.com/google/uuid"
)

// InventoryReport feeds the dashboard charts and the report page
type InventoryReport struct {
	Summary    report.Summary         `json:"summary"`
	ByStatus   []report.StatusCount   `json:"by_status"`
	ByLocation []report.LocationValue `json:"by_location"`
	ByMonth    []report.MonthValue    `json:"by_month"`
}

type ReportService interface {
	// Inventory aggregates the caller's visible fixed assets within the
	// inclusive [start, end] date range; empty bounds are unbounded.
	Inventory(user *model.User, start, end string) (*InventoryReport, error)
	// ExportPDF writes the report document for the same filtered view
	ExportPDF(user *model.User, start, end string, w io.Writer) error
}

type reportService struct {
	fixedRepo    repository.FixedAssetRepository
	locationRepo repository.LocationRepository
	now          func() time.Time
}

func NewReportService(fixedRepo repository.FixedAssetRepository, locationRepo repository.LocationRepository) ReportService {
	return &reportService{
		fixedRepo:    fixedRepo,
		locationRepo: locationRepo,
		now:          time.Now,
	}
}

func (s *reportService) filteredAssets(user *model.User, start, end string) ([]model.FixedAsset, []model.Location, error) {
	assets, err := s.fixedRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}
	locations, err := s.locationRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}
	visible := scope.VisibleAssets(assets, user)
	return report.FilterByDateRange(visible, start, end), locations, nil
}

func (s *reportService) Inventory(user *model.User, start, end string) (*InventoryReport, error) {
	assets, locations, err := s.filteredAssets(user, start, end)
	if err != nil {
		return nil, err
	}

	return &InventoryReport{
		Summary:    report.Summarize(assets),
		ByStatus:   report.CountByStatus(assets),
		ByLocation: report.ValueByLocation(assets, locations),
		ByMonth:    report.ValueByMonth(assets),
	}, nil
}

func (s *reportService) ExportPDF(user *model.User, start, end string, w io.Writer) error {
	assets, locations, err := s.filteredAssets(user, start, end)
	if err != nil {
		return err
	}

	names := make(map[uuid.UUID]string, len(locations))
	for _, loc := range locations {
		names[loc.ID] = loc.Name
	}

	rows := make([]export.Row, len(assets))
	for i, a := range assets {
		locationName, ok := names[a.LocationID]
		if !ok {
			locationName = report.UnknownLocation
		}
		rows[i] = export.Row{
			Name:         a.Name,
			Code:         a.Code,
			LocationName: locationName,
			PurchaseDate: a.PurchaseDate,
			Status:       string(a.Status),
			Price:        a.Price,
		}
	}

	return export.AssetReportPDF(w, rows, s.now())
}
