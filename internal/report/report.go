// Package report aggregates fixed-asset data for charts and the PDF export.
// All groupings are pure and order-stable over the (optionally date-range
// filtered) input.
package report

import (
	"sort"

	"github.com/google/uuid"

	"ringkas-aset/internal/model"
)

// UnknownLocation is rendered when an asset references a location that no
// longer resolves. Deliberately lenient: display contexts show "N/A" instead
// of failing.
const UnknownLocation = "N/A"

// StatusCount is one pie-chart slice
type StatusCount struct {
	Status model.AssetStatus `json:"status"`
	Count  int               `json:"count"`
}

// LocationValue is the summed price of assets at one location
type LocationValue struct {
	LocationName string `json:"location_name"`
	Total        int64  `json:"total"`
}

// MonthValue is the summed price of assets acquired in one YYYY-MM month
type MonthValue struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// Summary is the headline numbers above the charts
type Summary struct {
	TotalValue   int64 `json:"total_value"`
	DamagedCount int   `json:"damaged_count"`
	AssetCount   int   `json:"asset_count"`
}

// FilterByDateRange keeps assets whose purchase date falls within
// [start, end] inclusive. An empty bound is unbounded on that side. String
// comparison is valid because dates are stored as ISO YYYY-MM-DD.
func FilterByDateRange(assets []model.FixedAsset, start, end string) []model.FixedAsset {
	filtered := make([]model.FixedAsset, 0, len(assets))
	for _, a := range assets {
		if start != "" && a.PurchaseDate < start {
			continue
		}
		if end != "" && a.PurchaseDate > end {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// CountByStatus counts assets per status. Statuses with zero assets are
// omitted from the output; the overall total lives in Summarize.
func CountByStatus(assets []model.FixedAsset) []StatusCount {
	counts := make(map[model.AssetStatus]int)
	for _, a := range assets {
		counts[a.Status]++
	}

	// Stable chart ordering: Baik, Rusak Ringan, Rusak Berat
	order := []model.AssetStatus{model.StatusBaik, model.StatusRusakRingan, model.StatusRusakBerat}
	out := make([]StatusCount, 0, len(counts))
	for _, status := range order {
		if counts[status] > 0 {
			out = append(out, StatusCount{Status: status, Count: counts[status]})
		}
	}
	return out
}

// ValueByLocation sums asset prices per location, resolved to the location
// name. Locations with no matching assets are omitted; an unresolvable
// location id is grouped under UnknownLocation. Output sorted by name.
func ValueByLocation(assets []model.FixedAsset, locations []model.Location) []LocationValue {
	names := make(map[uuid.UUID]string, len(locations))
	for _, loc := range locations {
		names[loc.ID] = loc.Name
	}

	totals := make(map[string]int64)
	for _, a := range assets {
		name, ok := names[a.LocationID]
		if !ok {
			name = UnknownLocation
		}
		totals[name] += a.Price
	}

	out := make([]LocationValue, 0, len(totals))
	for name, total := range totals {
		out = append(out, LocationValue{LocationName: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocationName < out[j].LocationName })
	return out
}

// ValueByMonth sums asset prices per YYYY-MM acquisition month, ascending by
// month key. Lexicographic sort is correct because the key is zero-padded.
func ValueByMonth(assets []model.FixedAsset) []MonthValue {
	totals := make(map[string]int64)
	for _, a := range assets {
		if len(a.PurchaseDate) < 7 {
			continue
		}
		totals[a.PurchaseDate[:7]] += a.Price
	}

	out := make([]MonthValue, 0, len(totals))
	for month, total := range totals {
		out = append(out, MonthValue{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// Summarize computes the headline numbers over the filtered assets
func Summarize(assets []model.FixedAsset) Summary {
	var s Summary
	s.AssetCount = len(assets)
	for _, a := range assets {
		s.TotalValue += a.Price
		if a.Status != model.StatusBaik {
			s.DamagedCount++
		}
	}
	return s
}
