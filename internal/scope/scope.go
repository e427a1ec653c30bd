// Package scope implements role-based visibility over location-bound records.
// Admin sees everything; other roles only see records whose location is in
// their responsible set. The filter is pure and must be re-applied on every
// request, never cached across requests.
package scope

import (
	"github.com/google/uuid"

	"ringkas-aset/internal/model"
)

// Locatable is any record bound to a single location
type Locatable interface {
	GetLocationID() uuid.UUID
}

// VisibleAssets returns the subset of assets the user may see. For Admin the
// input is returned unchanged; otherwise only assets whose location is in the
// user's responsible set remain. Input order is preserved.
func VisibleAssets[T Locatable](assets []T, user *model.User) []T {
	if user.IsAdmin() {
		return assets
	}
	allowed := responsibleSet(user)
	visible := make([]T, 0, len(assets))
	for _, a := range assets {
		if allowed[a.GetLocationID()] {
			visible = append(visible, a)
		}
	}
	return visible
}

// VisibleLocations applies the same rule to the location list itself
func VisibleLocations(locations []model.Location, user *model.User) []model.Location {
	if user.IsAdmin() {
		return locations
	}
	allowed := responsibleSet(user)
	visible := make([]model.Location, 0, len(locations))
	for _, loc := range locations {
		if allowed[loc.ID] {
			visible = append(visible, loc)
		}
	}
	return visible
}

// CanAccess reports whether the user may act on a record at the given
// location. Used server-side on every mutating call, not just for display.
func CanAccess(user *model.User, locationID uuid.UUID) bool {
	if user.IsAdmin() {
		return true
	}
	return responsibleSet(user)[locationID]
}

func responsibleSet(user *model.User) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(user.ResponsibleLocations))
	for _, loc := range user.ResponsibleLocations {
		set[loc.ID] = true
	}
	return set
}
