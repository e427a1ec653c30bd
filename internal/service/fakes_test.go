package service

import (
	"errors"
	"fmt"

	"ringkas-aset/internal/model"

	"github.com/google/uuid"
)

// In-memory repository fakes. The persistence boundary is an interface with
// one production implementation; these doubles exist only for tests.

var errSimulatedFailure = errors.New("simulated storage failure")

type fakeFixedRepo struct {
	assets     map[uuid.UUID]model.FixedAsset
	failCreate bool
	failUpdate bool
}

func newFakeFixedRepo() *fakeFixedRepo {
	return &fakeFixedRepo{assets: make(map[uuid.UUID]model.FixedAsset)}
}

func (r *fakeFixedRepo) Create(asset *model.FixedAsset) error {
	if r.failCreate {
		return errSimulatedFailure
	}
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	r.assets[asset.ID] = *asset
	return nil
}

func (r *fakeFixedRepo) FindAll() ([]model.FixedAsset, error) {
	out := make([]model.FixedAsset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeFixedRepo) FindByID(id uuid.UUID) (*model.FixedAsset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := a
	return &copied, nil
}

func (r *fakeFixedRepo) Update(asset *model.FixedAsset) error {
	if r.failUpdate {
		return errSimulatedFailure
	}
	r.assets[asset.ID] = *asset
	return nil
}

func (r *fakeFixedRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	if r.failUpdate {
		return errSimulatedFailure
	}
	a, ok := r.assets[id]
	if !ok {
		return errors.New("record not found")
	}
	for key, value := range fields {
		switch key {
		case "name":
			a.Name = value.(string)
		case "code":
			a.Code = value.(string)
		case "location_id":
			a.LocationID = value.(uuid.UUID)
		case "purchase_date":
			a.PurchaseDate = value.(string)
		case "price":
			a.Price = value.(int64)
		case "status":
			a.Status = value.(model.AssetStatus)
		case "photo_url":
			a.PhotoURL = value.(string)
		case "updated_by":
			a.UpdatedBy = value.(string)
		default:
			return fmt.Errorf("unexpected field %q", key)
		}
	}
	r.assets[id] = a
	return nil
}

func (r *fakeFixedRepo) Delete(id uuid.UUID) error {
	if _, ok := r.assets[id]; !ok {
		return errors.New("record not found")
	}
	delete(r.assets, id)
	return nil
}

type fakeConsumableRepo struct {
	assets map[uuid.UUID]model.ConsumableAsset
}

func newFakeConsumableRepo() *fakeConsumableRepo {
	return &fakeConsumableRepo{assets: make(map[uuid.UUID]model.ConsumableAsset)}
}

func (r *fakeConsumableRepo) Create(asset *model.ConsumableAsset) error {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	r.assets[asset.ID] = *asset
	return nil
}

func (r *fakeConsumableRepo) FindAll() ([]model.ConsumableAsset, error) {
	out := make([]model.ConsumableAsset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeConsumableRepo) FindByID(id uuid.UUID) (*model.ConsumableAsset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := a
	return &copied, nil
}

func (r *fakeConsumableRepo) Update(asset *model.ConsumableAsset) error {
	r.assets[asset.ID] = *asset
	return nil
}

func (r *fakeConsumableRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	a, ok := r.assets[id]
	if !ok {
		return errors.New("record not found")
	}
	for key, value := range fields {
		switch key {
		case "name":
			a.Name = value.(string)
		case "code":
			a.Code = value.(string)
		case "location_id":
			a.LocationID = value.(uuid.UUID)
		case "quantity":
			a.Quantity = value.(int)
		case "unit":
			a.Unit = value.(string)
		case "updated_by":
			a.UpdatedBy = value.(string)
		default:
			return fmt.Errorf("unexpected field %q", key)
		}
	}
	r.assets[id] = a
	return nil
}

func (r *fakeConsumableRepo) UpdateQuantity(id uuid.UUID, newQuantity int, updatedBy string) error {
	a, ok := r.assets[id]
	if !ok {
		return errors.New("record not found")
	}
	a.Quantity = newQuantity
	a.UpdatedBy = updatedBy
	r.assets[id] = a
	return nil
}

func (r *fakeConsumableRepo) Delete(id uuid.UUID) error {
	if _, ok := r.assets[id]; !ok {
		return errors.New("record not found")
	}
	delete(r.assets, id)
	return nil
}

type fakeLocationRepo struct {
	locations   map[uuid.UUID]model.Location
	assetCounts map[uuid.UUID]int64
}

func newFakeLocationRepo(locations ...model.Location) *fakeLocationRepo {
	r := &fakeLocationRepo{
		locations:   make(map[uuid.UUID]model.Location),
		assetCounts: make(map[uuid.UUID]int64),
	}
	for _, loc := range locations {
		r.locations[loc.ID] = loc
	}
	return r
}

func (r *fakeLocationRepo) Create(location *model.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	r.locations[location.ID] = *location
	return nil
}

func (r *fakeLocationRepo) FindAll() ([]model.Location, error) {
	out := make([]model.Location, 0, len(r.locations))
	for _, loc := range r.locations {
		out = append(out, loc)
	}
	return out, nil
}

func (r *fakeLocationRepo) FindByID(id uuid.UUID) (*model.Location, error) {
	loc, ok := r.locations[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := loc
	return &copied, nil
}

func (r *fakeLocationRepo) Update(location *model.Location) error {
	r.locations[location.ID] = *location
	return nil
}

func (r *fakeLocationRepo) Delete(id uuid.UUID) error {
	delete(r.locations, id)
	return nil
}

func (r *fakeLocationRepo) CountAssets(id uuid.UUID) (int64, error) {
	return r.assetCounts[id], nil
}

type fakeTransactionRepo struct {
	entries    []model.AssetTransaction
	failCreate bool
}

func (r *fakeTransactionRepo) Create(tx *model.AssetTransaction) error {
	if r.failCreate {
		return errSimulatedFailure
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	r.entries = append(r.entries, *tx)
	return nil
}

func (r *fakeTransactionRepo) FindAll() ([]model.AssetTransaction, error) {
	return append([]model.AssetTransaction(nil), r.entries...), nil
}

func (r *fakeTransactionRepo) FindByID(id uuid.UUID) (*model.AssetTransaction, error) {
	for _, tx := range r.entries {
		if tx.ID == id {
			copied := tx
			return &copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeTransactionRepo) FindByAssetID(assetID uuid.UUID) ([]model.AssetTransaction, error) {
	var out []model.AssetTransaction
	for _, tx := range r.entries {
		if tx.AssetID != nil && *tx.AssetID == assetID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]model.User
}

func newFakeUserRepo(users ...model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := u
	return &copied, nil
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	u, ok := r.users[userID]
	if !ok {
		return errors.New("record not found")
	}
	u.Password = hashedPassword
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) ReplaceResponsibleLocations(userID uuid.UUID, locations []model.Location) error {
	u, ok := r.users[userID]
	if !ok {
		return errors.New("record not found")
	}
	u.ResponsibleLocations = locations
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	u, ok := r.users[userID]
	if !ok {
		return errors.New("record not found")
	}
	u.TokenVersion = version
	r.users[userID] = u
	return nil
}

// ===== Shared test builders =====

func testLocation(name string) model.Location {
	loc := model.Location{Name: name}
	loc.ID = uuid.New()
	return loc
}

func testUser(role string, responsible ...model.Location) *model.User {
	u := &model.User{
		Email:                role + "@sekolah.id",
		FullName:             "Test " + role,
		Role:                 role,
		IsActive:             true,
		ResponsibleLocations: responsible,
	}
	u.ID = uuid.New()
	return u
}
