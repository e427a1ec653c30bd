package service

import (
	"errors"
	"fmt"

	"ringkas-aset/internal/model"
	"ringkas-aset/internal/repository"
	"ringkas-aset/internal/scope"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrLocationInUse    = errors.New("location still has assets assigned to it")
)

type LocationService interface {
	List(user *model.User) ([]model.Location, error)
	Create(user *model.User, req *LocationRequest) (*model.Location, error)
	Update(user *model.User, id uuid.UUID, req *LocationRequest) (*model.Location, error)
	// Delete refuses while any fixed or consumable asset references the location
	Delete(id uuid.UUID) error
}

type LocationRequest struct {
	Name string `json:"name" validate:"required"`
}

type locationService struct {
	locationRepo repository.LocationRepository
}

func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) List(user *model.User) ([]model.Location, error) {
	locations, err := s.locationRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return scope.VisibleLocations(locations, user), nil
}

func (s *locationService) Create(user *model.User, req *LocationRequest) (*model.Location, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	location := &model.Location{Name: req.Name}
	location.CreatedBy = user.ID.String()
	location.UpdatedBy = user.ID.String()

	if err := s.locationRepo.Create(location); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return location, nil
}

func (s *locationService) Update(user *model.User, id uuid.UUID, req *LocationRequest) (*model.Location, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}

	location.Name = req.Name
	location.UpdatedBy = user.ID.String()
	if err := s.locationRepo.Update(location); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return location, nil
}

func (s *locationService) Delete(id uuid.UUID) error {
	if _, err := s.locationRepo.FindByID(id); err != nil {
		return ErrLocationNotFound
	}

	count, err := s.locationRepo.CountAssets(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrLocationInUse
	}

	if err := s.locationRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}
