package service

import (
	"errors"
	"fmt"

	"ringkas-aset/internal/model"
	"ringkas-aset/internal/repository"

	"github.com/google/uuid"
)

// UserService covers the Admin-only user management flows: assigning roles
// and responsible locations is how visibility scoping gets configured.
type UserService interface {
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
	CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error)
	DeleteUser(userID uuid.UUID) error
}

type CreateUserRequest struct {
	Email                  string   `json:"email" validate:"required,email"`
	Password               string   `json:"password" validate:"required,min=6"`
	FullName               string   `json:"full_name" validate:"required"`
	Role                   string   `json:"role" validate:"required"`
	ResponsibleLocationIDs []string `json:"responsible_location_ids"`
}

type UpdateUserRequest struct {
	Email                  string   `json:"email" validate:"required,email"`
	Password               *string  `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	FullName               string   `json:"full_name" validate:"required"`
	Role                   string   `json:"role" validate:"required"`
	IsActive               *bool    `json:"is_active"`
	ResponsibleLocationIDs []string `json:"responsible_location_ids"`
}

type userService struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
}

func NewUserService(userRepo repository.UserRepository, locationRepo repository.LocationRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		locationRepo: locationRepo,
	}
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	locations, err := s.resolveLocations(req.ResponsibleLocationIDs)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:                req.Email,
		FullName:             req.FullName,
		Role:                 req.Role,
		IsActive:             true,
		ResponsibleLocations: locations,
	}
	user.CreatedBy = creatorID
	user.UpdatedBy = creatorID

	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// Reject email collisions with another account
	if req.Email != user.Email {
		if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
			return nil, ErrEmailExists
		}
	}

	locations, err := s.resolveLocations(req.ResponsibleLocationIDs)
	if err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.FullName = req.FullName
	user.Role = req.Role
	user.UpdatedBy = updaterID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.ReplaceResponsibleLocations(userID, locations); err != nil {
		return nil, err
	}
	user.ResponsibleLocations = locations
	return user, nil
}

func (s *userService) DeleteUser(userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(userID)
}

// resolveLocations looks up every referenced location; unknown ids are
// rejected rather than silently dropped.
func (s *userService) resolveLocations(ids []string) ([]model.Location, error) {
	locations := make([]model.Location, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid location id %q", raw)
		}
		loc, err := s.locationRepo.FindByID(id)
		if err != nil {
			return nil, ErrLocationNotFound
		}
		locations = append(locations, *loc)
	}
	return locations, nil
}
