package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role codes as constants
const (
	RoleAdmin          = "Admin"
	RoleGuru           = "Guru"
	RolePenjagaSekolah = "Penjaga Sekolah"
)

// ValidRole reports whether code is one of the known roles
func ValidRole(code string) bool {
	switch code {
	case RoleAdmin, RoleGuru, RolePenjagaSekolah:
		return true
	}
	return false
}

// User represents an authenticated user in the system.
// Admin implicitly has access to every location; other roles only see
// assets/locations in their ResponsibleLocations.
type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName string `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	Role     string `gorm:"type:varchar(30);not null;default:'Guru'" json:"role" validate:"required"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	ResponsibleLocations []Location `gorm:"many2many:user_responsible_locations;" json:"responsible_locations,omitempty"`

	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin reports whether the user holds the Admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ResponsibleLocationIDs returns the IDs of all locations the user is scoped to
func (u *User) ResponsibleLocationIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(u.ResponsibleLocations))
	for i, loc := range u.ResponsibleLocations {
		ids[i] = loc.ID
	}
	return ids
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID                     uuid.UUID  `json:"id"`
	Email                  string     `json:"email"`
	FullName               string     `json:"full_name"`
	Role                   string     `json:"role"`
	IsActive               bool       `json:"is_active"`
	ResponsibleLocations   []Location `json:"responsible_locations"`
	ResponsibleLocationIDs []string   `json:"responsible_location_ids"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	locs := u.ResponsibleLocations
	if locs == nil {
		locs = []Location{}
	}
	ids := make([]string, len(locs))
	for i, loc := range locs {
		ids[i] = loc.ID.String()
	}
	return UserResponse{
		ID:                     u.ID,
		Email:                  u.Email,
		FullName:               u.FullName,
		Role:                   u.Role,
		IsActive:               u.IsActive,
		ResponsibleLocations:   locs,
		ResponsibleLocationIDs: ids,
	}
}
