package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum for system users.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProfessor    Role = "professor"
	RoleReceptionist Role = "receptionist"
	RoleStudent      Role = "student"
)

// User represents a system user (clinic staff or dental student).
type User struct {
	BaseModel
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Role      Role   `gorm:"size:20;default:'student'" json:"role"`

	// Student-specific fields; empty/nil for staff roles.
	RegistrationNumber string  `gorm:"size:50" json:"registrationNumber,omitempty"`
	PhoneNumber        string  `gorm:"size:20" json:"phoneNumber,omitempty"`
	ClinicID           *string `gorm:"size:36;index" json:"clinicId,omitempty"`

	// Relations (not always preloaded)
	Clinic        *Clinic        `gorm:"foreignKey:ClinicID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:StudentID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Role               Role      `json:"role"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	PhoneNumber        string    `json:"phoneNumber,omitempty"`
	ClinicID           *string   `json:"clinicId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:                 u.ID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Role:               u.Role,
		RegistrationNumber: u.RegistrationNumber,
		PhoneNumber:        u.PhoneNumber,
		ClinicID:           u.ClinicID,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
