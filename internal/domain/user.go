package domain

import "time"

// RoleUser is the default role seeded at startup
const RoleUser = "ROLE_USER"

// Role represents a user role
type Role struct {
	BaseEntity
	Name string `gorm:"column:name;size:64;uniqueIndex" json:"name"`
}

// TableName returns the table name
func (Role) TableName() string {
	return "roles"
}

// User represents a registered account
type User struct {
	BaseEntity
	Email              string `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Password           string `gorm:"column:password;size:255" json:"-"`
	FirstName          string `gorm:"column:first_name;size:100" json:"first_name"`
	LastName           string `gorm:"column:last_name;size:100" json:"last_name"`
	Enabled            bool   `gorm:"column:enabled" json:"enabled"`
	EmailVerified      bool   `gorm:"column:email_verified" json:"email_verified"`
	Locked             bool   `gorm:"column:locked" json:"locked"`
	CredentialsExpired bool   `gorm:"column:credentials_expired" json:"credentials_expired"`
	Roles              []Role `gorm:"many2many:user_roles" json:"-"`
}

// TableName returns the table name
func (User) TableName() string {
	return "users"
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Enabled       bool      `json:"enabled"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts to response DTO
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Enabled:       u.Enabled,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// ProfileUpdateRequest patches the caller's profile
type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// ChangePasswordRequest changes the caller's password
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" binding:"required"`
}
