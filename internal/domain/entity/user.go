package entity

import (
	"time"
)

type UserRole string

const (
	UserRoleCustomer  UserRole = "customer"
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
)

// User is read-only: other entities reference it but there is no mutation API.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"passwordHash"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Nickname        string     `json:"nickname"`
	Avatar          string     `json:"avatar,omitempty"`
	IsActive        bool       `json:"isActive"`
	Role            UserRole   `json:"role"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}
