package models

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"not null" json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"type:VARCHAR(20);default:'client'" json:"role"` // "client" or "admin"
	Status       UserStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	Addresses    []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Address is a saved delivery address belonging to a user. The first address
// a user creates becomes the principal one.
type Address struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Alias       string `json:"alias"`
	Line1       string `gorm:"not null" json:"line1"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Reference   string `json:"reference"`
	IsPrincipal bool   `json:"is_principal"`
}
