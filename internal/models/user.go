package models

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
)

// User is an account allowed into the protected part of the API
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone        string    `gorm:"size:50" json:"phone"`
	BusinessName string    `gorm:"size:255" json:"business_name"`
	BusinessType string    `gorm:"size:100" json:"business_type"`
	Role         Role      `gorm:"size:20;default:'owner'" json:"role"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

func (u *User) GetID() int64   { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (t *RefreshToken) GetID() int64   { return t.ID }
func (t *RefreshToken) SetID(id int64) { t.ID = id }
