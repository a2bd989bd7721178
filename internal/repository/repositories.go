package repository

import (
	"hostel-management-backend/internal/models"
	"hostel-management-backend/pkg/utils"

	"gorm.io/gorm"
)

// Repositories bundles one store per entity
type Repositories struct {
	Hostels       Store[models.Hostel]
	Rooms         Store[models.Room]
	Tenants       Store[models.Tenant]
	Expenses      Store[models.Expense]
	Invoices      Store[models.Invoice]
	Users         Store[models.User]
	RefreshTokens Store[models.RefreshToken]
	Activities    Store[models.Activity]
}

// NewMemoryRepositories returns ephemeral stores that live as long as the process
func NewMemoryRepositories(ids *utils.IDGenerator) *Repositories {
	return &Repositories{
		Hostels:       NewMemoryStore[models.Hostel](ids),
		Rooms:         NewMemoryStore[models.Room](ids),
		Tenants:       NewMemoryStore[models.Tenant](ids),
		Expenses:      NewMemoryStore[models.Expense](ids),
		Invoices:      NewMemoryStore[models.Invoice](ids),
		Users:         NewMemoryStore[models.User](ids),
		RefreshTokens: NewMemoryStore[models.RefreshToken](ids),
		Activities:    NewMemoryStore[models.Activity](ids),
	}
}

// NewGormRepositories returns stores backed by db
func NewGormRepositories(db *gorm.DB, ids *utils.IDGenerator) *Repositories {
	return &Repositories{
		Hostels:       NewGormStore[models.Hostel](db, ids),
		Rooms:         NewGormStore[models.Room](db, ids),
		Tenants:       NewGormStore[models.Tenant](db, ids),
		Expenses:      NewGormStore[models.Expense](db, ids),
		Invoices:      NewGormStore[models.Invoice](db, ids),
		Users:         NewGormStore[models.User](db, ids),
		RefreshTokens: NewGormStore[models.RefreshToken](db, ids),
		Activities:    NewGormStore[models.Activity](db, ids),
	}
}
