package repository

import (
	"context"
	"errors"

	"hostel-management-backend/pkg/utils"

	"gorm.io/gorm"
)

// GormStore persists one entity type in a relational table.
// Ids come from the same timestamp generator as the memory store, so
// ordering by id gives insertion order.
type GormStore[T any, P entity[T]] struct {
	db  *gorm.DB
	ids *utils.IDGenerator
}

func NewGormStore[T any, P entity[T]](db *gorm.DB, ids *utils.IDGenerator) *GormStore[T, P] {
	return &GormStore[T, P]{db: db, ids: ids}
}

// List retrieves all records ordered by id
func (s *GormStore[T, P]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

// Get retrieves a record by id
func (s *GormStore[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new record
func (s *GormStore[T, P]) Create(ctx context.Context, item *T) error {
	p := P(item)
	if p.GetID() == 0 {
		p.SetID(s.ids.Next())
	}
	err := s.db.WithContext(ctx).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

// Update overwrites every column of an existing record
func (s *GormStore[T, P]) Update(ctx context.Context, item *T) error {
	var count int64
	err := s.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", P(item).GetID()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return s.db.WithContext(ctx).Save(item).Error
}

// Delete removes a record by id
func (s *GormStore[T, P]) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
