package service

import (
	"context"
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/search"
)

// HostelInput is the body of a hostel create
type HostelInput struct {
	Name        string `json:"name" binding:"required,max=255"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
}

// HostelPatch carries the fields of a hostel edit; nil fields are left unchanged
type HostelPatch struct {
	Name        *string              `json:"name" binding:"omitempty,min=1,max=255"`
	Address     *string              `json:"address" binding:"omitempty,min=1"`
	Phone       *string              `json:"phone" binding:"omitempty,max=50"`
	Email       *string              `json:"email" binding:"omitempty,email"`
	Description *string              `json:"description"`
	Capacity    *int                 `json:"capacity" binding:"omitempty,gte=0"`
	Status      *models.HostelStatus `json:"status" binding:"omitempty,oneof=active maintenance inactive"`
}

// HostelFilter narrows a hostel listing
type HostelFilter struct {
	Search string
	Status models.HostelStatus
}

type HostelService struct {
	hostels    repository.Store[models.Hostel]
	activities *ActivityService
}

func NewHostelService(hostels repository.Store[models.Hostel], activities *ActivityService) *HostelService {
	return &HostelService{
		hostels:    hostels,
		activities: activities,
	}
}

// List returns the hostels matching filter in insertion order
func (s *HostelService) List(ctx context.Context, filter HostelFilter) ([]models.Hostel, error) {
	hostels, err := s.hostels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hostels: %w", err)
	}
	hostels = search.Filter(hostels, filter.Search, search.HostelFields)
	if filter.Status != "" {
		hostels = keep(hostels, func(h *models.Hostel) bool { return h.Status == filter.Status })
	}
	return hostels, nil
}

// Get retrieves a hostel by ID
func (s *HostelService) Get(ctx context.Context, id int64) (*models.Hostel, error) {
	return s.hostels.Get(ctx, id)
}

// Create adds a hostel with no occupants and no revenue
func (s *HostelService) Create(ctx context.Context, in HostelInput, actor int64) (*models.Hostel, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	hostel := &models.Hostel{
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Description: in.Description,
		Capacity:    in.Capacity,
		Occupied:    0,
		Status:      models.HostelActive,
		Revenue:     0,
	}
	if err := s.hostels.Create(ctx, hostel); err != nil {
		return nil, fmt.Errorf("failed to create hostel: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityHostel, "Hostel added: %s", hostel.Name)
	return hostel, nil
}

// Update applies patch to an existing hostel
func (s *HostelService) Update(ctx context.Context, id int64, patch HostelPatch, actor int64) (*models.Hostel, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	hostel, err := s.hostels.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setIf(&hostel.Name, patch.Name)
	setIf(&hostel.Address, patch.Address)
	setIf(&hostel.Phone, patch.Phone)
	setIf(&hostel.Email, patch.Email)
	setIf(&hostel.Description, patch.Description)
	setIf(&hostel.Capacity, patch.Capacity)
	setIf(&hostel.Status, patch.Status)

	if err := s.hostels.Update(ctx, hostel); err != nil {
		return nil, fmt.Errorf("failed to update hostel: %w", err)
	}

	if patch.Status != nil && *patch.Status == models.HostelMaintenance {
		s.activities.Record(ctx, actor, models.ActivityMaintenance, "%s placed under maintenance", hostel.Name)
	} else {
		s.activities.Record(ctx, actor, models.ActivityHostel, "Hostel updated: %s", hostel.Name)
	}
	return hostel, nil
}

// Delete removes a hostel. Rooms, tenants and bills that reference it are kept.
func (s *HostelService) Delete(ctx context.Context, id int64, actor int64) error {
	writeMu.Lock()
	defer writeMu.Unlock()

	hostel, err := s.hostels.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.hostels.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete hostel: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityHostel, "Hostel removed: %s", hostel.Name)
	return nil
}
