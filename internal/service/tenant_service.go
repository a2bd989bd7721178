package service

import (
	"context"
	"errors"
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/search"
)

// TenantInput is the body of a tenant check-in
type TenantInput struct {
	Name            string  `json:"name" binding:"required,max=255"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"max=50"`
	IDCard          string  `json:"id_card" binding:"max=100"`
	Address         string  `json:"address"`
	Company         string  `json:"company" binding:"max=255"`
	CompanyAddress  string  `json:"company_address"`
	HostelID        int64   `json:"hostel_id" binding:"required"`
	RoomID          int64   `json:"room_id" binding:"required"`
	JoinDate        string  `json:"join_date" binding:"omitempty,yyyymmdd"`
	Rent            float64 `json:"rent" binding:"gte=0"`
	SecurityDeposit float64 `json:"security_deposit" binding:"gte=0"`
	ContractTerms   string  `json:"contract_terms" binding:"max=255"`
}

// TenantPatch carries the fields of a tenant edit; nil fields are left unchanged
type TenantPatch struct {
	Name            *string               `json:"name" binding:"omitempty,min=1,max=255"`
	Email           *string               `json:"email" binding:"omitempty,email"`
	Phone           *string               `json:"phone" binding:"omitempty,max=50"`
	IDCard          *string               `json:"id_card" binding:"omitempty,max=100"`
	Address         *string               `json:"address"`
	Company         *string               `json:"company" binding:"omitempty,max=255"`
	CompanyAddress  *string               `json:"company_address"`
	HostelID        *int64                `json:"hostel_id" binding:"omitempty,gt=0"`
	RoomID          *int64                `json:"room_id" binding:"omitempty,gt=0"`
	JoinDate        *string               `json:"join_date" binding:"omitempty,yyyymmdd"`
	Rent            *float64              `json:"rent" binding:"omitempty,gte=0"`
	SecurityDeposit *float64              `json:"security_deposit" binding:"omitempty,gte=0"`
	ContractTerms   *string               `json:"contract_terms" binding:"omitempty,max=255"`
	Status          *models.TenantStatus  `json:"status" binding:"omitempty,oneof=active checkout suspended"`
	PaymentStatus   *models.PaymentStatus `json:"payment_status" binding:"omitempty,oneof=paid pending overdue"`
}

// TenantFilter narrows a tenant listing
type TenantFilter struct {
	Search        string
	Status        models.TenantStatus
	PaymentStatus models.PaymentStatus
	HostelID      int64
	RoomID        int64
}

type TenantService struct {
	tenants    repository.Store[models.Tenant]
	rooms      repository.Store[models.Room]
	hostels    repository.Store[models.Hostel]
	activities *ActivityService
	now        Clock
}

func NewTenantService(
	tenants repository.Store[models.Tenant],
	rooms repository.Store[models.Room],
	hostels repository.Store[models.Hostel],
	activities *ActivityService,
	now Clock,
) *TenantService {
	return &TenantService{
		tenants:    tenants,
		rooms:      rooms,
		hostels:    hostels,
		activities: activities,
		now:        now.orDefault(),
	}
}

// List returns the tenants matching filter in insertion order
func (s *TenantService) List(ctx context.Context, filter TenantFilter) ([]models.Tenant, error) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	tenants = search.Filter(tenants, filter.Search, search.TenantFields)
	return keep(tenants, func(t *models.Tenant) bool {
		return (filter.Status == "" || t.Status == filter.Status) &&
			(filter.PaymentStatus == "" || t.PaymentStatus == filter.PaymentStatus) &&
			(filter.HostelID == 0 || t.HostelID == filter.HostelID) &&
			(filter.RoomID == 0 || t.RoomID == filter.RoomID)
	}), nil
}

// Get retrieves a tenant by ID
func (s *TenantService) Get(ctx context.Context, id int64) (*models.Tenant, error) {
	return s.tenants.Get(ctx, id)
}

// Create checks a tenant into a room. The room must belong to the hostel and
// have a free bed; rent defaults to the room's rent.
func (s *TenantService) Create(ctx context.Context, in TenantInput, actor int64) (*models.Tenant, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	room, hostel, err := s.placement(ctx, in.HostelID, in.RoomID)
	if err != nil {
		return nil, err
	}
	if room.IsFull() {
		return nil, fmt.Errorf("%w: room %s has %d/%d beds taken", ErrRoomFull, room.RoomNumber, room.Occupied, room.Capacity)
	}

	joinDate := s.now.Today()
	if in.JoinDate != "" {
		if joinDate, err = models.ParseDate(in.JoinDate); err != nil {
			return nil, err
		}
	}
	rent := in.Rent
	if rent == 0 {
		rent = room.Rent
	}

	tenant := &models.Tenant{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		IDCard:          in.IDCard,
		Address:         in.Address,
		Company:         in.Company,
		CompanyAddress:  in.CompanyAddress,
		HostelID:        hostel.ID,
		HostelName:      hostel.Name,
		RoomID:          room.ID,
		RoomNumber:      room.RoomNumber,
		JoinDate:        joinDate,
		Rent:            rent,
		SecurityDeposit: in.SecurityDeposit,
		ContractTerms:   in.ContractTerms,
		Status:          models.TenantActive,
		PaymentStatus:   models.PaymentPending,
	}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	if err := s.occupy(ctx, tenant, room); err != nil {
		_ = s.tenants.Delete(ctx, tenant.ID)
		return nil, err
	}

	s.activities.Record(ctx, actor, models.ActivityTenantCheckin, "New tenant checked in to Room %s, %s", tenant.RoomNumber, tenant.HostelName)
	return tenant, nil
}

// Update applies patch to a tenant, moving their bed when the room or the
// status changes.
func (s *TenantService) Update(ctx context.Context, id int64, patch TenantPatch, actor int64) (*models.Tenant, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	tenant, err := s.tenants.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *tenant

	roomID, hostelID := tenant.RoomID, tenant.HostelID
	setIf(&roomID, patch.RoomID)
	setIf(&hostelID, patch.HostelID)
	moved := roomID != before.RoomID || hostelID != before.HostelID

	var room *models.Room
	if moved {
		var hostel *models.Hostel
		if room, hostel, err = s.placement(ctx, hostelID, roomID); err != nil {
			return nil, err
		}
		tenant.HostelID, tenant.HostelName = hostel.ID, hostel.Name
		tenant.RoomID, tenant.RoomNumber = room.ID, room.RoomNumber
	}

	setIf(&tenant.Name, patch.Name)
	setIf(&tenant.Email, patch.Email)
	setIf(&tenant.Phone, patch.Phone)
	setIf(&tenant.IDCard, patch.IDCard)
	setIf(&tenant.Address, patch.Address)
	setIf(&tenant.Company, patch.Company)
	setIf(&tenant.CompanyAddress, patch.CompanyAddress)
	setIf(&tenant.Rent, patch.Rent)
	setIf(&tenant.SecurityDeposit, patch.SecurityDeposit)
	setIf(&tenant.ContractTerms, patch.ContractTerms)
	setIf(&tenant.Status, patch.Status)
	setIf(&tenant.PaymentStatus, patch.PaymentStatus)
	if patch.JoinDate != nil {
		if tenant.JoinDate, err = models.ParseDate(*patch.JoinDate); err != nil {
			return nil, err
		}
	}

	releaseOld := before.HoldsBed() && (moved || !tenant.HoldsBed())
	takeNew := tenant.HoldsBed() && (moved || !before.HoldsBed())

	if takeNew && room == nil {
		if room, err = s.rooms.Get(ctx, tenant.RoomID); err != nil {
			return nil, fmt.Errorf("%w: room %d does not exist", ErrInvalidReference, tenant.RoomID)
		}
	}
	if takeNew && room.IsFull() {
		return nil, fmt.Errorf("%w: room %s has %d/%d beds taken", ErrRoomFull, room.RoomNumber, room.Occupied, room.Capacity)
	}

	switch {
	case tenant.Status == models.TenantCheckout && before.Status != models.TenantCheckout:
		tenant.CheckoutDate = s.now.Today().Ptr()
	case tenant.Status != models.TenantCheckout:
		tenant.CheckoutDate = nil
	}

	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	if releaseOld {
		if err := s.release(ctx, &before); err != nil {
			return nil, err
		}
	}
	if takeNew {
		if room, err = s.rooms.Get(ctx, tenant.RoomID); err != nil {
			return nil, err
		}
		if err := s.occupy(ctx, tenant, room); err != nil {
			return nil, err
		}
	}
	if !releaseOld && !takeNew && tenant.HoldsBed() && tenant.Name != before.Name {
		s.renameOccupant(ctx, tenant.RoomID, before.Name, tenant.Name)
	}

	switch {
	case releaseOld && !tenant.HoldsBed():
		s.activities.Record(ctx, actor, models.ActivityTenantCheckout, "%s checked out of Room %s, %s", tenant.Name, before.RoomNumber, before.HostelName)
	case moved:
		s.activities.Record(ctx, actor, models.ActivityTenantCheckin, "%s moved to Room %s, %s", tenant.Name, tenant.RoomNumber, tenant.HostelName)
	default:
		s.activities.Record(ctx, actor, models.ActivityTenant, "Tenant details updated: %s", tenant.Name)
	}
	return tenant, nil
}

// Checkout ends a tenancy and frees the bed
func (s *TenantService) Checkout(ctx context.Context, id int64, actor int64) (*models.Tenant, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	tenant, err := s.tenants.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant.Status == models.TenantCheckout {
		return nil, ErrAlreadyCheckedOut
	}

	tenant.Status = models.TenantCheckout
	tenant.CheckoutDate = s.now.Today().Ptr()
	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to check out tenant: %w", err)
	}
	if err := s.release(ctx, tenant); err != nil {
		return nil, err
	}

	s.activities.Record(ctx, actor, models.ActivityTenantCheckout, "%s checked out of Room %s, %s", tenant.Name, tenant.RoomNumber, tenant.HostelName)
	return tenant, nil
}

// Delete removes a tenant, freeing the bed if they still held one
func (s *TenantService) Delete(ctx context.Context, id int64, actor int64) error {
	writeMu.Lock()
	defer writeMu.Unlock()

	tenant, err := s.tenants.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tenants.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	if tenant.HoldsBed() {
		if err := s.release(ctx, tenant); err != nil {
			return err
		}
	}

	s.activities.Record(ctx, actor, models.ActivityTenant, "Tenant removed: %s", tenant.Name)
	return nil
}

// placement resolves a hostel and one of its rooms
func (s *TenantService) placement(ctx context.Context, hostelID, roomID int64) (*models.Room, *models.Hostel, error) {
	hostel, err := resolve(ctx, s.hostels, hostelID, "hostel")
	if err != nil {
		return nil, nil, err
	}
	room, err := resolve(ctx, s.rooms, roomID, "room")
	if err != nil {
		return nil, nil, err
	}
	if room.HostelID != hostel.ID {
		return nil, nil, fmt.Errorf("%w: room %s is not in %s", ErrInvalidReference, room.RoomNumber, hostel.Name)
	}
	return room, hostel, nil
}

// occupy takes one bed in room and in its hostel
func (s *TenantService) occupy(ctx context.Context, tenant *models.Tenant, room *models.Room) error {
	room.Occupied++
	name := tenant.Name
	room.Tenant = &name
	if room.IsFull() {
		room.Status = models.RoomOccupied
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		return fmt.Errorf("failed to update room occupancy: %w", err)
	}
	return s.adjustHostel(ctx, room.HostelID, 1)
}

// release frees the bed tenant held. Missing rooms or hostels are skipped.
func (s *TenantService) release(ctx context.Context, tenant *models.Tenant) error {
	room, err := s.rooms.Get(ctx, tenant.RoomID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return err
	default:
		room.Occupied = max(room.Occupied-1, 0)
		if room.Tenant != nil && *room.Tenant == tenant.Name {
			room.Tenant = nil
		}
		if room.Status == models.RoomOccupied && !room.IsFull() {
			room.Status = models.RoomAvailable
		}
		if err := s.rooms.Update(ctx, room); err != nil {
			return fmt.Errorf("failed to update room occupancy: %w", err)
		}
	}
	return s.adjustHostel(ctx, tenant.HostelID, -1)
}

func (s *TenantService) adjustHostel(ctx context.Context, hostelID int64, delta int) error {
	hostel, err := s.hostels.Get(ctx, hostelID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	hostel.Occupied = max(hostel.Occupied+delta, 0)
	if err := s.hostels.Update(ctx, hostel); err != nil {
		return fmt.Errorf("failed to update hostel occupancy: %w", err)
	}
	return nil
}

func (s *TenantService) renameOccupant(ctx context.Context, roomID int64, from, to string) {
	room, err := s.rooms.Get(ctx, roomID)
	if err != nil || room.Tenant == nil || *room.Tenant != from {
		return
	}
	room.Tenant = &to
	_ = s.rooms.Update(ctx, room)
}
