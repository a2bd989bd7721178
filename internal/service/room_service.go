package service

import (
	"context"
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/search"
)

// RoomInput is the body of a room create
type RoomInput struct {
	RoomNumber string          `json:"room_number" binding:"required,max=50"`
	HostelID   int64           `json:"hostel_id" binding:"required"`
	Capacity   int             `json:"capacity" binding:"required,gte=1"`
	Type       models.RoomType `json:"type" binding:"required,oneof=AC Non-AC"`
	Rent       float64         `json:"rent" binding:"gte=0"`
	Amenities  []string        `json:"amenities" binding:"omitempty,dive,amenity"`
}

// RoomPatch carries the fields of a room edit; nil fields are left unchanged
type RoomPatch struct {
	RoomNumber *string            `json:"room_number" binding:"omitempty,min=1,max=50"`
	HostelID   *int64             `json:"hostel_id" binding:"omitempty,gt=0"`
	Capacity   *int               `json:"capacity" binding:"omitempty,gte=1"`
	Type       *models.RoomType   `json:"type" binding:"omitempty,oneof=AC Non-AC"`
	Rent       *float64           `json:"rent" binding:"omitempty,gte=0"`
	Status     *models.RoomStatus `json:"status" binding:"omitempty,oneof=available occupied maintenance reserved"`
	Amenities  *[]string          `json:"amenities" binding:"omitempty,dive,amenity"`
}

// RoomFilter narrows a room listing
type RoomFilter struct {
	Search   string
	Status   models.RoomStatus
	Type     models.RoomType
	HostelID int64
}

type RoomService struct {
	rooms      repository.Store[models.Room]
	hostels    repository.Store[models.Hostel]
	activities *ActivityService
}

func NewRoomService(
	rooms repository.Store[models.Room],
	hostels repository.Store[models.Hostel],
	activities *ActivityService,
) *RoomService {
	return &RoomService{
		rooms:      rooms,
		hostels:    hostels,
		activities: activities,
	}
}

// List returns the rooms matching filter in insertion order
func (s *RoomService) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	rooms = search.Filter(rooms, filter.Search, search.RoomFields)
	return keep(rooms, func(r *models.Room) bool {
		return (filter.Status == "" || r.Status == filter.Status) &&
			(filter.Type == "" || r.Type == filter.Type) &&
			(filter.HostelID == 0 || r.HostelID == filter.HostelID)
	}), nil
}

// Get retrieves a room by ID
func (s *RoomService) Get(ctx context.Context, id int64) (*models.Room, error) {
	return s.rooms.Get(ctx, id)
}

// Create adds an empty, available room to an existing hostel
func (s *RoomService) Create(ctx context.Context, in RoomInput, actor int64) (*models.Room, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	hostel, err := resolve(ctx, s.hostels, in.HostelID, "hostel")
	if err != nil {
		return nil, err
	}

	room := &models.Room{
		RoomNumber: in.RoomNumber,
		HostelID:   hostel.ID,
		HostelName: hostel.Name,
		Capacity:   in.Capacity,
		Occupied:   0,
		Type:       in.Type,
		Rent:       in.Rent,
		Status:     models.RoomAvailable,
		Amenities:  uniqueStrings(in.Amenities),
		Tenant:     nil,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityRoom, "Room %s added to %s", room.RoomNumber, room.HostelName)
	return room, nil
}

// Update applies patch to an existing room. Moving the room to another
// hostel refreshes its hostel name; capacity may not drop below the beds in use.
// A capacity change without an explicit status switches the room between
// available and occupied to match its free beds.
func (s *RoomService) Update(ctx context.Context, id int64, patch RoomPatch, actor int64) (*models.Room, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	room, err := s.rooms.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.HostelID != nil && *patch.HostelID != room.HostelID {
		hostel, err := resolve(ctx, s.hostels, *patch.HostelID, "hostel")
		if err != nil {
			return nil, err
		}
		room.HostelID = hostel.ID
		room.HostelName = hostel.Name
	}
	if patch.Capacity != nil && *patch.Capacity < room.Occupied {
		return nil, fmt.Errorf("%w: %d beds in use", ErrCapacityBelowUsage, room.Occupied)
	}

	setIf(&room.RoomNumber, patch.RoomNumber)
	setIf(&room.Capacity, patch.Capacity)
	setIf(&room.Type, patch.Type)
	setIf(&room.Rent, patch.Rent)
	setIf(&room.Status, patch.Status)
	if patch.Amenities != nil {
		room.Amenities = uniqueStrings(*patch.Amenities)
	}
	if patch.Capacity != nil && patch.Status == nil {
		switch {
		case room.Status == models.RoomOccupied && !room.IsFull():
			room.Status = models.RoomAvailable
		case room.Status == models.RoomAvailable && room.Occupied > 0 && room.IsFull():
			room.Status = models.RoomOccupied
		}
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	if room.Status == models.RoomMaintenance && patch.Status != nil {
		s.activities.Record(ctx, actor, models.ActivityMaintenance, "Room %s, %s marked for maintenance", room.RoomNumber, room.HostelName)
	} else {
		s.activities.Record(ctx, actor, models.ActivityRoom, "Room %s updated", room.RoomNumber)
	}
	return room, nil
}

// Delete removes a room. Tenants that reference it are kept.
func (s *RoomService) Delete(ctx context.Context, id int64, actor int64) error {
	writeMu.Lock()
	defer writeMu.Unlock()

	room, err := s.rooms.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityRoom, "Room %s removed from %s", room.RoomNumber, room.HostelName)
	return nil
}
