package models

import "gorm.io/datatypes"

type RoomType string

const (
	RoomAC    RoomType = "AC"
	RoomNonAC RoomType = "Non-AC"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

// Amenities a room can be listed with.
var Amenities = []string{"AC", "WiFi", "Parking", "Laundry"}

// Room represents a rentable room within a hostel
type Room struct {
	ID         int64                       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	RoomNumber string                      `gorm:"size:50;not null" json:"room_number"`
	HostelID   int64                       `gorm:"not null;index" json:"hostel_id"`
	HostelName string                      `gorm:"size:255" json:"hostel_name"`
	Capacity   int                         `gorm:"default:1" json:"capacity"`
	Occupied   int                         `gorm:"default:0" json:"occupied"`
	Type       RoomType                    `gorm:"size:20" json:"type"`
	Rent       float64                     `json:"rent"`
	Status     RoomStatus                  `gorm:"size:20;default:'available'" json:"status"`
	Amenities  datatypes.JSONSlice[string] `json:"amenities"`
	Tenant     *string                     `gorm:"size:255" json:"tenant"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

func (r *Room) GetID() int64   { return r.ID }
func (r *Room) SetID(id int64) { r.ID = id }

// IsFull reports whether every bed in the room is taken.
func (r *Room) IsFull() bool {
	return r.Occupied >= r.Capacity
}
