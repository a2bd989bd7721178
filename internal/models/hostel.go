package models

// HostelStatus is the operating state of a hostel.
type HostelStatus string

const (
	HostelActive      HostelStatus = "active"
	HostelMaintenance HostelStatus = "maintenance"
	HostelInactive    HostelStatus = "inactive"
)

// Hostel represents a managed property containing rooms
type Hostel struct {
	ID          int64        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string       `gorm:"size:255;not null" json:"name"`
	Address     string       `gorm:"type:text" json:"address"`
	Phone       string       `gorm:"size:50" json:"phone"`
	Email       string       `gorm:"size:255" json:"email"`
	Description string       `gorm:"type:text" json:"description"`
	Capacity    int          `gorm:"default:0" json:"capacity"`
	Occupied    int          `gorm:"default:0" json:"occupied"`
	Status      HostelStatus `gorm:"size:20;default:'active'" json:"status"`
	Revenue     float64      `gorm:"default:0" json:"revenue"`
}

// TableName specifies the table name for Hostel model
func (Hostel) TableName() string {
	return "hostels"
}

func (h *Hostel) GetID() int64   { return h.ID }
func (h *Hostel) SetID(id int64) { h.ID = id }
