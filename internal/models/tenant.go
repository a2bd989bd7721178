package models

type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantCheckout  TenantStatus = "checkout"
	TenantSuspended TenantStatus = "suspended"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// Tenant is a person occupying a room under a rent contract
type Tenant struct {
	ID              int64         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name            string        `gorm:"size:255;not null" json:"name"`
	Email           string        `gorm:"size:255" json:"email"`
	Phone           string        `gorm:"size:50" json:"phone"`
	IDCard          string        `gorm:"size:100" json:"id_card"`
	Address         string        `gorm:"type:text" json:"address"`
	Company         string        `gorm:"size:255" json:"company"`
	CompanyAddress  string        `gorm:"type:text" json:"company_address"`
	HostelID        int64         `gorm:"index" json:"hostel_id"`
	HostelName      string        `gorm:"size:255" json:"hostel_name"`
	RoomID          int64         `gorm:"index" json:"room_id"`
	RoomNumber      string        `gorm:"size:50" json:"room_number"`
	JoinDate        Date          `gorm:"type:date" json:"join_date"`
	Rent            float64       `json:"rent"`
	SecurityDeposit float64       `json:"security_deposit"`
	ContractTerms   string        `gorm:"size:255" json:"contract_terms"`
	Status          TenantStatus  `gorm:"size:20;default:'active'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"size:20;default:'pending'" json:"payment_status"`
	CheckoutDate    *Date         `gorm:"type:date" json:"checkout_date"`
}

// TableName specifies the table name for Tenant model
func (Tenant) TableName() string {
	return "tenants"
}

func (t *Tenant) GetID() int64   { return t.ID }
func (t *Tenant) SetID(id int64) { t.ID = id }

// HoldsBed reports whether the tenant counts against room and hostel occupancy.
func (t *Tenant) HoldsBed() bool {
	return t.Status != TenantCheckout
}
