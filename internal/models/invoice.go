package models

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice is a rent bill issued to a tenant
type Invoice struct {
	ID         int64         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TenantID   int64         `gorm:"index" json:"tenant_id"`
	HostelID   int64         `gorm:"index" json:"hostel_id"`
	TenantName string        `gorm:"size:255" json:"tenant_name"`
	HostelName string        `gorm:"size:255" json:"hostel_name"`
	RoomNumber string        `gorm:"size:50" json:"room_number"`
	Amount     float64       `json:"amount"`
	DueDate    Date          `gorm:"type:date;index" json:"due_date"`
	IssueDate  Date          `gorm:"type:date" json:"issue_date"`
	Status     InvoiceStatus `gorm:"size:20;default:'pending';index" json:"status"`
	PaidDate   *Date         `gorm:"type:date" json:"paid_date"`
}

// TableName specifies the table name for Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) GetID() int64   { return i.ID }
func (i *Invoice) SetID(id int64) { i.ID = id }

// Outstanding reports whether the invoice still awaits payment.
func (i *Invoice) Outstanding() bool {
	return i.Status == InvoicePending || i.Status == InvoiceOverdue
}
