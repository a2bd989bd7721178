package models

import "time"

type ActivityType string

const (
	ActivityTenantCheckin  ActivityType = "tenant_checkin"
	ActivityTenantCheckout ActivityType = "tenant_checkout"
	ActivityTenant         ActivityType = "tenant"
	ActivityPayment        ActivityType = "payment"
	ActivityMaintenance    ActivityType = "maintenance"
	ActivityHostel         ActivityType = "hostel"
	ActivityRoom           ActivityType = "room"
	ActivityExpense        ActivityType = "expense"
	ActivityInvoice        ActivityType = "invoice"
	ActivityAuth           ActivityType = "auth"
)

// Activity is one entry of the operations feed shown on the dashboard.
// Every successful mutation records one.
type Activity struct {
	ID        int64        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID    *int64       `gorm:"index" json:"user_id"`
	Type      ActivityType `gorm:"size:30;not null" json:"type"`
	Message   string       `gorm:"type:text" json:"message"`
	CreatedAt time.Time    `json:"created_at"`
}

// TableName specifies the table name for Activity model
func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) GetID() int64   { return a.ID }
func (a *Activity) SetID(id int64) { a.ID = id }
