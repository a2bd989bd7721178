package models

type ExpenseStatus string

const (
	ExpenseApproved ExpenseStatus = "approved"
	ExpensePending  ExpenseStatus = "pending"
	ExpenseRejected ExpenseStatus = "rejected"
)

// ExpenseCategories lists the categories offered when recording an expense.
var ExpenseCategories = []string{
	"Maintenance",
	"Utilities",
	"Salaries",
	"Supplies",
	"Marketing",
	"Insurance",
	"Other",
}

// Expense is a cost booked against a hostel
type Expense struct {
	ID          int64         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	HostelID    int64         `gorm:"not null;index" json:"hostel_id"`
	HostelName  string        `gorm:"size:255" json:"hostel_name"`
	Category    string        `gorm:"size:50;index" json:"category"`
	Amount      float64       `json:"amount"`
	Date        Date          `gorm:"type:date;index" json:"date"`
	Description string        `gorm:"type:text" json:"description"`
	Receipt     *string       `gorm:"size:255" json:"receipt"`
	Status      ExpenseStatus `gorm:"size:20;default:'pending'" json:"status"`
}

// TableName specifies the table name for Expense model
func (Expense) TableName() string {
	return "expenses"
}

func (e *Expense) GetID() int64   { return e.ID }
func (e *Expense) SetID(id int64) { e.ID = id }

// Counted reports whether the expense takes part in totals (rejected ones do not).
func (e *Expense) Counted() bool {
	return e.Status != ExpenseRejected
}
