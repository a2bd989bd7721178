package service

import (
	"context"
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/search"
)

// ExpenseInput is the body of an expense create
type ExpenseInput struct {
	HostelID    int64   `json:"hostel_id" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=Maintenance Utilities Salaries Supplies Marketing Insurance Other"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required,yyyymmdd"`
	Description string  `json:"description" binding:"required"`
	Receipt     *string `json:"receipt" binding:"omitempty,max=255"`
}

// ExpensePatch carries the fields of an expense edit; nil fields are left unchanged
type ExpensePatch struct {
	HostelID    *int64   `json:"hostel_id" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,oneof=Maintenance Utilities Salaries Supplies Marketing Insurance Other"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Date        *string  `json:"date" binding:"omitempty,yyyymmdd"`
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Receipt     *string  `json:"receipt" binding:"omitempty,max=255"`
}

// ExpenseStatusInput is the body of an expense review
type ExpenseStatusInput struct {
	Status models.ExpenseStatus `json:"status" binding:"required,oneof=approved pending rejected"`
}

// ExpenseFilter narrows an expense listing
type ExpenseFilter struct {
	Search   string
	Status   models.ExpenseStatus
	Category string
	HostelID int64
}

type ExpenseService struct {
	expenses   repository.Store[models.Expense]
	hostels    repository.Store[models.Hostel]
	activities *ActivityService
}

func NewExpenseService(
	expenses repository.Store[models.Expense],
	hostels repository.Store[models.Hostel],
	activities *ActivityService,
) *ExpenseService {
	return &ExpenseService{
		expenses:   expenses,
		hostels:    hostels,
		activities: activities,
	}
}

// List returns the expenses matching filter in insertion order
func (s *ExpenseService) List(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	expenses = search.Filter(expenses, filter.Search, search.ExpenseFields)
	return keep(expenses, func(e *models.Expense) bool {
		return (filter.Status == "" || e.Status == filter.Status) &&
			(filter.Category == "" || e.Category == filter.Category) &&
			(filter.HostelID == 0 || e.HostelID == filter.HostelID)
	}), nil
}

// Get retrieves an expense by ID
func (s *ExpenseService) Get(ctx context.Context, id int64) (*models.Expense, error) {
	return s.expenses.Get(ctx, id)
}

// Create books a pending expense against a hostel
func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput, actor int64) (*models.Expense, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	hostel, err := resolve(ctx, s.hostels, in.HostelID, "hostel")
	if err != nil {
		return nil, err
	}
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		HostelID:    hostel.ID,
		HostelName:  hostel.Name,
		Category:    in.Category,
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
		Receipt:     in.Receipt,
		Status:      models.ExpensePending,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityExpense, "%s expense of %.2f recorded for %s", expense.Category, expense.Amount, expense.HostelName)
	return expense, nil
}

// Update applies patch to an existing expense; the review status is set through SetStatus
func (s *ExpenseService) Update(ctx context.Context, id int64, patch ExpensePatch, actor int64) (*models.Expense, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	expense, err := s.expenses.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.HostelID != nil && *patch.HostelID != expense.HostelID {
		hostel, err := resolve(ctx, s.hostels, *patch.HostelID, "hostel")
		if err != nil {
			return nil, err
		}
		expense.HostelID = hostel.ID
		expense.HostelName = hostel.Name
	}
	if patch.Date != nil {
		if expense.Date, err = models.ParseDate(*patch.Date); err != nil {
			return nil, err
		}
	}
	setIf(&expense.Category, patch.Category)
	setIf(&expense.Amount, patch.Amount)
	setIf(&expense.Description, patch.Description)
	if patch.Receipt != nil {
		expense.Receipt = patch.Receipt
		if *patch.Receipt == "" {
			expense.Receipt = nil
		}
	}

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityExpense, "Expense updated: %s", expense.Description)
	return expense, nil
}

// SetStatus records the outcome of an expense review
func (s *ExpenseService) SetStatus(ctx context.Context, id int64, status models.ExpenseStatus, actor int64) (*models.Expense, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	expense, err := s.expenses.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	expense.Status = status
	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense status: %w", err)
	}

	typ := models.ActivityExpense
	if expense.Category == "Maintenance" {
		typ = models.ActivityMaintenance
	}
	s.activities.Record(ctx, actor, typ, "%s expense for %s %s", expense.Category, expense.HostelName, expense.Status)
	return expense, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id int64, actor int64) error {
	writeMu.Lock()
	defer writeMu.Unlock()

	expense, err := s.expenses.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.expenses.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityExpense, "Expense removed: %s", expense.Description)
	return nil
}
