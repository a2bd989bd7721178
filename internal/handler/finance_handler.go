package handler

import (
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FinanceHandler serves expenses, invoices and the finance summary
type FinanceHandler struct {
	expenseService *service.ExpenseService
	invoiceService *service.InvoiceService
	reportService  *service.ReportService
}

func NewFinanceHandler(
	expenseService *service.ExpenseService,
	invoiceService *service.InvoiceService,
	reportService *service.ReportService,
) *FinanceHandler {
	return &FinanceHandler{
		expenseService: expenseService,
		invoiceService: invoiceService,
		reportService:  reportService,
	}
}

// GetSummary returns income, expenses and outstanding invoice totals
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.FinanceSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build finance summary")
		return
	}

	utils.SuccessResponse(c, summary)
}

// GetAllExpenses lists expenses, filtered by ?search=, ?status=, ?category= and ?hostel_id=
func (h *FinanceHandler) GetAllExpenses(c *gin.Context) {
	hostelID, ok := queryID(c, "hostel_id")
	if !ok {
		return
	}

	expenses, err := h.expenseService.List(c.Request.Context(), service.ExpenseFilter{
		Search:   c.Query("search"),
		Status:   models.ExpenseStatus(c.Query("status")),
		Category: c.Query("category"),
		HostelID: hostelID,
	})
	if err != nil {
		respondError(c, err, "Failed to fetch expenses")
		return
	}

	utils.ListResponse(c, "expenses", expenses, len(expenses))
}

// GetExpense retrieves a specific expense by ID
func (h *FinanceHandler) GetExpense(c *gin.Context) {
	id, ok := parseID(c, "expense")
	if !ok {
		return
	}

	expense, err := h.expenseService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch expense")
		return
	}

	utils.SuccessResponse(c, expense)
}

// CreateExpense records an expense pending review
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req service.ExpenseInput
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to create expense")
		return
	}

	utils.CreatedResponse(c, expense)
}

// UpdateExpense applies a partial edit to an expense
func (h *FinanceHandler) UpdateExpense(c *gin.Context) {
	id, ok := parseID(c, "expense")
	if !ok {
		return
	}
	var req service.ExpensePatch
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), id, req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to update expense")
		return
	}

	utils.SuccessResponse(c, expense)
}

// SetExpenseStatus approves or rejects an expense (owner only)
func (h *FinanceHandler) SetExpenseStatus(c *gin.Context) {
	id, ok := parseID(c, "expense")
	if !ok {
		return
	}
	var req service.ExpenseStatusInput
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.SetStatus(c.Request.Context(), id, req.Status, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to update expense status")
		return
	}

	utils.SuccessResponse(c, expense)
}

// DeleteExpense removes an expense
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseID(c, "expense")
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, err, "Failed to delete expense")
		return
	}

	utils.MessageResponse(c, "Expense deleted successfully")
}

// GetAllInvoices lists invoices, filtered by ?search=, ?status=, ?hostel_id= and ?tenant_id=
func (h *FinanceHandler) GetAllInvoices(c *gin.Context) {
	hostelID, ok := queryID(c, "hostel_id")
	if !ok {
		return
	}
	tenantID, ok := queryID(c, "tenant_id")
	if !ok {
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), service.InvoiceFilter{
		Search:   c.Query("search"),
		Status:   models.InvoiceStatus(c.Query("status")),
		HostelID: hostelID,
		TenantID: tenantID,
	})
	if err != nil {
		respondError(c, err, "Failed to fetch invoices")
		return
	}

	utils.ListResponse(c, "invoices", invoices, len(invoices))
}

// GetInvoice retrieves a specific invoice by ID
func (h *FinanceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch invoice")
		return
	}

	utils.SuccessResponse(c, invoice)
}

// CreateInvoice issues an invoice to a tenant
func (h *FinanceHandler) CreateInvoice(c *gin.Context) {
	var req service.InvoiceInput
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to create invoice")
		return
	}

	utils.CreatedResponse(c, invoice)
}

// UpdateInvoice applies a partial edit to an unpaid invoice
func (h *FinanceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}
	var req service.InvoicePatch
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), id, req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to update invoice")
		return
	}

	utils.SuccessResponse(c, invoice)
}

// PayInvoice marks an invoice as paid
func (h *FinanceHandler) PayInvoice(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Pay(c.Request.Context(), id, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to mark invoice as paid")
		return
	}

	utils.SuccessResponse(c, invoice)
}

// GenerateInvoices bills every active tenant for the current month (owner only)
func (h *FinanceHandler) GenerateInvoices(c *gin.Context) {
	result, err := h.invoiceService.GenerateMonthly(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to generate invoices")
		return
	}

	utils.SuccessResponse(c, result)
}

// DeleteInvoice removes an invoice
func (h *FinanceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c, "invoice")
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, err, "Failed to delete invoice")
		return
	}

	utils.MessageResponse(c, "Invoice deleted successfully")
}
