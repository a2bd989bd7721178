package search

import "hostel-management-backend/internal/models"

func HostelFields(h *models.Hostel) []string {
	return []string{h.Name, h.Address}
}

func RoomFields(r *models.Room) []string {
	tenant := ""
	if r.Tenant != nil {
		tenant = *r.Tenant
	}
	return []string{r.RoomNumber, r.HostelName, tenant}
}

func TenantFields(t *models.Tenant) []string {
	return []string{t.Name, t.Email, t.HostelName, t.RoomNumber}
}

func ExpenseFields(e *models.Expense) []string {
	return []string{e.Description, e.HostelName, e.Category}
}

func InvoiceFields(i *models.Invoice) []string {
	return []string{i.TenantName, i.HostelName, i.RoomNumber}
}
