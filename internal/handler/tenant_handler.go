package handler

import (
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	tenantService *service.TenantService
}

func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// GetAllTenants lists tenants, filtered by ?search=, ?status=,
// ?payment_status=, ?hostel_id= and ?room_id=
func (h *TenantHandler) GetAllTenants(c *gin.Context) {
	hostelID, ok := queryID(c, "hostel_id")
	if !ok {
		return
	}
	roomID, ok := queryID(c, "room_id")
	if !ok {
		return
	}

	tenants, err := h.tenantService.List(c.Request.Context(), service.TenantFilter{
		Search:        c.Query("search"),
		Status:        models.TenantStatus(c.Query("status")),
		PaymentStatus: models.PaymentStatus(c.Query("payment_status")),
		HostelID:      hostelID,
		RoomID:        roomID,
	})
	if err != nil {
		respondError(c, err, "Failed to fetch tenants")
		return
	}

	utils.ListResponse(c, "tenants", tenants, len(tenants))
}

// GetTenant retrieves a specific tenant by ID
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseID(c, "tenant")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch tenant")
		return
	}

	utils.SuccessResponse(c, tenant)
}

// CreateTenant checks a new tenant into a room
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.TenantInput
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to create tenant")
		return
	}

	utils.CreatedResponse(c, tenant)
}

// UpdateTenant applies a partial edit, moving the tenant when the room changes
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := parseID(c, "tenant")
	if !ok {
		return
	}
	var req service.TenantPatch
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), id, req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to update tenant")
		return
	}

	utils.SuccessResponse(c, tenant)
}

// CheckoutTenant checks a tenant out and frees the bed
func (h *TenantHandler) CheckoutTenant(c *gin.Context) {
	id, ok := parseID(c, "tenant")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Checkout(c.Request.Context(), id, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to check out tenant")
		return
	}

	utils.SuccessResponse(c, tenant)
}

// DeleteTenant removes a tenant, freeing the bed if still held
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, ok := parseID(c, "tenant")
	if !ok {
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, err, "Failed to delete tenant")
		return
	}

	utils.MessageResponse(c, "Tenant deleted successfully")
}
