package handler

import (
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HostelHandler struct {
	hostelService *service.HostelService
}

func NewHostelHandler(hostelService *service.HostelService) *HostelHandler {
	return &HostelHandler{
		hostelService: hostelService,
	}
}

// GetAllHostels lists hostels, filtered by ?search= and ?status=
func (h *HostelHandler) GetAllHostels(c *gin.Context) {
	hostels, err := h.hostelService.List(c.Request.Context(), service.HostelFilter{
		Search: c.Query("search"),
		Status: models.HostelStatus(c.Query("status")),
	})
	if err != nil {
		respondError(c, err, "Failed to fetch hostels")
		return
	}

	utils.ListResponse(c, "hostels", hostels, len(hostels))
}

// GetHostel retrieves a specific hostel by ID
func (h *HostelHandler) GetHostel(c *gin.Context) {
	id, ok := parseID(c, "hostel")
	if !ok {
		return
	}

	hostel, err := h.hostelService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch hostel")
		return
	}

	utils.SuccessResponse(c, hostel)
}

// CreateHostel adds a hostel
func (h *HostelHandler) CreateHostel(c *gin.Context) {
	var req service.HostelInput
	if !bindJSON(c, &req) {
		return
	}

	hostel, err := h.hostelService.Create(c.Request.Context(), req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to create hostel")
		return
	}

	utils.CreatedResponse(c, hostel)
}

// UpdateHostel applies a partial edit to a hostel
func (h *HostelHandler) UpdateHostel(c *gin.Context) {
	id, ok := parseID(c, "hostel")
	if !ok {
		return
	}
	var req service.HostelPatch
	if !bindJSON(c, &req) {
		return
	}

	hostel, err := h.hostelService.Update(c.Request.Context(), id, req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to update hostel")
		return
	}

	utils.SuccessResponse(c, hostel)
}

// DeleteHostel removes a hostel (owner only)
func (h *HostelHandler) DeleteHostel(c *gin.Context) {
	id, ok := parseID(c, "hostel")
	if !ok {
		return
	}

	if err := h.hostelService.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, err, "Failed to delete hostel")
		return
	}

	utils.MessageResponse(c, "Hostel deleted successfully")
}
