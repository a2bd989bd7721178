package handler

import (
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// GetAllRooms lists rooms, filtered by ?search=, ?status=, ?type= and ?hostel_id=
func (h *RoomHandler) GetAllRooms(c *gin.Context) {
	hostelID, ok := queryID(c, "hostel_id")
	if !ok {
		return
	}

	rooms, err := h.roomService.List(c.Request.Context(), service.RoomFilter{
		Search:   c.Query("search"),
		Status:   models.RoomStatus(c.Query("status")),
		Type:     models.RoomType(c.Query("type")),
		HostelID: hostelID,
	})
	if err != nil {
		respondError(c, err, "Failed to fetch rooms")
		return
	}

	utils.ListResponse(c, "rooms", rooms, len(rooms))
}

// GetRoom retrieves a specific room by ID
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "room")
	if !ok {
		return
	}

	room, err := h.roomService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch room")
		return
	}

	utils.SuccessResponse(c, room)
}

// CreateRoom adds a room to a hostel
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req service.RoomInput
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to create room")
		return
	}

	utils.CreatedResponse(c, room)
}

// UpdateRoom applies a partial edit to a room
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "room")
	if !ok {
		return
	}
	var req service.RoomPatch
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), id, req, currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to update room")
		return
	}

	utils.SuccessResponse(c, room)
}

// DeleteRoom removes a room
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "room")
	if !ok {
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, err, "Failed to delete room")
		return
	}

	utils.MessageResponse(c, "Room deleted successfully")
}
