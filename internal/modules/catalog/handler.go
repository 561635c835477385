package catalog

import (
	"net/http"
	"strconv"

	"meetspace/internal/pkg/response"
	"meetspace/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the read-only catalog surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:id", h.GetRoom)
	rg.POST("/rooms/available", h.FindAvailable)
	rg.GET("/floors", h.ListFloors)
}

// RegisterProtectedRoutes wires the mutations that require authentication.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.POST("/floors", h.CreateFloor)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		if err == ErrRoomNotFound {
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid room fields", errors)
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidStatus {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be active or inactive")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid room fields", errors)
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case ErrInvalidStatus:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be active or inactive")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) FindAvailable(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rooms, err := h.service.FindAvailable(c.Request.Context(), q)
	if err != nil {
		if err == ErrInvalidQuery {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date, from and to must form a valid window")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unable to fetch available rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) ListFloors(c *gin.Context) {
	floors, err := h.service.ListFloors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list floors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"floors": floors})
}

func (h *Handler) CreateFloor(c *gin.Context) {
	var req CreateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "name and building required", errors)
		return
	}

	floor, err := h.service.CreateFloor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create floor")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"floor": floor})
}
