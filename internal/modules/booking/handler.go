package booking

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:roomID", h.CreateBooking)
}

// RegisterPublicRoutes wires the read-only schedule lookup used to pick a
// free slot before authenticating.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/bookings", h.DaySchedule)
}

func (h *Handler) DaySchedule(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || roomID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	bookings, err := h.service.DaySchedule(c.Request.Context(), roomID, c.Query("date"))
	if err != nil {
		switch err {
		case ErrInvalidInput:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("roomID"), 10, 64)
	if err != nil || roomID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "date, from & to required", errors)
		return
	}

	room, err := h.service.Book(c.Request.Context(), roomID, req)
	if err != nil {
		switch err {
		case ErrInvalidInput:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking time range")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case ErrConflict:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Time slot already booked")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}
