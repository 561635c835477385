package assistant

import (
	"net/http"

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
	rg.POST("/assistant/query", h.Query)
	rg.POST("/assistant/suggest", h.Suggest)
}

type queryRequest struct {
	Query string `json:"query" validate:"required"`
}

func (h *Handler) Query(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "query required", errors)
		return
	}

	criteria, err := h.service.Extract(c.Request.Context(), req.Query)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "EXTRACTION_FAILED", "Language model query failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parsed": criteria})
}

func (h *Handler) Suggest(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "query required", errors)
		return
	}

	criteria, rooms, err := h.service.Suggest(c.Request.Context(), req.Query)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "EXTRACTION_FAILED", "Language model query failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parsed": criteria, "rooms": rooms})
}
