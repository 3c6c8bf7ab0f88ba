package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"servicehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the slot resolver.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers/:id/slots", h.GetAvailableSlots)
}

// RegisterProviderRoutes exposes window management; callers must be
// authenticated providers.
func (h *Handler) RegisterProviderRoutes(rg *gin.RouterGroup) {
	rg.POST("/providers/availability", h.DeclareWindow)
	rg.GET("/providers/availability", h.ListOwnWindows)
	rg.DELETE("/providers/availability/:id", h.DeleteWindow)
}

func (h *Handler) GetAvailableSlots(c *gin.Context) {
	providerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid provider ID")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_PARAMETER", "date query param is required")
		return
	}

	slots, err := h.service.FreeSlots(c.Request.Context(), providerID, dateStr)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		case errors.Is(err, ErrProviderNotFound):
			response.Error(c, http.StatusNotFound, "PROVIDER_NOT_FOUND", "Provider does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve slots")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) DeclareWindow(c *gin.Context) {
	var req DeclareWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.DeclareWindow(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_time must be before end_time (HH:MM)")
		case errors.Is(err, ErrDuplicateWindow):
			response.Error(c, http.StatusConflict, "DUPLICATE_WINDOW", "A window with this start time already exists")
		case errors.Is(err, ErrProviderNotFound):
			response.Error(c, http.StatusNotFound, "PROVIDER_NOT_FOUND", "No provider profile for this account")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to declare window")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"window": w})
}

func (h *Handler) ListOwnWindows(c *gin.Context) {
	windows, err := h.service.ListOwnWindows(c.Request.Context(), c.GetInt64("user_id"), c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		case errors.Is(err, ErrProviderNotFound):
			response.Error(c, http.StatusNotFound, "PROVIDER_NOT_FOUND", "No provider profile for this account")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list windows")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"windows": windows})
}

func (h *Handler) DeleteWindow(c *gin.Context) {
	windowID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid window ID")
		return
	}

	if err := h.service.DeleteWindow(c.Request.Context(), c.GetInt64("user_id"), windowID); err != nil {
		switch {
		case errors.Is(err, ErrWindowNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Window not found")
		case errors.Is(err, ErrProviderNotFound):
			response.Error(c, http.StatusNotFound, "PROVIDER_NOT_FOUND", "No provider profile for this account")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete window")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": windowID})
}
