package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"servicehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recommendations", h.RecommendProviders)
}

func (h *Handler) RecommendProviders(c *gin.Context) {
	q, err := ParseQuery(
		c.Query("category_id"),
		c.Query("date"),
		c.Query("lat"),
		c.Query("lng"),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingParameter):
			response.Error(c, http.StatusBadRequest, "MISSING_PARAMETER", "category_id, date, lat and lng are required")
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		case errors.Is(err, ErrInvalidCoordinate):
			response.Error(c, http.StatusBadRequest, "INVALID_COORDINATE", "lat/lng must be valid coordinates")
		default:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query")
		}
		return
	}

	ranked, err := h.service.Recommend(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrNoEligibleServices) {
			response.Error(c, http.StatusNotFound, "NO_ELIGIBLE_SERVICES", "No services found for this category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute recommendations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recommendations": ranked})
}
