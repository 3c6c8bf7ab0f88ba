package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"servicehub/internal/pkg/geo"
	"servicehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/:id/services", h.ListServicesByCategory)
	rg.GET("/providers/:id", h.GetProvider)
}

// RegisterProviderRoutes requires an authenticated provider.
func (h *Handler) RegisterProviderRoutes(rg *gin.RouterGroup) {
	rg.POST("/categories", h.CreateCategory)
	rg.POST("/services", h.CreateService)
	rg.GET("/services/mine", h.ListMyServices)
	rg.PATCH("/services/:id", h.UpdateService)
	rg.POST("/services/:id/withdraw", h.WithdrawService)
	rg.PATCH("/providers/me", h.UpdateMyProfile)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrDuplicateCategory) {
			response.Error(c, http.StatusConflict, "DUPLICATE_CATEGORY", "Category already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"category": category})
}

func (h *Handler) ListServicesByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid category ID")
		return
	}

	services, err := h.service.ListServicesByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.serviceError(c, err, "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) ListMyServices(c *gin.Context) {
	services, err := h.service.ListMyServices(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.serviceError(c, err, "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) UpdateService(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), c.GetInt64("user_id"), serviceID, req)
	if err != nil {
		h.serviceError(c, err, "Failed to update service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) WithdrawService(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	svc, err := h.service.WithdrawService(c.Request.Context(), c.GetInt64("user_id"), serviceID)
	if err != nil {
		h.serviceError(c, err, "Failed to withdraw service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) GetProvider(c *gin.Context) {
	providerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid provider ID")
		return
	}

	provider, err := h.service.GetProvider(c.Request.Context(), providerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "PROVIDER_NOT_FOUND", "Provider does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch provider")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"provider": provider})
}

func (h *Handler) UpdateMyProfile(c *gin.Context) {
	var req UpdateProviderProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	provider, err := h.service.UpdateMyProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			response.Error(c, http.StatusBadRequest, "INVALID_COORDINATE", "Latitude/longitude out of range")
			return
		}
		h.serviceError(c, err, "Failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"provider": provider})
}

func (h *Handler) serviceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Provider profile required")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
