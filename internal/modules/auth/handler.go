package auth

import (
	"errors"
	"net/http"

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register/customer", h.RegisterCustomer)
	rg.POST("/auth/register/provider", h.RegisterProvider)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		h.registerError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) RegisterProvider(c *gin.Context) {
	var req RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.RegisterProvider(c.Request.Context(), req)
	if err != nil {
		h.registerError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Wrong email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": res.AccessToken,
		"user":  res.User,
	})
}

func (h *Handler) registerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
	case errors.Is(err, geo.ErrInvalidCoordinate):
		response.Error(c, http.StatusBadRequest, "INVALID_COORDINATE", "Latitude/longitude out of range")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Registration failed")
	}
}
