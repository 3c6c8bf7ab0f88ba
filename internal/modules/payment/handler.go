package payment

import (
	"errors"
	"io"
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

func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/initiate/:bookingID", h.Initiate)
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/paystack/webhook", h.Webhook)
}

func (h *Handler) Initiate(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	resp, err := h.service.InitiatePayment(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrAlreadyPaid):
			response.Success(c, http.StatusOK, gin.H{"message": "Already paid"})
		case errors.Is(err, ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "PAYMENTS_UNAVAILABLE", "Payments are not configured")
		default:
			response.Error(c, http.StatusBadGateway, "PAYMENT_INIT_FAILED", "Failed to initialize payment")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Webhook is called by Paystack, not by our clients, so it answers in
// plain status codes instead of the API envelope.
func (h *Handler) Webhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.service.HandleWebhook(c.Request.Context(), rawBody, c.GetHeader("X-Paystack-Signature"))
	if err != nil {
		if errors.Is(err, ErrInvalidSignature) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
