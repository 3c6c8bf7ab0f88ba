package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"servicehub/internal/config"
	"servicehub/internal/domain"
)

type Service struct {
	cfg       config.PaystackConfig
	client    *http.Client
	payments  paymentRepo
	bookings  bookingReader
	bookingWr bookingPaymentWriter
	services  serviceReader
	customers customerReader
}

// NewService builds the Paystack payment service. client may be nil,
// in which case a default client with a timeout is used.
func NewService(cfg config.PaystackConfig, client *http.Client, payments paymentRepo, bookings bookingReader, bookingWr bookingPaymentWriter, services serviceReader, customers customerReader) *Service {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Service{
		cfg:       cfg,
		client:    client,
		payments:  payments,
		bookings:  bookings,
		bookingWr: bookingWr,
		services:  services,
		customers: customers,
	}
}

// InitiatePayment creates a Paystack checkout session for the customer's
// own booking. The amount is the service price converted to kobo and the
// reference ties the transaction back to the booking and user.
func (s *Service) InitiatePayment(ctx context.Context, userID, bookingID int64) (*InitiatePaymentResponse, error) {
	if s.cfg.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.CustomerID != customer.ID {
		return nil, ErrBookingNotFound
	}
	if b.IsPaid {
		return nil, ErrAlreadyPaid
	}

	svc, err := s.services.GetByID(ctx, b.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("load service for booking %d: %w", b.ID, err)
	}

	amountKobo := int64(svc.Price * 100)
	reference := fmt.Sprintf("CLN-%d-%d", b.ID, userID)

	initResp, err := s.initialize(ctx, paystackInitRequest{
		Email:       customer.Email,
		Amount:      amountKobo,
		Reference:   reference,
		CallbackURL: s.cfg.CallbackURL,
	})
	if err != nil {
		return nil, err
	}

	p := &domain.PaystackPayment{
		BookingID:  b.ID,
		Reference:  initResp.Data.Reference,
		AmountKobo: amountKobo,
		Email:      customer.Email,
		Status:     domain.PaystackPaymentCreated,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}
	if err := s.bookingWr.SetPaymentReference(ctx, b.ID, initResp.Data.Reference); err != nil {
		return nil, fmt.Errorf("attach payment reference: %w", err)
	}

	return &InitiatePaymentResponse{
		Reference:   initResp.Data.Reference,
		AmountKobo:  amountKobo,
		CheckoutURL: initResp.Data.AuthorizationURL,
	}, nil
}

func (s *Service) initialize(ctx context.Context, body paystackInitRequest) (*paystackInitResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.InitURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: %w", err)
	}
	defer resp.Body.Close()

	var out paystackInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode paystack response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Status {
		if out.Message == "" {
			out.Message = "failed to initialize payment"
		}
		return nil, fmt.Errorf("paystack initialize: %s", out.Message)
	}
	return &out, nil
}

// HandleWebhook processes a Paystack event delivery. The signature is
// HMAC-SHA512 of the raw body keyed with the secret key; deliveries with
// a bad signature are rejected before the body is even parsed. Events
// other than charge.success and references we never issued are ignored,
// so Paystack's retries stay idempotent.
func (s *Service) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if !s.verifySignature(rawBody, signature) {
		return ErrInvalidSignature
	}

	var ev webhookEvent
	if err := json.Unmarshal(rawBody, &ev); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}
	if ev.Event != "charge.success" || ev.Data.Reference == "" {
		return nil
	}

	if err := s.bookingWr.MarkPaidByReference(ctx, ev.Data.Reference); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.payments.MarkPaid(ctx, ev.Data.Reference)
}

func (s *Service) verifySignature(rawBody []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(s.cfg.SecretKey))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
