package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"servicehub/internal/config"
	"servicehub/internal/domain"
)

type mockBookingReader struct {
	booking *domain.Booking
}

func (m *mockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.booking == nil || m.booking.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.booking, nil
}

type mockBookingWriter struct {
	reference     string
	markPaidCalls int
	knownRefs     map[string]bool
}

func (m *mockBookingWriter) SetPaymentReference(ctx context.Context, bookingID int64, reference string) error {
	m.reference = reference
	return nil
}

func (m *mockBookingWriter) MarkPaidByReference(ctx context.Context, reference string) error {
	if m.knownRefs != nil && !m.knownRefs[reference] {
		return gorm.ErrRecordNotFound
	}
	m.markPaidCalls++
	return nil
}

type mockPaymentRepo struct {
	created       *domain.PaystackPayment
	markPaidCalls int
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.PaystackPayment) error {
	m.created = p
	return nil
}

func (m *mockPaymentRepo) MarkPaid(ctx context.Context, reference string) error {
	m.markPaidCalls++
	return nil
}

type mockServiceReader struct {
	svc *domain.Service
}

func (m *mockServiceReader) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if m.svc == nil || m.svc.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.svc, nil
}

type mockCustomerReader struct {
	customer *domain.Customer
}

func (m *mockCustomerReader) GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	if m.customer == nil || m.customer.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return m.customer, nil
}

func TestInitiatePayment_BuildsKoboAmountAndReference(t *testing.T) {
	var gotAuth string
	var gotReq paystackInitRequest
	paystack := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"reference":         gotReq.Reference,
			},
		})
	}))
	defer paystack.Close()

	repo := &mockPaymentRepo{}
	writer := &mockBookingWriter{}
	svc := NewService(
		config.PaystackConfig{SecretKey: "sk_test_x", InitURL: paystack.URL},
		paystack.Client(),
		repo,
		&mockBookingReader{booking: &domain.Booking{ID: 11, CustomerID: 3, ServiceID: 5}},
		writer,
		&mockServiceReader{svc: &domain.Service{ID: 5, Price: 150.50}},
		&mockCustomerReader{customer: &domain.Customer{ID: 3, UserID: 7, Email: "amina@example.com"}},
	)

	resp, err := svc.InitiatePayment(context.Background(), 7, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer sk_test_x" {
		t.Fatalf("expected secret key in Authorization header, got %q", gotAuth)
	}
	if gotReq.Amount != 15050 {
		t.Fatalf("expected amount in kobo 15050, got %d", gotReq.Amount)
	}
	if gotReq.Reference != "CLN-11-7" {
		t.Fatalf("expected reference CLN-11-7, got %q", gotReq.Reference)
	}
	if resp.CheckoutURL != "https://checkout.paystack.com/abc123" {
		t.Fatalf("unexpected checkout url %q", resp.CheckoutURL)
	}
	if repo.created == nil || repo.created.Reference != "CLN-11-7" {
		t.Fatalf("expected payment row saved with reference, got %+v", repo.created)
	}
	if writer.reference != "CLN-11-7" {
		t.Fatalf("expected reference attached to booking, got %q", writer.reference)
	}
}

func TestInitiatePayment_OnlyBookingOwner(t *testing.T) {
	svc := NewService(
		config.PaystackConfig{SecretKey: "sk_test_x", InitURL: "http://unused"},
		nil,
		&mockPaymentRepo{},
		&mockBookingReader{booking: &domain.Booking{ID: 11, CustomerID: 99, ServiceID: 5}},
		&mockBookingWriter{},
		&mockServiceReader{},
		&mockCustomerReader{customer: &domain.Customer{ID: 3, UserID: 7}},
	)

	_, err := svc.InitiatePayment(context.Background(), 7, 11)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for foreign booking, got %v", err)
	}
}

func TestInitiatePayment_AlreadyPaid(t *testing.T) {
	svc := NewService(
		config.PaystackConfig{SecretKey: "sk_test_x", InitURL: "http://unused"},
		nil,
		&mockPaymentRepo{},
		&mockBookingReader{booking: &domain.Booking{ID: 11, CustomerID: 3, ServiceID: 5, IsPaid: true}},
		&mockBookingWriter{},
		&mockServiceReader{},
		&mockCustomerReader{customer: &domain.Customer{ID: 3, UserID: 7}},
	)

	_, err := svc.InitiatePayment(context.Background(), 7, 11)
	if !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
}

func TestInitiatePayment_GatewayRejection(t *testing.T) {
	paystack := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "Invalid key"})
	}))
	defer paystack.Close()

	repo := &mockPaymentRepo{}
	svc := NewService(
		config.PaystackConfig{SecretKey: "sk_test_x", InitURL: paystack.URL},
		paystack.Client(),
		repo,
		&mockBookingReader{booking: &domain.Booking{ID: 11, CustomerID: 3, ServiceID: 5}},
		&mockBookingWriter{},
		&mockServiceReader{svc: &domain.Service{ID: 5, Price: 100}},
		&mockCustomerReader{customer: &domain.Customer{ID: 3, UserID: 7}},
	)

	_, err := svc.InitiatePayment(context.Background(), 7, 11)
	if err == nil {
		t.Fatal("expected error from rejected initialize")
	}
	if repo.created != nil {
		t.Fatalf("expected no payment row on gateway rejection, got %+v", repo.created)
	}
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHandleWebhook_ChargeSuccessMarksPaid(t *testing.T) {
	writer := &mockBookingWriter{knownRefs: map[string]bool{"CLN-11-7": true}}
	repo := &mockPaymentRepo{}
	svc := NewService(config.PaystackConfig{SecretKey: "sk_test_x"}, nil, repo, &mockBookingReader{}, writer, &mockServiceReader{}, &mockCustomerReader{})

	body := []byte(`{"event":"charge.success","data":{"reference":"CLN-11-7"}}`)
	if err := svc.HandleWebhook(context.Background(), body, signBody("sk_test_x", body)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.markPaidCalls != 1 {
		t.Fatalf("expected booking marked paid once, got %d", writer.markPaidCalls)
	}
	if repo.markPaidCalls != 1 {
		t.Fatalf("expected payment row marked paid once, got %d", repo.markPaidCalls)
	}
}

func TestHandleWebhook_RejectsBadSignature(t *testing.T) {
	writer := &mockBookingWriter{knownRefs: map[string]bool{"CLN-11-7": true}}
	svc := NewService(config.PaystackConfig{SecretKey: "sk_test_x"}, nil, &mockPaymentRepo{}, &mockBookingReader{}, writer, &mockServiceReader{}, &mockCustomerReader{})

	body := []byte(`{"event":"charge.success","data":{"reference":"CLN-11-7"}}`)
	err := svc.HandleWebhook(context.Background(), body, signBody("wrong-secret", body))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if writer.markPaidCalls != 0 {
		t.Fatal("expected no state change on bad signature")
	}
}

func TestHandleWebhook_IgnoresOtherEventsAndUnknownReferences(t *testing.T) {
	writer := &mockBookingWriter{knownRefs: map[string]bool{}}
	repo := &mockPaymentRepo{}
	svc := NewService(config.PaystackConfig{SecretKey: "sk_test_x"}, nil, repo, &mockBookingReader{}, writer, &mockServiceReader{}, &mockCustomerReader{})

	body := []byte(`{"event":"charge.failed","data":{"reference":"CLN-11-7"}}`)
	if err := svc.HandleWebhook(context.Background(), body, signBody("sk_test_x", body)); err != nil {
		t.Fatalf("unexpected error for ignored event: %v", err)
	}

	body = []byte(`{"event":"charge.success","data":{"reference":"CLN-404-1"}}`)
	if err := svc.HandleWebhook(context.Background(), body, signBody("sk_test_x", body)); err != nil {
		t.Fatalf("unexpected error for unknown reference: %v", err)
	}
	if writer.markPaidCalls != 0 || repo.markPaidCalls != 0 {
		t.Fatal("expected nothing marked paid")
	}
}
