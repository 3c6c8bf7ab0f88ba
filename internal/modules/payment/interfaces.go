package payment

import (
	"context"

	"servicehub/internal/domain"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.PaystackPayment) error
	MarkPaid(ctx context.Context, reference string) error
}

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type bookingPaymentWriter interface {
	SetPaymentReference(ctx context.Context, bookingID int64, reference string) error
	MarkPaidByReference(ctx context.Context, reference string) error
}

type serviceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type customerReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}
