package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type PaystackPaymentRepository struct {
	db *gorm.DB
}

func NewPaystackPaymentRepository(db *gorm.DB) *PaystackPaymentRepository {
	return &PaystackPaymentRepository{db: db}
}

func (r *PaystackPaymentRepository) Create(ctx context.Context, p *domain.PaystackPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaystackPaymentRepository) MarkPaid(ctx context.Context, reference string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&domain.PaystackPayment{}).
		Where("reference = ?", reference).
		Updates(map[string]any{
			"status":  string(domain.PaystackPaymentPaid),
			"paid_at": &now,
		}).Error
}
