package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(ctx context.Context, w *domain.AvailabilityWindow) error {
	return r.db.WithContext(ctx).Create(w).Error
}

// GetByProviderAndDate returns the provider's declared windows for one day,
// ascending by start time.
func (r *AvailabilityRepository) GetByProviderAndDate(ctx context.Context, providerID int64, date time.Time) ([]domain.AvailabilityWindow, error) {
	var out []domain.AvailabilityWindow
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND date = ?", providerID, date).
		Order("start_time").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AvailabilityRepository) GetByProvider(ctx context.Context, providerID int64) ([]domain.AvailabilityWindow, error) {
	var out []domain.AvailabilityWindow
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("date, start_time").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a window only if it belongs to the given provider.
func (r *AvailabilityRepository) Delete(ctx context.Context, id, providerID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", id, providerID).
		Delete(&domain.AvailabilityWindow{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
