package repository

import (
	"context"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) GetByProvider(ctx context.Context, providerID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AverageForProvider returns the mean review rating, or 0 when unrated.
func (r *ReviewRepository) AverageForProvider(ctx context.Context, providerID int64) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("provider_id = ?", providerID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
