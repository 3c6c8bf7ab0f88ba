package repository

import (
	"context"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.Provider) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	var p domain.Provider
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Provider, error) {
	var p domain.Provider
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) Update(ctx context.Context, p *domain.Provider) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// UpdateRating stores the recomputed average rating for a provider.
func (r *ProviderRepository) UpdateRating(ctx context.Context, providerID int64, rating float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Provider{}).
		Where("id = ?", providerID).
		Update("rating", rating).Error
}
