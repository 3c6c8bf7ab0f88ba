package repository

import (
	"context"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).Preload("Provider").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) GetByProvider(ctx context.Context, providerID int64) ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetOfferedByCategory returns offered (not withdrawn) services in a
// category with their providers loaded. This is the candidate set for a
// recommendation query; withdrawn services never appear here.
func (r *ServiceRepository) GetOfferedByCategory(ctx context.Context, categoryID int64) ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("category_id = ? AND is_available = ?", categoryID, true).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
