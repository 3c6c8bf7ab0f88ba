package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"servicehub/internal/domain"
	"servicehub/internal/pkg/geo"
	"servicehub/internal/pkg/validator"
	"servicehub/internal/repository"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation error")
	ErrDuplicateCategory = errors.New("category already exists")
)

type Service struct {
	categories *repository.CategoryRepository
	services   *repository.ServiceRepository
	providers  *repository.ProviderRepository
}

func NewService(
	categories *repository.CategoryRepository,
	services *repository.ServiceRepository,
	providers *repository.ProviderRepository,
) *Service {
	return &Service{categories, services, providers}
}

/* ---------- CATEGORIES ---------- */

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	c := &domain.Category{Name: req.Name}
	if err := s.categories.Create(ctx, c); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateCategory
		}
		return nil, err
	}
	return c, nil
}

/* ---------- SERVICES ---------- */

func (s *Service) CreateService(ctx context.Context, userID int64, req CreateServiceRequest) (*domain.Service, error) {
	provider, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	svc := &domain.Service{
		ProviderID:      provider.ID,
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsAvailable:     true,
	}
	if fields := validator.Validate(svc); fields != nil {
		return nil, ErrValidation
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, userID, serviceID int64, req UpdateServiceRequest) (*domain.Service, error) {
	provider, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if svc.ProviderID != provider.ID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		svc.Title = *req.Title
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil && *req.DurationMinutes > 0 {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.IsAvailable != nil {
		svc.IsAvailable = *req.IsAvailable
	}

	svc.Provider = nil // don't cascade provider writes through Save
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// WithdrawService marks a service as no longer offered. Withdrawn services
// stay attached to past bookings but never enter recommendations.
func (s *Service) WithdrawService(ctx context.Context, userID, serviceID int64) (*domain.Service, error) {
	withdrawn := false
	return s.UpdateService(ctx, userID, serviceID, UpdateServiceRequest{IsAvailable: &withdrawn})
}

func (s *Service) ListServicesByCategory(ctx context.Context, categoryID int64) ([]domain.Service, error) {
	return s.services.GetOfferedByCategory(ctx, categoryID)
}

func (s *Service) ListMyServices(ctx context.Context, userID int64) ([]domain.Service, error) {
	provider, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return s.services.GetByProvider(ctx, provider.ID)
}

/* ---------- PROVIDER PROFILE ---------- */

func (s *Service) GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error) {
	provider, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return provider, nil
}

func (s *Service) UpdateMyProfile(ctx context.Context, userID int64, req UpdateProviderProfileRequest) (*domain.Provider, error) {
	provider, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	if req.Phone != nil {
		provider.Phone = *req.Phone
	}
	if req.Bio != nil {
		provider.Bio = *req.Bio
	}
	if req.Address != nil {
		provider.Address = *req.Address
	}
	if req.Latitude != nil || req.Longitude != nil {
		if req.Latitude == nil || req.Longitude == nil || !geo.Valid(*req.Latitude, *req.Longitude) {
			return nil, geo.ErrInvalidCoordinate
		}
		provider.Latitude = req.Latitude
		provider.Longitude = req.Longitude
	}

	if err := s.providers.Update(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}
