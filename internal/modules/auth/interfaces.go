package auth

import (
	"context"

	"servicehub/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
}

type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) error
}
