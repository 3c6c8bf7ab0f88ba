package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"servicehub/internal/domain"
	"servicehub/internal/pkg/geo"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains registration and login logic. Registration creates the
// role-specific profile row alongside the user account, matching the two
// registration paths of the public API.
type Service struct {
	users     UserRepository
	customers CustomerRepository
	providers ProviderRepository
	jwt       jwtService
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepository, customers CustomerRepository, providers ProviderRepository, jwt jwtService) *Service {
	return &Service{
		users:     users,
		customers: customers,
		providers: providers,
		jwt:       jwt,
	}
}

func (s *Service) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		UserID: user.ID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  user.Email,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) RegisterProvider(ctx context.Context, req RegisterProviderRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	if req.Latitude != nil || req.Longitude != nil {
		if req.Latitude == nil || req.Longitude == nil || !geo.Valid(*req.Latitude, *req.Longitude) {
			return nil, geo.ErrInvalidCoordinate
		}
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.RoleProvider,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	provider := &domain.Provider{
		UserID:    user.ID,
		Phone:     req.Phone,
		Bio:       req.Bio,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := s.providers.Create(ctx, provider); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}

// normalizeEmail is applied once at the top of each registration path so
// the existence check and the stored user see the same value.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
