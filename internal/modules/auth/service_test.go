package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"servicehub/internal/domain"
	"servicehub/internal/pkg/geo"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) Create(ctx context.Context, p *domain.Provider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestService_RegisterCustomer_CreatesProfile(t *testing.T) {
	users := new(MockUserRepository)
	customers := new(MockCustomerRepository)
	providers := new(MockProviderRepository)

	users.On("EmailExists", mock.Anything, "jane@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	customers.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.UserID == 42 && c.Email == "jane@example.com"
	})).Return(nil)

	service := NewService(users, customers, providers, fakeJWT{})

	user, err := service.RegisterCustomer(context.Background(), RegisterCustomerRequest{
		Email:    "Jane@Example.com",
		Password: "supersecret",
		Name:     "Jane",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, "jane@example.com", user.Email)
	customers.AssertExpectations(t)
}

func TestService_RegisterCustomer_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	// the existence check runs on the normalized form, so a re-register
	// with different casing still collides
	users.On("EmailExists", mock.Anything, "jane@example.com").Return(true, nil)

	service := NewService(users, new(MockCustomerRepository), new(MockProviderRepository), fakeJWT{})

	_, err := service.RegisterCustomer(context.Background(), RegisterCustomerRequest{
		Email:    " JANE@example.com ",
		Password: "supersecret",
		Name:     "Jane",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertExpectations(t)
}

func TestService_RegisterProvider_RejectsBadCoordinates(t *testing.T) {
	users := new(MockUserRepository)
	users.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)

	service := NewService(users, new(MockCustomerRepository), new(MockProviderRepository), fakeJWT{})

	lat := 99.0
	lng := 3.4
	_, err := service.RegisterProvider(context.Background(), RegisterProviderRequest{
		Email:     "pro@example.com",
		Password:  "supersecret",
		Name:      "Pro",
		Address:   "12 Marina Rd",
		Latitude:  &lat,
		Longitude: &lng,
	})

	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	user := &domain.User{ID: 7, Email: "jane@example.com", PasswordHash: string(hash), Role: domain.RoleCustomer}

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	service := NewService(users, new(MockCustomerRepository), new(MockProviderRepository), fakeJWT{})

	res, err := service.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "supersecret"})
	assert.NoError(t, err)
	assert.Equal(t, "token", res.AccessToken)

	_, err = service.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
