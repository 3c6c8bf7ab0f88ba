package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"servicehub/internal/domain"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	args := m.Called(ctx, rev)
	if rev != nil {
		rev.ID = 77
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByProvider(ctx context.Context, providerID int64) ([]domain.Review, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) AverageForProvider(ctx context.Context, providerID int64) (float64, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).(float64), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockRatingWriter struct {
	mock.Mock
}

func (m *MockRatingWriter) UpdateRating(ctx context.Context, providerID int64, rating float64) error {
	args := m.Called(ctx, providerID, rating)
	return args.Error(0)
}

func TestService_CreateReview_UpdatesProviderRating(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	customers := new(MockCustomerReader)
	providers := new(MockRatingWriter)

	customers.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 3}, nil)
	bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, CustomerID: 3, ProviderID: 5, Status: domain.BookingCompleted}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	reviews.On("AverageForProvider", mock.Anything, int64(5)).Return(4.5, nil)
	providers.On("UpdateRating", mock.Anything, int64(5), 4.5).Return(nil)

	service := NewService(reviews, bookings, customers, providers)

	rev, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{
		BookingID: 1,
		Rating:    5,
		Comment:   "spotless",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), rev.ProviderID)
	providers.AssertExpectations(t)
}

func TestService_CreateReview_RequiresCompletedBooking(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	customers := new(MockCustomerReader)

	customers.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 3}, nil)
	bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, CustomerID: 3, ProviderID: 5, Status: domain.BookingConfirmed}, nil)

	service := NewService(reviews, bookings, customers, new(MockRatingWriter))

	_, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{BookingID: 1, Rating: 4})
	assert.ErrorIs(t, err, ErrBookingNotCompleted)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateReview_OncePerBooking(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	customers := new(MockCustomerReader)

	customers.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 3}, nil)
	bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, CustomerID: 3, ProviderID: 5, Status: domain.BookingCompleted}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: reviews.booking_id"))

	service := NewService(reviews, bookings, customers, new(MockRatingWriter))

	_, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{BookingID: 1, Rating: 5})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestService_CreateReview_OnlyBookingOwner(t *testing.T) {
	bookings := new(MockBookingReader)
	customers := new(MockCustomerReader)

	customers.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 99}, nil)
	bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, CustomerID: 3, ProviderID: 5, Status: domain.BookingCompleted}, nil)

	service := NewService(new(MockReviewRepository), bookings, customers, new(MockRatingWriter))

	_, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{BookingID: 1, Rating: 4})
	assert.ErrorIs(t, err, ErrForbidden)
}
