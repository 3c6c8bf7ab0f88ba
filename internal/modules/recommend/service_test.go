package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"servicehub/internal/config"
	"servicehub/internal/domain"
)

type MockCandidateSource struct {
	mock.Mock
}

func (m *MockCandidateSource) GetOfferedByCategory(ctx context.Context, categoryID int64) ([]domain.Service, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockSlotResolver struct {
	mock.Mock
}

func (m *MockSlotResolver) HasFreeSlot(ctx context.Context, providerID int64, date time.Time) (bool, error) {
	args := m.Called(ctx, providerID, date)
	return args.Bool(0), args.Error(1)
}

func ptr(v float64) *float64 { return &v }

// 1 degree of longitude on the equator is ~111.19 km
const (
	lonFor5km = 5.0 / 111.19
	lonFor1km = 1.0 / 111.19
)

func testQuery() Query {
	return Query{
		CategoryID: 1,
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Latitude:   0,
		Longitude:  0,
	}
}

func TestParseQuery(t *testing.T) {
	_, err := ParseQuery("", "2024-06-01", "6.5", "3.4")
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = ParseQuery("1", "01/06/2024", "6.5", "3.4")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseQuery("1", "2024-06-01", "abc", "3.4")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = ParseQuery("1", "2024-06-01", "95.0", "3.4")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	q, err := ParseQuery("12", "2024-06-01", "6.5244", "3.3792")
	assert.NoError(t, err)
	assert.Equal(t, int64(12), q.CategoryID)
	assert.Equal(t, 6.5244, q.Latitude)
}

func TestService_Recommend_RanksByScore(t *testing.T) {
	candidates := new(MockCandidateSource)
	slots := new(MockSlotResolver)

	// provider A: rating 4.0, ~5 km away, price 100
	// provider B: rating 3.0, ~1 km away, price 200
	// avg price 150 -> A: -8 + 7.5 + 1.33 = 0.83, B: -6 + 1.5 + 2.67 = -1.83
	providerA := &domain.Provider{ID: 1, Rating: 4.0, Latitude: ptr(0), Longitude: ptr(lonFor5km)}
	providerB := &domain.Provider{ID: 2, Rating: 3.0, Latitude: ptr(0), Longitude: ptr(lonFor1km)}

	candidates.On("GetOfferedByCategory", mock.Anything, int64(1)).Return([]domain.Service{
		{ID: 10, ProviderID: 1, Title: "Deep clean", Price: 100, Provider: providerA},
		{ID: 20, ProviderID: 2, Title: "Standard clean", Price: 200, Provider: providerB},
	}, nil)
	slots.On("HasFreeSlot", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	service := NewService(candidates, slots, config.DefaultScoringWeights())

	ranked, err := service.Recommend(context.Background(), testQuery())

	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, int64(20), ranked[0].ServiceID)
	assert.Equal(t, int64(10), ranked[1].ServiceID)
	assert.InDelta(t, -1.83, ranked[0].Score, 0.02)
	assert.InDelta(t, 0.83, ranked[1].Score, 0.02)
	assert.Less(t, ranked[0].Score, ranked[1].Score)
}

func TestService_Recommend_HigherRatingRanksFirst(t *testing.T) {
	candidates := new(MockCandidateSource)
	slots := new(MockSlotResolver)

	// identical location and price, only the rating differs
	low := &domain.Provider{ID: 1, Rating: 3.0, Latitude: ptr(0), Longitude: ptr(0)}
	high := &domain.Provider{ID: 2, Rating: 4.5, Latitude: ptr(0), Longitude: ptr(0)}

	candidates.On("GetOfferedByCategory", mock.Anything, int64(1)).Return([]domain.Service{
		{ID: 10, ProviderID: 1, Price: 100, Provider: low},
		{ID: 20, ProviderID: 2, Price: 100, Provider: high},
	}, nil)
	slots.On("HasFreeSlot", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	service := NewService(candidates, slots, config.DefaultScoringWeights())

	ranked, err := service.Recommend(context.Background(), testQuery())

	assert.NoError(t, err)
	assert.Equal(t, int64(20), ranked[0].ServiceID)
	assert.Equal(t, int64(10), ranked[1].ServiceID)
}

func TestService_Recommend_SkipsProvidersWithoutCoordinates(t *testing.T) {
	candidates := new(MockCandidateSource)
	slots := new(MockSlotResolver)

	located := &domain.Provider{ID: 1, Rating: 4.0, Latitude: ptr(0), Longitude: ptr(0)}
	unlocated := &domain.Provider{ID: 2, Rating: 5.0}

	candidates.On("GetOfferedByCategory", mock.Anything, int64(1)).Return([]domain.Service{
		{ID: 10, ProviderID: 1, Price: 100, Provider: located},
		{ID: 20, ProviderID: 2, Price: 100, Provider: unlocated},
	}, nil)
	slots.On("HasFreeSlot", mock.Anything, int64(1), mock.Anything).Return(true, nil)

	service := NewService(candidates, slots, config.DefaultScoringWeights())

	ranked, err := service.Recommend(context.Background(), testQuery())

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.Equal(t, int64(10), ranked[0].ServiceID)
}

func TestService_Recommend_SkipsProvidersWithoutFreeSlots(t *testing.T) {
	candidates := new(MockCandidateSource)
	slots := new(MockSlotResolver)

	busy := &domain.Provider{ID: 1, Rating: 4.0, Latitude: ptr(0), Longitude: ptr(0)}
	free := &domain.Provider{ID: 2, Rating: 4.0, Latitude: ptr(0), Longitude: ptr(0)}

	candidates.On("GetOfferedByCategory", mock.Anything, int64(1)).Return([]domain.Service{
		{ID: 10, ProviderID: 1, Price: 100, Provider: busy},
		{ID: 20, ProviderID: 2, Price: 100, Provider: free},
	}, nil)
	slots.On("HasFreeSlot", mock.Anything, int64(1), mock.Anything).Return(false, nil)
	slots.On("HasFreeSlot", mock.Anything, int64(2), mock.Anything).Return(true, nil)

	service := NewService(candidates, slots, config.DefaultScoringWeights())

	ranked, err := service.Recommend(context.Background(), testQuery())

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.Equal(t, int64(20), ranked[0].ServiceID)
}

func TestService_Recommend_AveragePriceOverFullCandidateSet(t *testing.T) {
	candidates := new(MockCandidateSource)
	slots := new(MockSlotResolver)

	// the pricey unlocated provider is skipped from ranking but still
	// shapes the category average: avg 200, factor 100/200, score 0.5*2
	unlocated := &domain.Provider{ID: 1, Rating: 0}
	atUser := &domain.Provider{ID: 2, Rating: 0, Latitude: ptr(0), Longitude: ptr(0)}

	candidates.On("GetOfferedByCategory", mock.Anything, int64(1)).Return([]domain.Service{
		{ID: 10, ProviderID: 1, Price: 300, Provider: unlocated},
		{ID: 20, ProviderID: 2, Price: 100, Provider: atUser},
	}, nil)
	slots.On("HasFreeSlot", mock.Anything, int64(2), mock.Anything).Return(true, nil)

	service := NewService(candidates, slots, config.DefaultScoringWeights())

	ranked, err := service.Recommend(context.Background(), testQuery())

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.001)
}

func TestService_Recommend_StableOrderOnTies(t *testing.T) {
	candidates := new(MockCandidateSource)
	slots := new(MockSlotResolver)

	p1 := &domain.Provider{ID: 1, Rating: 4.0, Latitude: ptr(0), Longitude: ptr(0)}
	p2 := &domain.Provider{ID: 2, Rating: 4.0, Latitude: ptr(0), Longitude: ptr(0)}

	candidates.On("GetOfferedByCategory", mock.Anything, int64(1)).Return([]domain.Service{
		{ID: 10, ProviderID: 1, Price: 100, Provider: p1},
		{ID: 20, ProviderID: 2, Price: 100, Provider: p2},
	}, nil)
	slots.On("HasFreeSlot", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	service := NewService(candidates, slots, config.DefaultScoringWeights())

	ranked, err := service.Recommend(context.Background(), testQuery())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), ranked[0].ServiceID)
	assert.Equal(t, int64(20), ranked[1].ServiceID)
}

func TestService_Recommend_NoCandidates(t *testing.T) {
	candidates := new(MockCandidateSource)
	candidates.On("GetOfferedByCategory", mock.Anything, int64(1)).Return([]domain.Service{}, nil)

	service := NewService(candidates, new(MockSlotResolver), config.DefaultScoringWeights())

	_, err := service.Recommend(context.Background(), testQuery())
	assert.ErrorIs(t, err, ErrNoEligibleServices)
}
