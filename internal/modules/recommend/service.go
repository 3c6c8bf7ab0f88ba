package recommend

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"servicehub/internal/config"
	"servicehub/internal/pkg/geo"
)

const dateLayout = "2006-01-02"

// Service ranks candidate (provider, service) pairs for a customer query.
// Weights come from configuration at construction time, not ambient
// constants; the stock weighting is (rating 2, distance 1.5, price 2).
type Service struct {
	candidates CandidateSource
	slots      SlotResolver
	weights    config.ScoringWeights
}

func NewService(candidates CandidateSource, slots SlotResolver, weights config.ScoringWeights) *Service {
	return &Service{
		candidates: candidates,
		slots:      slots,
		weights:    weights,
	}
}

// ParseQuery validates the raw query parameters. All four are required;
// parse failures map to the typed errors the handler translates.
func ParseQuery(categoryID, date, lat, lng string) (Query, error) {
	if categoryID == "" || date == "" || lat == "" || lng == "" {
		return Query{}, ErrMissingParameter
	}

	cid, err := strconv.ParseInt(categoryID, 10, 64)
	if err != nil {
		return Query{}, ErrMissingParameter
	}

	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return Query{}, ErrInvalidDate
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Query{}, ErrInvalidCoordinate
	}
	lngF, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return Query{}, ErrInvalidCoordinate
	}
	if !geo.Valid(latF, lngF) {
		return Query{}, ErrInvalidCoordinate
	}

	return Query{
		CategoryID: cid,
		Date:       d.UTC(),
		Latitude:   latF,
		Longitude:  lngF,
	}, nil
}

// Recommend returns the ranked candidates for the query, ascending by
// score. The average price is taken over every offered service in the
// category before the coordinate/slot skips, so skipped providers still
// shape the price factor. An empty result after skips is valid and
// distinct from ErrNoEligibleServices, which means the category had no
// offered services at all.
func (s *Service) Recommend(ctx context.Context, q Query) ([]RankedCandidate, error) {
	services, err := s.candidates.GetOfferedByCategory(ctx, q.CategoryID)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, ErrNoEligibleServices
	}

	var sum float64
	for _, svc := range services {
		sum += svc.Price
	}
	avgPrice := sum / float64(len(services))

	userLoc := geo.Point{Latitude: q.Latitude, Longitude: q.Longitude}

	out := make([]RankedCandidate, 0, len(services))
	for _, svc := range services {
		provider := svc.Provider
		if provider == nil || !provider.HasCoordinates() {
			continue
		}

		free, err := s.slots.HasFreeSlot(ctx, provider.ID, q.Date)
		if err != nil {
			return nil, err
		}
		if !free {
			continue
		}

		distanceKm := geo.Distance(userLoc, geo.Point{
			Latitude:  *provider.Latitude,
			Longitude: *provider.Longitude,
		})

		priceFactor := 1.0
		if avgPrice > 0 {
			priceFactor = svc.Price / avgPrice
		}

		score := -provider.Rating*s.weights.Rating +
			distanceKm*s.weights.Distance +
			priceFactor*s.weights.Price

		out = append(out, RankedCandidate{
			Provider:     provider,
			ServiceID:    svc.ID,
			ServiceTitle: svc.Title,
			Price:        svc.Price,
			DistanceKm:   round2(distanceKm),
			Score:        score,
		})
	}

	// stable: equal scores keep candidate fetch order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })

	for i := range out {
		out[i].Score = round2(out[i].Score)
	}

	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
