package testutil

import (
	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/google/uuid"
)

// ObservationOption mutates a fixture observation.
type ObservationOption func(*domain.PriceObservation)

func WithMarket(market, state string) ObservationOption {
	return func(o *domain.PriceObservation) {
		o.Market = market
		o.State = state
	}
}

func WithDate(date string) ObservationOption {
	return func(o *domain.PriceObservation) {
		o.Date = date
	}
}

func WithPrices(min, max, modal float64) ObservationOption {
	return func(o *domain.PriceObservation) {
		o.MinPrice = min
		o.MaxPrice = max
		o.ModalPrice = modal
	}
}

// NewObservation builds a valid price observation for the given commodity
// with sensible defaults, then applies the options.
func NewObservation(commodity string, opts ...ObservationOption) *domain.PriceObservation {
	obs := &domain.PriceObservation{
		ID:         uuid.New().String(),
		Commodity:  commodity,
		Market:     "Azadpur",
		State:      "Delhi",
		MinPrice:   1800,
		MaxPrice:   2200,
		ModalPrice: 2000,
		Date:       "2026-02-26",
	}
	for _, opt := range opts {
		opt(obs)
	}
	return obs
}
