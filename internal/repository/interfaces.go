package repository

import (
	"context"

	"github.com/aumai/kisanmitra/internal/domain"
)

// PriceRepo is the append-only store of mandi price observations.
// All query methods are total over their input: unknown commodities,
// states, or markets yield an empty slice, never an error.
type PriceRepo interface {
	// Add appends an observation. Duplicates are retained; records are
	// never updated or deleted.
	Add(ctx context.Context, obs *domain.PriceObservation) error

	// Query returns observations for a commodity, matched case-insensitively,
	// newest date first. A non-empty state narrows the result the same way.
	// Records sharing a date come back in insertion order.
	Query(ctx context.Context, commodity, state string) ([]*domain.PriceObservation, error)

	// Trend returns observations for a commodity at one market, oldest date
	// first, for time-series consumption.
	Trend(ctx context.Context, commodity, market string) ([]*domain.PriceObservation, error)

	// All returns every stored observation in insertion order. The returned
	// slice is a snapshot; mutating it does not affect the store.
	All(ctx context.Context) ([]*domain.PriceObservation, error)
}
