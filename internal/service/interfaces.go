package service

import (
	"context"

	"github.com/aumai/kisanmitra/internal/domain"
)

type PriceService interface {
	// Add validates the observation and appends it to the store.
	// Validation failures wrap domain.ErrInvalidValue.
	Add(ctx context.Context, obs *domain.PriceObservation) error
	Query(ctx context.Context, commodity, state string) ([]*domain.PriceObservation, error)
	Trend(ctx context.Context, commodity, market string) ([]*domain.PriceObservation, error)
	All(ctx context.Context) ([]*domain.PriceObservation, error)
}

// ImportResult summarises a completed bulk price import.
type ImportResult struct {
	Count int
}

type ImportService interface {
	// ImportPrices loads observations from a JSON file and stores them in a
	// single transaction. One invalid record rolls back the whole import.
	ImportPrices(ctx context.Context, filePath string) (*ImportResult, error)
}
