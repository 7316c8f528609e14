package service

import (
	"context"

	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/aumai/kisanmitra/internal/repository"
	"github.com/google/uuid"
)

type priceService struct {
	prices repository.PriceRepo
}

func NewPriceService(prices repository.PriceRepo) PriceService {
	return &priceService{prices: prices}
}

func (s *priceService) Add(ctx context.Context, obs *domain.PriceObservation) error {
	if err := obs.Validate(); err != nil {
		return err
	}
	if obs.ID == "" {
		obs.ID = uuid.New().String()
	}
	return s.prices.Add(ctx, obs)
}

func (s *priceService) Query(ctx context.Context, commodity, state string) ([]*domain.PriceObservation, error) {
	return s.prices.Query(ctx, commodity, state)
}

func (s *priceService) Trend(ctx context.Context, commodity, market string) ([]*domain.PriceObservation, error) {
	return s.prices.Trend(ctx, commodity, market)
}

func (s *priceService) All(ctx context.Context) ([]*domain.PriceObservation, error) {
	return s.prices.All(ctx)
}
