package service

import (
	"context"
	"fmt"

	"github.com/aumai/kisanmitra/internal/domain"
)

// SampleObservations returns the demonstration price records used by the
// CLI when no data has been imported, all dated to the given day.
func SampleObservations(date string) []*domain.PriceObservation {
	return []*domain.PriceObservation{
		{Commodity: "rice", Market: "Azadpur", State: "Delhi", MinPrice: 1800, MaxPrice: 2200, ModalPrice: 2000, Date: date},
		{Commodity: "rice", Market: "Lucknow", State: "UP", MinPrice: 1750, MaxPrice: 2100, ModalPrice: 1950, Date: date},
		{Commodity: "rice", Market: "Patna", State: "Bihar", MinPrice: 1700, MaxPrice: 2050, ModalPrice: 1900, Date: date},
		{Commodity: "wheat", Market: "Azadpur", State: "Delhi", MinPrice: 2000, MaxPrice: 2350, ModalPrice: 2150, Date: date},
		{Commodity: "wheat", Market: "Lucknow", State: "UP", MinPrice: 1950, MaxPrice: 2300, ModalPrice: 2100, Date: date},
		{Commodity: "cotton", Market: "Akola", State: "Maharashtra", MinPrice: 6000, MaxPrice: 6800, ModalPrice: 6400, Date: date},
		{Commodity: "cotton", Market: "Warangal", State: "Telangana", MinPrice: 5900, MaxPrice: 6700, ModalPrice: 6300, Date: date},
		{Commodity: "onion", Market: "Nashik", State: "Maharashtra", MinPrice: 1200, MaxPrice: 2000, ModalPrice: 1600, Date: date},
		{Commodity: "potato", Market: "Agra", State: "UP", MinPrice: 800, MaxPrice: 1200, ModalPrice: 1000, Date: date},
	}
}

// SeedSample loads the demonstration records into the store.
func SeedSample(ctx context.Context, prices PriceService, date string) error {
	for _, obs := range SampleObservations(date) {
		if err := prices.Add(ctx, obs); err != nil {
			return fmt.Errorf("seeding sample prices: %w", err)
		}
	}
	return nil
}
