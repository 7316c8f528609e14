package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validObservation() PriceObservation {
	return PriceObservation{
		ID:         "obs-1",
		Commodity:  "wheat",
		Market:     "Azadpur",
		State:      "Delhi",
		MinPrice:   2100,
		MaxPrice:   2300,
		ModalPrice: 2200,
		Date:       "2026-02-20",
	}
}

func TestPriceObservation_Validate_Valid(t *testing.T) {
	obs := validObservation()
	require.NoError(t, obs.Validate())
}

func TestPriceObservation_Validate_ZeroPricesAllowed(t *testing.T) {
	obs := validObservation()
	obs.MinPrice = 0
	obs.MaxPrice = 0
	obs.ModalPrice = 0
	assert.NoError(t, obs.Validate())
}

func TestPriceObservation_Validate_NegativePrices(t *testing.T) {
	for name, mutate := range map[string]func(*PriceObservation){
		"min":   func(o *PriceObservation) { o.MinPrice = -1 },
		"max":   func(o *PriceObservation) { o.MaxPrice = -0.01 },
		"modal": func(o *PriceObservation) { o.ModalPrice = -500 },
	} {
		t.Run(name, func(t *testing.T) {
			obs := validObservation()
			mutate(&obs)
			err := obs.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestPriceObservation_Validate_EmptyCommodity(t *testing.T) {
	obs := validObservation()
	obs.Commodity = ""
	err := obs.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestPriceObservation_Validate_BadDates(t *testing.T) {
	for _, date := range []string{"", "2026-2-20", "20-02-2026", "2026-13-01", "2026-02-30", "yesterday"} {
		t.Run(date, func(t *testing.T) {
			obs := validObservation()
			obs.Date = date
			err := obs.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestPriceObservation_Validate_InconsistentPricesAccepted(t *testing.T) {
	// Mandi data is stored as reported, even when min > max.
	obs := validObservation()
	obs.MinPrice = 2500
	obs.MaxPrice = 2000
	obs.ModalPrice = 3000
	assert.NoError(t, obs.Validate())
}
