package formatter

import (
	"testing"

	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleObservations() []*domain.PriceObservation {
	return []*domain.PriceObservation{
		{Commodity: "wheat", Market: "Khanna", State: "Punjab", MinPrice: 2100, MaxPrice: 2400, ModalPrice: 2250, Date: "2026-02-21"},
		{Commodity: "wheat", Market: "Azadpur", State: "Delhi", MinPrice: 2000, MaxPrice: 2350, ModalPrice: 2150, Date: "2026-02-20"},
	}
}

func TestFormatPriceList(t *testing.T) {
	out := FormatPriceList("wheat", "", sampleObservations())

	assert.Contains(t, out, "WHEAT")
	assert.Contains(t, out, "Khanna")
	assert.Contains(t, out, "2250")
	assert.Contains(t, out, "(Prices in INR per quintal)")
	assert.Contains(t, out, domain.Disclaimer)
}

func TestFormatPriceList_WithState(t *testing.T) {
	out := FormatPriceList("wheat", "Punjab", sampleObservations()[:1])
	assert.Contains(t, out, "State: Punjab")
}

func TestFormatPriceTrend(t *testing.T) {
	out := FormatPriceTrend("wheat", "Khanna", sampleObservations()[:1])

	assert.Contains(t, out, "WHEAT")
	assert.Contains(t, out, "Khanna")
	assert.Contains(t, out, "2026-02-21")
	assert.Contains(t, out, domain.Disclaimer)
}

func TestFormatNoPrices(t *testing.T) {
	out := FormatNoPrices("saffron", "Kerala")
	assert.Contains(t, out, `"saffron"`)
	assert.Contains(t, out, `"Kerala"`)
}
