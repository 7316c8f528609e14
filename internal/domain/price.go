package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the zero-padded calendar date format for price observations.
// Lexicographic comparison of dates in this layout matches chronological
// order, which the repository relies on when sorting.
const DateLayout = "2006-01-02"

// ErrInvalidValue is the sentinel wrapped by every observation validation
// failure. It is the only validation error in the system.
var ErrInvalidValue = errors.New("invalid value")

// PriceObservation is a single mandi price record for a commodity.
// Prices are in INR per quintal. Observations are immutable once stored;
// the repository never updates or deletes them.
type PriceObservation struct {
	ID         string
	Commodity  string
	Market     string
	State      string
	MinPrice   float64
	MaxPrice   float64
	ModalPrice float64
	Date       string // YYYY-MM-DD
}

// Validate checks the observation invariants: all three prices must be
// non-negative and Date must parse as a zero-padded YYYY-MM-DD date.
// No ordering is enforced between min/modal/max — observed mandi data can
// be genuinely inconsistent and is stored as reported.
func (p *PriceObservation) Validate() error {
	if p.Commodity == "" {
		return fmt.Errorf("commodity is required: %w", ErrInvalidValue)
	}
	if p.MinPrice < 0 {
		return fmt.Errorf("min price %.2f is negative: %w", p.MinPrice, ErrInvalidValue)
	}
	if p.MaxPrice < 0 {
		return fmt.Errorf("max price %.2f is negative: %w", p.MaxPrice, ErrInvalidValue)
	}
	if p.ModalPrice < 0 {
		return fmt.Errorf("modal price %.2f is negative: %w", p.ModalPrice, ErrInvalidValue)
	}
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return fmt.Errorf("date %q is not a valid YYYY-MM-DD date: %w", p.Date, ErrInvalidValue)
	}
	return nil
}
