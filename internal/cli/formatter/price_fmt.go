package formatter

import (
	"fmt"
	"strings"

	"github.com/aumai/kisanmitra/internal/domain"
)

// FormatPriceList renders mandi price records as an aligned table with the
// per-quintal footnote and the disclaimer footer.
func FormatPriceList(commodity, state string, observations []*domain.PriceObservation) string {
	title := "Mandi Prices: " + strings.ToUpper(commodity)
	if state != "" {
		title += " | State: " + state
	}

	rows := make([][]string, 0, len(observations))
	for _, o := range observations {
		rows = append(rows, []string{
			o.Market,
			o.State,
			fmt.Sprintf("%.0f", o.MinPrice),
			fmt.Sprintf("%.0f", o.MaxPrice),
			fmt.Sprintf("%.0f", o.ModalPrice),
			o.Date,
		})
	}

	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"Market", "State", "Min", "Max", "Modal", "Date"}, rows))
	b.WriteString(Dim("(Prices in INR per quintal)"))
	b.WriteString("\n\n")
	b.WriteString(DisclaimerFooter())
	return b.String()
}

// FormatPriceTrend renders the chronological price series for one market.
func FormatPriceTrend(commodity, market string, observations []*domain.PriceObservation) string {
	rows := make([][]string, 0, len(observations))
	for _, o := range observations {
		rows = append(rows, []string{
			o.Date,
			fmt.Sprintf("%.0f", o.MinPrice),
			fmt.Sprintf("%.0f", o.MaxPrice),
			fmt.Sprintf("%.0f", o.ModalPrice),
		})
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Price Trend: %s @ %s", strings.ToUpper(commodity), market)))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"Date", "Min", "Max", "Modal"}, rows))
	b.WriteString(Dim("(Prices in INR per quintal)"))
	b.WriteString("\n\n")
	b.WriteString(DisclaimerFooter())
	return b.String()
}

// FormatNoPrices renders the empty-result message for a price query.
func FormatNoPrices(commodity, state string) string {
	msg := fmt.Sprintf("No price data found for commodity %q", commodity)
	if state != "" {
		msg += fmt.Sprintf(" in state %q", state)
	}
	return msg + ".\n" + Dim("Note: use 'prices import' to load observations, or connect to Agmarknet for live prices.")
}
