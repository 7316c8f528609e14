package formatter

import (
	"strings"

	"github.com/aumai/kisanmitra/internal/domain"
)

// FormatAdvisory renders an advisory response with its sources and the
// disclaimer footer.
func FormatAdvisory(resp domain.Response) string {
	var b strings.Builder
	b.WriteString(Header("Advisory Response"))
	b.WriteString("\n")
	b.WriteString(resp.Answer)
	b.WriteString("\n")

	if len(resp.Sources) > 0 {
		b.WriteString("\nSources:\n")
		for _, s := range resp.Sources {
			b.WriteString("  - " + Dim(s) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(DisclaimerFooter())
	return b.String()
}

// FormatChatWelcome renders the greeting shown when the interactive
// advisory chat starts.
func FormatChatWelcome() string {
	return Header("KisanMitra Advisory Chat") + "\n" +
		Dim("Ask about prices, pests, fertilizers, irrigation, seeds, weather, loans, insurance, or MSP. Esc to quit.")
}

// FormatChatAnswer renders one chat turn's answer with its sources.
func FormatChatAnswer(resp domain.Response) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("KisanMitra: "))
	b.WriteString(resp.Answer)
	if len(resp.Sources) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("Sources: " + strings.Join(resp.Sources, "; ")))
	}
	return b.String()
}
