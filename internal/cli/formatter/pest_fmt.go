package formatter

import (
	"fmt"
	"strings"

	"github.com/aumai/kisanmitra/internal/domain"
)

// FormatPestMatches renders ranked identification results. Position in the
// list conveys relative confidence.
func FormatPestMatches(records []domain.PestRecord) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Pest Identification Results (%d match(es))", len(records))))
	b.WriteString("\n")

	for i, r := range records {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, Bold(r.Name)))
		b.WriteString(fmt.Sprintf("   Affected Crops: %s\n", strings.Join(r.AffectedCrops, ", ")))
		b.WriteString(fmt.Sprintf("   Symptoms: %s\n", Dim(strings.Join(r.Symptoms, "; "))))
		b.WriteString("   Treatment:\n")
		for _, t := range r.Treatment {
			b.WriteString(fmt.Sprintf("     - %s\n", t))
		}
		b.WriteString("   Prevention:\n")
		for _, p := range r.Prevention {
			b.WriteString(fmt.Sprintf("     - %s\n", p))
		}
		b.WriteString("\n")
	}

	b.WriteString(DisclaimerFooter())
	return b.String()
}

// FormatPestList renders the catalogue (optionally pre-filtered by crop)
// as a compact table.
func FormatPestList(records []domain.PestRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Name,
			strings.Join(r.AffectedCrops, ", "),
			strings.Join(r.Symptoms, "; "),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Pest Catalogue"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"Name", "Affected Crops", "Symptoms"}, rows))
	return b.String()
}

// FormatNoPestMatches renders the empty-result guidance for identification.
func FormatNoPestMatches() string {
	return "No matching pests found. Try different symptom keywords.\n" +
		Dim("Common symptoms: yellowing, wilting, spots, holes, rotting, stunted growth")
}
