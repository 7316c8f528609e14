package cli

import (
	"fmt"

	"github.com/aumai/kisanmitra/internal/catalog"
	"github.com/charmbracelet/huh"
)

// runSymptomPicker collects observed symptoms via a themed multi-select
// over the catalogue's symptom vocabulary.
func runSymptomPicker(pests *catalog.PestCatalog) ([]string, error) {
	vocab := pests.SymptomVocabulary()
	options := make([]huh.Option[string], 0, len(vocab))
	for _, s := range vocab {
		options = append(options, huh.NewOption(s, s))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Observed Symptoms").
				Description("Pick everything you can see on the crop").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(kisanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("collecting symptoms: %w", err)
	}
	return selected, nil
}
