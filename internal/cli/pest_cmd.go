package cli

import (
	"fmt"
	"strings"

	"github.com/aumai/kisanmitra/internal/cli/formatter"
	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/spf13/cobra"
)

// maxPestMatches caps how many ranked matches the CLI prints.
const maxPestMatches = 5

func newPestCmd(app *App) *cobra.Command {
	var symptoms, crop string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "pest",
		Short: "Identify pests from observed symptoms",
		RunE: func(cmd *cobra.Command, args []string) error {
			var observed []string
			if interactive {
				if !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				picked, err := runSymptomPicker(app.Pests)
				if err != nil {
					return err
				}
				observed = picked
			} else {
				if symptoms == "" {
					return fmt.Errorf("--symptoms is required (or use --interactive)")
				}
				observed = splitSymptoms(symptoms)
			}

			results := identifyPests(app, observed, crop)
			if len(results) == 0 {
				fmt.Println(formatter.FormatNoPestMatches())
				return nil
			}
			if len(results) > maxPestMatches {
				results = results[:maxPestMatches]
			}

			fmt.Println(formatter.FormatPestMatches(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&symptoms, "symptoms", "", "Comma-separated symptoms (e.g. 'yellow leaves,spots')")
	cmd.Flags().StringVar(&crop, "crop", "", "Crop name to filter results")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Pick symptoms from the catalogue vocabulary")

	cmd.AddCommand(newPestListCmd(app))

	return cmd
}

func newPestListCmd(app *App) *cobra.Command {
	var crop string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse the pest catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := app.Pests.All()
			if crop != "" {
				records = app.Pests.ByCrop(crop)
				if len(records) == 0 {
					fmt.Printf("No catalogued pests affect crop %q.\n", crop)
					return nil
				}
			}
			fmt.Println(formatter.FormatPestList(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&crop, "crop", "", "Only show pests affecting this crop")

	return cmd
}

// identifyPests runs identification, optionally narrowed to one crop.
// With a crop filter the ranking is intersected with the crop's candidate
// set; if nothing survives, the plain crop list is shown instead so the
// farmer still gets the relevant catalogue entries.
func identifyPests(app *App, symptoms []string, crop string) []domain.PestRecord {
	if crop == "" {
		return app.Pests.Identify(symptoms)
	}

	candidates := app.Pests.ByCrop(crop)
	candidateNames := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		candidateNames[c.Name] = true
	}

	var results []domain.PestRecord
	for _, r := range app.Pests.Identify(symptoms) {
		if candidateNames[r.Name] {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		return candidates
	}
	return results
}

// splitSymptoms splits a comma-separated symptom flag, dropping blanks.
func splitSymptoms(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
