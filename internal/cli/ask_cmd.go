package cli

import (
	"fmt"

	"github.com/aumai/kisanmitra/internal/cli/formatter"
	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var query, location, language string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a farming question and get an advisory response",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				return runAskChat(app, location, language)
			}

			if query == "" {
				return fmt.Errorf("--query is required (or use --interactive)")
			}

			resp := app.Advisor.Respond(domain.Query{
				Text:     query,
				Language: language,
				Location: location,
			})
			fmt.Println(formatter.FormatAdvisory(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Your farming question")
	cmd.Flags().StringVar(&location, "location", "", "Your location for context")
	cmd.Flags().StringVar(&language, "language", "en", "Language code")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Start an interactive advisory chat")

	return cmd
}
