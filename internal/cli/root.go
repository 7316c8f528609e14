package cli

import (
	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/catalog"
	"github.com/aumai/kisanmitra/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the components used by CLI commands.
type App struct {
	Prices  service.PriceService
	Imports service.ImportService
	Pests   *catalog.PestCatalog
	Advisor *advisory.Router

	// IsInteractive reports whether stdin is attached to a terminal.
	// The interactive chat and symptom picker refuse to start otherwise.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "kisanmitra" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kisanmitra",
		Short: "Farmer assistant with mandi prices, pest identification, and advisory answers",
	}

	root.AddCommand(
		newPricesCmd(app),
		newPestCmd(app),
		newAskCmd(app),
	)

	return root
}
