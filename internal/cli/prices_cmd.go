package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aumai/kisanmitra/internal/cli/formatter"
	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/aumai/kisanmitra/internal/service"
	"github.com/spf13/cobra"
)

func newPricesCmd(app *App) *cobra.Command {
	var commodity, state string

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show mandi prices for a commodity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := seedIfEmpty(ctx, app); err != nil {
				return err
			}

			results, err := app.Prices.Query(ctx, commodity, state)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println(formatter.FormatNoPrices(commodity, state))
				return nil
			}

			fmt.Println(formatter.FormatPriceList(commodity, state, results))
			return nil
		},
	}

	cmd.Flags().StringVar(&commodity, "commodity", "", "Commodity name (e.g. rice, wheat)")
	cmd.Flags().StringVar(&state, "state", "", "Filter by state name (e.g. UP, Maharashtra)")
	_ = cmd.MarkFlagRequired("commodity")

	cmd.AddCommand(
		newPricesTrendCmd(app),
		newPricesImportCmd(app),
	)

	return cmd
}

func newPricesTrendCmd(app *App) *cobra.Command {
	var commodity, market string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show chronological prices for a commodity at one market",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := seedIfEmpty(ctx, app); err != nil {
				return err
			}

			results, err := app.Prices.Trend(ctx, commodity, market)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Printf("No price data found for commodity %q at market %q.\n", commodity, market)
				return nil
			}

			fmt.Println(formatter.FormatPriceTrend(commodity, market, results))
			return nil
		},
	}

	cmd.Flags().StringVar(&commodity, "commodity", "", "Commodity name")
	cmd.Flags().StringVar(&market, "market", "", "Mandi/market name")
	_ = cmd.MarkFlagRequired("commodity")
	_ = cmd.MarkFlagRequired("market")

	return cmd
}

func newPricesImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import price observations from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Imports.ImportPrices(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d price observations\n", result.Count)
			return nil
		},
	}
}

// seedIfEmpty loads the demonstration records when the store has no data,
// so the prices commands have something to show out of the box.
func seedIfEmpty(ctx context.Context, app *App) error {
	all, err := app.Prices.All(ctx)
	if err != nil {
		return err
	}
	if len(all) > 0 {
		return nil
	}
	return service.SeedSample(ctx, app.Prices, time.Now().Format(domain.DateLayout))
}
