package main

import (
	"fmt"
	"os"

	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/catalog"
	"github.com/aumai/kisanmitra/internal/cli"
	"github.com/aumai/kisanmitra/internal/db"
	"github.com/aumai/kisanmitra/internal/repository"
	"github.com/aumai/kisanmitra/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or in-memory by default. Price data is
	// session-scoped unless the user points KISANMITRA_DB at a file.
	dbPath := os.Getenv("KISANMITRA_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	priceRepo := repository.NewSQLitePriceRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	pests, err := catalog.New()
	if err != nil {
		return fmt.Errorf("loading pest catalogue: %w", err)
	}
	advisor, err := advisory.New()
	if err != nil {
		return fmt.Errorf("loading advisory rules: %w", err)
	}

	app := &cli.App{
		Prices:  service.NewPriceService(priceRepo),
		Imports: service.NewImportService(uow),
		Pests:   pests,
		Advisor: advisor,
	}

	// Detect interactive terminal for the chat and symptom picker.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
