package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vangoframework/wms/internal/database"
	"github.com/vangoframework/wms/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wms",
	Short: "WMS personnel and work order manager",
	Long: `wms serves the personnel and work order screens and can print
the same filtered, paginated lists from the command line.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(workCmd)
}

// backend is the repository a command works against.
type backend struct {
	repo   store.Repository
	health func(ctx context.Context) error
	close  func()
}

// openBackend connects to PostgreSQL when databaseURL is set and falls back
// to the embedded fixtures otherwise.
func openBackend(ctx context.Context, databaseURL string, logger *slog.Logger) (*backend, error) {
	fixtures, err := store.DefaultFixtures()
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	if databaseURL == "" {
		logger.Info("using in-memory store")
		return &backend{repo: store.NewMemory(fixtures), close: func() {}}, nil
	}

	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	pg := store.NewPostgres(db)
	if err := pg.Seed(ctx, fixtures); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed database: %w", err)
	}
	logger.Info("using postgres store")
	return &backend{repo: pg, health: db.Health, close: db.Close}, nil
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
