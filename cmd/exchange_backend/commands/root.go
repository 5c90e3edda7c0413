package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_exchange/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	logger *slog.Logger
	cfg    *config.Config
)

// Execute runs the root command. Without a subcommand it behaves like serve.
func Execute() error {
	root := &cobra.Command{
		Use:           "exchange_backend",
		Short:         "Currency exchange rate service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize structured logger
			logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
			slog.SetDefault(logger)

			loaded, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", slog.String("error", err.Error()))
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(serveCmd(), migrateCmd())

	err := root.ExecuteContext(context.Background())
	if err != nil && logger != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
	}
	return err
}
