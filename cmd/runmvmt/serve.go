package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/db"
	"github.com/TheABX/runmvmtquiz-sub001/internal/logging"
	"github.com/TheABX/runmvmtquiz-sub001/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Starts the HTTP API. Results are stored in PostgreSQL when DATABASE_URL
is set; without it every scoring route still works and nothing is saved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			logger, err := logging.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			opts := server.Options{Logger: logger, Printer: a.pdf}
			if cfg.DatabaseURL != "" {
				database, err := openDatabase(cmd, cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer database.Close()
				opts.Store = database
			} else {
				logger.Warn("DATABASE_URL not set, results will not be stored")
			}

			return server.New(cfg, opts).Start(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config or 8080)")
	return cmd
}

// openDatabase connects and applies the schema.
func openDatabase(cmd *cobra.Command, url string) (*db.DB, error) {
	database, err := db.Connect(cmd.Context(), url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(cmd.Context()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}
