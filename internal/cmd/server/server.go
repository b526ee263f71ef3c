// Package server parses service flags and launches the HTTP API service.
package server

import (
	"context"
	"flag"
	"fmt"

	"github.com/louisbranch/referencehub/internal/app"
	entrypoint "github.com/louisbranch/referencehub/internal/platform/cmd"
)

// Config holds server command configuration.
type Config struct {
	Port   int    `env:"REFERENCEHUB_PORT" envDefault:"8080"`
	DBPath string `env:"REFERENCEHUB_DB_PATH" envDefault:"data/referencehub.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The HTTP server port")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the SQLite database file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the HTTP API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(context.Context) error {
		srv, err := app.NewServer(ctx, app.Config{
			HTTPAddr: fmt.Sprintf(":%d", cfg.Port),
			DBPath:   cfg.DBPath,
		})
		if err != nil {
			return err
		}
		defer srv.Close()
		return srv.ListenAndServe(ctx)
	})
}
