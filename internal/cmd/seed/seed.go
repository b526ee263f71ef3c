// Package seed parses seeder flags and loads a fixture into the store.
package seed

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/referencehub/internal/platform/cmd"
	"github.com/louisbranch/referencehub/internal/seed"
	"github.com/louisbranch/referencehub/internal/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath  string `env:"REFERENCEHUB_DB_PATH" envDefault:"data/referencehub.db"`
	Fixture string `env:"REFERENCEHUB_SEED_FIXTURE" envDefault:"seed.json"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the SQLite database file")
	fs.StringVar(&cfg.Fixture, "fixture", cfg.Fixture, "Path to the JSON seed fixture")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the fixture and applies it to the store.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(context.Context) error {
		fixture, err := seed.Load(cfg.Fixture)
		if err != nil {
			return err
		}
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()
		return seed.Apply(ctx, store, fixture)
	})
}
