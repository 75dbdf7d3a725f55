package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/wonny/euroquote/internal/external/euronext"
	"github.com/wonny/euroquote/internal/snapshot"
	"github.com/wonny/euroquote/pkg/config"
	"github.com/wonny/euroquote/pkg/database"
	"github.com/wonny/euroquote/pkg/httputil"
	"github.com/wonny/euroquote/pkg/logger"
)

// loadRuntime loads config and builds a logger writing to logOut
func loadRuntime(logOut io.Writer) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.NewTo(cfg, logOut), nil
}

// newQuoteClient wires the Euronext client on top of the shared HTTP client
func newQuoteClient(cfg *config.Config, log *logger.Logger) *euronext.Client {
	httpClient := httputil.New(cfg, log)
	return euronext.NewClient(httpClient, cfg.Euronext, log)
}

// openStore connects to the database and returns the snapshot repository.
// The caller closes the returned DB.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*database.DB, *snapshot.Repository, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}

	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Info("Connected to database")
	return db, snapshot.NewRepository(db.Pool), nil
}
