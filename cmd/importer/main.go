package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bcre/importer/internal/config"
	"github.com/bcre/importer/internal/database"
	"github.com/bcre/importer/internal/importer"
	"github.com/bcre/importer/internal/logging"
	"github.com/bcre/importer/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "importer",
		Usage: "Import realtor and listing CSV data into PostgreSQL",
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Import a CSV file for one entity kind",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "model",
						Aliases:  []string{"m"},
						Usage:    "Entity kind to import: realtor (alias: agent) or listing",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the CSV file",
						Required: true,
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the read-only JSON API over imported data",
				Action: serveCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// bootstrap loads .env and config, sets up logging, and connects the pool.
func bootstrap(ctx context.Context) (*config.Config, *pgxpool.Pool, *slog.Logger, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cfg.Import.LogFile)
	if err != nil {
		return nil, nil, nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return cfg, pool, logger, nil
}

func importCommand(c *cli.Context) error {
	ctx := c.Context

	cfg, pool, logger, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	runner := importer.NewRunner(
		database.NewStore(pool),
		importer.NewLogSink(logger),
		importer.Options{
			Strategy:   importer.Strategy(cfg.Import.Strategy),
			DatePolicy: importer.DatePolicy(cfg.Import.DateDefault),
		},
	)

	result, err := runner.Run(ctx, c.String("model"), c.String("file"))
	if err != nil {
		return err
	}

	fmt.Printf("Successfully imported %d %ss (%d rows read, %d skipped)\n",
		result.Persisted, result.Model, result.TotalRows, result.SkippedCount())
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx := c.Context

	cfg, pool, logger, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	server := web.NewServer(database.NewStore(pool), cfg)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr())
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
