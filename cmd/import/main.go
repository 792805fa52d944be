// cmd/import/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/liza-toph/catalog-ingress/pkg/builder"
	"github.com/liza-toph/catalog-ingress/pkg/config"
	"github.com/liza-toph/catalog-ingress/pkg/feed"
	"github.com/liza-toph/catalog-ingress/pkg/pipeline"
	"github.com/liza-toph/catalog-ingress/pkg/store"
)

func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Import failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	target := "development"
	if cfg.Production {
		target = "production"
	}
	logger.Info("Starting product import",
		zap.String("target", target),
		zap.Bool("promoteOnImport", cfg.PromoteOnImport),
		zap.Bool("multiSelectAsArrays", cfg.MultiSelectAsArrays))

	client, err := feed.NewCSVClient(cfg.FeedURL, cfg.FetchTimeout, logger)
	if err != nil {
		return fmt.Errorf("creating feed client: %w", err)
	}

	pipe, err := pipeline.New(client, builder.New(cfg.PromoteOnImport), logger)
	if err != nil {
		return fmt.Errorf("creating pipeline: %w", err)
	}

	products, report, err := pipe.Run(ctx)
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, cfg.DatabaseURL, store.Options{
		MultiSelectAsArrays: cfg.MultiSelectAsArrays,
		MaxOpenConns:        cfg.MaxOpenConns,
		MaxIdleConns:        cfg.MaxIdleConns,
		ConnMaxLifetime:     cfg.ConnMaxLifetime,
		ConnMaxIdleTime:     cfg.ConnMaxIdleTime,
	}, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	written, err := st.Upsert(ctx, products)
	if err != nil {
		return err
	}
	report.RowsWritten = written
	report.Complete()

	logger.Info("Import complete",
		zap.String("runID", report.RunID),
		zap.String("target", target),
		zap.Int("rowsFetched", report.RowsFetched),
		zap.Int("rowsEligible", report.RowsEligible),
		zap.Int("rowsDropped", report.RowsDropped),
		zap.Int("rowsWritten", report.RowsWritten),
		zap.Duration("duration", report.Duration))

	return nil
}

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	if format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	return zcfg.Build()
}
