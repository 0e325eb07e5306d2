// Command export runs a single fetch, score and rank cycle and writes
// the normalized records to a timestamped CSV, without touching the
// database. Useful for ad hoc scans and query tuning.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/config"
	"github.com/daybreakbrief/news-bot/internal/adapters/gdelt"
	"github.com/daybreakbrief/news-bot/internal/export"
	"github.com/daybreakbrief/news-bot/internal/pipeline"
	"github.com/daybreakbrief/news-bot/internal/sentiment"
	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

func main() {
	outDir := flag.String("out", "data", "directory for the CSV export")
	flag.Parse()

	if err := run(context.Background(), *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// discardStore satisfies the pipeline without persisting anything
type discardStore struct{}

func (discardStore) Upsert(_ context.Context, _ []models.NormalizedRecord) (int, int, error) {
	return 0, 0, nil
}

func run(ctx context.Context, outDir string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, ""); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	analyzer, err := sentiment.NewAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to initialize sentiment analyzer: %w", err)
	}

	client := gdelt.NewClient(&cfg.GDELT)
	vectors := gdelt.Vectors(&cfg.GDELT)

	p := pipeline.New(client, vectors, analyzer, discardStore{}, cfg.Pipeline.TopN)

	result, err := p.Run(ctx)
	if err != nil {
		return err
	}

	if len(result.Records) == 0 {
		logger.Warn("no articles fetched, nothing to export")
		return nil
	}

	path, err := export.SaveTimestamped(outDir, result.Records)
	if err != nil {
		return err
	}

	logger.Info("export complete",
		zap.String("path", path),
		zap.Int("records", len(result.Records)),
		zap.Int("vectors_failed", result.Stats.VectorsFailed),
	)

	return nil
}
