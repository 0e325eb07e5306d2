package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/ai"
	"github.com/daybreakbrief/news-bot/internal/adapters/articles"
	"github.com/daybreakbrief/news-bot/internal/adapters/config"
	"github.com/daybreakbrief/news-bot/internal/adapters/database"
	"github.com/daybreakbrief/news-bot/internal/adapters/gdelt"
	"github.com/daybreakbrief/news-bot/internal/adapters/metrics"
	redisAdapter "github.com/daybreakbrief/news-bot/internal/adapters/redis"
	"github.com/daybreakbrief/news-bot/internal/adapters/telegram"
	"github.com/daybreakbrief/news-bot/internal/extract"
	"github.com/daybreakbrief/news-bot/internal/pipeline"
	"github.com/daybreakbrief/news-bot/internal/sentiment"
	"github.com/daybreakbrief/news-bot/internal/workers"
	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/worker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Daybreak brief bot starting",
		zap.String("schedule", cfg.Pipeline.Schedule),
		zap.Int("top_n", cfg.Pipeline.TopN),
	)

	db, err := initDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// Sentiment lexicon load failure is fatal at startup, never per-call
	analyzer, err := sentiment.NewAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to initialize sentiment analyzer: %w", err)
	}

	client := gdelt.NewClient(&cfg.GDELT)
	vectors := gdelt.Vectors(&cfg.GDELT)
	repo := articles.NewRepository(db)

	p := pipeline.New(client, vectors, analyzer, repo, cfg.Pipeline.TopN)

	briefWorker := workers.NewBriefWorker(
		p,
		extract.NewExtractor(&cfg.Extract),
		initSummarizer(cfg),
		initNotifier(cfg),
		initMetrics(ctx, cfg),
		initRunLock(cfg),
		cfg.Pipeline.ExportDir,
	)

	runner := worker.NewCronRunner(ctx)
	if err := runner.Add(cfg.Pipeline.Schedule, briefWorker); err != nil {
		return fmt.Errorf("failed to schedule brief worker: %w", err)
	}

	runner.Start()

	if cfg.Pipeline.RunOnBoot {
		runner.RunNow(briefWorker)
	}

	<-ctx.Done()
	logger.Info("shutting down gracefully...")
	runner.Stop(30 * time.Second)

	return nil
}

// initDatabase connects to Postgres and applies migrations
func initDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(db.Conn(), "./migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// initSummarizer returns the configured summarizer or nil
func initSummarizer(cfg *config.Config) ai.Summarizer {
	if !cfg.OpenAI.Enabled {
		return nil
	}
	return ai.NewOpenAISummarizer(&cfg.OpenAI)
}

// initNotifier returns the Telegram notifier or nil when unconfigured
func initNotifier(cfg *config.Config) *telegram.Notifier {
	if cfg.Telegram.BotToken == "" {
		return nil
	}

	notifier, err := telegram.NewNotifier(&cfg.Telegram)
	if err != nil {
		logger.Error("failed to create telegram notifier", zap.Error(err))
		return nil
	}

	return notifier
}

// initMetrics returns the ClickHouse run-metrics sink or nil.
// Unavailability degrades to a log line, never a startup failure.
func initMetrics(ctx context.Context, cfg *config.Config) *metrics.Repository {
	if !cfg.ClickHouse.Enabled {
		return nil
	}

	ch, err := database.NewClickHouse(cfg.ClickHouse.DSN)
	if err != nil {
		logger.Warn("clickhouse not available, run metrics disabled", zap.Error(err))
		return nil
	}

	repo := metrics.NewRepository(ch)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Warn("clickhouse schema setup failed, run metrics disabled", zap.Error(err))
		return nil
	}

	return repo
}

// initRunLock returns the Redis run lock or nil when Redis is disabled
func initRunLock(cfg *config.Config) *redisAdapter.RunLock {
	if !cfg.Redis.Enabled {
		return nil
	}

	lock, err := redisAdapter.NewRunLock(&cfg.Redis)
	if err != nil {
		logger.Warn("redis not available, running without run lock", zap.Error(err))
		return nil
	}

	return lock
}
