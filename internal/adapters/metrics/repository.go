package metrics

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Repository writes per-run pipeline statistics to ClickHouse.
// Purely observational: callers treat any failure here as a log line.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates new metrics repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the runs table if missing
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS pipeline_runs (
			started_at     DateTime,
			duration_ms    UInt64,
			vectors_total  UInt16,
			vectors_failed UInt16,
			fetched        UInt32,
			unique_count   UInt32,
			parse_misses   UInt32,
			positive       UInt32,
			negative       UInt32,
			neutral        UInt32,
			new_records    UInt32,
			updated        UInt32
		) ENGINE = MergeTree()
		ORDER BY started_at
	`)
	if err != nil {
		return fmt.Errorf("failed to create pipeline_runs table: %w", err)
	}
	return nil
}

// SaveRun inserts one run statistics row
func (r *Repository) SaveRun(ctx context.Context, stats models.RunStats) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pipeline_runs
		(started_at, duration_ms, vectors_total, vectors_failed, fetched, unique_count,
		 parse_misses, positive, negative, neutral, new_records, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		stats.StartedAt,
		uint64(stats.Duration.Milliseconds()),
		stats.VectorsTotal,
		stats.VectorsFailed,
		stats.Fetched,
		stats.Unique,
		stats.ParseMisses,
		stats.Positive,
		stats.Negative,
		stats.Neutral,
		stats.NewRecords,
		stats.Updated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run stats: %w", err)
	}

	logger.Debug("run stats saved to clickhouse",
		zap.Time("started_at", stats.StartedAt),
	)

	return nil
}
