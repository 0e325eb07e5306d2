package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/database"
	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Repository handles database operations for scored articles
type Repository struct {
	db *database.DB
}

// NewRepository creates new articles repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Upsert writes the full record sequence keyed by url. An existing row
// is fully replaced field by field; a missing one is inserted. Running
// the same batch twice leaves the stored state unchanged and reports
// every record as updated. An empty batch returns (0, 0) without
// touching the connection.
func (r *Repository) Upsert(ctx context.Context, records []models.NormalizedRecord) (int, int, error) {
	if len(records) == 0 {
		return 0, 0, nil
	}

	tx, err := r.db.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// xmax = 0 distinguishes a fresh insert from a conflict update
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO articles_sentiment (
			url, title, domain, seendate, seen_at, language, sourcecountry,
			url_mobile, socialimage, sentiment_score, sentiment_label, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			domain = EXCLUDED.domain,
			seendate = EXCLUDED.seendate,
			seen_at = EXCLUDED.seen_at,
			language = EXCLUDED.language,
			sourcecountry = EXCLUDED.sourcecountry,
			url_mobile = EXCLUDED.url_mobile,
			socialimage = EXCLUDED.socialimage,
			sentiment_score = EXCLUDED.sentiment_score,
			sentiment_label = EXCLUDED.sentiment_label,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0) AS inserted
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	newCount := 0
	updatedCount := 0
	now := time.Now().UTC()

	for _, rec := range records {
		var inserted bool

		err := stmt.QueryRowContext(ctx,
			rec.URL,
			rec.Title,
			rec.Domain,
			rec.SeenDate,
			rec.SeenAt,
			rec.Language,
			rec.SourceCountry,
			rec.URLMobile,
			rec.SocialImage,
			rec.SentimentScore,
			rec.SentimentLabel,
			now,
		).Scan(&inserted)

		if err != nil {
			return 0, 0, fmt.Errorf("failed to upsert article %s: %w", rec.URL, err)
		}

		if inserted {
			newCount++
		} else {
			updatedCount++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit: %w", err)
	}

	logger.Info("articles synced",
		zap.Int("total", len(records)),
		zap.Int("new", newCount),
		zap.Int("updated", updatedCount),
	)

	return newCount, updatedCount, nil
}

// GetByURL fetches one stored record, nil when absent
func (r *Repository) GetByURL(ctx context.Context, url string) (*models.NormalizedRecord, error) {
	var rec models.NormalizedRecord

	err := r.db.DB().GetContext(ctx, &rec, `
		SELECT url, title, domain, seendate, seen_at, language, sourcecountry,
		       url_mobile, socialimage, sentiment_score, sentiment_label
		FROM articles_sentiment
		WHERE url = $1
	`, url)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query article: %w", err)
	}

	return &rec, nil
}

// Count returns the number of stored records
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB().GetContext(ctx, &count, `SELECT COUNT(*) FROM articles_sentiment`); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}
