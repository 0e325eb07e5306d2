package testdb

import (
	"context"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/daybreakbrief/news-bot/internal/adapters/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS articles_sentiment (
    url             TEXT PRIMARY KEY,
    title           TEXT NOT NULL DEFAULT '',
    domain          TEXT NOT NULL DEFAULT '',
    seendate        TEXT NOT NULL DEFAULT '',
    seen_at         TIMESTAMPTZ,
    language        TEXT NOT NULL DEFAULT '',
    sourcecountry   TEXT NOT NULL DEFAULT '',
    url_mobile      TEXT NOT NULL DEFAULT '',
    socialimage     TEXT NOT NULL DEFAULT '',
    sentiment_score DOUBLE PRECISION NOT NULL DEFAULT 0,
    sentiment_label TEXT NOT NULL DEFAULT 'Neutral',
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Setup connects to the test database, ensures the schema and leaves an
// empty articles table. Tests are skipped when TEST_DATABASE_URL is not
// set so the suite stays runnable without infrastructure.
func Setup(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := database.NewFromDSN(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	ctx := context.Background()

	if _, err := db.DB().ExecContext(ctx, schema); err != nil {
		db.Close()
		t.Fatalf("failed to ensure schema: %v", err)
	}

	if _, err := db.DB().ExecContext(ctx, `TRUNCATE articles_sentiment`); err != nil {
		db.Close()
		t.Fatalf("failed to truncate articles table: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
