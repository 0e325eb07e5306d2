package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/gdelt"
	"github.com/daybreakbrief/news-bot/internal/sentiment"
	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Fetcher executes the configured query vectors against the news source
type Fetcher interface {
	FetchAll(ctx context.Context, vectors []gdelt.QueryVector) []models.VectorResult
}

// ArticleStore persists the normalized record set keyed by URL
type ArticleStore interface {
	Upsert(ctx context.Context, records []models.NormalizedRecord) (newCount, updatedCount int, err error)
}

// Pipeline runs one fetch, merge, score, rank and persist cycle
type Pipeline struct {
	fetcher  Fetcher
	vectors  []gdelt.QueryVector
	analyzer *sentiment.Analyzer
	store    ArticleStore
	topN     int
}

// Result carries everything a run produced. Selection and Stats are
// valid even when persistence failed; the worker decides what to do with
// the partial outcome.
type Result struct {
	Records   []models.NormalizedRecord
	Selection models.RankedSelection
	Stats     models.RunStats
}

// New creates new pipeline
func New(fetcher Fetcher, vectors []gdelt.QueryVector, analyzer *sentiment.Analyzer, store ArticleStore, topN int) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		vectors:  vectors,
		analyzer: analyzer,
		store:    store,
		topN:     topN,
	}
}

// Run executes one full cycle. Vector failures and timestamp parse
// misses are recovered locally and only counted. The returned error is
// non-nil only for the persistence stage; even then the Result holds the
// computed records, selection and stats so the ranked URLs are not lost.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	results := p.fetcher.FetchAll(ctx, p.vectors)

	stats := models.RunStats{
		StartedAt:    start,
		VectorsTotal: len(results),
	}

	fetched := 0
	for _, res := range results {
		fetched += len(res.Articles)
		if res.Err != nil {
			stats.VectorsFailed++
		}
	}
	stats.Fetched = fetched

	merged, contributions := Merge(results)
	stats.Unique = len(merged)
	stats.Contributions = contributions

	records := make([]models.NormalizedRecord, 0, len(merged))
	for _, article := range merged {
		score := p.analyzer.Score(article.Title)
		label := sentiment.Label(score)

		record := Normalize(article, score, label)
		if record.SeenAt == nil {
			stats.ParseMisses++
		}

		switch label {
		case models.LabelPositive:
			stats.Positive++
		case models.LabelNegative:
			stats.Negative++
		default:
			stats.Neutral++
		}

		records = append(records, record)
	}

	selection := Rank(records, p.topN)

	result := &Result{
		Records:   records,
		Selection: selection,
		Stats:     stats,
	}

	if len(records) == 0 {
		// A fully empty run is a normal, reportable outcome
		logger.Warn("no articles after merge, skipping persistence",
			zap.Int("vectors_failed", stats.VectorsFailed),
		)
		result.Stats.Duration = time.Since(start)
		return result, nil
	}

	newCount, updatedCount, err := p.store.Upsert(ctx, records)
	if err != nil {
		result.Stats.Duration = time.Since(start)
		return result, fmt.Errorf("persistence sync failed: %w", err)
	}

	stats.NewRecords = newCount
	stats.Updated = updatedCount
	stats.Duration = time.Since(start)
	result.Stats = stats

	logger.Info("pipeline run completed",
		zap.Int("fetched", stats.Fetched),
		zap.Int("unique", stats.Unique),
		zap.Int("vectors_failed", stats.VectorsFailed),
		zap.Int("parse_misses", stats.ParseMisses),
		zap.Int("new", newCount),
		zap.Int("updated", updatedCount),
		zap.Duration("duration", stats.Duration),
	)

	return result, nil
}
