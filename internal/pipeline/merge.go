package pipeline

import (
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Merge flattens per-vector results into one URL-unique sequence.
// Vectors are walked in declaration order, articles in returned order,
// and the first article seen for a URL wins whole; later duplicates are
// discarded without field merging. The result is deterministic for a
// fixed set of vector responses.
func Merge(results []models.VectorResult) ([]models.RawArticle, []models.VectorContribution) {
	seen := make(map[string]struct{})
	merged := make([]models.RawArticle, 0)
	contributions := make([]models.VectorContribution, 0, len(results))

	for _, res := range results {
		kept := 0

		for _, article := range res.Articles {
			if article.URL == "" {
				continue
			}
			if _, dup := seen[article.URL]; dup {
				continue
			}
			seen[article.URL] = struct{}{}
			merged = append(merged, article)
			kept++
		}

		contributions = append(contributions, models.VectorContribution{
			Vector:  res.Vector,
			Fetched: len(res.Articles),
			Kept:    kept,
		})

		logger.Debug("vector merged",
			zap.String("vector", res.Vector),
			zap.Int("fetched", len(res.Articles)),
			zap.Int("kept", kept),
		)
	}

	logger.Info("articles merged",
		zap.Int("vectors", len(results)),
		zap.Int("unique", len(merged)),
	)

	return merged, contributions
}
