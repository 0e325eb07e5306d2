package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/config"
	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Extractor reduces ranked article pages to whitespace-normalized plain
// text for the summarizer. Per-URL failures are tolerated: the group
// entry keeps its URL with an empty text and the run continues.
type Extractor struct {
	client    *http.Client
	userAgent string
}

// NewExtractor creates new extractor
func NewExtractor(cfg *config.ExtractConfig) *Extractor {
	return &Extractor{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
	}
}

// ExtractGroups fetches every ranked URL and returns the two named text
// groups consumed by the summarizer.
func (e *Extractor) ExtractGroups(ctx context.Context, selection models.RankedSelection) models.TextGroups {
	return models.TextGroups{
		Positive: e.extractAll(ctx, selection.MostPositive),
		Negative: e.extractAll(ctx, selection.MostNegative),
	}
}

func (e *Extractor) extractAll(ctx context.Context, records []models.NormalizedRecord) []models.ArticleText {
	texts := make([]models.ArticleText, 0, len(records))

	for _, rec := range records {
		text, err := e.ExtractText(ctx, rec.URL)
		if err != nil {
			logger.Warn("article extraction failed",
				zap.String("url", rec.URL),
				zap.Error(err),
			)
			text = ""
		}

		texts = append(texts, models.ArticleText{URL: rec.URL, Text: text})
	}

	return texts
}

// ExtractText fetches one page and returns its visible text with
// scripts, styles and repeated whitespace removed.
func (e *Extractor) ExtractText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, iframe").Remove()

	text := doc.Find("body").Text()

	return strings.Join(strings.Fields(text), " "), nil
}
