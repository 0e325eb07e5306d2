package gdelt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/daybreakbrief/news-bot/internal/adapters/config"
	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Client fetches article lists from the GDELT DOC 2.0 API
type Client struct {
	baseURL string
	params  StaticParams
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates new GDELT client
func NewClient(cfg *config.GDELTConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		params:  DefaultParams(cfg.MaxRecords),
		client:  &http.Client{Timeout: cfg.Timeout},
		// GDELT asks for at most one request every few seconds
		limiter: rate.NewLimiter(rate.Every(cfg.RateEvery), 1),
	}
}

// FetchVector issues one request for a single query vector. A non-2xx
// status, timeout or unparseable body is returned as an error; callers
// treat it as a vector failure, never a run failure.
func (c *Client) FetchVector(ctx context.Context, v QueryVector) ([]models.RawArticle, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := c.baseURL + "?" + c.params.Values(v).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Articles []models.RawArticle `json:"articles"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Articles, nil
}

// FetchAll runs every vector in declaration order and collects per-vector
// outcomes. A failing vector contributes an empty list and its error; it
// never aborts sibling vectors. All vectors failing yields an aggregate
// of empty results, not an error.
func (c *Client) FetchAll(ctx context.Context, vectors []QueryVector) []models.VectorResult {
	results := make([]models.VectorResult, 0, len(vectors))

	for _, v := range vectors {
		start := time.Now()

		articles, err := c.FetchVector(ctx, v)
		if err != nil {
			logger.Warn("query vector failed",
				zap.String("vector", v.Name),
				zap.Error(err),
			)
			results = append(results, models.VectorResult{Vector: v.Name, Err: err})
			continue
		}

		logger.Info("query vector fetched",
			zap.String("vector", v.Name),
			zap.Int("articles", len(articles)),
			zap.Duration("duration", time.Since(start)),
		)

		results = append(results, models.VectorResult{Vector: v.Name, Articles: articles})
	}

	return results
}
