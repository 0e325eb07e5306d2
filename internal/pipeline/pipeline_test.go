package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/daybreakbrief/news-bot/internal/adapters/gdelt"
	"github.com/daybreakbrief/news-bot/internal/sentiment"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

type fakeFetcher struct {
	results []models.VectorResult
}

func (f *fakeFetcher) FetchAll(_ context.Context, _ []gdelt.QueryVector) []models.VectorResult {
	return f.results
}

type fakeStore struct {
	upserted [][]models.NormalizedRecord
	err      error
}

func (s *fakeStore) Upsert(_ context.Context, records []models.NormalizedRecord) (int, int, error) {
	if s.err != nil {
		return 0, 0, s.err
	}
	s.upserted = append(s.upserted, records)
	return len(records), 0, nil
}

func testVectors() []gdelt.QueryVector {
	return []gdelt.QueryVector{{Name: "v1"}, {Name: "v2"}, {Name: "v3"}}
}

func newTestPipeline(t *testing.T, fetcher Fetcher, store ArticleStore) *Pipeline {
	t.Helper()

	analyzer, err := sentiment.NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	return New(fetcher, testVectors(), analyzer, store, 3)
}

func TestPipeline_OneFailingVectorDoesNotSinkRun(t *testing.T) {
	fetcher := &fakeFetcher{results: []models.VectorResult{
		{Vector: "v1", Articles: []models.RawArticle{{URL: "a", Title: "Markets surge on positive news"}}},
		{Vector: "v2", Err: errors.New("response body is not JSON")},
		{Vector: "v3", Articles: []models.RawArticle{{URL: "b", Title: "Markets crash amid fears"}}},
	}}
	store := &fakeStore{}

	result, err := newTestPipeline(t, fetcher, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Stats.VectorsFailed != 1 {
		t.Errorf("Expected failure count 1, got %d", result.Stats.VectorsFailed)
	}

	if result.Stats.Unique != 2 {
		t.Errorf("Expected union of the two successful vectors (2 articles), got %d", result.Stats.Unique)
	}

	if len(store.upserted) != 1 || len(store.upserted[0]) != 2 {
		t.Errorf("Expected one upsert batch of 2 records, got %+v", store.upserted)
	}
}

func TestPipeline_CrossVectorDuplicateKeptFromFirstVector(t *testing.T) {
	fetcher := &fakeFetcher{results: []models.VectorResult{
		{Vector: "v1", Articles: []models.RawArticle{
			{URL: "a", Title: "Markets surge on positive news"},
		}},
		{Vector: "v2", Articles: []models.RawArticle{
			{URL: "a", Title: "duplicate"},
			{URL: "b", Title: "Markets crash amid fears"},
		}},
	}}
	store := &fakeStore{}

	result, err := newTestPipeline(t, fetcher, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Stats.Unique != 2 {
		t.Fatalf("Expected merged set {a, b}, got %d records", result.Stats.Unique)
	}

	if result.Records[0].URL != "a" || result.Records[0].Title != "Markets surge on positive news" {
		t.Errorf("Article a must be retained from vector 1, got %+v", result.Records[0])
	}
}

func TestPipeline_EmptyRunIsNormal(t *testing.T) {
	fetcher := &fakeFetcher{results: []models.VectorResult{
		{Vector: "v1", Err: errors.New("timeout")},
		{Vector: "v2", Err: errors.New("timeout")},
		{Vector: "v3", Err: errors.New("timeout")},
	}}
	store := &fakeStore{}

	result, err := newTestPipeline(t, fetcher, store).Run(context.Background())
	if err != nil {
		t.Fatalf("All vectors failing must not be a run error, got: %v", err)
	}

	if !result.Selection.IsEmpty() {
		t.Errorf("Expected empty RankedSelection, got %+v", result.Selection)
	}

	if len(store.upserted) != 0 {
		t.Errorf("Empty merged set must not touch the store, got %d batches", len(store.upserted))
	}

	if result.Stats.VectorsFailed != 3 {
		t.Errorf("Expected 3 failed vectors, got %d", result.Stats.VectorsFailed)
	}
}

func TestPipeline_PersistenceFailureKeepsSelection(t *testing.T) {
	fetcher := &fakeFetcher{results: []models.VectorResult{
		{Vector: "v1", Articles: []models.RawArticle{
			{URL: "a", Title: "Markets surge on positive news"},
			{URL: "b", Title: "Markets crash amid fears"},
		}},
	}}
	store := &fakeStore{err: errors.New("connection refused")}

	result, err := newTestPipeline(t, fetcher, store).Run(context.Background())
	if err == nil {
		t.Fatal("Expected persistence error")
	}

	if result == nil {
		t.Fatal("Result must survive a persistence failure")
	}

	if result.Selection.IsEmpty() {
		t.Error("RankedSelection must not be discarded when persistence fails")
	}
}

func TestPipeline_CountsParseMisses(t *testing.T) {
	fetcher := &fakeFetcher{results: []models.VectorResult{
		{Vector: "v1", Articles: []models.RawArticle{
			{URL: "a", Title: "t", SeenDate: "20251128T101500Z"},
			{URL: "b", Title: "t", SeenDate: "garbage"},
			{URL: "c", Title: "t", SeenDate: ""},
		}},
	}}
	store := &fakeStore{}

	result, err := newTestPipeline(t, fetcher, store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Stats.ParseMisses != 2 {
		t.Errorf("Expected 2 parse misses, got %d", result.Stats.ParseMisses)
	}
}
