package pipeline

import (
	"errors"
	"testing"

	"github.com/daybreakbrief/news-bot/pkg/models"
)

func TestMerge_FirstSeenWins(t *testing.T) {
	results := []models.VectorResult{
		{
			Vector: "assets",
			Articles: []models.RawArticle{
				{URL: "a", Title: "Markets surge on positive news", Domain: "reuters.com"},
			},
		},
		{
			Vector: "regulatory",
			Articles: []models.RawArticle{
				{URL: "a", Title: "duplicate with different title", Domain: "ft.com"},
				{URL: "b", Title: "Markets crash amid fears"},
			},
		},
	}

	merged, contributions := Merge(results)

	if len(merged) != 2 {
		t.Fatalf("Expected 2 unique articles, got %d", len(merged))
	}

	// Earlier vector keeps its full record; the duplicate is discarded whole
	if merged[0].URL != "a" || merged[0].Domain != "reuters.com" {
		t.Errorf("Article a should be retained from the first vector, got domain %q", merged[0].Domain)
	}

	if merged[1].URL != "b" {
		t.Errorf("Expected article b second, got %q", merged[1].URL)
	}

	if contributions[0].Kept != 1 || contributions[1].Kept != 1 {
		t.Errorf("Expected kept counts [1 1], got [%d %d]", contributions[0].Kept, contributions[1].Kept)
	}

	if contributions[1].Fetched != 2 {
		t.Errorf("Expected second vector fetched=2, got %d", contributions[1].Fetched)
	}
}

func TestMerge_URLUniqueness(t *testing.T) {
	results := []models.VectorResult{
		{Vector: "v1", Articles: []models.RawArticle{{URL: "x"}, {URL: "y"}, {URL: "x"}}},
		{Vector: "v2", Articles: []models.RawArticle{{URL: "y"}, {URL: "z"}}},
	}

	merged, _ := Merge(results)

	seen := make(map[string]int)
	for _, a := range merged {
		seen[a.URL]++
	}

	for url, count := range seen {
		if count > 1 {
			t.Errorf("URL %q appears %d times in merged set", url, count)
		}
	}

	if len(merged) != 3 {
		t.Errorf("Expected 3 unique articles, got %d", len(merged))
	}
}

func TestMerge_FailedVectorContributesNothing(t *testing.T) {
	results := []models.VectorResult{
		{Vector: "v1", Articles: []models.RawArticle{{URL: "a"}}},
		{Vector: "v2", Err: errors.New("HTTP error 503")},
		{Vector: "v3", Articles: []models.RawArticle{{URL: "b"}}},
	}

	merged, contributions := Merge(results)

	if len(merged) != 2 {
		t.Fatalf("Expected union of the two successful vectors, got %d articles", len(merged))
	}

	if contributions[1].Fetched != 0 || contributions[1].Kept != 0 {
		t.Errorf("Failed vector should contribute nothing, got %+v", contributions[1])
	}
}

func TestMerge_Empty(t *testing.T) {
	merged, contributions := Merge(nil)

	if len(merged) != 0 {
		t.Errorf("Expected empty merge result, got %d", len(merged))
	}

	if len(contributions) != 0 {
		t.Errorf("Expected no contributions, got %d", len(contributions))
	}
}

func TestMerge_SkipsEmptyURL(t *testing.T) {
	results := []models.VectorResult{
		{Vector: "v1", Articles: []models.RawArticle{{URL: "", Title: "no key"}, {URL: "a"}}},
	}

	merged, _ := Merge(results)

	if len(merged) != 1 || merged[0].URL != "a" {
		t.Errorf("Articles without a URL must be dropped, got %+v", merged)
	}
}
