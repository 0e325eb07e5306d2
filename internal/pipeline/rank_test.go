package pipeline

import (
	"testing"

	"github.com/daybreakbrief/news-bot/pkg/models"
)

func rec(url string, score float64) models.NormalizedRecord {
	return models.NormalizedRecord{URL: url, SentimentScore: score}
}

func TestRank_SelectsExtremes(t *testing.T) {
	records := []models.NormalizedRecord{
		rec("a", 0.1),
		rec("b", -0.8),
		rec("c", 0.9),
		rec("d", 0.0),
		rec("e", -0.2),
	}

	sel := Rank(records, 2)

	if len(sel.MostPositive) != 2 || len(sel.MostNegative) != 2 {
		t.Fatalf("Expected 2 records each way, got %d/%d", len(sel.MostPositive), len(sel.MostNegative))
	}

	if sel.MostPositive[0].URL != "c" || sel.MostPositive[1].URL != "a" {
		t.Errorf("MostPositive should be [c a], got [%s %s]", sel.MostPositive[0].URL, sel.MostPositive[1].URL)
	}

	if sel.MostNegative[0].URL != "b" || sel.MostNegative[1].URL != "e" {
		t.Errorf("MostNegative should be [b e], got [%s %s]", sel.MostNegative[0].URL, sel.MostNegative[1].URL)
	}
}

func TestRank_SortedByScore(t *testing.T) {
	records := []models.NormalizedRecord{
		rec("a", 0.3), rec("b", -0.4), rec("c", 0.7), rec("d", -0.1), rec("e", 0.5),
	}

	sel := Rank(records, 5)

	for i := 1; i < len(sel.MostPositive); i++ {
		if sel.MostPositive[i].SentimentScore > sel.MostPositive[i-1].SentimentScore {
			t.Errorf("MostPositive not descending at %d", i)
		}
	}

	for i := 1; i < len(sel.MostNegative); i++ {
		if sel.MostNegative[i].SentimentScore < sel.MostNegative[i-1].SentimentScore {
			t.Errorf("MostNegative not ascending at %d", i)
		}
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	records := []models.NormalizedRecord{
		rec("first", 0.5),
		rec("second", 0.5),
		rec("third", 0.5),
	}

	sel := Rank(records, 3)

	order := []string{"first", "second", "third"}
	for i, want := range order {
		if sel.MostPositive[i].URL != want {
			t.Errorf("Tie order broken in MostPositive at %d: want %s, got %s", i, want, sel.MostPositive[i].URL)
		}
		if sel.MostNegative[i].URL != want {
			t.Errorf("Tie order broken in MostNegative at %d: want %s, got %s", i, want, sel.MostNegative[i].URL)
		}
	}
}

func TestRank_FewerThanN(t *testing.T) {
	records := []models.NormalizedRecord{rec("a", 0.1), rec("b", -0.1)}

	sel := Rank(records, 10)

	if len(sel.MostPositive) != 2 || len(sel.MostNegative) != 2 {
		t.Errorf("Expected all available records, got %d/%d", len(sel.MostPositive), len(sel.MostNegative))
	}
}

func TestRank_EmptyInput(t *testing.T) {
	sel := Rank(nil, 3)

	if !sel.IsEmpty() {
		t.Errorf("Empty input must yield two empty sequences, got %+v", sel)
	}

	if sel.MostPositive == nil || sel.MostNegative == nil {
		t.Error("Selections should be empty slices, not nil")
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	records := []models.NormalizedRecord{rec("a", 0.1), rec("b", 0.9), rec("c", -0.5)}

	Rank(records, 2)

	if records[0].URL != "a" || records[1].URL != "b" || records[2].URL != "c" {
		t.Error("Rank must not reorder the input sequence")
	}
}
