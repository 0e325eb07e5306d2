package pipeline

import (
	"testing"
	"time"

	"github.com/daybreakbrief/news-bot/pkg/models"
)

func TestParseSeenDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantNil bool
	}{
		{
			name:  "valid timestamp",
			input: "20251128T101500Z",
			want:  timePtr(time.Date(2025, 11, 28, 10, 15, 0, 0, time.UTC)),
		},
		{name: "empty string", input: "", wantNil: true},
		{name: "garbage", input: "garbage", wantNil: true},
		{name: "partial match", input: "20251128T1015", wantNil: true},
		{name: "wrong separator", input: "2025-11-28T10:15:00Z", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSeenDate(tt.input)

			if tt.wantNil {
				if got != nil {
					t.Errorf("Expected nil for %q, got %v", tt.input, got)
				}
				return
			}

			if got == nil {
				t.Fatalf("Expected %v for %q, got nil", tt.want, tt.input)
			}

			if !got.Equal(*tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}

			if got.Location() != time.UTC {
				t.Errorf("Parsed time should be UTC, got %v", got.Location())
			}
		})
	}
}

func TestNormalize_AllFieldsMaterialized(t *testing.T) {
	// Only the natural key and title present; every other field must
	// still exist on the record as its empty value
	rec := Normalize(models.RawArticle{URL: "https://example.com/a", Title: "t"}, 0.0, models.LabelNeutral)

	if rec.URL != "https://example.com/a" || rec.Title != "t" {
		t.Errorf("Present fields must carry over, got %+v", rec)
	}

	if rec.Domain != "" || rec.Language != "" || rec.SourceCountry != "" ||
		rec.URLMobile != "" || rec.SocialImage != "" || rec.SeenDate != "" {
		t.Errorf("Absent source fields must be empty markers, got %+v", rec)
	}

	if rec.SeenAt != nil {
		t.Errorf("Missing seendate must yield absent timestamp, got %v", rec.SeenAt)
	}
}

func TestNormalize_CarriesScoreAndLabel(t *testing.T) {
	a := models.RawArticle{
		URL:      "u",
		Title:    "Markets surge",
		SeenDate: "20251128T101500Z",
	}

	rec := Normalize(a, 0.42, models.LabelPositive)

	if rec.SentimentScore != 0.42 {
		t.Errorf("Expected score 0.42, got %f", rec.SentimentScore)
	}

	if rec.SentimentLabel != models.LabelPositive {
		t.Errorf("Expected Positive label, got %s", rec.SentimentLabel)
	}

	if rec.SeenAt == nil {
		t.Fatal("Valid seendate should parse")
	}

	if rec.SeenDate != "20251128T101500Z" {
		t.Errorf("Raw seendate string must be preserved, got %q", rec.SeenDate)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
