package pipeline

import (
	"time"

	"github.com/daybreakbrief/news-bot/pkg/models"
)

// seenDateLayout is the only accepted GDELT timestamp format, read as UTC
const seenDateLayout = "20060102T150405Z"

// ParseSeenDate parses a source-native timestamp. Anything that does not
// match the fixed layout, including the empty string, yields nil rather
// than an error.
func ParseSeenDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := time.ParseInLocation(seenDateLayout, s, time.UTC)
	if err != nil {
		return nil
	}

	return &t
}

// Normalize projects a scored article onto the fixed record schema.
// Every field is materialized: source fields absent on the input stay as
// empty values so all records in a run share identical field membership.
func Normalize(a models.RawArticle, score float64, label models.SentimentLabel) models.NormalizedRecord {
	return models.NormalizedRecord{
		SeenAt:         ParseSeenDate(a.SeenDate),
		SentimentScore: score,
		SentimentLabel: label,
		Title:          a.Title,
		Domain:         a.Domain,
		URL:            a.URL,
		URLMobile:      a.URLMobile,
		SocialImage:    a.SocialImage,
		SeenDate:       a.SeenDate,
		Language:       a.Language,
		SourceCountry:  a.SourceCountry,
	}
}
