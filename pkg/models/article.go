package models

import "time"

// SentimentLabel is the discrete classification derived from a compound score
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "Positive"
	LabelNegative SentimentLabel = "Negative"
	LabelNeutral  SentimentLabel = "Neutral"
)

// RawArticle is an article record exactly as returned by one GDELT DOC call.
// URL is the natural key; it is never persisted directly.
type RawArticle struct {
	URL           string `json:"url"`
	URLMobile     string `json:"url_mobile"`
	Title         string `json:"title"`
	SeenDate      string `json:"seendate"`
	SocialImage   string `json:"socialimage"`
	Domain        string `json:"domain"`
	Language      string `json:"language"`
	SourceCountry string `json:"sourcecountry"`
}

// NormalizedRecord is the unit of persistence: a scored article projected
// onto the fixed column schema. Every record in a run has the identical
// field set; fields missing at the source are kept as empty values.
type NormalizedRecord struct {
	SeenAt         *time.Time     `json:"seendate_dt" db:"seen_at"`
	SentimentScore float64        `json:"sentiment_score" db:"sentiment_score"`
	SentimentLabel SentimentLabel `json:"sentiment_label" db:"sentiment_label"`
	Title          string         `json:"title" db:"title"`
	Domain         string         `json:"domain" db:"domain"`
	URL            string         `json:"url" db:"url"`
	URLMobile      string         `json:"url_mobile" db:"url_mobile"`
	SocialImage    string         `json:"socialimage" db:"socialimage"`
	SeenDate       string         `json:"seendate" db:"seendate"`
	Language       string         `json:"language" db:"language"`
	SourceCountry  string         `json:"sourcecountry" db:"sourcecountry"`
}

// RankedSelection holds the top-N records in each polarity direction.
// The URL of each entry is the handoff artifact for the brief stage.
type RankedSelection struct {
	MostPositive []NormalizedRecord `json:"most_positive"`
	MostNegative []NormalizedRecord `json:"most_negative"`
}

// IsEmpty reports whether neither direction selected any record
func (s RankedSelection) IsEmpty() bool {
	return len(s.MostPositive) == 0 && len(s.MostNegative) == 0
}

// ArticleText is one ranked URL with its extracted plain text.
// Text is empty when extraction failed for that URL.
type ArticleText struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// TextGroups is the fixed-shape input handed to the summarizer
type TextGroups struct {
	Positive []ArticleText `json:"positive"`
	Negative []ArticleText `json:"negative"`
}
