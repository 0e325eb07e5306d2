package models

import "time"

// VectorResult is the outcome of fetching one query vector. A failed
// vector carries Err and an empty article list; it never fails the run.
type VectorResult struct {
	Vector   string
	Articles []RawArticle
	Err      error
}

// VectorContribution reports, per vector, how many articles it returned
// and how many survived URL deduplication.
type VectorContribution struct {
	Vector  string `json:"vector"`
	Fetched int    `json:"fetched"`
	Kept    int    `json:"kept"`
}

// RunStats aggregates everything operators need to know about one
// pipeline run. Written to the metrics sink and logged.
type RunStats struct {
	StartedAt     time.Time            `json:"started_at"`
	Duration      time.Duration        `json:"duration"`
	VectorsTotal  int                  `json:"vectors_total"`
	VectorsFailed int                  `json:"vectors_failed"`
	Fetched       int                  `json:"fetched"`
	Unique        int                  `json:"unique"`
	ParseMisses   int                  `json:"parse_misses"`
	Positive      int                  `json:"positive"`
	Negative      int                  `json:"negative"`
	Neutral       int                  `json:"neutral"`
	NewRecords    int                  `json:"new_records"`
	Updated       int                  `json:"updated"`
	Contributions []VectorContribution `json:"contributions"`
}
