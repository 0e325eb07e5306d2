package pipeline

import (
	"sort"

	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Rank selects the n highest-scoring records (most positive) and the n
// lowest-scoring (most negative). Selection is stable: records with equal
// scores keep their relative order from the input sequence. Fewer than n
// records returns all of them; an empty input returns two empty slices.
func Rank(records []models.NormalizedRecord, n int) models.RankedSelection {
	selection := models.RankedSelection{
		MostPositive: make([]models.NormalizedRecord, 0, n),
		MostNegative: make([]models.NormalizedRecord, 0, n),
	}

	if len(records) == 0 || n <= 0 {
		return selection
	}

	desc := make([]models.NormalizedRecord, len(records))
	copy(desc, records)
	sort.SliceStable(desc, func(i, j int) bool {
		return desc[i].SentimentScore > desc[j].SentimentScore
	})

	asc := make([]models.NormalizedRecord, len(records))
	copy(asc, records)
	sort.SliceStable(asc, func(i, j int) bool {
		return asc[i].SentimentScore < asc[j].SentimentScore
	})

	if n > len(records) {
		n = len(records)
	}

	selection.MostPositive = append(selection.MostPositive, desc[:n]...)
	selection.MostNegative = append(selection.MostNegative, asc[:n]...)

	return selection
}
