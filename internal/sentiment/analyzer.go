package sentiment

import (
	"fmt"
	"math"
	"strings"

	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Label thresholds are inclusive and fixed; the label is a pure function
// of the score regardless of how the score was produced.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// boosterWeight is added to a matched word's weight when the preceding
// token is an intensifier ("massive crash" weighs more than "crash").
const boosterWeight = 0.3

// negationWindow is how many tokens back a negation flips polarity
const negationWindow = 3

// Analyzer scores short texts with a weighted lexicon plus negation and
// booster rules. It is immutable after construction and safe for
// concurrent use; scoring performs no I/O.
type Analyzer struct {
	lexicon  map[string]float64
	boosters map[string]struct{}
	negators map[string]struct{}
}

// NewAnalyzer constructs an analyzer from the built-in lexicon. An empty
// or inconsistent lexicon is a fatal construction error, not a per-call
// condition.
func NewAnalyzer() (*Analyzer, error) {
	lexicon := buildLexicon()
	if len(lexicon) == 0 {
		return nil, fmt.Errorf("sentiment lexicon is empty")
	}

	for word, weight := range lexicon {
		if math.Abs(weight) > 1.0 {
			return nil, fmt.Errorf("lexicon weight out of range for %q: %f", word, weight)
		}
	}

	return &Analyzer{
		lexicon:  lexicon,
		boosters: buildBoosters(),
		negators: buildNegators(),
	}, nil
}

// Score returns the compound sentiment of a headline in [-1, 1].
// An empty headline scores exactly 0.
func (a *Analyzer) Score(text string) float64 {
	if text == "" {
		return 0.0
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0.0
	}

	var score float64
	matched := 0

	for i, word := range words {
		word = strings.Trim(word, ".,!?;:'\"()[]")

		weight, ok := a.lexicon[word]
		if !ok {
			continue
		}

		if weight > 0 {
			weight += boosterWeight * a.boosterCount(words, i)
		} else {
			weight -= boosterWeight * a.boosterCount(words, i)
		}

		if a.negatedAt(words, i) {
			weight = -weight
		}

		score += weight
		matched++
	}

	if matched == 0 {
		return 0.0
	}

	normalized := score / float64(len(words))

	if normalized > 1.0 {
		return 1.0
	}
	if normalized < -1.0 {
		return -1.0
	}

	return normalized
}

// Label maps a score to its discrete classification
func Label(score float64) models.SentimentLabel {
	if score >= positiveThreshold {
		return models.LabelPositive
	}
	if score <= negativeThreshold {
		return models.LabelNegative
	}
	return models.LabelNeutral
}

func (a *Analyzer) boosterCount(words []string, i int) float64 {
	if i == 0 {
		return 0
	}
	if _, ok := a.boosters[strings.Trim(words[i-1], ".,!?;:'\"()[]")]; ok {
		return 1
	}
	return 0
}

func (a *Analyzer) negatedAt(words []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if _, ok := a.negators[strings.Trim(words[j], ".,!?;:'\"()[]")]; ok {
			return true
		}
	}
	return false
}
