package ai

import (
	"context"

	"github.com/daybreakbrief/news-bot/pkg/models"
)

// Summarizer turns the two extracted text groups into an opaque report
// string. The pipeline has no dependency on the report's content.
type Summarizer interface {
	// GetName returns provider name
	GetName() string

	// Summarize produces the brief from the positive/negative groups
	Summarize(ctx context.Context, groups models.TextGroups) (string, error)

	// IsEnabled returns whether the provider is configured
	IsEnabled() bool
}
