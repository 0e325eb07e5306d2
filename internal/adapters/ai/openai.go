package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/config"
	"github.com/daybreakbrief/news-bot/pkg/logger"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

const systemPrompt = `You are an expert financial news editor. You receive cleaned article
texts grouped into POSITIVE and NEGATIVE market sources. Produce a brief with three
sections: EXECUTIVE SUMMARY (3-5 sentences), KEY DETAILS (short bullets with facts,
price moves, dates, actors, drivers) and SYNTHESIS (1-2 paragraphs connecting the
articles and the overall market sentiment). Professional tone, no verbatim copying.`

// maxGroupChars caps how much of each group is sent to the model
const maxGroupChars = 24000

// OpenAISummarizer generates the brief with the OpenAI chat API
type OpenAISummarizer struct {
	client  *openai.Client
	model   string
	enabled bool
}

// NewOpenAISummarizer creates new OpenAI-backed summarizer
func NewOpenAISummarizer(cfg *config.OpenAIConfig) *OpenAISummarizer {
	return &OpenAISummarizer{
		client:  openai.NewClient(cfg.APIKey),
		model:   cfg.Model,
		enabled: cfg.Enabled && cfg.APIKey != "",
	}
}

func (s *OpenAISummarizer) GetName() string {
	return "openai"
}

func (s *OpenAISummarizer) IsEnabled() bool {
	return s.enabled
}

// Summarize sends both text groups and returns the generated report
func (s *OpenAISummarizer) Summarize(ctx context.Context, groups models.TextGroups) (string, error) {
	if !s.enabled {
		return "", fmt.Errorf("openai summarizer is not configured")
	}

	userPrompt := fmt.Sprintf("=== POSITIVE SOURCES ===\n%s\n\n=== NEGATIVE SOURCES ===\n%s",
		joinGroup(groups.Positive),
		joinGroup(groups.Negative),
	)

	start := time.Now()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	logger.Info("brief generated",
		zap.String("model", s.model),
		zap.Duration("duration", time.Since(start)),
	)

	return resp.Choices[0].Message.Content, nil
}

// joinGroup concatenates group texts with the source URL as a header,
// truncated to keep the request within context limits.
func joinGroup(texts []models.ArticleText) string {
	var b strings.Builder

	for _, t := range texts {
		if t.Text == "" {
			continue
		}
		b.WriteString("[" + t.URL + "]\n")
		b.WriteString(t.Text)
		b.WriteString("\n\n")

		if b.Len() > maxGroupChars {
			break
		}
	}

	if b.Len() > maxGroupChars {
		return b.String()[:maxGroupChars]
	}

	if b.Len() == 0 {
		return "(no article text available)"
	}

	return b.String()
}
