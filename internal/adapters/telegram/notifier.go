package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/config"
	"github.com/daybreakbrief/news-bot/pkg/logger"
)

// Telegram caps message length at 4096 characters
const maxMessageLen = 4000

// Notifier delivers the generated brief to a configured chat
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates new Telegram notifier
func NewNotifier(cfg *config.TelegramConfig) (*Notifier, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	bot.Debug = false

	logger.Info("telegram notifier initialized",
		zap.String("bot_username", bot.Self.UserName),
	)

	return &Notifier{api: bot, chatID: cfg.ChatID}, nil
}

// SendBrief sends the report, chunked to fit Telegram's message limit
func (n *Notifier) SendBrief(text string) error {
	for _, chunk := range splitMessage(text) {
		msg := tgbotapi.NewMessage(n.chatID, chunk)

		if _, err := n.api.Send(msg); err != nil {
			return fmt.Errorf("failed to send brief: %w", err)
		}
	}

	logger.Info("brief delivered",
		zap.Int64("chat_id", n.chatID),
		zap.Int("chars", len(text)),
	)

	return nil
}

func splitMessage(text string) []string {
	if len(text) <= maxMessageLen {
		return []string{text}
	}

	chunks := make([]string, 0, len(text)/maxMessageLen+1)
	for len(text) > maxMessageLen {
		chunks = append(chunks, text[:maxMessageLen])
		text = text[maxMessageLen:]
	}
	if len(text) > 0 {
		chunks = append(chunks, text)
	}

	return chunks
}
