// Package notifier contains the outbound collaborators of the
// moderation workflow: the Telegram moderation notifier and the
// password reset mailer.
package notifier

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
)

// contentExcerptLimit is the maximum number of characters of article
// content included in a moderation message.
const contentExcerptLimit = 100

// pubDateFormat is the publication date layout used in messages.
const pubDateFormat = "02.01.2006 15:04"

// sender is the part of the Telegram bot API the notifier uses.
type sender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (interface{}, error)
}

// botAdapter adapts *tgbot.Bot to the sender interface.
type botAdapter struct {
	bot *tgbot.Bot
}

func (a *botAdapter) SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (interface{}, error) {
	return a.bot.SendMessage(ctx, params)
}

// TelegramNotifier sends moderation messages for newly proposed
// drafts to a fixed chat.
type TelegramNotifier struct {
	sender sender
	chatID string
}

// NewTelegramNotifier creates a Telegram-backed moderation notifier.
func NewTelegramNotifier(token, chatID string) (*TelegramNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("moderation chat id is required")
	}

	bot, err := tgbot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{sender: &botAdapter{bot: bot}, chatID: chatID}, nil
}

// NotifyProposed sends the moderation message for a freshly proposed
// draft.
func (n *TelegramNotifier) NotifyProposed(ctx context.Context, news *domain.News, authorName string) error {
	_, err := n.sender.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: n.chatID,
		Text:   FormatProposal(news, authorName),
	})
	if err != nil {
		return fmt.Errorf("send moderation message: %w", err)
	}
	return nil
}

// FormatProposal renders the fixed moderation message template.
func FormatProposal(news *domain.News, authorName string) string {
	excerpt := news.Content
	if runes := []rune(excerpt); len(runes) > contentExcerptLimit {
		excerpt = string(runes[:contentExcerptLimit]) + "..."
	}

	hasImage := "No"
	if news.ImagePath != nil && *news.ImagePath != "" {
		hasImage = "Yes"
	}

	return fmt.Sprintf(
		"*New article proposed!*\n\n"+
			"Title: %s\n"+
			"Brief: %s\n"+
			"Content: %s\n"+
			"Publication date: %s\n"+
			"Image: %s\n"+
			"Author: %s",
		news.Title, news.Brief, excerpt,
		news.PubDate.Format(pubDateFormat), hasImage, authorName,
	)
}
