package notifier

import (
	"context"
	"log/slog"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/logger"
)

// LogNotifier writes moderation messages to the application log. It is
// used when no Telegram credentials are configured.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyProposed logs the moderation message.
func (n *LogNotifier) NotifyProposed(_ context.Context, news *domain.News, authorName string) error {
	logger.Info("Moderation notification",
		slog.String("news_id", news.ID),
		slog.String("message", FormatProposal(news, authorName)))
	return nil
}
