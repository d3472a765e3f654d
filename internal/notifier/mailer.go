package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/logger"
)

// LogMailer writes password reset links to the application log instead
// of sending real mail. It stands in for an SMTP integration in
// development and test environments.
type LogMailer struct {
	baseURL string
}

// NewLogMailer creates a LogMailer. baseURL is the public address the
// reset link should point at.
func NewLogMailer(baseURL string) *LogMailer {
	return &LogMailer{baseURL: baseURL}
}

// SendPasswordReset logs the reset link for the given account.
func (m *LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	logger.Info("Password reset link issued",
		slog.String("email", email),
		slog.String("link", fmt.Sprintf("%s/api/v1/auth/password-reset/confirm?token=%s", m.baseURL, token)))
	return nil
}
