package notify

import (
	"context"

	"github.com/peerprep/user-service/internal/logging"
)

// LogNotifier writes the would-be emails to the log instead of sending them.
// Used in development when no SMTP host is configured.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(l logging.Logger) *LogNotifier {
	return &LogNotifier{logger: l.With("module", "notify")}
}

func (n *LogNotifier) SendConfirmationEmail(ctx context.Context, username, email, code string) error {
	n.logger.Info(ctx, "confirmation email (not sent)",
		"username", username, "email", email, "code", code)
	return nil
}

func (n *LogNotifier) SendResetEmail(ctx context.Context, username, email, resetLink string) error {
	n.logger.Info(ctx, "reset email (not sent)",
		"username", username, "email", email, "reset_link", resetLink)
	return nil
}
