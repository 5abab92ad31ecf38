package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

const (
	confirmationSubject = "Confirm your email address"
	resetSubject        = "Reset your password"
)

// SMTPNotifier delivers account emails over SMTP.
type SMTPNotifier struct {
	client *mail.Client
	from   string
}

// NewSMTPNotifier dials nothing up front; the client connects per send.
// Username and password may be empty for an unauthenticated relay.
func NewSMTPNotifier(host string, port int, username, password, from string) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPNotifier{client: client, from: from}, nil
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) SendConfirmationEmail(ctx context.Context, username, email, code string) error {
	return n.send(ctx, email, confirmationSubject, confirmationBody(username, code))
}

func (n *SMTPNotifier) SendResetEmail(ctx context.Context, username, email, resetLink string) error {
	return n.send(ctx, email, resetSubject, resetBody(username, resetLink))
}

func confirmationBody(username, code string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nThanks for signing up. Confirm your email address with this code:\n\n%s\n\nIf you did not create an account, ignore this message.\n",
		username, code)
}

func resetBody(username, resetLink string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your account. Follow this link to choose a new password:\n\n%s\n\nIf you did not request a reset, ignore this message and your password stays unchanged.\n",
		username, resetLink)
}
