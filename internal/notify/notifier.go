// Package notify delivers account emails. The identity service depends only
// on the Notifier interface; delivery mechanics live behind it.
package notify

import "context"

// Notifier sends the two account emails. Both calls block until the message
// is handed off and return any delivery error to the caller; no retries
// happen here.
type Notifier interface {
	SendConfirmationEmail(ctx context.Context, username, email, code string) error
	SendResetEmail(ctx context.Context, username, email, resetLink string) error
}
