package mailer

import "context"

// Mailer sends a plaintext message to a set of recipients. Implemented by
// the SES mailer in production and by a log-only mailer in development.
type Mailer interface {
	Send(ctx context.Context, subject, body string, recipients []string) error
}
