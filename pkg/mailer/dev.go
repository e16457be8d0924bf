package mailer

import (
	"context"

	"github.com/formflow-uk/formflow-backend/pkg/logger"
)

// DevMailer logs messages instead of sending them. Used when no AWS
// region is configured so local runs work without credentials.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (m *DevMailer) Send(_ context.Context, subject, body string, recipients []string) error {
	logger.Info("[DEV MODE] Email not sent", map[string]interface{}{
		"subject":    subject,
		"recipients": recipients,
		"body":       body,
	})
	return nil
}
