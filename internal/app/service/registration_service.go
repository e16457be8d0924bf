package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/formflow-uk/formflow-backend/internal/app/model"
	"github.com/formflow-uk/formflow-backend/internal/app/repository"
	"github.com/formflow-uk/formflow-backend/pkg/logger"
	"github.com/formflow-uk/formflow-backend/pkg/mailer"
)

var (
	ErrRegistrationPersistFailed = errors.New("failed to persist registration")
	ErrNotificationFailed        = errors.New("failed to send registration notification")
)

// notificationRecipients is the fixed set of inboxes that receive every
// submission summary
var notificationRecipients = []string{
	"registrations@formflow.co.uk",
	"compliance@formflow.co.uk",
}

const notificationSubject = "New company registration submission"

// placeholder renders in the summary for any optional field the client
// did not supply, keeping the template shape stable for the reader
const placeholder = "N/A"

// RegistrationService records submissions and dispatches notifications
type RegistrationService interface {
	Submit(ctx context.Context, reg *model.Registration) error
}

type registrationService struct {
	repo   repository.RegistrationRepository
	mailer mailer.Mailer
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo repository.RegistrationRepository, m mailer.Mailer) RegistrationService {
	return &registrationService{repo: repo, mailer: m}
}

// Submit stamps the record, appends it to the durable log and then
// dispatches the notification email. The append is the source of truth:
// it must succeed before notification is attempted, and a notification
// failure after a durable append still surfaces as a submission failure.
// That conflation is a recorded product decision, not an accident.
func (s *registrationService) Submit(ctx context.Context, reg *model.Registration) error {
	reg.Timestamp = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Append(reg); err != nil {
		logger.Error("Failed to append registration record", err, map[string]interface{}{
			"company_name": reg.CompanyName,
		})
		return ErrRegistrationPersistFailed
	}

	summary := FormatSummary(reg)
	if err := s.mailer.Send(ctx, notificationSubject, summary, notificationRecipients); err != nil {
		logger.Error("Failed to dispatch registration notification", err, map[string]interface{}{
			"company_name": reg.CompanyName,
		})
		return ErrNotificationFailed
	}

	logger.Info("Registration recorded", map[string]interface{}{
		"company_name": reg.CompanyName,
		"timestamp":    reg.Timestamp,
	})
	return nil
}

// FormatSummary renders the fixed plaintext template sent to the
// notification recipients. Missing optional fields render as N/A rather
// than being omitted.
func FormatSummary(reg *model.Registration) string {
	var b strings.Builder

	b.WriteString("NEW COMPANY REGISTRATION\n")
	b.WriteString("========================\n\n")

	fmt.Fprintf(&b, "Company name: %s\n", orPlaceholder(reg.CompanyName))
	fmt.Fprintf(&b, "Company type: %s\n", orPlaceholder(reg.CompanyType))
	fmt.Fprintf(&b, "SIC codes: %s\n", joinOrPlaceholder(reg.SicCodes))
	fmt.Fprintf(&b, "Submitted at: %s\n\n", orPlaceholder(reg.Timestamp))

	b.WriteString("Registered office\n")
	b.WriteString("-----------------\n")
	fmt.Fprintf(&b, "Address line 1: %s\n", orPlaceholder(reg.RegisteredOffice.AddressLine1))
	fmt.Fprintf(&b, "Address line 2: %s\n", orPlaceholder(reg.RegisteredOffice.AddressLine2))
	fmt.Fprintf(&b, "City: %s\n", orPlaceholder(reg.RegisteredOffice.City))
	fmt.Fprintf(&b, "Postcode: %s\n", orPlaceholder(reg.RegisteredOffice.Postcode))
	fmt.Fprintf(&b, "Country: %s\n\n", orPlaceholder(reg.RegisteredOffice.Country))

	b.WriteString("Directors\n")
	b.WriteString("---------\n")
	if len(reg.Directors) == 0 {
		b.WriteString(placeholder + "\n")
	}
	for i, d := range reg.Directors {
		fmt.Fprintf(&b, "%d. %s (born %s, %s, %s)\n",
			i+1,
			orPlaceholder(d.FullName),
			orPlaceholder(d.DateOfBirth),
			orPlaceholder(d.Nationality),
			orPlaceholder(d.Occupation))
	}
	b.WriteString("\n")

	b.WriteString("Shareholders\n")
	b.WriteString("------------\n")
	if len(reg.Shareholders) == 0 {
		b.WriteString(placeholder + "\n")
	}
	for i, sh := range reg.Shareholders {
		shares := placeholder
		if sh.Shares > 0 {
			shares = fmt.Sprintf("%d", sh.Shares)
		}
		fmt.Fprintf(&b, "%d. %s - %s shares\n", i+1, orPlaceholder(sh.FullName), shares)
	}
	b.WriteString("\n")

	b.WriteString("Persons with significant control\n")
	b.WriteString("--------------------------------\n")
	if len(reg.PSCs) == 0 {
		b.WriteString(placeholder + "\n")
	}
	for i, p := range reg.PSCs {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, orPlaceholder(p.FullName), orPlaceholder(p.NatureOfControl))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Contact email: %s\n", orPlaceholder(reg.ContactEmail))
	fmt.Fprintf(&b, "Payment reference: %s\n", orPlaceholder(reg.PaymentIntentID))

	return b.String()
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func joinOrPlaceholder(values []string) string {
	if len(values) == 0 {
		return placeholder
	}
	return strings.Join(values, ", ")
}
