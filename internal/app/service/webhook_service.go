package service

import (
	"encoding/json"
	"errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/formflow-uk/formflow-backend/pkg/logger"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookService verifies and processes provider webhook events. Each
// event moves from unverified to either verified or rejected; a rejected
// payload is never parsed.
type WebhookService interface {
	HandleEvent(payload []byte, signatureHeader string) error
}

type webhookService struct {
	endpointSecret string
}

// NewWebhookService creates a webhook service using the shared endpoint
// secret known only to this service and the payment provider
func NewWebhookService(endpointSecret string) WebhookService {
	return &webhookService{endpointSecret: endpointSecret}
}

// HandleEvent validates the signature over the raw body, then reacts to
// payment_intent.succeeded by recording the confirmation. All other
// verified event types are acknowledged without action so new provider
// event types never cause failures. No replay dedup is performed; the
// event id is logged so replays are visible to operators.
func (s *webhookService) HandleEvent(payload []byte, signatureHeader string) error {
	// The account's pinned API version rarely matches the SDK's, so only
	// the signature is enforced here
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, s.endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		logger.Error("Webhook signature verification failed", err)
		return ErrInvalidSignature
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			logger.Error("Failed to parse payment intent from event", err, map[string]interface{}{
				"event_id": event.ID,
			})
			return nil
		}
		logger.Info("Payment succeeded", map[string]interface{}{
			"event_id":        event.ID,
			"payment_intent":  intent.ID,
			"amount_received": intent.AmountReceived,
			"currency":        intent.Currency,
		})
	default:
		logger.Debug("Ignoring webhook event", map[string]interface{}{
			"event_id":   event.ID,
			"event_type": event.Type,
		})
	}

	return nil
}
