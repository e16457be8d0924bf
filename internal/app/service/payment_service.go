package service

import (
	"errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/formflow-uk/formflow-backend/pkg/logger"
)

var ErrPaymentProviderUnavailable = errors.New("payment provider unavailable")

// Registration fee: £114.00, charged in pence. The amount and currency are
// server-fixed and never read from the request, so a tampered client
// cannot change the price.
const (
	registrationFeePence = 11400
	registrationCurrency = stripe.CurrencyGBP
)

// IntentCreator creates a PaymentIntent with the provider. Satisfied by
// the stripe-go paymentintent package; faked in tests.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeIntentCreator is the live implementation of IntentCreator
type StripeIntentCreator struct{}

func (StripeIntentCreator) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

// PaymentService issues fixed-amount payment intents
type PaymentService interface {
	CreateRegistrationIntent() (clientSecret string, err error)
}

type paymentService struct {
	intents IntentCreator
}

// NewPaymentService creates a new payment service
func NewPaymentService(intents IntentCreator) PaymentService {
	return &paymentService{intents: intents}
}

// CreateRegistrationIntent requests a payment intent for the registration
// fee with automatic payment-method selection and returns only the client
// secret; every other provider field stays server-side. Repeated calls
// mint distinct intents; there is no idempotency key.
func (s *paymentService) CreateRegistrationIntent() (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(registrationFeePence),
		Currency: stripe.String(string(registrationCurrency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := s.intents.New(params)
	if err != nil {
		logger.Error("Failed to create payment intent", err, map[string]interface{}{
			"amount":   registrationFeePence,
			"currency": registrationCurrency,
		})
		return "", ErrPaymentProviderUnavailable
	}

	return intent.ClientSecret, nil
}
