package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testEndpointSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the same way the provider
// does: HMAC-SHA256 over "<timestamp>.<payload>" with the endpoint secret
func signPayload(payload []byte, secret string, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func succeededEventPayload() []byte {
	return []byte(`{
		"id": "evt_test_001",
		"object": "event",
		"api_version": "2024-06-20",
		"type": "payment_intent.succeeded",
		"data": {
			"object": {
				"id": "pi_test_001",
				"object": "payment_intent",
				"amount": 11400,
				"amount_received": 11400,
				"currency": "gbp"
			}
		}
	}`)
}

func TestWebhookService_HandleEvent_ValidSignature(t *testing.T) {
	svc := NewWebhookService(testEndpointSecret)

	payload := succeededEventPayload()
	header := signPayload(payload, testEndpointSecret, time.Now().Unix())

	err := svc.HandleEvent(payload, header)
	assert.NoError(t, err)
}

func TestWebhookService_HandleEvent_InvalidSignature(t *testing.T) {
	svc := NewWebhookService(testEndpointSecret)

	payload := succeededEventPayload()

	tests := []struct {
		name   string
		header string
	}{
		{
			name:   "Empty header",
			header: "",
		},
		{
			name:   "Garbage header",
			header: "t=123,v1=deadbeef",
		},
		{
			name:   "Signed with the wrong secret",
			header: signPayload(payload, "whsec_other_secret", time.Now().Unix()),
		},
		{
			name:   "Stale timestamp outside tolerance",
			header: signPayload(payload, testEndpointSecret, time.Now().Add(-time.Hour).Unix()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.HandleEvent(payload, tt.header)
			assert.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestWebhookService_HandleEvent_TamperedPayload(t *testing.T) {
	svc := NewWebhookService(testEndpointSecret)

	payload := succeededEventPayload()
	header := signPayload(payload, testEndpointSecret, time.Now().Unix())

	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-2] = ' '

	err := svc.HandleEvent(tampered, header)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestWebhookService_HandleEvent_UnknownEventType(t *testing.T) {
	svc := NewWebhookService(testEndpointSecret)

	// Unknown but validly signed event types are acknowledged without
	// action so the provider does not retry indefinitely
	payload := []byte(`{
		"id": "evt_test_002",
		"object": "event",
		"api_version": "2024-06-20",
		"type": "charge.refunded",
		"data": {"object": {"id": "ch_test_001", "object": "charge"}}
	}`)
	header := signPayload(payload, testEndpointSecret, time.Now().Unix())

	err := svc.HandleEvent(payload, header)
	assert.NoError(t, err)
}
