package errors

// Error code constants returned to clients alongside a human-readable
// message. Format: CATEGORY_SPECIFIC_DETAIL. The frontend maps these to
// localized copy; the message string is a fallback.

const (
	// Validation (VALIDATION_)
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed request body
	ValidationRequired     = "VALIDATION_REQUIRED"      // required field missing
	ValidationInvalidQuery = "VALIDATION_INVALID_QUERY" // bad query parameter

	// Company name checks (NAME_)
	NameMissing     = "NAME_MISSING"      // companyName absent or empty
	NameCheckFailed = "NAME_CHECK_FAILED" // registry lookup failed

	// Payments (PAYMENT_)
	PaymentIntentFailed = "PAYMENT_INTENT_FAILED" // provider rejected or unreachable

	// Webhooks (WEBHOOK_)
	WebhookSignatureInvalid = "WEBHOOK_SIGNATURE_INVALID" // signature verification failed
	WebhookBodyUnreadable   = "WEBHOOK_BODY_UNREADABLE"   // raw body could not be read

	// Registrations (REGISTRATION_)
	RegistrationPersistFailed = "REGISTRATION_PERSIST_FAILED" // record append failed
	RegistrationNotifyFailed  = "REGISTRATION_NOTIFY_FAILED"  // notification dispatch failed

	// Internal (INTERNAL_)
	InternalServerError = "INTERNAL_SERVER_ERROR" // unclassified server error
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // upstream provider error
	InternalConfigError = "INTERNAL_CONFIG_ERROR" // misconfiguration
)
