package models

import "errors"

// Error taxonomy for the payment flows. Critical failures (gateway calls,
// reservation update) bubble up to the caller; notification failures are
// logged and swallowed so a settled payment is never reported as failed
// because of an email outage.
var (
	// ErrSignatureInvalid means the webhook signature did not verify against
	// the raw request body. Terminal, answered with a client error so the
	// gateway stops redelivering.
	ErrSignatureInvalid = errors.New("webhook signature invalid")

	// ErrMalformedEvent means the webhook payload could not be parsed or is
	// missing the metadata needed to settle.
	ErrMalformedEvent = errors.New("malformed webhook event")

	// ErrPaymentNotCompleted means confirmation was attempted on a session
	// the gateway does not report as paid.
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrReservationUnavailable means the reservation service rejected or
	// never answered the status update. Paid-but-unconfirmed inventory, so
	// it is always surfaced.
	ErrReservationUnavailable = errors.New("reservation service unavailable")

	// ErrNotificationFailed means the email service rejected or never
	// answered the send call.
	ErrNotificationFailed = errors.New("notification service unavailable")
)

// GatewayError wraps a failed call to the payment processor.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return "gateway " + e.Op + ": " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
