package models

type ConfirmationOutcome string

const (
	OutcomeSuccess                 ConfirmationOutcome = "SUCCESS"
	OutcomeNotPaid                 ConfirmationOutcome = "NOT_PAID"
	OutcomeReservationUpdateFailed ConfirmationOutcome = "RESERVATION_UPDATE_FAILED"
)

// ConfirmationResult is the answer of the confirmation flow. ReservationID is
// set whenever the session carried one, regardless of outcome.
type ConfirmationResult struct {
	Outcome       ConfirmationOutcome `json:"outcome"`
	ReservationID int64               `json:"reservation_id"`
}

type WebhookOutcome string

const (
	WebhookApplied   WebhookOutcome = "APPLIED"
	WebhookDuplicate WebhookOutcome = "DUPLICATE"
	WebhookIgnored   WebhookOutcome = "IGNORED"
	WebhookRejected  WebhookOutcome = "REJECTED"
	// WebhookFailed means a verified event could not be applied because a
	// collaborator call failed. Answered with a server error so the gateway
	// redelivers.
	WebhookFailed WebhookOutcome = "FAILED"
)
