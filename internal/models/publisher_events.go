package models

import "time"

const (
	CheckoutCreatedEventTopic  = "payments.checkout.created"
	PaymentConfirmedEventTopic = "payments.confirmed"
)

type CheckoutCreatedEvent struct {
	SessionID     string    `json:"session_id"`
	ReservationID int64     `json:"reservation_id"`
	Amount        int64     `json:"amount_minor_units"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentConfirmedEvent struct {
	SessionID     string    `json:"session_id"`
	ReservationID int64     `json:"reservation_id"`
	CustomerEmail string    `json:"customer_email"`
	Source        string    `json:"source"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}

// Source values for PaymentConfirmedEvent.
const (
	ConfirmationSourceWebhook = "webhook"
	ConfirmationSourceClient  = "client"
)
