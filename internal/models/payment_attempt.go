package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptStatus string

const (
	AttemptStatusCreated AttemptStatus = "CREATED"
	AttemptStatusPaid    AttemptStatus = "PAID"
)

// PaymentAttempt is the service's own record of a checkout session or payment
// intent issued against the gateway. The gateway owns the session; this row
// only references it by external id. Immutable after creation except for the
// externally observed status.
type PaymentAttempt struct {
	ID               string        `json:"id"`
	ExternalID       string        `json:"external_id" gorm:"column:external_id;index"`
	ReservationID    int64         `json:"reservation_id"`
	AmountMinorUnits int64         `json:"amount_minor_units"`
	Currency         string        `json:"currency"`
	CustomerEmail    string        `json:"customer_email"`
	Status           AttemptStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (p *PaymentAttempt) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

func (p *PaymentAttempt) Validate() error {
	if p.ExternalID == "" {
		return fmt.Errorf("external id is required")
	}
	if p.ReservationID <= 0 {
		return fmt.Errorf("reservation id must be greater than zero")
	}
	if p.AmountMinorUnits <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if p.Currency == "" {
		return fmt.Errorf("currency is required")
	}

	return nil
}
