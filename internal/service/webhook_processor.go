package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayhub/payment-service/internal/gateway"
	"github.com/stayhub/payment-service/internal/metrics"
	"github.com/stayhub/payment-service/internal/models"
)

// Settler applies a verified payment completion to the reservation domain.
// Implemented by PaymentService.Settle.
type Settler interface {
	Settle(ctx context.Context, externalID string, reservationID int64, customerEmail, source string) (*models.ConfirmationResult, error)
}

// DedupStore tracks processed webhook event ids. MarkProcessed atomically
// claims an id; Release gives the claim back when settlement fails so the
// gateway's redelivery can retry.
type DedupStore interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}

// WebhookProcessor handles one inbound gateway notification: verify the
// signature over the raw body, classify the event type, dedup by event id,
// and settle. Delivery is at-least-once, so a duplicate of an already
// applied event must short-circuit without re-firing side effects.
type WebhookProcessor struct {
	settler   Settler
	dedup     DedupStore
	secret    string
	tolerance time.Duration
}

func NewWebhookProcessor(settler Settler, dedup DedupStore, secret string, tolerance time.Duration) *WebhookProcessor {
	return &WebhookProcessor{
		settler:   settler,
		dedup:     dedup,
		secret:    secret,
		tolerance: tolerance,
	}
}

// Process runs one delivery through the state machine. The returned outcome
// maps to the HTTP answer: Rejected is the only client-error class, Ignored
// and Duplicate still answer success so the gateway stops redelivering.
func (p *WebhookProcessor) Process(ctx context.Context, payload []byte, sigHeader string) (models.WebhookOutcome, error) {
	event, err := gateway.ConstructEvent(payload, sigHeader, p.secret, p.tolerance)
	if err != nil {
		logrus.Errorf("Webhook rejected: %s", err.Error())
		metrics.WebhookEventsTotal.WithLabelValues("rejected").Inc()
		return models.WebhookRejected, err
	}

	switch event.Type {
	case gateway.EventPaymentIntentSucceeded, gateway.EventCheckoutSessionCompleted:
		return p.handlePaymentCompleted(ctx, event)
	default:
		logrus.Infof("Unhandled event type %s", event.Type)
		metrics.WebhookEventsTotal.WithLabelValues("ignored").Inc()
		return models.WebhookIgnored, nil
	}
}

func (p *WebhookProcessor) handlePaymentCompleted(ctx context.Context, event *gateway.Event) (models.WebhookOutcome, error) {
	reservationID, err := strconv.ParseInt(event.Data.Object.Metadata[gateway.MetadataReservationID], 10, 64)
	if err != nil || reservationID <= 0 {
		metrics.WebhookEventsTotal.WithLabelValues("rejected").Inc()
		return models.WebhookRejected, fmt.Errorf("%w: event %s carries no reservation id", models.ErrMalformedEvent, event.ID)
	}

	first, err := p.dedup.MarkProcessed(ctx, event.ID)
	if err != nil {
		// Degrade to the idempotent downstream update rather than failing
		// the delivery.
		logrus.Warnf("Dedup store unavailable for event %s, proceeding: %s", event.ID, err.Error())
		first = true
	}
	if !first {
		logrus.Infof("Duplicate delivery of event %s, skipping", event.ID)
		metrics.WebhookEventsTotal.WithLabelValues("duplicate").Inc()
		return models.WebhookDuplicate, nil
	}

	logrus.Infof("Payment succeeded for reservation %d (event %s)", reservationID, event.ID)

	email := event.Data.Object.Metadata[gateway.MetadataUserEmail]
	if _, err := p.settler.Settle(ctx, event.Data.Object.ID, reservationID, email, models.ConfirmationSourceWebhook); err != nil {
		// Give the claim back so the gateway's redelivery gets another go.
		if relErr := p.dedup.Release(ctx, event.ID); relErr != nil {
			logrus.Warnf("Failed to release dedup claim for event %s: %s", event.ID, relErr.Error())
		}
		metrics.WebhookEventsTotal.WithLabelValues("failed").Inc()
		return models.WebhookFailed, err
	}

	metrics.WebhookEventsTotal.WithLabelValues("applied").Inc()
	return models.WebhookApplied, nil
}
