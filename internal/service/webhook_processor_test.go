package service_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stayhub/payment-service/internal/models"
	"github.com/stayhub/payment-service/internal/service"
	"github.com/stayhub/payment-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const webhookSecret = "whsec_test"

func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", at.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func succeededEvent(eventID string) []byte {
	return []byte(`{
		"id": "` + eventID + `",
		"type": "payment_intent.succeeded",
		"data": {
			"object": {
				"id": "pi_1",
				"status": "succeeded",
				"metadata": {"reservationId": "42", "userEmail": "guest@example.com"}
			}
		}
	}`)
}

func newProcessor(t *testing.T) (*service.WebhookProcessor, *mocks.MockSettler, *mocks.MockDedupStore) {
	mockSettler := mocks.NewMockSettler(t)
	mockDedup := mocks.NewMockDedupStore(t)
	processor := service.NewWebhookProcessor(mockSettler, mockDedup, webhookSecret, 5*time.Minute)
	return processor, mockSettler, mockDedup
}

func TestProcess_PaymentSucceeded_Applied(t *testing.T) {
	processor, mockSettler, mockDedup := newProcessor(t)
	ctx := context.Background()

	payload := succeededEvent("evt_1")
	sig := signPayload(payload, webhookSecret, time.Now())

	mockDedup.EXPECT().
		MarkProcessed(ctx, "evt_1").
		Return(true, nil).
		Once()

	mockSettler.EXPECT().
		Settle(ctx, "pi_1", int64(42), "guest@example.com", models.ConfirmationSourceWebhook).
		Return(&models.ConfirmationResult{Outcome: models.OutcomeSuccess, ReservationID: 42}, nil).
		Once()

	outcome, err := processor.Process(ctx, payload, sig)

	assert.NoError(t, err)
	assert.Equal(t, models.WebhookApplied, outcome)
}

func TestProcess_InvalidSignature_Rejected(t *testing.T) {
	processor, mockSettler, mockDedup := newProcessor(t)
	ctx := context.Background()

	payload := succeededEvent("evt_1")
	sig := signPayload(payload, "whsec_wrong", time.Now())

	outcome, err := processor.Process(ctx, payload, sig)

	assert.ErrorIs(t, err, models.ErrSignatureInvalid)
	assert.Equal(t, models.WebhookRejected, outcome)
	mockSettler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockDedup.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
}

func TestProcess_TamperedPayload_Rejected(t *testing.T) {
	processor, mockSettler, _ := newProcessor(t)
	ctx := context.Background()

	payload := succeededEvent("evt_1")
	sig := signPayload(payload, webhookSecret, time.Now())
	tampered := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","metadata":{"reservationId":"999"}}}}`)

	outcome, err := processor.Process(ctx, tampered, sig)

	assert.ErrorIs(t, err, models.ErrSignatureInvalid)
	assert.Equal(t, models.WebhookRejected, outcome)
	mockSettler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_StaleTimestamp_Rejected(t *testing.T) {
	processor, _, _ := newProcessor(t)
	ctx := context.Background()

	payload := succeededEvent("evt_1")
	sig := signPayload(payload, webhookSecret, time.Now().Add(-time.Hour))

	outcome, err := processor.Process(ctx, payload, sig)

	assert.ErrorIs(t, err, models.ErrSignatureInvalid)
	assert.Equal(t, models.WebhookRejected, outcome)
}

func TestProcess_UnknownType_Ignored(t *testing.T) {
	processor, mockSettler, mockDedup := newProcessor(t)
	ctx := context.Background()

	payload := []byte(`{"id": "evt_2", "type": "customer.created", "data": {"object": {"id": "cus_1"}}}`)
	sig := signPayload(payload, webhookSecret, time.Now())

	outcome, err := processor.Process(ctx, payload, sig)

	assert.NoError(t, err)
	assert.Equal(t, models.WebhookIgnored, outcome)
	mockSettler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockDedup.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
}

func TestProcess_MissingReservationMetadata_Rejected(t *testing.T) {
	processor, mockSettler, _ := newProcessor(t)
	ctx := context.Background()

	payload := []byte(`{"id": "evt_3", "type": "payment_intent.succeeded", "data": {"object": {"id": "pi_2", "metadata": {}}}}`)
	sig := signPayload(payload, webhookSecret, time.Now())

	outcome, err := processor.Process(ctx, payload, sig)

	assert.ErrorIs(t, err, models.ErrMalformedEvent)
	assert.Equal(t, models.WebhookRejected, outcome)
	mockSettler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_DuplicateDelivery_ShortCircuits(t *testing.T) {
	processor, mockSettler, mockDedup := newProcessor(t)
	ctx := context.Background()

	payload := succeededEvent("evt_1")
	sig := signPayload(payload, webhookSecret, time.Now())

	mockDedup.EXPECT().
		MarkProcessed(ctx, "evt_1").
		Return(false, nil).
		Once()

	outcome, err := processor.Process(ctx, payload, sig)

	assert.NoError(t, err)
	assert.Equal(t, models.WebhookDuplicate, outcome)
	mockSettler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_Redelivery_ExactlyOneSettlement(t *testing.T) {
	processor, mockSettler, mockDedup := newProcessor(t)
	ctx := context.Background()

	payload := succeededEvent("evt_1")
	sig := signPayload(payload, webhookSecret, time.Now())

	mockDedup.EXPECT().MarkProcessed(ctx, "evt_1").Return(true, nil).Once()
	mockDedup.EXPECT().MarkProcessed(ctx, "evt_1").Return(false, nil).Once()

	mockSettler.EXPECT().
		Settle(ctx, "pi_1", int64(42), "guest@example.com", models.ConfirmationSourceWebhook).
		Return(&models.ConfirmationResult{Outcome: models.OutcomeSuccess, ReservationID: 42}, nil).
		Once()

	first, err := processor.Process(ctx, payload, sig)
	assert.NoError(t, err)
	assert.Equal(t, models.WebhookApplied, first)

	second, err := processor.Process(ctx, payload, sig)
	assert.NoError(t, err)
	assert.Equal(t, models.WebhookDuplicate, second)

	mockSettler.AssertNumberOfCalls(t, "Settle", 1)
}

func TestProcess_SettleFailure_ReleasesClaim(t *testing.T) {
	processor, mockSettler, mockDedup := newProcessor(t)
	ctx := context.Background()

	payload := succeededEvent("evt_4")
	sig := signPayload(payload, webhookSecret, time.Now())

	mockDedup.EXPECT().
		MarkProcessed(ctx, "evt_4").
		Return(true, nil).
		Once()

	mockSettler.EXPECT().
		Settle(ctx, "pi_1", int64(42), "guest@example.com", models.ConfirmationSourceWebhook).
		Return(&models.ConfirmationResult{Outcome: models.OutcomeReservationUpdateFailed, ReservationID: 42}, models.ErrReservationUnavailable).
		Once()

	mockDedup.EXPECT().
		Release(ctx, "evt_4").
		Return(nil).
		Once()

	outcome, err := processor.Process(ctx, payload, sig)

	assert.ErrorIs(t, err, models.ErrReservationUnavailable)
	assert.Equal(t, models.WebhookFailed, outcome)
}

func TestProcess_DedupUnavailable_Proceeds(t *testing.T) {
	processor, mockSettler, mockDedup := newProcessor(t)
	ctx := context.Background()

	payload := succeededEvent("evt_5")
	sig := signPayload(payload, webhookSecret, time.Now())

	mockDedup.EXPECT().
		MarkProcessed(ctx, "evt_5").
		Return(false, errors.New("redis down")).
		Once()

	mockSettler.EXPECT().
		Settle(ctx, "pi_1", int64(42), "guest@example.com", models.ConfirmationSourceWebhook).
		Return(&models.ConfirmationResult{Outcome: models.OutcomeSuccess, ReservationID: 42}, nil).
		Once()

	outcome, err := processor.Process(ctx, payload, sig)

	assert.NoError(t, err)
	assert.Equal(t, models.WebhookApplied, outcome)
}

func TestProcess_CheckoutSessionCompleted_Applied(t *testing.T) {
	processor, mockSettler, mockDedup := newProcessor(t)
	ctx := context.Background()

	payload := []byte(`{
		"id": "evt_6",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_1",
				"payment_status": "paid",
				"metadata": {"reservationId": "42", "userEmail": "guest@example.com"}
			}
		}
	}`)
	sig := signPayload(payload, webhookSecret, time.Now())

	mockDedup.EXPECT().MarkProcessed(ctx, "evt_6").Return(true, nil).Once()

	mockSettler.EXPECT().
		Settle(ctx, "cs_1", int64(42), "guest@example.com", models.ConfirmationSourceWebhook).
		Return(&models.ConfirmationResult{Outcome: models.OutcomeSuccess, ReservationID: 42}, nil).
		Once()

	outcome, err := processor.Process(ctx, payload, sig)

	assert.NoError(t, err)
	assert.Equal(t, models.WebhookApplied, outcome)
}
