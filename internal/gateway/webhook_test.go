package gateway_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stayhub/payment-service/internal/gateway"
	"github.com/stayhub/payment-service/internal/models"
	"github.com/stretchr/testify/assert"
)

const secret = "whsec_test"

func sign(payload []byte, key string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(key))
	fmt.Fprintf(mac, "%d.", at.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestConstructEvent_ValidSignature(t *testing.T) {
	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded", "data": {"object": {"id": "pi_1", "metadata": {"reservationId": "42"}}}}`)
	header := sign(payload, secret, time.Now())

	event, err := gateway.ConstructEvent(payload, header, secret, 5*time.Minute)

	assert.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, gateway.EventPaymentIntentSucceeded, event.Type)
	assert.Equal(t, "42", event.Data.Object.Metadata[gateway.MetadataReservationID])
}

func TestConstructEvent_WrongSecret(t *testing.T) {
	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded"}`)
	header := sign(payload, "whsec_other", time.Now())

	_, err := gateway.ConstructEvent(payload, header, secret, 5*time.Minute)

	assert.ErrorIs(t, err, models.ErrSignatureInvalid)
}

func TestConstructEvent_ModifiedBody(t *testing.T) {
	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded"}`)
	header := sign(payload, secret, time.Now())

	_, err := gateway.ConstructEvent([]byte(`{"id": "evt_1", "type": "payment_intent.failed"}`), header, secret, 5*time.Minute)

	assert.ErrorIs(t, err, models.ErrSignatureInvalid)
}

func TestConstructEvent_MalformedHeader(t *testing.T) {
	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded"}`)

	for _, header := range []string{"", "v1=deadbeef", "t=notanumber,v1=deadbeef", "t=123"} {
		_, err := gateway.ConstructEvent(payload, header, secret, 5*time.Minute)
		assert.ErrorIs(t, err, models.ErrSignatureInvalid, "header %q", header)
	}
}

func TestConstructEvent_TimestampOutsideTolerance(t *testing.T) {
	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded"}`)
	header := sign(payload, secret, time.Now().Add(-10*time.Minute))

	_, err := gateway.ConstructEvent(payload, header, secret, 5*time.Minute)

	assert.ErrorIs(t, err, models.ErrSignatureInvalid)
}

func TestConstructEvent_SecondSignatureMatches(t *testing.T) {
	// Secret rotation: the gateway sends one v1 per active secret.
	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded"}`)
	now := time.Now()

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", now.Unix())
	mac.Write(payload)
	good := hex.EncodeToString(mac.Sum(nil))

	header := fmt.Sprintf("t=%d,v1=%s,v1=%s", now.Unix(), "00ff00ff", good)

	event, err := gateway.ConstructEvent(payload, header, secret, 5*time.Minute)

	assert.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
}

func TestConstructEvent_MalformedJSON(t *testing.T) {
	payload := []byte(`{"id": "evt_1"`)
	header := sign(payload, secret, time.Now())

	_, err := gateway.ConstructEvent(payload, header, secret, 5*time.Minute)

	assert.ErrorIs(t, err, models.ErrMalformedEvent)
}

func TestConstructEvent_MissingIDOrType(t *testing.T) {
	payload := []byte(`{"data": {"object": {"id": "pi_1"}}}`)
	header := sign(payload, secret, time.Now())

	_, err := gateway.ConstructEvent(payload, header, secret, 5*time.Minute)

	assert.ErrorIs(t, err, models.ErrMalformedEvent)
}
