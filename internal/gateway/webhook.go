package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stayhub/payment-service/internal/models"
)

// SignatureHeader carries the gateway's webhook signature, computed over the
// exact raw body bytes: "t=<unix>,v1=<hex hmac-sha256 of '<t>.<body>'>".
const SignatureHeader = "Paygate-Signature"

// Webhook event types this service settles on. Anything else is ignored.
const (
	EventPaymentIntentSucceeded   = "payment_intent.succeeded"
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object EventObject `json:"object"`
	} `json:"data"`
}

// EventObject is the session or intent embedded in the event payload.
type EventObject struct {
	ID            string            `json:"id"`
	PaymentStatus string            `json:"payment_status,omitempty"`
	Status        string            `json:"status,omitempty"`
	Metadata      map[string]string `json:"metadata"`
}

// ConstructEvent verifies the signature header against the raw payload and
// the shared secret, then parses the event. Verification must run on the
// byte-exact body the gateway signed, never on a re-serialized object.
func ConstructEvent(payload []byte, sigHeader, secret string, tolerance time.Duration) (*Event, error) {
	if err := verifySignature(payload, sigHeader, secret, tolerance, time.Now()); err != nil {
		return nil, err
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrMalformedEvent, err.Error())
	}
	if event.ID == "" || event.Type == "" {
		return nil, fmt.Errorf("%w: missing event id or type", models.ErrMalformedEvent)
	}

	return &event, nil
}

func verifySignature(payload []byte, sigHeader, secret string, tolerance time.Duration, now time.Time) error {
	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return err
	}

	if tolerance > 0 {
		age := now.Sub(time.Unix(timestamp, 0))
		if age > tolerance || age < -tolerance {
			return fmt.Errorf("%w: timestamp outside tolerance", models.ErrSignatureInvalid)
		}
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return fmt.Errorf("%w: no matching v1 signature", models.ErrSignatureInvalid)
}

func parseSignatureHeader(header string) (int64, []string, error) {
	var timestamp int64 = -1
	var signatures []string

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: bad timestamp", models.ErrSignatureInvalid)
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}

	if timestamp < 0 || len(signatures) == 0 {
		return 0, nil, fmt.Errorf("%w: malformed signature header", models.ErrSignatureInvalid)
	}

	return timestamp, signatures, nil
}
