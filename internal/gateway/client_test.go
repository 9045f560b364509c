package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stayhub/payment-service/internal/gateway"
	"github.com/stayhub/payment-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession_SendsAuthAndMetadata(t *testing.T) {
	var gotAuth string
	var gotParams gateway.CheckoutSessionParams

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotParams))

		json.NewEncoder(w).Encode(gateway.CheckoutSession{
			ID:  "cs_test_1",
			URL: "https://pay.example.com/cs_test_1",
		})
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, "sk_test_123", 5*time.Second)

	session, err := client.CreateCheckoutSession(context.Background(), gateway.CheckoutSessionParams{
		AmountMinorUnits: 15000,
		Currency:         "usd",
		ProductName:      "Reservation",
		CustomerEmail:    "guest@example.com",
		Metadata: map[string]string{
			gateway.MetadataReservationID: "42",
			gateway.MetadataUserEmail:     "guest@example.com",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, int64(15000), gotParams.AmountMinorUnits)
	assert.Equal(t, "42", gotParams.Metadata[gateway.MetadataReservationID])
}

func TestGetCheckoutSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)

		json.NewEncoder(w).Encode(gateway.CheckoutSession{
			ID:            "cs_test_1",
			PaymentStatus: gateway.PaymentStatusPaid,
			Metadata:      map[string]string{gateway.MetadataReservationID: "42"},
		})
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, "sk_test_123", 5*time.Second)

	session, err := client.GetCheckoutSession(context.Background(), "cs_test_1")

	assert.NoError(t, err)
	assert.Equal(t, gateway.PaymentStatusPaid, session.PaymentStatus)
	assert.Equal(t, "42", session.Metadata[gateway.MetadataReservationID])
}

func TestCreatePaymentIntent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		json.NewEncoder(w).Encode(gateway.PaymentIntent{
			ID:           "pi_test_1",
			ClientSecret: "pi_test_1_secret",
			Status:       "requires_payment_method",
		})
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, "sk_test_123", 5*time.Second)

	intent, err := client.CreatePaymentIntent(context.Background(), gateway.PaymentIntentParams{
		AmountMinorUnits: 15000,
		Currency:         "usd",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pi_test_1_secret", intent.ClientSecret)
}

func TestClient_GatewayErrorOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, "sk_bad", 5*time.Second)

	_, err := client.GetCheckoutSession(context.Background(), "cs_test_1")

	var gwErr *models.GatewayError
	assert.ErrorAs(t, err, &gwErr)
	assert.Contains(t, gwErr.Error(), "retrieve checkout session")
}

func TestClient_TransportError(t *testing.T) {
	client := gateway.NewClient("http://127.0.0.1:1", "sk_test", 200*time.Millisecond)

	_, err := client.CreateCheckoutSession(context.Background(), gateway.CheckoutSessionParams{})

	var gwErr *models.GatewayError
	assert.ErrorAs(t, err, &gwErr)
}
