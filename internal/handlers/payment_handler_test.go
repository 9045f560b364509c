package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stayhub/payment-service/internal/gateway"
	"github.com/stayhub/payment-service/internal/handlers"
	"github.com/stayhub/payment-service/internal/handlers/mocks"
	"github.com/stayhub/payment-service/internal/models"
	"github.com/stayhub/payment-service/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockPaymentService, *mocks.MockWebhookProcessor) {
	gin.SetMode(gin.TestMode)

	service := mocks.NewMockPaymentService(t)
	webhooks := mocks.NewMockWebhookProcessor(t)
	handler := handlers.NewPaymentHandler(service, webhooks)

	router := gin.New()
	payments := router.Group("/payments")
	{
		payments.POST("/create-checkout-session", handler.CreateCheckoutSession)
		payments.POST("/create-payment-intent", handler.CreatePaymentIntent)
		payments.POST("/confirm", handler.ConfirmPayment)
		payments.POST("/webhook", handler.Webhook)
	}

	return router, service, webhooks
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCheckoutSessionHandler_Success(t *testing.T) {
	router, service, _ := newRouter(t)

	service.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("*dto.CreateCheckoutSession")).
		Return(&dto.CheckoutSessionResponse{
			SessionID:      "cs_test_1",
			SessionURL:     "https://pay.example.com/cs_test_1",
			PublishableKey: "pk_test_123",
		}, nil)

	w := postJSON(router, "/payments/create-checkout-session", dto.CreateCheckoutSession{
		ReservationID: 42,
		Amount:        150.00,
		Currency:      "usd",
		UserEmail:     "guest@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckoutSessionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cs_test_1", resp.SessionID)
	assert.Equal(t, "pk_test_123", resp.PublishableKey)
}

func TestCreateCheckoutSessionHandler_InvalidBody(t *testing.T) {
	router, service, _ := newRouter(t)

	w := postJSON(router, "/payments/create-checkout-session", gin.H{
		"reservationId": 42,
		"amount":        -10,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "CreateCheckoutSession")
}

func TestCreateCheckoutSessionHandler_GatewayError(t *testing.T) {
	router, service, _ := newRouter(t)

	service.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.Anything).
		Return(nil, &models.GatewayError{Op: "create checkout session", Err: assert.AnError})

	w := postJSON(router, "/payments/create-checkout-session", dto.CreateCheckoutSession{
		ReservationID: 42,
		Amount:        150.00,
		Currency:      "usd",
		UserEmail:     "guest@example.com",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreatePaymentIntentHandler_Success(t *testing.T) {
	router, service, _ := newRouter(t)

	service.EXPECT().
		CreatePaymentIntent(mock.Anything, mock.AnythingOfType("*dto.CreatePaymentIntent")).
		Return(&dto.PaymentIntentResponse{ID: "pi_test_1", ClientSecret: "pi_test_1_secret"}, nil)

	w := postJSON(router, "/payments/create-payment-intent", dto.CreatePaymentIntent{
		ReservationID: 42,
		Amount:        150.00,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentIntentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_test_1_secret", resp.ClientSecret)
}

func TestConfirmPaymentHandler_Success(t *testing.T) {
	router, service, _ := newRouter(t)

	service.EXPECT().
		ConfirmPayment(mock.Anything, "cs_test_1").
		Return(&models.ConfirmationResult{Outcome: models.OutcomeSuccess, ReservationID: 42}, nil)

	w := postJSON(router, "/payments/confirm", dto.ConfirmPayment{SessionID: "cs_test_1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmPaymentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(42), resp.ReservationID)
}

func TestConfirmPaymentHandler_MissingSessionID(t *testing.T) {
	router, service, _ := newRouter(t)

	w := postJSON(router, "/payments/confirm", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "ConfirmPayment")
}

func TestConfirmPaymentHandler_NotPaid(t *testing.T) {
	router, service, _ := newRouter(t)

	service.EXPECT().
		ConfirmPayment(mock.Anything, "cs_test_1").
		Return(&models.ConfirmationResult{Outcome: models.OutcomeNotPaid}, nil)

	w := postJSON(router, "/payments/confirm", dto.ConfirmPayment{SessionID: "cs_test_1"})

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestConfirmPaymentHandler_ReservationUpdateFailed(t *testing.T) {
	router, service, _ := newRouter(t)

	service.EXPECT().
		ConfirmPayment(mock.Anything, "cs_test_1").
		Return(&models.ConfirmationResult{Outcome: models.OutcomeReservationUpdateFailed, ReservationID: 42},
			models.ErrReservationUnavailable)

	w := postJSON(router, "/payments/confirm", dto.ConfirmPayment{SessionID: "cs_test_1"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestConfirmPaymentHandler_GatewayError(t *testing.T) {
	router, service, _ := newRouter(t)

	service.EXPECT().
		ConfirmPayment(mock.Anything, "cs_test_1").
		Return(nil, &models.GatewayError{Op: "retrieve checkout session", Err: assert.AnError})

	w := postJSON(router, "/payments/confirm", dto.ConfirmPayment{SessionID: "cs_test_1"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWebhookHandler_Applied(t *testing.T) {
	router, _, webhooks := newRouter(t)

	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded"}`)
	webhooks.EXPECT().
		Process(mock.Anything, payload, "t=1,v1=abc").
		Return(models.WebhookApplied, nil)

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(payload))
	req.Header.Set(gateway.SignatureHeader, "t=1,v1=abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())
}

func TestWebhookHandler_Rejected(t *testing.T) {
	router, _, webhooks := newRouter(t)

	webhooks.EXPECT().
		Process(mock.Anything, mock.Anything, mock.Anything).
		Return(models.WebhookRejected, models.ErrSignatureInvalid)

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHandler_SettleFailure(t *testing.T) {
	router, _, webhooks := newRouter(t)

	webhooks.EXPECT().
		Process(mock.Anything, mock.Anything, mock.Anything).
		Return(models.WebhookFailed, models.ErrReservationUnavailable)

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWebhookHandler_DuplicateStillAcknowledged(t *testing.T) {
	router, _, webhooks := newRouter(t)

	webhooks.EXPECT().
		Process(mock.Anything, mock.Anything, mock.Anything).
		Return(models.WebhookDuplicate, nil)

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())
}
