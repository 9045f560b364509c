package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stayhub/payment-service/internal/gateway"
	"github.com/stayhub/payment-service/internal/models"
	"github.com/stayhub/payment-service/internal/models/dto"
)

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req *dto.CreateCheckoutSession) (*dto.CheckoutSessionResponse, error)
	CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntent) (*dto.PaymentIntentResponse, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*models.ConfirmationResult, error)
}

type WebhookProcessor interface {
	Process(ctx context.Context, payload []byte, sigHeader string) (models.WebhookOutcome, error)
}

type PaymentHandler struct {
	Service  PaymentService
	Webhooks WebhookProcessor
}

func NewPaymentHandler(s PaymentService, w WebhookProcessor) *PaymentHandler {
	return &PaymentHandler{Service: s, Webhooks: w}
}

// POST /payments/create-checkout-session
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req dto.CreateCheckoutSession
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Service.CreateCheckoutSession(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// POST /payments/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.CreatePaymentIntent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Service.CreatePaymentIntent(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// POST /payments/confirm
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPayment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}
	req.Sanitize()

	result, err := h.Service.ConfirmPayment(c.Request.Context(), req.SessionID)
	if err != nil && result == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	switch result.Outcome {
	case models.OutcomeSuccess:
		c.JSON(http.StatusOK, dto.ConfirmPaymentResponse{
			Status:        "success",
			ReservationID: result.ReservationID,
		})
	case models.OutcomeNotPaid:
		c.JSON(http.StatusPaymentRequired, gin.H{"error": models.ErrPaymentNotCompleted.Error()})
	case models.OutcomeReservationUpdateFailed:
		c.JSON(http.StatusBadGateway, gin.H{"error": models.ErrReservationUnavailable.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unknown confirmation outcome"})
	}
}

// POST /payments/webhook
//
// Signature verification needs the original bytes, so the body is read raw
// and never re-serialized.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	outcome, err := h.Webhooks.Process(c.Request.Context(), payload, c.GetHeader(gateway.SignatureHeader))
	switch outcome {
	case models.WebhookRejected:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case models.WebhookFailed:
		logrus.Errorf("Webhook settlement failed: %s", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
