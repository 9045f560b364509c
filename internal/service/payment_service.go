package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayhub/payment-service/internal/gateway"
	"github.com/stayhub/payment-service/internal/metrics"
	"github.com/stayhub/payment-service/internal/models"
	"github.com/stayhub/payment-service/internal/models/dto"
)

// Gateway defines the calls the service needs from the payment processor
// client. Tests substitute a fake gateway through this interface.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params gateway.CheckoutSessionParams) (*gateway.CheckoutSession, error)
	CreatePaymentIntent(ctx context.Context, params gateway.PaymentIntentParams) (*gateway.PaymentIntent, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*gateway.CheckoutSession, error)
}

// ReservationUpdater issues the cross-service reservation status mutation.
type ReservationUpdater interface {
	UpdateStatus(ctx context.Context, reservationID int64, statusID int) (*models.Reservation, error)
}

// EmailSender sends the confirmation notification.
type EmailSender interface {
	SendEmail(ctx context.Context, email models.EmailRequest) error
}

// AttemptRepo persists the service's own record of issued sessions/intents.
type AttemptRepo interface {
	Create(ctx context.Context, attempt *models.PaymentAttempt) error
	GetFirstBy(ctx context.Context, query string, value interface{}) (*models.PaymentAttempt, error)
	UpdateBy(ctx context.Context, query string, value interface{}, updates map[string]interface{}) error
}

// Publisher defines the interface for publishing payment lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Options carries the redirect URLs and gateway presentation settings the
// factories embed in outbound requests.
type Options struct {
	SuccessURL      string
	CancelURL       string
	PublishableKey  string
	DefaultCurrency string
}

// PaymentService owns checkout/intent creation and the payment confirmation
// flow: retrieve session state from the gateway, update the reservation,
// fire the confirmation email. Reservation update failures are surfaced;
// email and event-publish failures are logged and swallowed.
type PaymentService struct {
	Gateway       Gateway
	Reservations  ReservationUpdater
	Notifications EmailSender
	Repo          AttemptRepo
	Publisher     Publisher
	Opts          Options
}

func NewPaymentService(gw Gateway, reservations ReservationUpdater, notifications EmailSender, repo AttemptRepo, publisher Publisher, opts Options) *PaymentService {
	return &PaymentService{
		Gateway:       gw,
		Reservations:  reservations,
		Notifications: notifications,
		Repo:          repo,
		Publisher:     publisher,
		Opts:          opts,
	}
}

// CreateCheckoutSession builds and issues a new checkout session at the
// gateway. reservationId and userEmail go into gateway metadata; they are the
// only way the webhook and confirmation paths recover the reservation
// context later. Gateway errors are returned to the caller verbatim, the
// user retries by re-submitting.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req *dto.CreateCheckoutSession) (*dto.CheckoutSessionResponse, error) {
	req.Sanitize()

	reservationID := strconv.FormatInt(req.ReservationID, 10)
	params := gateway.CheckoutSessionParams{
		AmountMinorUnits:   toMinorUnits(req.Amount),
		Currency:           req.Currency,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		CustomerEmail:      req.UserEmail,
		SuccessURL:         s.Opts.SuccessURL + "?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          s.Opts.CancelURL + "?reservation_id=" + reservationID,
		Metadata: map[string]string{
			gateway.MetadataReservationID: reservationID,
			gateway.MetadataUserEmail:     req.UserEmail,
		},
	}

	session, err := s.Gateway.CreateCheckoutSession(ctx, params)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("checkout_session", "error").Inc()
		return nil, err
	}

	logrus.Infof("Checkout session created for reservation %d: %s", req.ReservationID, session.ID)
	metrics.CheckoutSessionsTotal.WithLabelValues("checkout_session", "created").Inc()
	metrics.PaymentAmounts.WithLabelValues(req.Currency).Observe(req.Amount)

	s.recordAttempt(ctx, session.ID, req.ReservationID, params.AmountMinorUnits, req.Currency, req.UserEmail)

	if err := s.Publisher.Publish(ctx, models.CheckoutCreatedEventTopic, models.CheckoutCreatedEvent{
		SessionID:     session.ID,
		ReservationID: req.ReservationID,
		Amount:        params.AmountMinorUnits,
		Currency:      req.Currency,
		CustomerEmail: req.UserEmail,
		CreatedAt:     time.Now().UTC(),
	}); err != nil {
		logrus.Errorf("Failed to publish checkout created event for session %s: %s", session.ID, err.Error())
	}

	return &dto.CheckoutSessionResponse{
		SessionID:      session.ID,
		SessionURL:     session.URL,
		PublishableKey: s.Opts.PublishableKey,
	}, nil
}

// CreatePaymentIntent issues a bare payment intent for clients that collect
// the card themselves. Currency comes from config, the original exposes no
// currency choice on this path.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntent) (*dto.PaymentIntentResponse, error) {
	params := gateway.PaymentIntentParams{
		AmountMinorUnits: toMinorUnits(req.Amount),
		Currency:         s.Opts.DefaultCurrency,
		Metadata: map[string]string{
			gateway.MetadataReservationID: strconv.FormatInt(req.ReservationID, 10),
		},
	}

	intent, err := s.Gateway.CreatePaymentIntent(ctx, params)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("payment_intent", "error").Inc()
		return nil, err
	}

	logrus.Infof("Payment intent created for reservation %d: %s", req.ReservationID, intent.ID)
	metrics.CheckoutSessionsTotal.WithLabelValues("payment_intent", "created").Inc()

	s.recordAttempt(ctx, intent.ID, req.ReservationID, params.AmountMinorUnits, params.Currency, "")

	return &dto.PaymentIntentResponse{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// ConfirmPayment is the synchronous confirmation flow. The gateway is the
// source of truth for payment status; a client-supplied "it succeeded" claim
// is never trusted.
func (s *PaymentService) ConfirmPayment(ctx context.Context, sessionID string) (*models.ConfirmationResult, error) {
	session, err := s.Gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reservationID, _ := strconv.ParseInt(session.Metadata[gateway.MetadataReservationID], 10, 64)

	if session.PaymentStatus != gateway.PaymentStatusPaid || reservationID <= 0 {
		logrus.Warnf("Confirmation attempted on unpaid or unmapped session %s (status %q)", sessionID, session.PaymentStatus)
		metrics.ConfirmationsTotal.WithLabelValues("not_paid").Inc()
		return &models.ConfirmationResult{Outcome: models.OutcomeNotPaid, ReservationID: reservationID}, nil
	}

	return s.Settle(ctx, sessionID, reservationID, session.Metadata[gateway.MetadataUserEmail], models.ConfirmationSourceClient)
}

// Settle marks the reservation paid and fires the confirmation side effects.
// Both the webhook path and the client confirmation path converge here; the
// reservation status update is idempotent downstream so a racing double
// execution is safe. Ordering is deliberate: the money-critical reservation
// update happens before any best-effort side effect, and already-applied
// progress is never rolled back.
func (s *PaymentService) Settle(ctx context.Context, externalID string, reservationID int64, customerEmail, source string) (*models.ConfirmationResult, error) {
	reservation, err := s.Reservations.UpdateStatus(ctx, reservationID, models.ReservationStatusConfirmed)
	if err != nil {
		logrus.Errorf("Failed to update reservation %d status: %s", reservationID, err.Error())
		metrics.ConfirmationsTotal.WithLabelValues("reservation_update_failed").Inc()
		return &models.ConfirmationResult{Outcome: models.OutcomeReservationUpdateFailed, ReservationID: reservationID}, err
	}

	logrus.Infof("Payment confirmed for reservation %d. Status updated.", reservationID)

	if customerEmail == "" {
		logrus.Warnf("No customer email in metadata for reservation %d, skipping confirmation email", reservationID)
	} else if err := s.Notifications.SendEmail(ctx, buildConfirmationEmail(customerEmail, reservationID, reservation)); err != nil {
		// Never escalated: the payment and reservation update already
		// succeeded.
		logrus.Errorf("Failed to send confirmation email for reservation %d: %s", reservationID, err.Error())
		metrics.NotificationFailuresTotal.Inc()
	} else {
		logrus.Infof("Confirmation email sent to %s", customerEmail)
	}

	if err := s.Repo.UpdateBy(ctx, "external_id = ?", externalID, map[string]interface{}{
		"status": models.AttemptStatusPaid,
	}); err != nil {
		logrus.Errorf("Failed to update payment attempt %s: %s", externalID, err.Error())
	}

	if err := s.Publisher.Publish(ctx, models.PaymentConfirmedEventTopic, models.PaymentConfirmedEvent{
		SessionID:     externalID,
		ReservationID: reservationID,
		CustomerEmail: customerEmail,
		Source:        source,
		ConfirmedAt:   time.Now().UTC(),
	}); err != nil {
		logrus.Errorf("Failed to publish payment confirmed event for session %s: %s", externalID, err.Error())
	}

	metrics.ConfirmationsTotal.WithLabelValues("success").Inc()
	return &models.ConfirmationResult{Outcome: models.OutcomeSuccess, ReservationID: reservationID}, nil
}

func (s *PaymentService) recordAttempt(ctx context.Context, externalID string, reservationID, amountMinorUnits int64, currency, customerEmail string) {
	attempt := &models.PaymentAttempt{
		ExternalID:       externalID,
		ReservationID:    reservationID,
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
		CustomerEmail:    customerEmail,
		Status:           models.AttemptStatusCreated,
	}
	if err := attempt.Validate(); err != nil {
		logrus.Errorf("Invalid payment attempt for %s: %s", externalID, err.Error())
		return
	}
	// Bookkeeping only. The gateway metadata alone is enough to reconcile
	// later, so a failed insert must not fail the checkout.
	if err := s.Repo.Create(ctx, attempt); err != nil {
		logrus.Errorf("Failed to persist payment attempt %s: %s", externalID, err.Error())
	}
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
