package dto

import "strings"

type CreateCheckoutSession struct {
	ReservationID      int64   `json:"reservationId" binding:"required,gt=0"`
	Amount             float64 `json:"amount" binding:"required,gte=1"`
	Currency           string  `json:"currency" binding:"required"`
	ProductName        string  `json:"productName"`
	ProductDescription string  `json:"productDescription"`
	UserEmail          string  `json:"userEmail" binding:"required,email"`
}

func (r *CreateCheckoutSession) Sanitize() {
	r.Currency = strings.ToLower(strings.TrimSpace(r.Currency))
	r.ProductName = strings.TrimSpace(r.ProductName)
	r.ProductDescription = strings.TrimSpace(r.ProductDescription)
	r.UserEmail = strings.TrimSpace(r.UserEmail)

	if r.ProductName == "" {
		r.ProductName = "Reservation"
	}
}

type CreatePaymentIntent struct {
	ReservationID int64   `json:"reservationId" binding:"required,gt=0"`
	Amount        float64 `json:"amount" binding:"required,gte=1"`
}

type ConfirmPayment struct {
	SessionID string `json:"sessionId" binding:"required"`
}

func (r *ConfirmPayment) Sanitize() {
	r.SessionID = strings.TrimSpace(r.SessionID)
}

type CheckoutSessionResponse struct {
	SessionID      string `json:"sessionId"`
	SessionURL     string `json:"sessionUrl"`
	PublishableKey string `json:"publishableKey,omitempty"`
}

type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

type ConfirmPaymentResponse struct {
	Status        string `json:"status"`
	ReservationID int64  `json:"reservationId"`
}
