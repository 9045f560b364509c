package models

import "time"

// Reservation status ids as defined by the reservation service.
const (
	ReservationStatusPending   = 1
	ReservationStatusConfirmed = 2
	ReservationStatusCancelled = 3
)

// Reservation is the representation returned by the reservation service after
// an internal status update. Only the fields the confirmation email needs.
type Reservation struct {
	ID             int64     `json:"id"`
	RoomID         int64     `json:"roomId"`
	UserEmail      string    `json:"userEmail"`
	CheckInDate    time.Time `json:"checkInDate"`
	CheckOutDate   time.Time `json:"checkOutDate"`
	TotalPrice     float64   `json:"totalPrice"`
	Status         string    `json:"status"`
	NumberOfNights int       `json:"numberOfNights"`
	NumberOfGuests int       `json:"numberOfGuests"`
}

// EmailRequest is the fire-and-forget payload sent to the email service.
type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
