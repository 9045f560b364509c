package service

import (
	"fmt"

	"github.com/stayhub/payment-service/internal/models"
)

const confirmationSubject = "Booking Confirmation - Payment Received"

func buildConfirmationEmail(to string, reservationID int64, reservation *models.Reservation) models.EmailRequest {
	checkIn := reservation.CheckInDate.Format("02/01/2006")
	checkOut := reservation.CheckOutDate.Format("02/01/2006")

	body := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 10px;">
        <h1 style="color: #4f46e5;">Booking Confirmation</h1>
        <p>Dear Customer,</p>
        <p>Your payment has been received and your booking is now confirmed.</p>
        <hr style="border: 0; border-top: 1px solid #e0e0e0; margin: 20px 0;">
        <h2 style="color: #333;">Reservation Details:</h2>
        <ul style="list-style: none; padding: 0;">
            <li style="margin-bottom: 10px;"><strong>Reservation ID:</strong> %d</li>
            <li style="margin-bottom: 10px;"><strong>Entry date:</strong> %s</li>
            <li style="margin-bottom: 10px;"><strong>Departure date:</strong> %s</li>
            <li style="margin-bottom: 10px;"><strong>Nights:</strong> %d</li>
            <li style="margin-bottom: 10px;"><strong>Guests:</strong> %d</li>
        </ul>
        <p>Thank you for choosing our hotel. We look forward to your stay!</p>
      </div>`,
		reservationID, checkIn, checkOut, reservation.NumberOfNights, reservation.NumberOfGuests)

	return models.EmailRequest{
		To:      to,
		Subject: confirmationSubject,
		Body:    body,
	}
}
