// Package events defines the routing keys and payloads exchanged over
// the broker between the booking platform and its collaborators (the
// payment gateway publishes payment.*, the notifier consumes both).
package events

import (
	"encoding/json"
	"fmt"
)

const (
	RKBookingCreated   = "booking.created"
	RKBookingConfirmed = "booking.confirmed"
	RKBookingCancelled = "booking.cancelled"

	RKPaymentPaid   = "payment.paid"
	RKPaymentFailed = "payment.failed"
)

type BookingCreated struct {
	BookingID string `json:"booking_id"`
	ClubID    string `json:"club_id"`
	CourtID   string `json:"court_id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`  // "YYYY-MM-DD"
	Start     string `json:"start"` // "HH:mm"
	End       string `json:"end"`
	Price     int64  `json:"price"` // cents
	Currency  string `json:"currency"`
}

type BookingSimple struct {
	BookingID string `json:"booking_id"`
}

// PaymentPaid is the gateway's settlement notice; its PaymentID doubles
// as the idempotency key on the consumer side.
type PaymentPaid struct {
	Event   string `json:"event"`
	Version int    `json:"version"`
	Data    struct {
		PaymentID string `json:"payment_id"`
		BookingID string `json:"booking_id"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Method    string `json:"method"`
	} `json:"data"`
}

type PaymentFailed struct {
	BookingID      string `json:"booking_id"`
	PaymentID      string `json:"payment_id"`
	FailureCode    string `json:"failure_code,omitempty"`
	FailureMessage string `json:"failure_message,omitempty"`
}

func MustUnmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
