package model

import (
	"tempah/shared/model"
)

const (
	TableName  = "payment_intents"
	EntityName = "payment_intent"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldAmount       = "amount"
	FieldStatus       = "status"
	FieldTrackingCode = "tracking_code"
)

const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// PaymentIntent is the deposit charge attached to a booking. At most one
// pending intent exists per booking; a partial unique index on
// (booking_id) WHERE status = 'pending' enforces it.
type PaymentIntent struct {
	ID           string  `db:"id"`
	BookingID    string  `db:"booking_id"`
	Amount       float64 `db:"amount"`
	Status       string  `db:"status"`
	TrackingCode string  `db:"tracking_code"`
	model.Metadata
}
