package dto

import (
	"tempah/internal/domains/payment/model"
)

type CallbackRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

// CallbackResponse reports the settlement outcome. Processed is false when the
// booking had already left pending payment; callers treat that as a soft
// failure, not an error.
type CallbackResponse struct {
	BookingID       string `json:"booking_id"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	TrackingCode    string `json:"tracking_code,omitempty"`
	BookingStatus   string `json:"booking_status"`
	Processed       bool   `json:"processed"`
	Message         string `json:"message,omitempty"`
}

type PaymentIntentResponse struct {
	ID           string  `json:"id"`
	BookingID    string  `json:"booking_id"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	TrackingCode string  `json:"tracking_code,omitempty"`
}

func (r *PaymentIntentResponse) FromModel(model model.PaymentIntent) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Status = model.Status
	r.TrackingCode = model.TrackingCode
}
