package dto

import (
	"tempah/internal/domains/booking/model"
	catalogModel "tempah/internal/domains/catalog/model"
	"tempah/shared"
	"tempah/shared/constant"
	gDto "tempah/shared/dto"
	gModel "tempah/shared/model"
	"tempah/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	StaffID   string `json:"staff_id"   validate:"required,uuid"`
	Date      string `json:"date"       validate:"required,dateonly"`
	StartTime string `json:"start_time" validate:"required,clocktime"`
	Notes     string `json:"notes"      validate:"omitempty,max=500"`
}

// ToModel builds the booking row for the requested slot. The end time is
// derived from the service duration, never taken from the client.
func (c *CreateBookingRequest) ToModel(customerID string, service catalogModel.Service, startTime time.Time) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		StaffID:    c.StaffID,
		ServiceID:  service.ID,
		VendorID:   service.VendorID,
		StartTime:  startTime,
		EndTime:    startTime.Add(time.Duration(service.DurationMinutes) * time.Minute),
		TotalPrice: service.Price,
		Status:     model.StatusPendingPayment,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type InitiateBookingResponse struct {
	BookingID       string `json:"booking_id"`
	PaymentIntentID string `json:"payment_intent_id"`
	Status          string `json:"status"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customer_id"`
	StaffID     string  `json:"staff_id"`
	ServiceID   string  `json:"service_id"`
	VendorID    string  `json:"vendor_id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	TotalPrice  float64 `json:"total_price"`
	DepositPaid float64 `json:"deposit_paid"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.StaffID = model.StaffID
	r.ServiceID = model.ServiceID
	r.VendorID = model.VendorID
	r.Date = timezone.Format(model.StartTime, constant.DateOnlyFormat)
	r.StartTime = timezone.Format(model.StartTime, constant.ClockTimeFormat)
	r.EndTime = timezone.Format(model.EndTime, constant.ClockTimeFormat)
	r.TotalPrice = model.TotalPrice
	r.DepositPaid = model.DepositPaid
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking events topic on every
// lifecycle change. Consumers key on BookingID.
type BookingEvent struct {
	EventType  string    `json:"event_type"`
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	StaffID    string    `json:"staff_id"`
	ServiceID  string    `json:"service_id"`
	VendorID   string    `json:"vendor_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		EventType:  eventType,
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		StaffID:    booking.StaffID,
		ServiceID:  booking.ServiceID,
		VendorID:   booking.VendorID,
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	}
}

const (
	EventBookingInitiated = "booking.initiated"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
	EventBookingNoShow    = "booking.no_show"
)
