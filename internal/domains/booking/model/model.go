package model

import (
	"slices"
	"tempah/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldCustomerID  = "customer_id"
	FieldStaffID     = "staff_id"
	FieldServiceID   = "service_id"
	FieldVendorID    = "vendor_id"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldTotalPrice  = "total_price"
	FieldDepositPaid = "deposit_paid"
	FieldStatus      = "status"
	FieldNotes       = "notes"
)

const (
	StatusPendingPayment    = "pending_payment"
	StatusConfirmed         = "confirmed"
	StatusCancelledByUser   = "cancelled_by_user"
	StatusCancelledByVendor = "cancelled_by_vendor"
	StatusCompleted         = "completed"
	StatusNoShow            = "no_show"
)

// ActiveStatuses are the statuses that occupy the staff member's calendar for
// collision purposes. Everything else frees the interval.
var ActiveStatuses = []string{StatusPendingPayment, StatusConfirmed}

// transitions is the booking state machine. Absent keys are terminal states.
var transitions = map[string][]string{
	StatusPendingPayment: {StatusConfirmed, StatusCancelledByUser, StatusCancelledByVendor},
	StatusConfirmed:      {StatusCancelledByUser, StatusCancelledByVendor, StatusCompleted, StatusNoShow},
}

func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}

type Booking struct {
	ID          string    `db:"id"`
	CustomerID  string    `db:"customer_id"`
	StaffID     string    `db:"staff_id"`
	ServiceID   string    `db:"service_id"`
	VendorID    string    `db:"vendor_id"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	TotalPrice  float64   `db:"total_price"`
	DepositPaid float64   `db:"deposit_paid"`
	Status      string    `db:"status"`
	Notes       string    `db:"notes"`
	model.Metadata
}

func (b Booking) IsActive() bool {
	return slices.Contains(ActiveStatuses, b.Status)
}
