package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tempah/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", model.StatusPendingPayment, model.StatusConfirmed, true},
		{"pending to user cancellation", model.StatusPendingPayment, model.StatusCancelledByUser, true},
		{"pending to vendor cancellation", model.StatusPendingPayment, model.StatusCancelledByVendor, true},
		{"pending cannot complete", model.StatusPendingPayment, model.StatusCompleted, false},
		{"pending cannot no-show", model.StatusPendingPayment, model.StatusNoShow, false},
		{"confirmed to completed", model.StatusConfirmed, model.StatusCompleted, true},
		{"confirmed to no-show", model.StatusConfirmed, model.StatusNoShow, true},
		{"confirmed to user cancellation", model.StatusConfirmed, model.StatusCancelledByUser, true},
		{"confirmed to vendor cancellation", model.StatusConfirmed, model.StatusCancelledByVendor, true},
		{"confirmed cannot regress to pending", model.StatusConfirmed, model.StatusPendingPayment, false},
		{"completed is terminal", model.StatusCompleted, model.StatusCancelledByUser, false},
		{"no-show is terminal", model.StatusNoShow, model.StatusConfirmed, false},
		{"user cancellation is terminal", model.StatusCancelledByUser, model.StatusConfirmed, false},
		{"vendor cancellation is terminal", model.StatusCancelledByVendor, model.StatusConfirmed, false},
		{"unknown status allows nothing", "unknown", model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, model.IsTerminal(model.StatusPendingPayment))
	assert.False(t, model.IsTerminal(model.StatusConfirmed))
	assert.True(t, model.IsTerminal(model.StatusCompleted))
	assert.True(t, model.IsTerminal(model.StatusNoShow))
	assert.True(t, model.IsTerminal(model.StatusCancelledByUser))
	assert.True(t, model.IsTerminal(model.StatusCancelledByVendor))
}

func TestIsActive(t *testing.T) {
	for _, status := range model.ActiveStatuses {
		assert.True(t, model.Booking{Status: status}.IsActive())
	}

	assert.False(t, model.Booking{Status: model.StatusCompleted}.IsActive())
	assert.False(t, model.Booking{Status: model.StatusCancelledByUser}.IsActive())
}
