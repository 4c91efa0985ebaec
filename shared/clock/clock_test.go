package clock_test

import (
	"fmt"
	"tempah/shared/clock"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "09:00", want: 540},
		{input: "09:30", want: 570},
		{input: "12:00", want: 720},
		{input: "23:59", want: 1439},
		{input: "24:00", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "09-00", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
		{input: "09:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := clock.ToMinutes(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, clock.ErrClockFormat)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{input: 0, want: "00:00"},
		{input: 540, want: "09:00"},
		{input: 570, want: "09:30"},
		{input: 690, want: "11:30"},
		{input: 1439, want: "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, clock.FromMinutes(tt.input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 7 {
			clockTime := fmt.Sprintf("%02d:%02d", hour, minute)

			minutes, err := clock.ToMinutes(clockTime)
			assert.NoError(t, err)
			assert.Equal(t, clockTime, clock.FromMinutes(minutes))
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB int
		want                       bool
	}{
		{name: "identical intervals", startA: 540, endA: 600, startB: 540, endB: 600, want: true},
		{name: "partial overlap", startA: 540, endA: 600, startB: 570, endB: 630, want: true},
		{name: "containment", startA: 540, endA: 720, startB: 600, endB: 660, want: true},
		{name: "touching end to start", startA: 540, endA: 600, startB: 600, endB: 660, want: false},
		{name: "touching start to end", startA: 600, endA: 660, startB: 540, endB: 600, want: false},
		{name: "disjoint", startA: 540, endA: 600, startB: 660, endB: 720, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clock.Overlaps(tt.startA, tt.endA, tt.startB, tt.endB))
			// overlap is symmetric
			assert.Equal(t, tt.want, clock.Overlaps(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}
