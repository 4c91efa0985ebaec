package model

import (
	"tempah/shared/model"
)

const (
	TableName  = "staff_schedules"
	EntityName = "staff_schedule"

	FieldID        = "id"
	FieldStaffID   = "staff_id"
	FieldVendorID  = "vendor_id"
	FieldDayOfWeek = "day_of_week"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
)

// StaffSchedule is one recurring weekly availability window: at most one row
// per (staff, day-of-week), with 0 = Sunday through 6 = Saturday and clock
// times stored as zero-padded "HH:mm" strings.
type StaffSchedule struct {
	ID        string `db:"id"`
	StaffID   string `db:"staff_id"`
	VendorID  string `db:"vendor_id"`
	DayOfWeek int    `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	model.Metadata
}
