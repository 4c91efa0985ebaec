package model

import (
	"tempah/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldVendorID        = "vendor_id"
	FieldName            = "name"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldDepositAmount   = "deposit_amount"
	FieldActive          = "active"
)

// Service is a bookable offering of a vendor. The booking core only reads it;
// catalog maintenance lives outside this service.
type Service struct {
	ID              string  `db:"id"`
	VendorID        string  `db:"vendor_id"`
	Name            string  `db:"name"`
	DurationMinutes int     `db:"duration_minutes"`
	Price           float64 `db:"price"`
	DepositAmount   float64 `db:"deposit_amount"`
	Active          bool    `db:"active"`
	model.Metadata
}
