package dto

type AvailabilityRequest struct {
	StaffID   string `json:"staff_id"   validate:"required,uuid"`
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Date      string `json:"date"       validate:"required,dateonly"`
}

type AvailabilityResponse struct {
	StaffID         string   `json:"staff_id"`
	ServiceID       string   `json:"service_id"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Slots           []string `json:"slots"`
}
