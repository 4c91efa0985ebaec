package availability

import (
	"net/http"
	"tempah/infras/otel"
	"tempah/internal/domains/availability/dto"
	"tempah/internal/domains/availability/service"
	"tempah/shared/constant"
	"tempah/shared/validator"
	"tempah/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailableSlots)
	})
}

// GetAvailableSlots lists the bookable start times for a staff member.
// @Summary Get available slots
// @Description Compute the free slots for a (staff, service, date) triple from the weekly schedule minus active bookings.
// @Tags Availability
// @Accept json
// @Produce json
// @Param staff_id query string true "Staff ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	req := dto.AvailabilityRequest{
		StaffID:   r.URL.Query().Get(constant.RequestParamStaffID),
		ServiceID: r.URL.Query().Get(constant.RequestParamServiceID),
		Date:      r.URL.Query().Get(constant.RequestParamDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability request")

		response.WithError(w, err)

		return
	}

	slots, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available slots computed successfully")

	response.WithJSON(w, http.StatusOK, slots)
}
