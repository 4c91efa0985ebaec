package payment

import (
	"net/http"
	"tempah/infras/otel"
	"tempah/internal/domains/payment/model/dto"
	"tempah/internal/domains/payment/service"
	"tempah/shared/constant"
	"tempah/shared/validator"
	"tempah/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/mock-callback", handler.MockCallback)
	})
}

// MockCallback settles a pending booking's payment.
// @Summary Mock payment callback
// @Description Stand-in for the gateway callback: marks the pending intent successful and confirms the booking in one transaction. Already-processed bookings return a soft failure.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CallbackRequest true "Callback Request"
// @Success 200 {object} response.Data[dto.CallbackResponse] "Settlement outcome"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/mock-callback [post]
func (handler *Handler) MockCallback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MockCallback")
	defer scope.End()

	req := dto.CallbackRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.MockCallback(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process payment callback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment callback processed for booking " + res.BookingID)

	response.WithJSON(w, http.StatusOK, res)
}
