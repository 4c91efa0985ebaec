package router

import (
	"tempah/internal/handlers/availability"
	"tempah/internal/handlers/booking"
	"tempah/internal/handlers/payment"
	"tempah/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Availability availability.Handler
	Booking      booking.Handler
	Payment      payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		// Slot browsing and the gateway callback stay unauthenticated; the
		// callback authenticity check belongs to the real gateway integration.
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.Auth.Auth)
			r.DomainHandlers.Booking.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
