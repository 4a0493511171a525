package router

import (
	"github.com/go-chi/chi/v5"

	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/consumption"
	"lodge/internal/handlers/planning"
	"lodge/internal/handlers/rentalunit"
	"lodge/internal/handlers/sojourn"
)

type DomainHandlers struct {
	RentalUnit  rentalunit.Handler
	Booking     booking.Handler
	Sojourn     sojourn.Handler
	Consumption consumption.Handler
	Planning    planning.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.RentalUnit.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Sojourn.Router(routerGroup)
		r.DomainHandlers.Consumption.Router(routerGroup)
		r.DomainHandlers.Planning.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
