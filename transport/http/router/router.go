package router

import (
	"cove/internal/handlers/auth"
	"cove/internal/handlers/booking"
	"cove/internal/handlers/carousel"
	"cove/internal/handlers/contact"
	"cove/internal/handlers/facility"
	"cove/internal/handlers/review"
	"cove/internal/handlers/room"
	"cove/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Room     room.Handler
	Booking  booking.Handler
	Review   review.Handler
	Facility facility.Handler
	Carousel carousel.Handler
	Contact  contact.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Carousel.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
