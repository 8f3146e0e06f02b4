package router

import (
	"github.com/go-chi/chi/v5"

	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/bookingservice"
	"hotelier/internal/handlers/customer"
	"hotelier/internal/handlers/dashboard"
	"hotelier/internal/handlers/employee"
	"hotelier/internal/handlers/invoice"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/service"
)

type DomainHandlers struct {
	Room           room.Handler
	Customer       customer.Handler
	Employee       employee.Handler
	Service        service.Handler
	Booking        booking.Handler
	BookingService bookingservice.Handler
	Invoice        invoice.Handler
	Dashboard      dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.BookingService.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
