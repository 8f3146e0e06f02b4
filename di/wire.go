//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	"github.com/google/wire"

	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	bsRepository "hotelier/internal/domains/bookingservice/repository"
	bsService "hotelier/internal/domains/bookingservice/service"
	customerRepository "hotelier/internal/domains/customer/repository"
	customerService "hotelier/internal/domains/customer/service"
	dashboardService "hotelier/internal/domains/dashboard/service"
	employeeRepository "hotelier/internal/domains/employee/repository"
	employeeService "hotelier/internal/domains/employee/service"
	invoiceRepository "hotelier/internal/domains/invoice/repository"
	invoiceService "hotelier/internal/domains/invoice/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	scheduleRepository "hotelier/internal/domains/schedule/repository"
	scheduleService "hotelier/internal/domains/schedule/service"
	serviceRepository "hotelier/internal/domains/service/repository"
	serviceService "hotelier/internal/domains/service/service"

	bookingHandler "hotelier/internal/handlers/booking"
	bsHandler "hotelier/internal/handlers/bookingservice"
	customerHandler "hotelier/internal/handlers/customer"
	dashboardHandler "hotelier/internal/handlers/dashboard"
	employeeHandler "hotelier/internal/handlers/employee"
	invoiceHandler "hotelier/internal/handlers/invoice"
	roomHandler "hotelier/internal/handlers/room"
	serviceHandler "hotelier/internal/handlers/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
	scheduleRepository.New,
	scheduleService.New,
)

var serviceDomain = wire.NewSet(
	serviceRepository.New,
	serviceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bsRepository.New,
	bsService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	roomDomain,
	customerDomain,
	employeeDomain,
	serviceDomain,
	bookingDomain,
	invoiceDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	customerHandler.New,
	employeeHandler.New,
	serviceHandler.New,
	bookingHandler.New,
	bsHandler.New,
	invoiceHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
