package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/otel"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepository "hotelier/internal/domains/booking/repository"
	customerRepository "hotelier/internal/domains/customer/repository"
	"hotelier/internal/domains/dashboard/model/dto"
	invoiceRepository "hotelier/internal/domains/invoice/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepository "hotelier/internal/domains/room/repository"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/timezone"
)

const cacheDashboardStats = "dashboard:stats"

type Dashboard interface {
	Stats(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	roomRepo     roomRepository.Room
	customerRepo customerRepository.Customer
	bookingRepo  bookingRepository.Booking
	invoiceRepo  invoiceRepository.Invoice
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	roomRepo roomRepository.Room,
	customerRepo customerRepository.Customer,
	bookingRepo bookingRepository.Booking,
	invoiceRepo invoiceRepository.Invoice,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		invoiceRepo:  invoiceRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Stats aggregates the operational overview: room occupancy, Paid-invoice
// revenue for the current day and calendar month in the application
// timezone, the customer base size and the active booking count.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboardStats, &res)
	if err == nil {
		return res, nil
	}

	totalRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	occupiedRooms, err := s.roomRepo.CountByStatus(ctx, roomModel.StatusOccupied)
	if err != nil {
		return res, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	now := timezone.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, timezone.GetLocation())

	dailyRevenue, err := s.invoiceRepo.SumPaidTotalBetween(ctx, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return res, fmt.Errorf("failed to sum daily revenue: %w", err)
	}

	monthlyRevenue, err := s.invoiceRepo.SumPaidTotalBetween(ctx, startOfMonth, startOfMonth.AddDate(0, 1, 0))
	if err != nil {
		return res, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}

	totalCustomers, err := s.customerRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	totalBookings, err := s.bookingRepo.CountByStatuses(ctx, []string{
		bookingModel.StatusConfirmed,
		bookingModel.StatusCompleted,
	})
	if err != nil {
		return res, fmt.Errorf("failed to count active bookings: %w", err)
	}

	res = dto.DashboardStatsResponse{
		TotalRooms:     totalRooms,
		OccupiedRooms:  occupiedRooms,
		AvailableRooms: totalRooms - occupiedRooms,
		DailyRevenue:   dailyRevenue,
		MonthlyRevenue: monthlyRevenue,
		TotalCustomers: totalCustomers,
		TotalBookings:  totalBookings,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboardStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
