package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	bsModel "hotelier/internal/domains/bookingservice/model"
	bsRepository "hotelier/internal/domains/bookingservice/repository"
	customerModel "hotelier/internal/domains/customer/model"
	customerRepository "hotelier/internal/domains/customer/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepository "hotelier/internal/domains/room/repository"
	serviceModel "hotelier/internal/domains/service/model"
	serviceRepository "hotelier/internal/domains/service/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
)

const (
	cacheGetBooking      = "booking:get"
	cacheGetAllBooking   = "booking:gets"
	cacheCountBooking    = "booking:count"
	cacheRoomPrefix      = "room"
	cacheDashboardPrefix = "dashboard"
	cacheBookingPrefix   = "booking"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepository.Room
	customerRepo customerRepository.Customer
	serviceRepo  serviceRepository.Service
	bsRepo       bsRepository.BookingService
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	customerRepo customerRepository.Customer,
	serviceRepo serviceRepository.Service,
	bsRepo bsRepository.BookingService,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		bsRepo:       bsRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create books a room for a customer. The availability check, the room
// claim, the booking row and the initial service attachments all run in
// one transaction, so two concurrent requests can never book the same
// room: the claim is a conditional update and only one of them wins.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequestFromString("check-in and check-out dates must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status != roomModel.StatusAvailable {
		return res, failure.Conflict("room is not available") // nolint:wrapcheck
	}

	attachments, err := s.buildAttachments(ctx, booking.ID, req.Services, user)
	if err != nil {
		return res, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	claimed, err := s.roomRepo.ClaimTx(ctx, tx, req.RoomID)
	if err != nil {
		return res, fmt.Errorf("failed to claim room: %w", err)
	}

	if !claimed {
		return res, failure.Conflict("room is not available") // nolint:wrapcheck
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	if len(attachments) > 0 {
		if err = s.bsRepo.InsertBulkTx(ctx, tx, attachments); err != nil {
			return res, fmt.Errorf("failed to attach booking services: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return res, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	booking.CustomerName = customer.Name
	booking.CustomerEmail = customer.Email
	booking.CustomerPhone = customer.Phone
	booking.RoomNumber = room.RoomNumber
	booking.RoomType = room.RoomType
	booking.RoomPrice = room.Price

	res.FromModel(booking)
	res.WithServices(attachments)

	s.invalidate(ctx, booking.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	for i := range res.Bookings {
		services, svcErr := s.bsRepo.GetByBooking(ctx, res.Bookings[i].ID)
		if svcErr != nil {
			log.Error().Err(svcErr).Msg("failed to get booking services")

			return res, fmt.Errorf("failed to get booking services: %w", svcErr)
		}

		res.Bookings[i].WithServices(services)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	services, err := s.bsRepo.GetByBooking(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	res.FromModel(booking)
	res.WithServices(services)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a booking through its lifecycle. Completing or
// cancelling the booking returns the room to the available pool.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if req.Status == model.StatusCompleted || req.Status == model.StatusCancelled {
		releaseFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusAvailable,
			constant.FieldModifiedBy: user,
		}

		roomFilter := shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)
		if err = s.roomRepo.UpdateTx(ctx, tx, releaseFields, roomFilter); err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes the booking together with its service attachments and
// returns the room to the available pool.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	releaseFields := map[string]any{
		roomModel.FieldStatus:    roomModel.StatusAvailable,
		constant.FieldModifiedBy: user,
	}

	roomFilter := shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)
	if err = s.roomRepo.UpdateTx(ctx, tx, releaseFields, roomFilter); err != nil {
		return fmt.Errorf("failed to release room: %w", err)
	}

	if err = s.bsRepo.DeleteTx(ctx, tx, bsRepository.FilterByBooking(id)); err != nil {
		return fmt.Errorf("failed to delete booking services: %w", err)
	}

	if err = s.repo.DeleteTx(ctx, tx, filter); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) buildAttachments(ctx context.Context, bookingID string, items []dto.BookingServiceItem, user string) ([]bsModel.BookingService, error) {
	if len(items) == 0 {
		return nil, nil
	}

	attachments := make([]bsModel.BookingService, 0, len(items))

	for _, item := range items {
		svc, err := s.serviceRepo.Get(ctx, shared.FilterByID(item.ServiceID, serviceModel.FieldID, serviceModel.TableName))
		if err != nil {
			return nil, fmt.Errorf("failed to get service: %w", err)
		}

		if svc.ID == constant.Empty {
			return nil, failure.NotFound("service not found") // nolint:wrapcheck
		}

		attachment := bsModel.BookingService{
			BookingID:   bookingID,
			ServiceID:   item.ServiceID,
			Quantity:    item.Quantity,
			Price:       svc.Price,
			ServiceName: svc.Name,
		}

		if attachment.Quantity == 0 {
			attachment.Quantity = bsModel.DefaultQuantity
		}

		attachment.ID = uuid.NewString()
		attachment.CreatedAt = timezone.Now()
		attachment.ModifiedAt = timezone.Now()
		attachment.CreatedBy = user
		attachment.ModifiedBy = user

		attachments = append(attachments, attachment)
	}

	return attachments, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
		shared.InvalidateCaches(c, s.cache, cacheDashboardPrefix)
	}()
}
