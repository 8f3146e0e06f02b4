package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/otel"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepository "hotelier/internal/domains/booking/repository"
	"hotelier/internal/domains/bookingservice/model"
	"hotelier/internal/domains/bookingservice/model/dto"
	"hotelier/internal/domains/bookingservice/repository"
	serviceModel "hotelier/internal/domains/service/model"
	serviceRepository "hotelier/internal/domains/service/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

const (
	cacheGetBookingService    = "bookingservice:get"
	cacheGetAllBookingService = "bookingservice:gets"
	cacheCountBookingService  = "bookingservice:count"
	cacheBookingPrefix        = "booking"
	cacheInvoicePrefix        = "invoice"
	cacheBookingServicePrefix = "bookingservice"
)

type BookingService interface {
	Create(ctx context.Context, req dto.CreateBookingServiceRequest) (dto.BookingServiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingServicesResponse, error)
	GetByBooking(ctx context.Context, bookingID string) (dto.GetBookingServicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingServiceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.BookingService
	bookingRepo bookingRepository.Booking
	serviceRepo serviceRepository.Service
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.BookingService,
	bookingRepo bookingRepository.Booking,
	serviceRepo serviceRepository.Service,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) BookingService {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create attaches a catalog service to a booking, snapshotting the
// current catalog price onto the attachment.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingServiceRequest) (res dto.BookingServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingservice.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookingExist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !bookingExist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	svc, err := s.serviceRepo.Get(ctx, shared.FilterByID(req.ServiceID, serviceModel.FieldID, serviceModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	attachment := req.ToModel(user, svc.Price)
	attachment.ServiceName = svc.Name

	if err = s.repo.Insert(ctx, attachment); err != nil {
		return res, err
	}

	res.FromModel(attachment)

	s.invalidate(ctx, attachment.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingservice.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookingService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking services")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking services")

		return res, fmt.Errorf("failed to count booking services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.GetBookingServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingservice.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingExist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !bookingExist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return s.GetAll(ctx, gDto.QueryParams{}, repository.FilterByBooking(bookingID))
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingservice.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBookingService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking services")

		return res, fmt.Errorf("failed to count booking services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking service count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingservice.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBookingService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	attachment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking service")

		return res, fmt.Errorf("failed to get booking service: %w", err)
	}

	if attachment.ID == constant.Empty {
		return res, failure.NotFound("booking service not found") // nolint:wrapcheck
	}

	res.FromModel(attachment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking service to cache")
		}
	}()

	return res, nil
}

// Update changes the quantity of an attachment. The snapshot price is
// deliberately immutable.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingservice.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking service exists")

		return fmt.Errorf("failed to check if booking service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking service not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking service")

		return fmt.Errorf("failed to update booking service: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingservice.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking service exists")

		return fmt.Errorf("failed to check if booking service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking service not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking service")

		return fmt.Errorf("failed to delete booking service: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBookingService, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking service from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheBookingServicePrefix)
		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)
		shared.InvalidateCaches(c, s.cache, cacheInvoicePrefix)
	}()
}
