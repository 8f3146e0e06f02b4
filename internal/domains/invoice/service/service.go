package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/otel"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bsRepository "hotelier/internal/domains/bookingservice/repository"
	"hotelier/internal/domains/invoice/model"
	"hotelier/internal/domains/invoice/model/dto"
	"hotelier/internal/domains/invoice/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
)

const (
	cacheGetInvoice      = "invoice:get"
	cacheGetAllInvoice   = "invoice:gets"
	cacheCountInvoice    = "invoice:count"
	cacheInvoicePrefix   = "invoice"
	cacheDashboardPrefix = "dashboard"
)

type Invoice interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (dto.InvoiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	GetByBooking(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
	Update(ctx context.Context, req dto.UpdateInvoiceRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateInvoiceStatusRequest, id string) error
}

type serviceImpl struct {
	repo        repository.Invoice
	bookingRepo bookingRepository.Booking
	bsRepo      bsRepository.BookingService
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Invoice,
	bookingRepo bookingRepository.Booking,
	bsRepo bsRepository.BookingService,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Invoice {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		bsRepo:      bsRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create issues the invoice for a booking: nights times the room price,
// plus the attached services at their snapshot prices, plus tax. A
// booking gets at most one invoice; the first request wins.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInvoiceRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, repository.FilterByBooking(req.BookingID))
	if err != nil {
		return res, fmt.Errorf("failed to check existing invoice: %w", err)
	}

	if exist {
		return res, failure.Conflict("invoice already exists for this booking") // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	services, err := s.bsRepo.GetByBooking(ctx, req.BookingID)
	if err != nil {
		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	roomCost := booking.RoomPrice * float64(booking.Nights())

	servicesCost := 0.0
	for i := range services {
		servicesCost += services[i].Subtotal()
	}

	subtotal := shared.RoundMoney(roomCost + servicesCost)
	tax := shared.RoundMoney(subtotal * model.TaxRate)
	total := shared.RoundMoney(subtotal + tax)

	scope.SetAttribute("invoice.total", total)

	invoice, err := req.ToModel(user, generateInvoiceNumber(), subtotal, tax, total)
	if err != nil {
		return res, failure.BadRequestFromString("due_date must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, invoice); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("invoice number collision, retry the request") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to insert invoice: %w", err)
	}

	invoice.CheckInDate = booking.CheckInDate
	invoice.CheckOutDate = booking.CheckOutDate
	invoice.CustomerName = booking.CustomerName
	invoice.RoomNumber = booking.RoomNumber

	res.FromModel(invoice)

	s.invalidate(ctx, invoice.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = fmt.Sprintf("%s.%s", model.TableName, model.FieldCreatedAt)
		req.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInvoice, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	invoice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	res.FromModel(invoice)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.repo.Get(ctx, repository.FilterByBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice by booking")

		return res, fmt.Errorf("failed to get invoice by booking: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("invoice not found for this booking") // nolint:wrapcheck
	}

	res.FromModel(invoice)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInvoiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateInvoiceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if invoice exists")

		return fmt.Errorf("failed to check if invoice exists: %w", err)
	}

	if !exist {
		return failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.DueDate != constant.Empty {
		dueDate, parseErr := time.Parse(constant.DateOnlyFormat, req.DueDate)
		if parseErr != nil {
			return failure.BadRequestFromString("due_date must use the YYYY-MM-DD format") // nolint:wrapcheck
		}

		updatedFields[model.FieldDueDate] = dueDate
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update invoice")

		return fmt.Errorf("failed to update invoice: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateInvoiceStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if invoice exists")

		return fmt.Errorf("failed to check if invoice exists: %w", err)
	}

	if !exist {
		return failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update invoice status")

		return fmt.Errorf("failed to update invoice status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInvoice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete invoice from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheInvoicePrefix)
		shared.InvalidateCaches(c, s.cache, cacheDashboardPrefix)
	}()
}

func generateInvoiceNumber() string {
	return fmt.Sprintf("INV-%s-%04d", timezone.Now().Format("200601"), rand.IntN(10000))
}
