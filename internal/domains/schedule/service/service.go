package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/otel"
	employeeModel "hotelier/internal/domains/employee/model"
	employeeRepository "hotelier/internal/domains/employee/repository"
	"hotelier/internal/domains/schedule/model"
	"hotelier/internal/domains/schedule/model/dto"
	"hotelier/internal/domains/schedule/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

const (
	cacheGetSchedule    = "schedule:get"
	cacheGetAllSchedule = "schedule:gets"
	cacheCountSchedule  = "schedule:count"
)

type WorkSchedule interface {
	Create(ctx context.Context, req dto.CreateWorkScheduleRequest) (dto.WorkScheduleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetWorkSchedulesResponse, error)
	GetByEmployee(ctx context.Context, employeeID string, req gDto.QueryParams) (dto.GetWorkSchedulesResponse, error)
	GetByDateRange(ctx context.Context, startDate, endDate string, req gDto.QueryParams) (dto.GetWorkSchedulesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.WorkScheduleResponse, error)
	Update(ctx context.Context, req dto.UpdateWorkScheduleRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.WorkSchedule
	employeeRepo employeeRepository.Employee
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.WorkSchedule,
	employeeRepo employeeRepository.Employee,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) WorkSchedule {
	return &serviceImpl{
		repo:         repo,
		employeeRepo: employeeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWorkScheduleRequest) (res dto.WorkScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureEmployee(ctx, req.EmployeeID); err != nil {
		return res, err
	}

	schedule, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequestFromString("work_date must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, schedule); err != nil {
		return res, err
	}

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(req.EmployeeID, employeeModel.FieldID, employeeModel.TableName))
	if err == nil {
		schedule.EmployeeName = employee.Name
	}

	res.FromModel(schedule)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSchedule)
		shared.InvalidateCaches(c, s.cache, cacheCountSchedule)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetWorkSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSchedule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for work schedules")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count work schedules")

		return res, fmt.Errorf("failed to count work schedules: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get work schedules")

		return res, fmt.Errorf("failed to get work schedules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save work schedules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByEmployee(ctx context.Context, employeeID string, req gDto.QueryParams) (res dto.GetWorkSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.GetByEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureEmployee(ctx, employeeID); err != nil {
		return res, err
	}

	return s.GetAll(ctx, req, repository.FilterByEmployee(employeeID))
}

func (s *serviceImpl) GetByDateRange(ctx context.Context, startDate, endDate string, req gDto.QueryParams) (res dto.GetWorkSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.GetByDateRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := time.Parse(constant.DateOnlyFormat, startDate)
	if err != nil {
		return res, failure.BadRequestFromString("start_date must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	end, err := time.Parse(constant.DateOnlyFormat, endDate)
	if err != nil {
		return res, failure.BadRequestFromString("end_date must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if end.Before(start) {
		return res, failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	return s.GetAll(ctx, req, repository.FilterByDateRange(start, end))
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSchedule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count work schedules")

		return res, fmt.Errorf("failed to count work schedules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save work schedule count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.WorkScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSchedule, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	schedule, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get work schedule")

		return res, fmt.Errorf("failed to get work schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return res, failure.NotFound("work schedule not found") // nolint:wrapcheck
	}

	res.FromModel(schedule)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save work schedule to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateWorkScheduleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateWorkScheduleRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if work schedule exists")

		return fmt.Errorf("failed to check if work schedule exists: %w", err)
	}

	if !exist {
		return failure.NotFound("work schedule not found") // nolint:wrapcheck
	}

	if req.EmployeeID != constant.Empty {
		if err = s.ensureEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if req.WorkDate != constant.Empty {
		workDate, parseErr := time.Parse(constant.DateOnlyFormat, req.WorkDate)
		if parseErr != nil {
			return failure.BadRequestFromString("work_date must use the YYYY-MM-DD format") // nolint:wrapcheck
		}

		updatedFields[model.FieldWorkDate] = workDate
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update work schedule")

		return fmt.Errorf("failed to update work schedule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSchedule, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete work schedule from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSchedule)
		shared.InvalidateCaches(c, s.cache, cacheCountSchedule)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if work schedule exists")

		return fmt.Errorf("failed to check if work schedule exists: %w", err)
	}

	if !exist {
		return failure.NotFound("work schedule not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete work schedule")

		return fmt.Errorf("failed to delete work schedule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSchedule, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete work schedule from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSchedule)
		shared.InvalidateCaches(c, s.cache, cacheCountSchedule)
	}()

	return nil
}

func (s *serviceImpl) ensureEmployee(ctx context.Context, employeeID string) error {
	exist, err := s.employeeRepo.Exist(ctx, shared.FilterByID(employeeID, employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		return failure.NotFound("employee not found") // nolint:wrapcheck
	}

	return nil
}
