package employee

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelier/infras/otel"
	"hotelier/internal/domains/employee/model"
	"hotelier/internal/domains/employee/model/dto"
	"hotelier/internal/domains/employee/service"
	scheduleModel "hotelier/internal/domains/schedule/model"
	scheduleDto "hotelier/internal/domains/schedule/model/dto"
	scheduleService "hotelier/internal/domains/schedule/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"
)

// Handler serves employees and their nested work-schedule routes.
type Handler struct {
	service  service.Employee
	schedule scheduleService.WorkSchedule
	otel     otel.Otel
}

func New(service service.Employee, schedule scheduleService.WorkSchedule, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		schedule: schedule,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)

		routerGroup.Route("/schedules", func(scheduleGroup chi.Router) {
			scheduleGroup.Post("/", handler.CreateWorkSchedule)
			scheduleGroup.Get("/", handler.GetWorkSchedules)
			scheduleGroup.Get("/date-range", handler.GetWorkSchedulesByDateRange)
			scheduleGroup.Get("/{id}", handler.GetWorkScheduleByID)
			scheduleGroup.Put("/{id}", handler.UpdateWorkSchedule)
			scheduleGroup.Delete("/{id}", handler.DeleteWorkSchedule)
		})

		routerGroup.Get("/{id}/schedules", handler.GetWorkSchedulesByEmployee)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Put("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

// CreateEmployee registers a new employee.
// @Summary Create a new employee
// @Description Register a new employee with position and salary.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} response.Data[dto.EmployeeResponse] "Created employee"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [post]
func (handler *Handler) CreateEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	var req dto.CreateEmployeeRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	employee, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Employee created successfully")

	response.WithJSON(writer, http.StatusCreated, employee)
}

// GetEmployees retrieves all employees based on query parameters.
// @Summary Get all employees
// @Description Retrieve all employees with optional filtering and pagination.
// @Tags Employee
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param position query string false "Filter by position"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse] "List of employees"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [get]
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if position := r.URL.Query().Get(model.FieldPosition); position != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPosition,
			Operator: gDto.FilterOperatorEq,
			Value:    position,
			Table:    model.TableName,
		})
	}

	employees, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employees retrieved successfully")

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves an employee by its ID.
// @Summary Get an employee by ID
// @Description Retrieve an employee by its unique identifier.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.EmployeeResponse] "Employee details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [get]
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	employee, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee retrieved successfully")

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee by its ID.
// @Summary Update an employee by ID
// @Description Update the details of an existing employee.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Employee details"
// @Success 200 {object} response.Message "Employee updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [put]
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateEmployeeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee updated successfully")

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

// DeleteEmployee deletes an employee and its schedules.
// @Summary Delete an employee by ID
// @Description Delete an employee; their work schedules are removed with them.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.DeleteEmployeeResponse] "Deleted schedule count"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [delete]
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee deleted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateWorkSchedule assigns a shift to an employee.
// @Summary Create a work schedule
// @Description Assign a shift on a date to an employee.
// @Tags WorkSchedule
// @Accept json
// @Produce json
// @Param request body scheduleDto.CreateWorkScheduleRequest true "Schedule details"
// @Success 201 {object} response.Data[scheduleDto.WorkScheduleResponse] "Created schedule"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/schedules [post]
func (handler *Handler) CreateWorkSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWorkSchedule")
	defer scope.End()

	var req scheduleDto.CreateWorkScheduleRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	schedule, err := handler.schedule.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create work schedule")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Work schedule created successfully")

	response.WithJSON(writer, http.StatusCreated, schedule)
}

// GetWorkSchedules retrieves all work schedules.
// @Summary Get all work schedules
// @Description Retrieve all work schedules with optional filtering and pagination.
// @Tags WorkSchedule
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param employee_id query string false "Filter by employee"
// @Param shift query string false "Filter by shift"
// @Success 200 {object} response.Data[scheduleDto.GetWorkSchedulesResponse] "List of schedules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/schedules [get]
func (handler *Handler) GetWorkSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkSchedules")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = scheduleModel.TableName + "." + scheduleModel.FieldWorkDate
		queryParams.SortDir = gDto.SortDirDesc
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if employeeID := r.URL.Query().Get(scheduleModel.FieldEmployeeID); employeeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    scheduleModel.FieldEmployeeID,
			Operator: gDto.FilterOperatorEq,
			Value:    employeeID,
			Table:    scheduleModel.TableName,
		})
	}

	if shift := r.URL.Query().Get(scheduleModel.FieldShift); shift != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    scheduleModel.FieldShift,
			Operator: gDto.FilterOperatorEq,
			Value:    shift,
			Table:    scheduleModel.TableName,
		})
	}

	schedules, err := handler.schedule.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get work schedules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work schedules retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedules)
}

// GetWorkSchedulesByDateRange retrieves schedules within a date range.
// @Summary Get work schedules by date range
// @Description Retrieve work schedules whose dates fall within [start_date, end_date].
// @Tags WorkSchedule
// @Accept json
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[scheduleDto.GetWorkSchedulesResponse] "List of schedules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/schedules/date-range [get]
func (handler *Handler) GetWorkSchedulesByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkSchedulesByDateRange")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	schedules, err := handler.schedule.GetByDateRange(ctx, startDate, endDate, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get work schedules by date range")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work schedules retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedules)
}

// GetWorkSchedulesByEmployee retrieves the schedules of one employee.
// @Summary Get work schedules for an employee
// @Description Retrieve all work schedules assigned to the given employee.
// @Tags WorkSchedule
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[scheduleDto.GetWorkSchedulesResponse] "List of schedules"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id}/schedules [get]
func (handler *Handler) GetWorkSchedulesByEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkSchedulesByEmployee")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	employeeID := chi.URLParam(r, constant.RequestParamID)

	schedules, err := handler.schedule.GetByEmployee(ctx, employeeID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get work schedules by employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work schedules retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedules)
}

// GetWorkScheduleByID retrieves a work schedule by its ID.
// @Summary Get a work schedule by ID
// @Description Retrieve a work schedule by its unique identifier.
// @Tags WorkSchedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Data[scheduleDto.WorkScheduleResponse] "Schedule details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/schedules/{id} [get]
func (handler *Handler) GetWorkScheduleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkScheduleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	schedule, err := handler.schedule.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get work schedule by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}

// UpdateWorkSchedule updates an existing work schedule.
// @Summary Update a work schedule by ID
// @Description Update the employee, date or shift of a work schedule.
// @Tags WorkSchedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body scheduleDto.UpdateWorkScheduleRequest true "Schedule details"
// @Success 200 {object} response.Message "Work schedule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/schedules/{id} [put]
func (handler *Handler) UpdateWorkSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWorkSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req scheduleDto.UpdateWorkScheduleRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.schedule.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update work schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work schedule updated successfully")

	response.WithMessage(w, http.StatusOK, "Work schedule updated successfully")
}

// DeleteWorkSchedule deletes a work schedule by its ID.
// @Summary Delete a work schedule by ID
// @Description Delete a work schedule using its unique identifier.
// @Tags WorkSchedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Message "Work schedule deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/schedules/{id} [delete]
func (handler *Handler) DeleteWorkSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteWorkSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.schedule.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete work schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work schedule deleted successfully")

	response.WithMessage(w, http.StatusOK, "Work schedule deleted successfully")
}
