package bookingservice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelier/infras/otel"
	"hotelier/internal/domains/bookingservice/model"
	"hotelier/internal/domains/bookingservice/model/dto"
	"hotelier/internal/domains/bookingservice/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"
)

type Handler struct {
	service service.BookingService
	otel    otel.Otel
}

func New(service service.BookingService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking-services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBookingService)
		routerGroup.Get("/", handler.GetBookingServices)
		routerGroup.Get("/booking/{bookingId}", handler.GetBookingServicesByBooking)
		routerGroup.Get("/{id}", handler.GetBookingServiceByID)
		routerGroup.Put("/{id}", handler.UpdateBookingService)
		routerGroup.Delete("/{id}", handler.DeleteBookingService)
	})
}

// CreateBookingService attaches a service to a booking.
// @Summary Attach a service to a booking
// @Description Attach a hotel service to an existing booking, snapshotting its current price.
// @Tags BookingService
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingServiceRequest true "Attachment details"
// @Success 201 {object} response.Data[dto.BookingServiceResponse] "Created attachment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-services [post]
func (handler *Handler) CreateBookingService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBookingService")
	defer scope.End()

	var req dto.CreateBookingServiceRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	attachment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking service")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking service created successfully")

	response.WithJSON(writer, http.StatusCreated, attachment)
}

// GetBookingServices retrieves all booking service attachments.
// @Summary Get all booking services
// @Description Retrieve all booking service attachments with optional filtering and pagination.
// @Tags BookingService
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking"
// @Param service_id query string false "Filter by service"
// @Success 200 {object} response.Data[dto.GetBookingServicesResponse] "List of attachments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-services [get]
func (handler *Handler) GetBookingServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if bookingID := r.URL.Query().Get(model.FieldBookingID); bookingID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	if serviceID := r.URL.Query().Get(model.FieldServiceID); serviceID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldServiceID,
			Operator: gDto.FilterOperatorEq,
			Value:    serviceID,
			Table:    model.TableName,
		})
	}

	attachments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking services retrieved successfully")

	response.WithJSON(w, http.StatusOK, attachments)
}

// GetBookingServicesByBooking retrieves the attachments of one booking.
// @Summary Get booking services for a booking
// @Description Retrieve all services attached to the given booking.
// @Tags BookingService
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Data[dto.GetBookingServicesResponse] "List of attachments"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-services/booking/{bookingId} [get]
func (handler *Handler) GetBookingServicesByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingServicesByBooking")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	attachments, err := handler.service.GetByBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking services by booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking services retrieved successfully")

	response.WithJSON(w, http.StatusOK, attachments)
}

// GetBookingServiceByID retrieves a booking service attachment by its ID.
// @Summary Get a booking service by ID
// @Description Retrieve a booking service attachment by its unique identifier.
// @Tags BookingService
// @Accept json
// @Produce json
// @Param id path string true "Booking service ID"
// @Success 200 {object} response.Data[dto.BookingServiceResponse] "Attachment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-services/{id} [get]
func (handler *Handler) GetBookingServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	attachment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking service by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking service retrieved successfully")

	response.WithJSON(w, http.StatusOK, attachment)
}

// UpdateBookingService updates the quantity of an attachment.
// @Summary Update a booking service by ID
// @Description Update the quantity of a booking service attachment. The snapshotted price is immutable.
// @Tags BookingService
// @Accept json
// @Produce json
// @Param id path string true "Booking service ID"
// @Param request body dto.UpdateBookingServiceRequest true "Attachment details"
// @Success 200 {object} response.Message "Booking service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-services/{id} [put]
func (handler *Handler) UpdateBookingService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateBookingServiceRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking service updated successfully")

	response.WithMessage(w, http.StatusOK, "Booking service updated successfully")
}

// DeleteBookingService removes a service attachment from a booking.
// @Summary Delete a booking service by ID
// @Description Detach a service from its booking using the attachment identifier.
// @Tags BookingService
// @Accept json
// @Produce json
// @Param id path string true "Booking service ID"
// @Success 200 {object} response.Message "Booking service deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-services/{id} [delete]
func (handler *Handler) DeleteBookingService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBookingService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking service deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking service deleted successfully")
}
