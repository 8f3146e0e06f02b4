package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	bookingModel "hotelier/internal/domains/booking/model"
	bsMocks "hotelier/internal/domains/bookingservice/mocks"
	bsModel "hotelier/internal/domains/bookingservice/model"
	invoiceMocks "hotelier/internal/domains/invoice/mocks"
	"hotelier/internal/domains/invoice/model"
	"hotelier/internal/domains/invoice/model/dto"
	"hotelier/internal/domains/invoice/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
)

var invoiceNumberPattern = regexp.MustCompile(`^INV-\d{6}-\d{4}$`)

func TestInvoiceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockBsRepo := bsMocks.NewMockBookingService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, mockBsRepo, cfg, mockCache, mockOtel)

	// Three nights at 100 plus 2x20 of services: subtotal 340, tax 34, total 374.
	booking := bookingModel.Booking{
		ID:           "booking-id",
		CustomerID:   "customer-id",
		RoomID:       "room-id",
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		RoomPrice:    100,
		CustomerName: "John Doe",
		RoomNumber:   "101",
	}

	attachments := []bsModel.BookingService{
		{ID: "attachment-id", BookingID: "booking-id", ServiceID: "service-id", Quantity: 2, Price: 20},
	}

	tests := []struct {
		name         string
		req          dto.CreateInvoiceRequest
		setupMock    func()
		wantErr      bool
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name: "successful creation with computed totals",
			req: dto.CreateInvoiceRequest{
				BookingID: "booking-id",
				DueDate:   "2026-09-18",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockBsRepo.EXPECT().
					GetByBooking(gomock.Any(), "booking-id").
					Return(attachments, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:      false,
			wantSubtotal: 340,
			wantTax:      34,
			wantTotal:    374,
		},
		{
			name: "invoice already exists for the booking",
			req: dto.CreateInvoiceRequest{
				BookingID: "booking-id",
				DueDate:   "2026-09-18",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			req: dto.CreateInvoiceRequest{
				BookingID: "nonexistent-id",
				DueDate:   "2026-09-18",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid due date format",
			req: dto.CreateInvoiceRequest{
				BookingID: "booking-id",
				DueDate:   "18-09-2026",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockBsRepo.EXPECT().
					GetByBooking(gomock.Any(), "booking-id").
					Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name: "invoice number collision",
			req: dto.CreateInvoiceRequest{
				BookingID: "booking-id",
				DueDate:   "2026-09-18",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockBookingRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockBsRepo.EXPECT().
					GetByBooking(gomock.Any(), "booking-id").
					Return(nil, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantSubtotal, result.Subtotal)
				assert.Equal(t, tt.wantTax, result.Tax)
				assert.Equal(t, tt.wantTotal, result.Total)
				assert.Equal(t, model.StatusPending, result.Status)
				assert.Regexp(t, invoiceNumberPattern, result.InvoiceNumber)
				assert.Equal(t, "John Doe", result.Booking.CustomerName)
			}
		})
	}
}

func TestInvoiceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockBsRepo := bsMocks.NewMockBookingService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, mockBsRepo, cfg, mockCache, mockOtel)

	invoice := model.Invoice{
		ID:            "invoice-id",
		BookingID:     "booking-id",
		InvoiceNumber: "INV-202609-0042",
		IssueDate:     time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
		Subtotal:      340,
		Tax:           34,
		Total:         374,
		Status:        model.StatusPending,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "invoice-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantID:  "",
		},
		{
			name: "cache miss, successful get from db",
			id:   "invoice-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(invoice, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "invoice-id",
		},
		{
			name: "invoice not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestInvoiceService_GetByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockBsRepo := bsMocks.NewMockBookingService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, mockBsRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		bookingID string
		setupMock func()
		wantErr   bool
	}{
		{
			name:      "invoice found",
			bookingID: "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{ID: "invoice-id", BookingID: "booking-id"}, nil)
			},
			wantErr: false,
		},
		{
			name:      "no invoice for the booking",
			bookingID: "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "repository error",
			bookingID: "booking-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			_, err := svc.GetByBooking(ctx, tt.bookingID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvoiceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockBsRepo := bsMocks.NewMockBookingService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, mockBsRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateInvoiceRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req: dto.UpdateInvoiceRequest{
				PaymentMethod: "Cash",
				Notes:         "Paid at the front desk",
			},
			id: "invoice-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateInvoiceRequest{},
			id:        "invoice-id",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "invoice not found",
			req: dto.UpdateInvoiceRequest{
				Notes: "Updated notes",
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid due date",
			req: dto.UpdateInvoiceRequest{
				DueDate: "next week",
			},
			id: "invoice-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvoiceService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockBsRepo := bsMocks.NewMockBookingService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, mockBsRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateInvoiceStatusRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful status update",
			req:  dto.UpdateInvoiceStatusRequest{Status: model.StatusPaid},
			id:   "invoice-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invoice not found",
			req:  dto.UpdateInvoiceStatusRequest{Status: model.StatusPaid},
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
