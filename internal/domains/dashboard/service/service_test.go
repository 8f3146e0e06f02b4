package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	customerMocks "hotelier/internal/domains/customer/mocks"
	"hotelier/internal/domains/dashboard/service"
	invoiceMocks "hotelier/internal/domains/invoice/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	roomModel "hotelier/internal/domains/room/model"
	cacheMocks "hotelier/shared/cache/mocks"
)

func TestDashboardService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockInvoiceRepo := invoiceMocks.NewMockInvoice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRoomRepo, mockCustomerRepo, mockBookingRepo, mockInvoiceRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		check     bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			check:   false,
		},
		{
			name: "aggregates counts and revenue",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRoomRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(20, nil)

				mockRoomRepo.EXPECT().
					CountByStatus(gomock.Any(), roomModel.StatusOccupied).
					Return(8, nil)

				mockInvoiceRepo.EXPECT().
					SumPaidTotalBetween(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(150.5, nil)

				mockInvoiceRepo.EXPECT().
					SumPaidTotalBetween(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(2300.75, nil)

				mockCustomerRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(42, nil)

				mockBookingRepo.EXPECT().
					CountByStatuses(gomock.Any(), gomock.Any()).
					Return(12, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			check:   true,
		},
		{
			name: "room count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRoomRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "revenue sum error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRoomRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(20, nil)

				mockRoomRepo.EXPECT().
					CountByStatus(gomock.Any(), roomModel.StatusOccupied).
					Return(8, nil)

				mockInvoiceRepo.EXPECT().
					SumPaidTotalBetween(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0.0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Stats(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)

			if tt.check {
				assert.Equal(t, 20, result.TotalRooms)
				assert.Equal(t, 8, result.OccupiedRooms)
				assert.Equal(t, 12, result.AvailableRooms)
				assert.Equal(t, 150.5, result.DailyRevenue)
				assert.Equal(t, 2300.75, result.MonthlyRevenue)
				assert.Equal(t, 42, result.TotalCustomers)
				assert.Equal(t, 12, result.TotalBookings)
			}
		})
	}
}
