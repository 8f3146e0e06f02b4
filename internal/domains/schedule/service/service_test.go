package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	employeeMocks "hotelier/internal/domains/employee/mocks"
	employeeModel "hotelier/internal/domains/employee/model"
	scheduleMocks "hotelier/internal/domains/schedule/mocks"
	"hotelier/internal/domains/schedule/model"
	"hotelier/internal/domains/schedule/model/dto"
	"hotelier/internal/domains/schedule/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

func TestWorkScheduleService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := scheduleMocks.NewMockWorkSchedule(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEmployeeRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateWorkScheduleRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateWorkScheduleRequest{
				EmployeeID: "employee-id",
				WorkDate:   "2026-09-07",
				Shift:      "Morning",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{ID: "employee-id", Name: "Jane Smith"}, nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "employee not found",
			req: dto.CreateWorkScheduleRequest{
				EmployeeID: "nonexistent-id",
				WorkDate:   "2026-09-07",
				Shift:      "Morning",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid work date format",
			req: dto.CreateWorkScheduleRequest{
				EmployeeID: "employee-id",
				WorkDate:   "07/09/2026",
				Shift:      "Morning",
			},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
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
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Shift, result.Shift)
				assert.Equal(t, "Jane Smith", result.EmployeeName)
			}
		})
	}
}

func TestWorkScheduleService_GetByDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := scheduleMocks.NewMockWorkSchedule(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEmployeeRepo, cfg, mockCache, mockOtel)

	schedules := []model.WorkSchedule{
		{
			ID:         "schedule-id",
			EmployeeID: "employee-id",
			WorkDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			Shift:      "Morning",
		},
	}

	tests := []struct {
		name      string
		startDate string
		endDate   string
		setupMock func()
		wantErr   bool
		wantData  int
	}{
		{
			name:      "successful range query",
			startDate: "2026-09-01",
			endDate:   "2026-09-30",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(schedules, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantData: 1,
		},
		{
			name:      "invalid start date",
			startDate: "September 1st",
			endDate:   "2026-09-30",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "invalid end date",
			startDate: "2026-09-01",
			endDate:   "September 30th",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "end date before start date",
			startDate: "2026-09-30",
			endDate:   "2026-09-01",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetByDateRange(ctx, tt.startDate, tt.endDate, gDto.QueryParams{Limit: 10, Page: 1})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantData, result.TotalData)
			}
		})
	}
}

func TestWorkScheduleService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := scheduleMocks.NewMockWorkSchedule(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEmployeeRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			id:   "schedule-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "schedule not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.WorkSchedule{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			_, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkScheduleService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := scheduleMocks.NewMockWorkSchedule(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockEmployeeRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateWorkScheduleRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful shift change",
			req:  dto.UpdateWorkScheduleRequest{Shift: "Night"},
			id:   "schedule-id",
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
			req:       dto.UpdateWorkScheduleRequest{},
			id:        "schedule-id",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "schedule not found",
			req:  dto.UpdateWorkScheduleRequest{Shift: "Night"},
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid work date",
			req:  dto.UpdateWorkScheduleRequest{WorkDate: "tomorrow"},
			id:   "schedule-id",
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
