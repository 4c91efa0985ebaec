package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tempah/config"
	"tempah/infras/otel/mocks"
	"tempah/internal/domains/availability/dto"
	"tempah/internal/domains/availability/service"
	bookingMocks "tempah/internal/domains/booking/mocks"
	bookingModel "tempah/internal/domains/booking/model"
	catalogMocks "tempah/internal/domains/catalog/mocks"
	catalogModel "tempah/internal/domains/catalog/model"
	scheduleMocks "tempah/internal/domains/schedule/mocks"
	scheduleModel "tempah/internal/domains/schedule/model"
	cacheMocks "tempah/shared/cache/mocks"
	"tempah/shared/failure"
)

const (
	testStaffID   = "3f0a8f3e-8f7d-4a52-9a98-0f6fdd0f2a01"
	testServiceID = "b7c9e2d4-6a1b-4c3f-8e5d-2a9b7c6d5e40"

	// 2026-08-31 is a Monday.
	testMonday = "2026-08-31"
)

func newMondaySchedule(start, end string) scheduleModel.StaffSchedule {
	return scheduleModel.StaffSchedule{
		ID:        "11111111-2222-3333-4444-555555555555",
		StaffID:   testStaffID,
		VendorID:  "66666666-7777-8888-9999-000000000000",
		DayOfWeek: 1,
		StartTime: start,
		EndTime:   end,
	}
}

func activeBooking(start, end time.Time) bookingModel.Booking {
	return bookingModel.Booking{
		ID:        "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		StaffID:   testStaffID,
		StartTime: start,
		EndTime:   end,
		Status:    bookingModel.StatusConfirmed,
	}
}

func TestAvailabilityService_GetAvailableSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSchedule := scheduleMocks.NewMockSchedule(ctrl)
	mockBooking := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockSchedule, mockBooking, mockCatalog, cfg, mockCache, mockOtel)

	mondayStart := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		duration  int
		date      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantSlots []string
	}{
		{
			name:     "full ladder with no bookings",
			duration: 60,
			date:     testMonday,
			setupMock: func() {
				mockSchedule.EXPECT().
					GetForDay(gomock.Any(), testStaffID, 1).
					Return(newMondaySchedule("09:00", "12:00"), nil)

				mockBooking.EXPECT().
					ListActiveInWindow(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)
			},
			wantSlots: []string{"09:00", "09:30", "10:00", "10:30", "11:00"},
		},
		{
			name:     "existing booking blocks overlapping candidates",
			duration: 60,
			date:     testMonday,
			setupMock: func() {
				mockSchedule.EXPECT().
					GetForDay(gomock.Any(), testStaffID, 1).
					Return(newMondaySchedule("09:00", "12:00"), nil)

				mockBooking.EXPECT().
					ListActiveInWindow(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						activeBooking(mondayStart.Add(10*time.Hour), mondayStart.Add(11*time.Hour)),
					}, nil)
			},
			wantSlots: []string{"09:00", "11:00"},
		},
		{
			name:     "back to back booking does not block touching slot",
			duration: 30,
			date:     testMonday,
			setupMock: func() {
				mockSchedule.EXPECT().
					GetForDay(gomock.Any(), testStaffID, 1).
					Return(newMondaySchedule("09:00", "10:30"), nil)

				mockBooking.EXPECT().
					ListActiveInWindow(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						activeBooking(mondayStart.Add(9*time.Hour+30*time.Minute), mondayStart.Add(10*time.Hour)),
					}, nil)
			},
			wantSlots: []string{"09:00", "10:00"},
		},
		{
			name:     "closed day returns empty list",
			duration: 60,
			date:     testMonday,
			setupMock: func() {
				mockSchedule.EXPECT().
					GetForDay(gomock.Any(), testStaffID, 1).
					Return(scheduleModel.StaffSchedule{}, nil)
			},
			wantSlots: []string{},
		},
		{
			name:     "duration longer than window yields empty list",
			duration: 240,
			date:     testMonday,
			setupMock: func() {
				mockSchedule.EXPECT().
					GetForDay(gomock.Any(), testStaffID, 1).
					Return(newMondaySchedule("09:00", "12:00"), nil)

				mockBooking.EXPECT().
					ListActiveInWindow(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)
			},
			wantSlots: []string{},
		},
		{
			name:      "non positive duration rejected",
			duration:  0,
			date:      testMonday,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "malformed date rejected",
			duration:  60,
			date:      "31-08-2026",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:     "schedule store error surfaces",
			duration: 60,
			date:     testMonday,
			setupMock: func() {
				mockSchedule.EXPECT().
					GetForDay(gomock.Any(), testStaffID, 1).
					Return(scheduleModel.StaffSchedule{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			slots, err := svc.GetAvailableSlots(context.Background(), testStaffID, tt.duration, tt.date)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSlots, slots)
		})
	}
}

func TestAvailabilityService_GetAvailableSlots_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSchedule := scheduleMocks.NewMockSchedule(ctrl)
	mockBooking := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockSchedule, mockBooking, mockCatalog, cfg, mockCache, mockOtel)

	mondayStart := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	mockSchedule.EXPECT().
		GetForDay(gomock.Any(), testStaffID, 1).
		Return(newMondaySchedule("09:00", "12:00"), nil).
		Times(2)

	mockBooking.EXPECT().
		ListActiveInWindow(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			activeBooking(mondayStart.Add(10*time.Hour), mondayStart.Add(11*time.Hour)),
		}, nil).
		Times(2)

	first, err := svc.GetAvailableSlots(context.Background(), testStaffID, 60, testMonday)
	assert.NoError(t, err)

	second, err := svc.GetAvailableSlots(context.Background(), testStaffID, 60, testMonday)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAvailabilityService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSchedule := scheduleMocks.NewMockSchedule(ctrl)
	mockBooking := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockSchedule, mockBooking, mockCatalog, cfg, mockCache, mockOtel)

	req := dto.AvailabilityRequest{
		StaffID:   testStaffID,
		ServiceID: testServiceID,
		Date:      testMonday,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantSlots []string
	}{
		{
			name: "cache hit skips computation",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.AvailabilityResponse)
						res.Slots = []string{"09:00"}

						return nil
					})
			},
			wantSlots: []string{"09:00"},
		},
		{
			name: "unknown service rejected",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCatalog.EXPECT().
					GetService(gomock.Any(), testServiceID).
					Return(catalogModel.Service{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "inactive service rejected",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCatalog.EXPECT().
					GetService(gomock.Any(), testServiceID).
					Return(catalogModel.Service{ID: testServiceID, DurationMinutes: 60, Active: false}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "cache miss computes and caches",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCatalog.EXPECT().
					GetService(gomock.Any(), testServiceID).
					Return(catalogModel.Service{ID: testServiceID, DurationMinutes: 60, Active: true}, nil)

				mockSchedule.EXPECT().
					GetForDay(gomock.Any(), testStaffID, 1).
					Return(newMondaySchedule("09:00", "12:00"), nil)

				mockBooking.EXPECT().
					ListActiveInWindow(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantSlots: []string{"09:00", "09:30", "10:00", "10:30", "11:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Search(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSlots, res.Slots)
		})
	}
}
