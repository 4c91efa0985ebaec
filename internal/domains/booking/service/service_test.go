package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tempah/config"
	"tempah/infras/otel/mocks"
	bookingMocks "tempah/internal/domains/booking/mocks"
	"tempah/internal/domains/booking/model"
	"tempah/internal/domains/booking/model/dto"
	"tempah/internal/domains/booking/service"
	catalogMocks "tempah/internal/domains/catalog/mocks"
	catalogModel "tempah/internal/domains/catalog/model"
	paymentMocks "tempah/internal/domains/payment/mocks"
	paymentModel "tempah/internal/domains/payment/model"
	cacheMocks "tempah/shared/cache/mocks"
	"tempah/shared/constant"
	gDto "tempah/shared/dto"
	"tempah/shared/failure"
)

const (
	testCustomerID = "c0ffee00-1111-2222-3333-444444444444"
	testStaffID    = "3f0a8f3e-8f7d-4a52-9a98-0f6fdd0f2a01"
	testServiceID  = "b7c9e2d4-6a1b-4c3f-8e5d-2a9b7c6d5e40"
	testBookingID  = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
)

type testMocks struct {
	repo    *bookingMocks.MockBooking
	catalog *catalogMocks.MockCatalog
	payment *paymentMocks.MockPayment
	cache   *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.Booking, testMocks) {
	m := testMocks{
		repo:    bookingMocks.NewMockBooking(ctrl),
		catalog: catalogMocks.NewMockCatalog(ctrl),
		payment: paymentMocks.NewMockPayment(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.catalog, m.payment, cfg, m.cache, nil, mocks.NewOtel())

	return svc, m
}

// allowAsyncCacheWrites stubs the cache invalidation that runs off the
// request path after a successful write.
func allowAsyncCacheWrites(m testMocks) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func authedCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyCustomerID, testCustomerID)
}

func activeService() catalogModel.Service {
	return catalogModel.Service{
		ID:              testServiceID,
		VendorID:        "66666666-7777-8888-9999-000000000000",
		Name:            "Haircut",
		DurationMinutes: 60,
		Price:           150,
		DepositAmount:   50,
		Active:          true,
	}
}

func TestBookingService_Initiate(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		ServiceID: testServiceID,
		StaffID:   testStaffID,
		Date:      "2026-08-31",
		StartTime: "10:00",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateBookingRequest
		setupMock func(m testMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful initiation",
			ctx:  authedCtx(),
			req:  validReq,
			setupMock: func(m testMocks) {
				m.catalog.EXPECT().
					GetService(gomock.Any(), testServiceID).
					Return(activeService(), nil)

				m.repo.EXPECT().
					CountOverlapping(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
						return fn(nil)
					})

				m.repo.EXPECT().
					LockStaffCalendarTx(gomock.Any(), gomock.Any(), testStaffID).
					Return(nil)

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, model.StatusPendingPayment, booking.Status)
						assert.Equal(t, testCustomerID, booking.CustomerID)
						assert.Equal(t, 60*time.Minute, booking.EndTime.Sub(booking.StartTime))
						assert.Equal(t, float64(0), booking.DepositPaid)

						return nil
					})

				m.payment.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, intent paymentModel.PaymentIntent) error {
						assert.Equal(t, paymentModel.StatusPending, intent.Status)
						assert.Equal(t, float64(50), intent.Amount)

						return nil
					})

				allowAsyncCacheWrites(m)
			},
		},
		{
			name:      "missing customer identity",
			ctx:       context.Background(),
			req:       validReq,
			setupMock: func(m testMocks) {},
			wantErr:   true,
			wantCode:  401,
		},
		{
			name: "malformed start time",
			ctx:  authedCtx(),
			req: dto.CreateBookingRequest{
				ServiceID: testServiceID,
				StaffID:   testStaffID,
				Date:      "2026-08-31",
				StartTime: "25:99",
			},
			setupMock: func(m testMocks) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "unknown service",
			ctx:  authedCtx(),
			req:  validReq,
			setupMock: func(m testMocks) {
				m.catalog.EXPECT().
					GetService(gomock.Any(), testServiceID).
					Return(catalogModel.Service{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "pre-check collision",
			ctx:  authedCtx(),
			req:  validReq,
			setupMock: func(m testMocks) {
				m.catalog.EXPECT().
					GetService(gomock.Any(), testServiceID).
					Return(activeService(), nil)

				m.repo.EXPECT().
					CountOverlapping(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "commit-time collision after clean pre-check",
			ctx:  authedCtx(),
			req:  validReq,
			setupMock: func(m testMocks) {
				m.catalog.EXPECT().
					GetService(gomock.Any(), testServiceID).
					Return(activeService(), nil)

				m.repo.EXPECT().
					CountOverlapping(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
						return fn(nil)
					})

				m.repo.EXPECT().
					LockStaffCalendarTx(gomock.Any(), gomock.Any(), testStaffID).
					Return(nil)

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "storage failure during pre-check",
			ctx:  authedCtx(),
			req:  validReq,
			setupMock: func(m testMocks) {
				m.catalog.EXPECT().
					GetService(gomock.Any(), testServiceID).
					Return(activeService(), nil)

				m.repo.EXPECT().
					CountOverlapping(gomock.Any(), testStaffID, gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			tt.setupMock(m)

			res, err := svc.Initiate(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.BookingID)
			assert.NotEmpty(t, res.PaymentIntentID)
			assert.Equal(t, model.StatusPendingPayment, res.Status)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ownBooking := func(status string) model.Booking {
		return model.Booking{
			ID:         testBookingID,
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			Status:     status,
		}
	}

	tests := []struct {
		name      string
		setupMock func(m testMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cancel pending booking",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownBooking(model.StatusPendingPayment), nil)

				m.repo.EXPECT().
					UpdateStatusFrom(gomock.Any(), testBookingID, model.StatusPendingPayment, model.StatusCancelledByUser, testCustomerID).
					Return(true, nil)

				allowAsyncCacheWrites(m)
			},
		},
		{
			name: "booking not found",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "terminal booking rejected",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownBooking(model.StatusCompleted), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "someone else's booking rejected",
			setupMock: func(m testMocks) {
				other := ownBooking(model.StatusConfirmed)
				other.CustomerID = "someone-else"

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(other, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "concurrent status change rejected",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(ownBooking(model.StatusConfirmed), nil)

				m.repo.EXPECT().
					UpdateStatusFrom(gomock.Any(), testBookingID, model.StatusConfirmed, model.StatusCancelledByUser, testCustomerID).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			tt.setupMock(m)

			err := svc.Cancel(authedCtx(), testBookingID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_VendorTransitions(t *testing.T) {
	booking := model.Booking{
		ID:         testBookingID,
		CustomerID: testCustomerID,
		StaffID:    testStaffID,
		Status:     model.StatusConfirmed,
	}

	tests := []struct {
		name       string
		transition func(svc service.Booking) error
		toStatus   string
	}{
		{
			name: "vendor cancellation",
			transition: func(svc service.Booking) error {
				return svc.CancelByVendor(authedCtx(), testBookingID)
			},
			toStatus: model.StatusCancelledByVendor,
		},
		{
			name: "completion",
			transition: func(svc service.Booking) error {
				return svc.Complete(authedCtx(), testBookingID)
			},
			toStatus: model.StatusCompleted,
		},
		{
			name: "no-show",
			transition: func(svc service.Booking) error {
				return svc.MarkNoShow(authedCtx(), testBookingID)
			},
			toStatus: model.StatusNoShow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)

			m.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(booking, nil)

			m.repo.EXPECT().
				UpdateStatusFrom(gomock.Any(), testBookingID, model.StatusConfirmed, tt.toStatus, testCustomerID).
				Return(true, nil)

			allowAsyncCacheWrites(m)

			assert.NoError(t, tt.transition(svc))
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m testMocks)
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "cache hit skips store",
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.BookingResponse)
						res.ID = testBookingID

						return nil
					})
			},
			wantID: testBookingID,
		},
		{
			name: "cache miss fetches and caches",
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:         testBookingID,
						CustomerID: testCustomerID,
						StaffID:    testStaffID,
						StartTime:  time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC),
						EndTime:    time.Date(2026, time.August, 31, 11, 0, 0, 0, time.UTC),
						Status:     model.StatusConfirmed,
					}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID: testBookingID,
		},
		{
			name: "unknown booking",
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			tt.setupMock(m)

			res, err := svc.Get(context.Background(), testBookingID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestBookingService_GetMyBookings(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(m testMocks)
		wantErr   bool
		wantCode  int
		wantTotal int
	}{
		{
			name: "cache miss fetches from store",
			ctx:  authedCtx(),
			setupMock: func(m testMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{
							ID:         testBookingID,
							CustomerID: testCustomerID,
							StaffID:    testStaffID,
							StartTime:  time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC),
							EndTime:    time.Date(2026, time.August, 31, 11, 0, 0, 0, time.UTC),
							Status:     model.StatusConfirmed,
						},
					}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 1,
		},
		{
			name:      "missing customer identity",
			ctx:       context.Background(),
			setupMock: func(m testMocks) {},
			wantErr:   true,
			wantCode:  401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			tt.setupMock(m)

			res, err := svc.GetMyBookings(tt.ctx, gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Len(t, res.Bookings, tt.wantTotal)
		})
	}
}
