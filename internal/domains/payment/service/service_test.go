package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tempah/config"
	"tempah/infras/otel/mocks"
	bookingMocks "tempah/internal/domains/booking/mocks"
	bookingModel "tempah/internal/domains/booking/model"
	paymentMocks "tempah/internal/domains/payment/mocks"
	"tempah/internal/domains/payment/model"
	"tempah/internal/domains/payment/model/dto"
	"tempah/internal/domains/payment/service"
	cacheMocks "tempah/shared/cache/mocks"
	"tempah/shared/failure"
)

const (
	testCustomerID = "c0ffee00-1111-2222-3333-444444444444"
	testBookingID  = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	testIntentID   = "99999999-8888-7777-6666-555555555555"
)

type testMocks struct {
	repo    *paymentMocks.MockPayment
	booking *bookingMocks.MockBooking
	cache   *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.Payment, testMocks) {
	m := testMocks{
		repo:    paymentMocks.NewMockPayment(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.booking, cfg, m.cache, nil, mocks.NewOtel())

	return svc, m
}

func pendingBooking(status string) bookingModel.Booking {
	return bookingModel.Booking{
		ID:         testBookingID,
		CustomerID: testCustomerID,
		StaffID:    "3f0a8f3e-8f7d-4a52-9a98-0f6fdd0f2a01",
		Status:     status,
	}
}

func pendingIntent() model.PaymentIntent {
	return model.PaymentIntent{
		ID:        testIntentID,
		BookingID: testBookingID,
		Amount:    50,
		Status:    model.StatusPending,
	}
}

func TestPaymentService_MockCallback(t *testing.T) {
	req := dto.CallbackRequest{BookingID: testBookingID}

	tests := []struct {
		name          string
		setupMock     func(m testMocks)
		wantErr       bool
		wantCode      int
		wantProcessed bool
		wantStatus    string
	}{
		{
			name: "settles pending booking",
			setupMock: func(m testMocks) {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(bookingModel.StatusPendingPayment), nil)

				m.repo.EXPECT().
					GetPendingByBooking(gomock.Any(), testBookingID).
					Return(pendingIntent(), nil)

				m.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
						return fn(nil)
					})

				m.repo.EXPECT().
					MarkStatusTx(gomock.Any(), gomock.Any(), testIntentID, model.StatusPending, model.StatusSuccess, gomock.Any(), testCustomerID).
					Return(true, nil)

				m.booking.EXPECT().
					ConfirmPaidTx(gomock.Any(), gomock.Any(), testBookingID, float64(50), testCustomerID).
					Return(true, nil)

				m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantProcessed: true,
			wantStatus:    bookingModel.StatusConfirmed,
		},
		{
			name: "already confirmed booking reports without writing",
			setupMock: func(m testMocks) {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(bookingModel.StatusConfirmed), nil)
			},
			wantProcessed: false,
			wantStatus:    bookingModel.StatusConfirmed,
		},
		{
			name: "cancelled booking reports without writing",
			setupMock: func(m testMocks) {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(bookingModel.StatusCancelledByUser), nil)
			},
			wantProcessed: false,
			wantStatus:    bookingModel.StatusCancelledByUser,
		},
		{
			name: "booking not found",
			setupMock: func(m testMocks) {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "missing pending intent",
			setupMock: func(m testMocks) {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(bookingModel.StatusPendingPayment), nil)

				m.repo.EXPECT().
					GetPendingByBooking(gomock.Any(), testBookingID).
					Return(model.PaymentIntent{}, nil)
			},
			wantErr:  true,
			wantCode: 422,
		},
		{
			name: "intent settled by a concurrent callback",
			setupMock: func(m testMocks) {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(bookingModel.StatusPendingPayment), nil)

				m.repo.EXPECT().
					GetPendingByBooking(gomock.Any(), testBookingID).
					Return(pendingIntent(), nil)

				m.repo.EXPECT().
					Transact(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
						return fn(nil)
					})

				m.repo.EXPECT().
					MarkStatusTx(gomock.Any(), gomock.Any(), testIntentID, model.StatusPending, model.StatusSuccess, gomock.Any(), testCustomerID).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "storage failure surfaces",
			setupMock: func(m testMocks) {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, errors.New("database error"))
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

			res, err := svc.MockCallback(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantProcessed, res.Processed)
			assert.Equal(t, tt.wantStatus, res.BookingStatus)

			if tt.wantProcessed {
				assert.NotEmpty(t, res.TrackingCode)
				assert.Equal(t, testIntentID, res.PaymentIntentID)
			}
		})
	}
}
