package service

import (
	"context"
	"fmt"
	"tempah/config"
	"tempah/infras/kafka"
	"tempah/infras/otel"
	bookingModel "tempah/internal/domains/booking/model"
	bookingDto "tempah/internal/domains/booking/model/dto"
	bookingRepo "tempah/internal/domains/booking/repository"
	"tempah/internal/domains/payment/model"
	"tempah/internal/domains/payment/model/dto"
	"tempah/internal/domains/payment/repository"
	"tempah/shared"
	"tempah/shared/cache"
	"tempah/shared/constant"
	"tempah/shared/failure"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetMyBookings = "booking:my"
)

type Payment interface {
	// MockCallback stands in for the real gateway callback: it settles the
	// pending intent and promotes the booking to confirmed in one transaction.
	MockCallback(ctx context.Context, req dto.CallbackRequest) (dto.CallbackResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	otel        otel.Otel
}

func New(repo repository.Payment, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafka,
		otel:        otel,
	}
}

func (s *serviceImpl) MockCallback(ctx context.Context, req dto.CallbackRequest) (res dto.CallbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MockCallback")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.BookingID = booking.ID
	res.BookingStatus = booking.Status

	// Already processed: report without failing so gateway retries stay
	// harmless and perform no writes.
	if booking.Status != bookingModel.StatusPendingPayment {
		res.Processed = false
		res.Message = "booking already processed"

		return res, nil
	}

	intent, err := s.repo.GetPendingByBooking(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending payment intent")

		return res, fmt.Errorf("failed to get pending payment intent: %w", err)
	}

	if intent.ID == constant.Empty {
		return res, failure.UnprocessableEntity("booking has no pending payment intent") // nolint:wrapcheck
	}

	trackingCode := uuid.NewString()

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		settled, err := s.repo.MarkStatusTx(ctx, tx, intent.ID, model.StatusPending, model.StatusSuccess, trackingCode, booking.CustomerID)
		if err != nil {
			return err
		}

		if !settled {
			return failure.Conflict("payment intent already settled")
		}

		confirmed, err := s.bookingRepo.ConfirmPaidTx(ctx, tx, booking.ID, intent.Amount, booking.CustomerID)
		if err != nil {
			return err
		}

		if !confirmed {
			return failure.Conflict("booking already processed")
		}

		return nil
	})
	if err != nil {
		if failure.GetCode(err) >= 500 {
			log.Error().Err(err).Msg("failed to settle payment")
		}

		return res, err
	}

	booking.Status = bookingModel.StatusConfirmed
	booking.DepositPaid = intent.Amount

	s.afterSettle(ctx, booking)

	res.PaymentIntentID = intent.ID
	res.TrackingCode = trackingCode
	res.BookingStatus = booking.Status
	res.Processed = true

	return res, nil
}

func (s *serviceImpl) afterSettle(ctx context.Context, booking bookingModel.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetMyBookings, booking.CustomerID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyAvailabilitySlots, booking.StaffID))

		if !s.cfg.Kafka.Enable {
			return
		}

		event := bookingDto.NewBookingEvent(bookingDto.EventBookingConfirmed, booking)
		if err := s.kafka.SendMessages(c, constant.KafkaTopicBookingEvents, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Msg("failed to publish booking confirmed event")
		}
	}()
}
