package service

import (
	"context"
	"fmt"
	"tempah/config"
	"tempah/infras/kafka"
	"tempah/infras/otel"
	"tempah/internal/domains/booking/model"
	"tempah/internal/domains/booking/model/dto"
	"tempah/internal/domains/booking/repository"
	catalogRepo "tempah/internal/domains/catalog/repository"
	paymentModel "tempah/internal/domains/payment/model"
	paymentRepo "tempah/internal/domains/payment/repository"
	"tempah/shared"
	"tempah/shared/cache"
	"tempah/shared/constant"
	gDto "tempah/shared/dto"
	"tempah/shared/failure"
	gModel "tempah/shared/model"
	"tempah/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetMyBookings = "booking:my"

	startTimeLayout = constant.DateOnlyFormat + " " + constant.ClockTimeFormat
)

type Booking interface {
	Initiate(ctx context.Context, req dto.CreateBookingRequest) (dto.InitiateBookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, id string) error
	CancelByVendor(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	MarkNoShow(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	catalogRepo catalogRepo.Catalog
	paymentRepo paymentRepo.Payment
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	otel        otel.Otel
}

func New(repo repository.Booking, catalogRepo catalogRepo.Catalog, paymentRepo paymentRepo.Payment, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:        repo,
		catalogRepo: catalogRepo,
		paymentRepo: paymentRepo,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafka,
		otel:        otel,
	}
}

// Initiate reserves a slot for the authenticated customer. The overlap
// pre-check only exists to fail fast with a friendly error; the write
// transaction re-checks under the staff calendar lock, which is what actually
// prevents two concurrent requests from both taking the slot.
func (s *serviceImpl) Initiate(ctx context.Context, req dto.CreateBookingRequest) (res dto.InitiateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Initiate")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyCustomerID).(string)
	if customerID == constant.Empty {
		return res, failure.Unauthorized("missing customer identity") // nolint:wrapcheck
	}

	startTime, err := timezone.Parse(startTimeLayout, req.Date+" "+req.StartTime)
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Str("startTime", req.StartTime).Msg("failed to parse requested slot")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time: %v", err)) // nolint:wrapcheck
	}

	svc, err := s.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty || !svc.Active {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	if svc.DurationMinutes <= 0 {
		return res, failure.BadRequestFromString("service duration must be positive") // nolint:wrapcheck
	}

	endTime := startTime.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	overlapping, err := s.repo.CountOverlapping(ctx, req.StaffID, startTime, endTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to pre-check slot collisions")

		return res, fmt.Errorf("failed to pre-check slot collisions: %w", err)
	}

	if overlapping > 0 {
		return res, failure.SlotUnavailableError // nolint:wrapcheck
	}

	booking := req.ToModel(customerID, svc, startTime)
	intent := paymentModel.PaymentIntent{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		Amount:    svc.DepositAmount,
		Status:    paymentModel.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockStaffCalendarTx(ctx, tx, req.StaffID); err != nil {
			return err
		}

		count, err := s.repo.CountOverlappingTx(ctx, tx, req.StaffID, startTime, endTime)
		if err != nil {
			return err
		}

		if count > 0 {
			return failure.SlotUnavailableError
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		return s.paymentRepo.InsertTx(ctx, tx, intent)
	})
	if err != nil {
		if failure.GetCode(err) >= 500 {
			log.Error().Err(err).Msg("failed to create booking")
		}

		return res, err
	}

	s.afterWrite(ctx, booking, dto.EventBookingInitiated)

	res.BookingID = booking.ID
	res.PaymentIntentID = intent.ID
	res.Status = booking.Status

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMyBookings(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyCustomerID).(string)
	if customerID == constant.Empty {
		return res, failure.Unauthorized("missing customer identity") // nolint:wrapcheck
	}

	filter := shared.FilterByID(customerID, model.FieldCustomerID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetMyBookings, customerID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customer bookings")

		return res, fmt.Errorf("failed to count customer bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer bookings")

		return res, fmt.Errorf("failed to get customer bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer bookings to cache")
		}
	}()

	return res, nil
}

// Cancel is the customer-facing cancellation; only the booking owner may use
// it. Vendor-side transitions live on the dedicated methods below.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()

	customerID, _ := ctx.Value(constant.ContextKeyCustomerID).(string)
	if customerID == constant.Empty {
		return failure.Unauthorized("missing customer identity") // nolint:wrapcheck
	}

	return s.transition(ctx, id, model.StatusCancelledByUser, dto.EventBookingCancelled, customerID)
}

func (s *serviceImpl) CancelByVendor(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByVendor")
	defer scope.End()

	actor, _ := ctx.Value(constant.ContextKeyCustomerID).(string)

	return s.transition(ctx, id, model.StatusCancelledByVendor, dto.EventBookingCancelled, actor)
}

func (s *serviceImpl) Complete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()

	actor, _ := ctx.Value(constant.ContextKeyCustomerID).(string)

	return s.transition(ctx, id, model.StatusCompleted, dto.EventBookingCompleted, actor)
}

func (s *serviceImpl) MarkNoShow(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNoShow")
	defer scope.End()

	actor, _ := ctx.Value(constant.ContextKeyCustomerID).(string)

	return s.transition(ctx, id, model.StatusNoShow, dto.EventBookingNoShow, actor)
}

// transition applies the booking state machine with an optimistic guard: the
// status read here must still hold at write time, otherwise the move is
// rejected as a conflict.
func (s *serviceImpl) transition(ctx context.Context, id, toStatus, eventType, actor string) error {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if toStatus == model.StatusCancelledByUser && booking.CustomerID != actor {
		return failure.ForbiddenError // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, toStatus) {
		return failure.Conflict(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, toStatus)) // nolint:wrapcheck
	}

	updated, err := s.repo.UpdateStatusFrom(ctx, id, booking.Status, toStatus, actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if !updated {
		return failure.Conflict("booking status changed concurrently, retry") // nolint:wrapcheck
	}

	booking.Status = toStatus
	s.afterWrite(ctx, booking, eventType)

	return nil
}

// afterWrite invalidates caches touched by a calendar change and publishes the
// lifecycle event. Both run off the request path.
func (s *serviceImpl) afterWrite(ctx context.Context, booking model.Booking, eventType string) {
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

		event := dto.NewBookingEvent(eventType, booking)
		if err := s.kafka.SendMessages(c, constant.KafkaTopicBookingEvents, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("eventType", eventType).Msg("failed to publish booking event")
		}
	}()
}
