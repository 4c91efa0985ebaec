package service

import (
	"context"
	"fmt"
	"tempah/config"
	"tempah/infras/otel"
	"tempah/internal/domains/availability/dto"
	bookingRepo "tempah/internal/domains/booking/repository"
	catalogRepo "tempah/internal/domains/catalog/repository"
	scheduleRepo "tempah/internal/domains/schedule/repository"
	"tempah/shared"
	"tempah/shared/cache"
	"tempah/shared/clock"
	"tempah/shared/constant"
	"tempah/shared/failure"
	"tempah/shared/timezone"

	"github.com/rs/zerolog/log"
)

type busyInterval struct {
	start int
	end   int
}

type Availability interface {
	// GetAvailableSlots returns the bookable start times for one staff member
	// on one date, ascending. A day without a schedule row yields an empty
	// list, not an error.
	GetAvailableSlots(ctx context.Context, staffID string, durationMinutes int, date string) ([]string, error)
	Search(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	scheduleRepo scheduleRepo.Schedule
	bookingRepo  bookingRepo.Booking
	catalogRepo  catalogRepo.Catalog
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(scheduleRepo scheduleRepo.Schedule, bookingRepo bookingRepo.Booking, catalogRepo catalogRepo.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) GetAvailableSlots(ctx context.Context, staffID string, durationMinutes int, date string) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	if durationMinutes <= 0 {
		return nil, failure.BadRequestFromString("duration must be positive") // nolint:wrapcheck
	}

	dayStart, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return nil, failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) // nolint:wrapcheck
	}

	dayEnd := dayStart.AddDate(0, 0, 1)

	sched, err := s.scheduleRepo.GetForDay(ctx, staffID, int(dayStart.Weekday()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff schedule")

		return nil, fmt.Errorf("failed to get staff schedule: %w", err)
	}

	// Closed day: no schedule row means no slots, a normal outcome.
	if sched.ID == constant.Empty {
		return []string{}, nil
	}

	workStart, err := clock.ToMinutes(sched.StartTime)
	if err != nil {
		log.Error().Err(err).Str("staffID", staffID).Str("startTime", sched.StartTime).Msg("malformed schedule start time")

		return nil, fmt.Errorf("malformed schedule start time: %w", err)
	}

	workEnd, err := clock.ToMinutes(sched.EndTime)
	if err != nil {
		log.Error().Err(err).Str("staffID", staffID).Str("endTime", sched.EndTime).Msg("malformed schedule end time")

		return nil, fmt.Errorf("malformed schedule end time: %w", err)
	}

	bookings, err := s.bookingRepo.ListActiveInWindow(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active bookings")

		return nil, fmt.Errorf("failed to list active bookings: %w", err)
	}

	busy := make([]busyInterval, 0, len(bookings))
	for _, booking := range bookings {
		busy = append(busy, busyInterval{
			start: int(booking.StartTime.Sub(dayStart).Minutes()),
			end:   int(booking.EndTime.Sub(dayStart).Minutes()),
		})
	}

	step := s.cfg.App.SlotStepMinutes
	if step <= 0 {
		step = constant.DefaultSlotStepMinutes
	}

	// Fixed-step candidate walk: every slot starts on a step boundary even
	// when a tighter fit against an existing booking would be possible.
	slots := []string{}

	for candidate := workStart; candidate+durationMinutes <= workEnd; candidate += step {
		candidateEnd := candidate + durationMinutes
		free := true

		for _, interval := range busy {
			if clock.Overlaps(candidate, candidateEnd, interval.start, interval.end) {
				free = false

				break
			}
		}

		if free {
			slots = append(slots, clock.FromMinutes(candidate))
		}
	}

	return slots, nil
}

func (s *serviceImpl) Search(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeyAvailabilitySlots, req.StaffID, req.ServiceID, req.Date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	svc, err := s.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty || !svc.Active {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	slots, err := s.GetAvailableSlots(ctx, req.StaffID, svc.DurationMinutes, req.Date)
	if err != nil {
		return res, err
	}

	res = dto.AvailabilityResponse{
		StaffID:         req.StaffID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: svc.DurationMinutes,
		Slots:           slots,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}
