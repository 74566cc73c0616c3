package service

import (
	"context"
	"encoding/json"
	"time"

	"courtsched/core/cache"
	"courtsched/core/errors"
	"courtsched/core/logger"
	"courtsched/core/timeutil"
	"courtsched/modules/availability/dto"
	blockrepo "courtsched/modules/block/repository"
	bookingrepo "courtsched/modules/booking/repository"
	courtservice "courtsched/modules/court/service"
	slotrepo "courtsched/modules/slotconfig/repository"
)

type AvailabilityServiceInterface interface {
	ResolveDay(ctx context.Context, courtID, date string) (*dto.DayAvailabilityResponse, *errors.AppError)
}

type AvailabilityService struct {
	courtSvc courtservice.CourtServiceInterface
	configs  slotrepo.SlotConfigRepositoryInterface
	blocks   blockrepo.BlockRepositoryInterface
	bookings bookingrepo.BookingRepositoryInterface
	cache    cache.Cache
}

func NewAvailabilityService(
	courtSvc courtservice.CourtServiceInterface,
	configs slotrepo.SlotConfigRepositoryInterface,
	blocks blockrepo.BlockRepositoryInterface,
	bookings bookingrepo.BookingRepositoryInterface,
	cache cache.Cache,
) *AvailabilityService {
	return &AvailabilityService{
		courtSvc: courtSvc,
		configs:  configs,
		blocks:   blocks,
		bookings: bookings,
		cache:    cache,
	}
}

// ResolveDay produces the concrete open/occupied calendar for one court and
// date from a point-in-time snapshot of configurations, blocks and
// bookings. Results are cached briefly per (court, date).
func (s *AvailabilityService) ResolveDay(ctx context.Context, courtID, date string) (*dto.DayAvailabilityResponse, *errors.AppError) {
	if _, appErr := s.courtSvc.GetByID(ctx, courtID); appErr != nil {
		return nil, appErr
	}

	if cached, ok := s.cache.GetAvailability(ctx, courtID, date); ok {
		var resp dto.DayAvailabilityResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	day, err := timeutil.ParseDate(date, time.Local)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD", nil)
	}
	dayOfWeek := timeutil.DayOfWeek(day)

	configs, err := s.configs.ListActiveByCourtAndDay(ctx, courtID, dayOfWeek)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to load slot configurations", nil)
	}
	blocks, err := s.blocks.ListIntersecting(ctx, courtID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to load blocks", nil)
	}
	bookings, err := s.bookings.ListConfirmed(ctx, courtID, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to load bookings", nil)
	}

	resolved, err := Resolve(day, configs, blocks, bookings)
	if err != nil {
		logger.Error("AvailabilityService:ResolveDay:Resolve:Error", "error", err, "court_id", courtID, "date", date)
		return nil, errors.NewAppError(errors.ErrInvalidInterval, "Stored interval data is inconsistent", err.Error())
	}

	resp := &dto.DayAvailabilityResponse{
		CourtID:   courtID,
		Date:      date,
		DayOfWeek: dayOfWeek,
		Free:      make([]dto.IntervalResponse, 0, len(resolved.Free)),
		Occupied:  make([]dto.OccupiedResponse, 0, len(resolved.Occupied)),
	}
	for _, iv := range resolved.Free {
		resp.Free = append(resp.Free, dto.IntervalResponse{
			StartTime: timeutil.FormatMinutes(iv.Start),
			EndTime:   timeutil.FormatMinutes(iv.End),
		})
	}
	for _, occ := range resolved.Occupied {
		resp.Occupied = append(resp.Occupied, dto.OccupiedResponse{
			StartTime: timeutil.FormatMinutes(occ.Start),
			EndTime:   timeutil.FormatMinutes(occ.End),
			Reason:    string(occ.Reason),
			Label:     occ.Label,
		})
	}

	if payload, err := json.Marshal(resp); err == nil {
		s.cache.SetAvailability(ctx, courtID, date, payload)
	}
	return resp, nil
}
