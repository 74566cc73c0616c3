package service

import (
	"context"
	"time"

	"courtsched/core/cache"
	"courtsched/core/errors"
	"courtsched/core/logger"
	"courtsched/core/timeutil"
	"courtsched/core/utils"
	availability "courtsched/modules/availability/service"
	blockrepo "courtsched/modules/block/repository"
	"courtsched/modules/booking/dto"
	"courtsched/modules/booking/entity"
	"courtsched/modules/booking/repository"
	courtservice "courtsched/modules/court/service"
	slotrepo "courtsched/modules/slotconfig/repository"

	"github.com/google/uuid"
)

type BookingServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*entity.Booking, *errors.AppError)
	Cancel(ctx context.Context, id string) (*entity.Booking, *errors.AppError)
	ListConfirmed(ctx context.Context, courtID, date string) ([]entity.Booking, *errors.AppError)
}

type BookingService struct {
	repo     repository.BookingRepositoryInterface
	configs  slotrepo.SlotConfigRepositoryInterface
	blocks   blockrepo.BlockRepositoryInterface
	courtSvc courtservice.CourtServiceInterface
	cache    cache.Cache
}

func NewBookingService(
	repo repository.BookingRepositoryInterface,
	configs slotrepo.SlotConfigRepositoryInterface,
	blocks blockrepo.BlockRepositoryInterface,
	courtSvc courtservice.CourtServiceInterface,
	cache cache.Cache,
) *BookingService {
	return &BookingService{repo: repo, configs: configs, blocks: blocks, courtSvc: courtSvc, cache: cache}
}

// Create reserves the interval if it is free. The interval must lie inside
// the court's open time for that weekday, net of standing blocks; the
// booking-vs-booking check and the write then happen inside one repository
// transaction, so two overlapping requests cannot both succeed.
func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*entity.Booking, *errors.AppError) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid userId", nil)
	}

	court, appErr := s.courtSvc.GetByID(ctx, req.CourtID)
	if appErr != nil {
		return nil, appErr
	}

	startMin, err := timeutil.ParseClock(req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid startTime", err.Error())
	}
	endMin, err := timeutil.ParseClock(req.EndTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid endTime", err.Error())
	}
	if endMin <= startMin {
		return nil, errors.NewAppError(errors.ErrInvalidInterval, "endTime must be after startTime", nil)
	}

	day, err := timeutil.ParseDate(req.Date, time.Local)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD", nil)
	}
	if appErr := s.checkOpen(ctx, req.CourtID, day, availability.Interval{Start: startMin, End: endMin}); appErr != nil {
		return nil, appErr
	}

	booking := &entity.Booking{
		ID:            utils.GenerateID(),
		UserID:        userID,
		UserName:      req.UserName,
		UserFirstName: req.UserFirstName,
		UserLastName:  req.UserLastName,
		CourtID:       req.CourtID,
		CourtName:     court.Name,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Duration:      endMin - startMin,
		Status:        entity.StatusConfirmed,
	}

	created, err := s.repo.CreateIfFree(ctx, booking)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to create booking", nil)
	}
	if !created {
		return nil, errors.NewAppError(errors.ErrSlotConflict, "Interval overlaps an existing booking", nil)
	}

	s.cache.InvalidateDay(ctx, booking.CourtID, booking.Date)
	logger.Info("BookingService:Create:Created",
		"booking_id", booking.ID,
		"court_id", booking.CourtID,
		"date", booking.Date,
		"start", booking.StartTime,
	)
	return booking, nil
}

// checkOpen verifies the interval falls inside an active configuration's
// open time for that weekday and intersects no block on the court. Bookings
// are excluded here: booking-vs-booking overlap is decided inside the
// CreateIfFree transaction.
func (s *BookingService) checkOpen(ctx context.Context, courtID string, day time.Time, iv availability.Interval) *errors.AppError {
	configs, err := s.configs.ListActiveByCourtAndDay(ctx, courtID, timeutil.DayOfWeek(day))
	if err != nil {
		return errors.NewAppError(errors.ErrStorageFailure, "Failed to load slot configurations", nil)
	}
	blocks, err := s.blocks.ListIntersecting(ctx, courtID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return errors.NewAppError(errors.ErrStorageFailure, "Failed to load blocks", nil)
	}

	resolved, err := availability.Resolve(day, configs, blocks, nil)
	if err != nil {
		logger.Error("BookingService:checkOpen:Resolve:Error", "error", err, "court_id", courtID)
		return errors.NewAppError(errors.ErrInvalidInterval, "Stored interval data is inconsistent", err.Error())
	}
	if !availability.Contains(resolved.Free, iv) {
		return errors.NewAppError(errors.ErrSlotConflict, "Interval is outside the court's open time or blocked", nil)
	}
	return nil
}

// Cancel performs the only permitted status transition.
func (s *BookingService) Cancel(ctx context.Context, id string) (*entity.Booking, *errors.AppError) {
	cancelled, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to cancel booking", nil)
	}
	if !cancelled {
		return nil, errors.NewAppError(errors.ErrNotFound, "No confirmed booking with this id", nil)
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil || booking == nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to reload booking", nil)
	}
	s.cache.InvalidateDay(ctx, booking.CourtID, booking.Date)
	return booking, nil
}

func (s *BookingService) ListConfirmed(ctx context.Context, courtID, date string) ([]entity.Booking, *errors.AppError) {
	if _, appErr := s.courtSvc.GetByID(ctx, courtID); appErr != nil {
		return nil, appErr
	}
	bookings, err := s.repo.ListConfirmed(ctx, courtID, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to list bookings", nil)
	}
	return bookings, nil
}
