package service

import (
	"context"

	"courtsched/core/cache"
	"courtsched/core/errors"
	"courtsched/core/logger"
	"courtsched/core/timeutil"
	courtservice "courtsched/modules/court/service"
	"courtsched/modules/slotconfig/dto"
	"courtsched/modules/slotconfig/entity"
	"courtsched/modules/slotconfig/repository"
)

type SlotConfigServiceInterface interface {
	Upsert(ctx context.Context, req *dto.UpsertSlotConfigurationRequest) (*entity.SlotConfiguration, *errors.AppError)
	ListByCourt(ctx context.Context, courtID string) ([]entity.SlotConfiguration, *errors.AppError)
	Deactivate(ctx context.Context, id string) *errors.AppError
}

type SlotConfigService struct {
	repo     repository.SlotConfigRepositoryInterface
	courtSvc courtservice.CourtServiceInterface
	cache    cache.Cache
}

func NewSlotConfigService(repo repository.SlotConfigRepositoryInterface, courtSvc courtservice.CourtServiceInterface, cache cache.Cache) *SlotConfigService {
	return &SlotConfigService{repo: repo, courtSvc: courtSvc, cache: cache}
}

// Upsert computes the natural key from the request and writes the template
// with overwrite-by-key semantics.
func (s *SlotConfigService) Upsert(ctx context.Context, req *dto.UpsertSlotConfigurationRequest) (*entity.SlotConfiguration, *errors.AppError) {
	if _, appErr := s.courtSvc.GetByID(ctx, req.CourtID); appErr != nil {
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

	config := &entity.SlotConfiguration{
		ID:           entity.ConfigKey(req.CourtID, req.DayOfWeek, req.StartTime),
		CourtID:      req.CourtID,
		DayOfWeek:    req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: endMin - startMin,
		ActivityType: entity.ActivityType(req.ActivityType),
		IsActive:     true,
		Notes:        req.Notes,
	}
	if err := config.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), nil)
	}

	if err := s.repo.Upsert(ctx, config); err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to upsert slot configuration", nil)
	}

	s.cache.InvalidateCourt(ctx, config.CourtID)
	logger.Info("SlotConfigService:Upsert:Done", "config_id", config.ID, "court_id", config.CourtID)
	return config, nil
}

func (s *SlotConfigService) ListByCourt(ctx context.Context, courtID string) ([]entity.SlotConfiguration, *errors.AppError) {
	if _, appErr := s.courtSvc.GetByID(ctx, courtID); appErr != nil {
		return nil, appErr
	}
	configs, err := s.repo.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to list slot configurations", nil)
	}
	return configs, nil
}

// Deactivate soft-disables a configuration. The row is retained so
// provenance and history survive; the resolver simply stops seeing it.
func (s *SlotConfigService) Deactivate(ctx context.Context, id string) *errors.AppError {
	config, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrStorageFailure, "Failed to get slot configuration", nil)
	}
	if config == nil {
		return errors.NewAppError(errors.ErrNotFound, "Slot configuration not found", nil)
	}
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return errors.NewAppError(errors.ErrStorageFailure, "Failed to deactivate slot configuration", nil)
	}
	s.cache.InvalidateCourt(ctx, config.CourtID)
	return nil
}
