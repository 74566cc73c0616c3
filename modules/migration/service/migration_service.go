package service

import (
	"context"
	"sync"

	"courtsched/core/cache"
	"courtsched/core/errors"
	"courtsched/core/logger"
	"courtsched/core/timeutil"
	blockentity "courtsched/modules/block/entity"
	blockrepo "courtsched/modules/block/repository"
	"courtsched/modules/migration/dto"
	slotentity "courtsched/modules/slotconfig/entity"
	slotrepo "courtsched/modules/slotconfig/repository"

	"golang.org/x/sync/errgroup"
)

// Archiver persists a finished report for audit. Archival failures are
// logged and never fail the run.
type Archiver interface {
	Archive(ctx context.Context, report *dto.MigrationReport) error
}

type MigrationServiceInterface interface {
	RunBlockMigration(ctx context.Context) (*dto.MigrationReport, *errors.AppError)
}

// MigrationService converts legacy block records whose titles mark a weekly
// pattern into canonical slot configurations, then retires the originals.
// Each block migrates independently: upsert the configuration first, delete
// the block second, so a crash between the two never loses data. The
// deterministic configuration key makes re-runs idempotent.
type MigrationService struct {
	blocks         blockrepo.BlockRepositoryInterface
	configs        slotrepo.SlotConfigRepositoryInterface
	cache          cache.Cache
	archiver       Archiver
	defaultCourtID string
	workers        int
}

func NewMigrationService(
	blocks blockrepo.BlockRepositoryInterface,
	configs slotrepo.SlotConfigRepositoryInterface,
	cache cache.Cache,
	archiver Archiver,
	defaultCourtID string,
	workers int,
) *MigrationService {
	if workers < 1 {
		workers = 1
	}
	return &MigrationService{
		blocks:         blocks,
		configs:        configs,
		cache:          cache,
		archiver:       archiver,
		defaultCourtID: defaultCourtID,
		workers:        workers,
	}
}

// RunBlockMigration processes the full current block collection as a batch.
// Per-block failures are recorded and never abort the run; only failing to
// read the collection itself is fatal.
func (s *MigrationService) RunBlockMigration(ctx context.Context) (*dto.MigrationReport, *errors.AppError) {
	all, err := s.blocks.ListAll(ctx)
	if err != nil {
		logger.Error("MigrationService:RunBlockMigration:ListAll:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to read block collection", nil)
	}

	candidates := make([]blockentity.Block, 0, len(all))
	for _, blk := range all {
		if IsRecurringCandidate(blk.Title) {
			candidates = append(candidates, blk)
		}
	}
	logger.Info("MigrationService:RunBlockMigration:Start",
		"total_blocks", len(all),
		"candidates", len(candidates),
		"workers", s.workers,
	)

	report := &dto.MigrationReport{PerBlockErrors: []dto.BlockError{}}
	touchedCourts := map[string]struct{}{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, blk := range candidates {
		g.Go(func() error {
			courtID, blockErr := s.migrateBlock(gctx, blk)

			mu.Lock()
			defer mu.Unlock()
			report.ProcessedCount++
			if blockErr != nil {
				report.ErrorCount++
				report.PerBlockErrors = append(report.PerBlockErrors, *blockErr)
				return nil
			}
			report.MigratedCount++
			touchedCourts[courtID] = struct{}{}
			return nil
		})
	}
	_ = g.Wait()

	for courtID := range touchedCourts {
		s.cache.InvalidateCourt(ctx, courtID)
	}

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, report); err != nil {
			logger.Warn("MigrationService:RunBlockMigration:Archive:Error", "error", err)
		}
	}

	logger.Info("MigrationService:RunBlockMigration:Done",
		"processed", report.ProcessedCount,
		"migrated", report.MigratedCount,
		"errors", report.ErrorCount,
	)
	return report, nil
}

// migrateBlock runs the two-phase migration of one block: upsert the
// derived configuration, then delete the source. A block failing either
// phase stays in place, eligible for retry on the next run.
func (s *MigrationService) migrateBlock(ctx context.Context, blk blockentity.Block) (string, *dto.BlockError) {
	config, err := s.convertBlock(blk)
	if err != nil {
		logger.Warn("MigrationService:migrateBlock:Convert:Error", "error", err, "block_id", blk.ID)
		return "", &dto.BlockError{BlockID: blk.ID, Title: blk.Title, Stage: "convert", Reason: err.Error()}
	}

	if err := s.configs.Upsert(ctx, config); err != nil {
		logger.Error("MigrationService:migrateBlock:Upsert:Error", "error", err, "block_id", blk.ID, "config_id", config.ID)
		return "", &dto.BlockError{BlockID: blk.ID, Title: blk.Title, Stage: "upsert", Reason: err.Error()}
	}

	if err := s.blocks.Delete(ctx, blk.ID); err != nil {
		// The configuration exists; the surviving block is reprocessed on
		// the next run and collapses onto the same key.
		logger.Error("MigrationService:migrateBlock:Delete:Error", "error", err, "block_id", blk.ID, "config_id", config.ID)
		return "", &dto.BlockError{BlockID: blk.ID, Title: blk.Title, Stage: "delete", Reason: err.Error()}
	}

	logger.Info("MigrationService:migrateBlock:Migrated", "block_id", blk.ID, "config_id", config.ID)
	return config.CourtID, nil
}

// convertBlock derives the recurring template from a block's absolute time
// range and title.
func (s *MigrationService) convertBlock(blk blockentity.Block) (*slotentity.SlotConfiguration, error) {
	courtID := s.defaultCourtID
	if blk.CourtID != nil && *blk.CourtID != "" {
		courtID = *blk.CourtID
	}

	duration, err := timeutil.DurationMinutes(blk.Start, blk.End)
	if err != nil {
		return nil, err
	}

	dayOfWeek := timeutil.DayOfWeek(blk.Start)
	startTime := timeutil.ClockTime(blk.Start)
	endTime := timeutil.ClockTime(blk.End)

	notes := blk.Title
	if blk.Description != nil && *blk.Description != "" {
		notes = *blk.Description
	}

	originalDate := blk.Start
	migratedFrom := blk.ID
	config := &slotentity.SlotConfiguration{
		ID:           slotentity.ConfigKey(courtID, dayOfWeek, startTime),
		CourtID:      courtID,
		DayOfWeek:    dayOfWeek,
		StartTime:    startTime,
		EndTime:      endTime,
		SlotDuration: duration,
		ActivityType: Classify(blk.Type, blk.Title),
		IsActive:     true,
		Notes:        &notes,
		MigratedFrom: &migratedFrom,
		OriginalDate: &originalDate,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
