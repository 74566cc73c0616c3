package service

import (
	"context"

	"courtsched/core/cache"
	"courtsched/core/constants"
	"courtsched/core/errors"
	"courtsched/core/logger"
	"courtsched/core/params"
	"courtsched/core/utils"
	"courtsched/modules/block/dto"
	"courtsched/modules/block/entity"
	"courtsched/modules/block/repository"
	courtservice "courtsched/modules/court/service"
)

type BlockServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateBlockRequest) (*entity.Block, *errors.AppError)
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedBlockEntity, *errors.AppError)
	Delete(ctx context.Context, id string) *errors.AppError
}

type BlockService struct {
	repo     repository.BlockRepositoryInterface
	courtSvc courtservice.CourtServiceInterface
	cache    cache.Cache
}

func NewBlockService(repo repository.BlockRepositoryInterface, courtSvc courtservice.CourtServiceInterface, cache cache.Cache) *BlockService {
	return &BlockService{repo: repo, courtSvc: courtSvc, cache: cache}
}

// Create stores a block. A request without a courtId gets the default
// court, the same policy the migration engine applies to legacy rows;
// otherwise the block would gate no court's availability.
func (s *BlockService) Create(ctx context.Context, req *dto.CreateBlockRequest) (*entity.Block, *errors.AppError) {
	if !req.End.After(req.Start) {
		return nil, errors.NewAppError(errors.ErrInvalidInterval, "end must be after start", nil)
	}
	courtID := req.CourtID
	if courtID == nil {
		def := constants.DefaultCourtID
		courtID = &def
	}
	if _, appErr := s.courtSvc.GetByID(ctx, *courtID); appErr != nil {
		return nil, appErr
	}

	block := &entity.Block{
		ID:          utils.GenerateID(),
		CourtID:     courtID,
		Title:       req.Title,
		Type:        req.Type,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, block); err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to create block", nil)
	}

	s.cache.InvalidateCourt(ctx, *block.CourtID)
	logger.Info("BlockService:Create:Created", "block_id", block.ID, "court_id", *block.CourtID, "title", block.Title)
	return block, nil
}

func (s *BlockService) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedBlockEntity, *errors.AppError) {
	result, err := s.repo.ListPaginated(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to list blocks", nil)
	}
	return result, nil
}

func (s *BlockService) Delete(ctx context.Context, id string) *errors.AppError {
	block, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrStorageFailure, "Failed to get block", nil)
	}
	if block == nil {
		return errors.NewAppError(errors.ErrNotFound, "Block not found", nil)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrStorageFailure, "Failed to delete block", nil)
	}
	if block.CourtID != nil {
		s.cache.InvalidateCourt(ctx, *block.CourtID)
	}
	return nil
}
