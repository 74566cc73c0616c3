package service

import (
	"context"

	"courtsched/core/errors"
	"courtsched/core/logger"
	"courtsched/modules/court/dto"
	"courtsched/modules/court/entity"
	"courtsched/modules/court/repository"

	"github.com/gosimple/slug"
)

type CourtServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateCourtRequest) (*entity.Court, *errors.AppError)
	GetByID(ctx context.Context, id string) (*entity.Court, *errors.AppError)
	List(ctx context.Context) ([]entity.Court, *errors.AppError)
	Exists(ctx context.Context, id string) (bool, *errors.AppError)
}

type CourtService struct {
	repo repository.CourtRepositoryInterface
}

func NewCourtService(repo repository.CourtRepositoryInterface) *CourtService {
	return &CourtService{repo: repo}
}

func (s *CourtService) Create(ctx context.Context, req *dto.CreateCourtRequest) (*entity.Court, *errors.AppError) {
	existing, err := s.repo.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to check court", nil)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Court already registered", nil)
	}

	court := &entity.Court{
		ID:       req.CourtID,
		Name:     req.Name,
		Slug:     slug.Make(req.Name),
		Surface:  req.Surface,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, court); err != nil {
		logger.Error("CourtService:Create:Error", "error", err, "court_id", req.CourtID)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create court", nil)
	}

	logger.Info("CourtService:Create:Created", "court_id", court.ID, "slug", court.Slug)
	return court, nil
}

func (s *CourtService) GetByID(ctx context.Context, id string) (*entity.Court, *errors.AppError) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to get court", nil)
	}
	if court == nil {
		return nil, errors.NewAppError(errors.ErrUnknownCourt, "Court not registered", nil)
	}
	return court, nil
}

func (s *CourtService) List(ctx context.Context) ([]entity.Court, *errors.AppError) {
	courts, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageFailure, "Failed to list courts", nil)
	}
	return courts, nil
}

func (s *CourtService) Exists(ctx context.Context, id string) (bool, *errors.AppError) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, errors.NewAppError(errors.ErrStorageFailure, "Failed to check court", nil)
	}
	return ok, nil
}
