package repository

import (
	"context"
	"database/sql"

	"courtsched/core/database"
	"courtsched/core/logger"
	"courtsched/modules/court/entity"
)

type CourtRepositoryInterface interface {
	Create(ctx context.Context, court *entity.Court) error
	GetByID(ctx context.Context, id string) (*entity.Court, error)
	List(ctx context.Context) ([]entity.Court, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type CourtRepository struct {
	db database.IDatabase
}

func NewCourtRepository(db database.IDatabase) *CourtRepository {
	return &CourtRepository{db: db}
}

func (r *CourtRepository) Create(ctx context.Context, court *entity.Court) error {
	query := `
		INSERT INTO courts (id, name, slug, surface, is_active)
		VALUES (:id, :name, :slug, :surface, :is_active)
	`
	_, err := r.db.NamedExecContext(ctx, query, court)
	if err != nil {
		logger.Error("CourtRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *CourtRepository) GetByID(ctx context.Context, id string) (*entity.Court, error) {
	query := `
		SELECT id, name, slug, surface, is_active, created_at, updated_at
		FROM courts WHERE id = $1
	`
	var court entity.Court
	err := r.db.GetContext(ctx, &court, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CourtRepository:GetByID:Error:", err)
		return nil, err
	}
	return &court, nil
}

func (r *CourtRepository) List(ctx context.Context) ([]entity.Court, error) {
	query := `
		SELECT id, name, slug, surface, is_active, created_at, updated_at
		FROM courts
		ORDER BY id
	`
	var courts []entity.Court
	err := r.db.SelectContext(ctx, &courts, query)
	if err != nil {
		logger.Error("CourtRepository:List:Error:", err)
		return nil, err
	}
	return courts, nil
}

func (r *CourtRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM courts WHERE id = $1)`, id)
	if err != nil {
		logger.Error("CourtRepository:Exists:Error:", err)
		return false, err
	}
	return exists, nil
}
