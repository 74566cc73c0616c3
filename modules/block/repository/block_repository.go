package repository

import (
	"context"
	"database/sql"
	"time"

	"courtsched/core/constants"
	"courtsched/core/database"
	"courtsched/core/logger"
	"courtsched/core/params"
	"courtsched/modules/block/entity"
)

type BlockRepositoryInterface interface {
	Create(ctx context.Context, block *entity.Block) error
	GetByID(ctx context.Context, id string) (*entity.Block, error)
	ListAll(ctx context.Context) ([]entity.Block, error)
	ListPaginated(ctx context.Context, params params.QueryParams) (*entity.PaginatedBlockEntity, error)
	ListIntersecting(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]entity.Block, error)
	Delete(ctx context.Context, id string) error
}

type BlockRepository struct {
	db database.IDatabase
}

func NewBlockRepository(db database.IDatabase) *BlockRepository {
	return &BlockRepository{db: db}
}

func (r *BlockRepository) Create(ctx context.Context, block *entity.Block) error {
	query := `
		INSERT INTO blocks (id, court_id, title, type, start_at, end_at, description)
		VALUES (:id, :court_id, :title, :type, :start_at, :end_at, :description)
	`
	_, err := r.db.NamedExecContext(ctx, query, block)
	if err != nil {
		logger.Error("BlockRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *BlockRepository) GetByID(ctx context.Context, id string) (*entity.Block, error) {
	query := `
		SELECT id, court_id, title, type, start_at, end_at, description, created_at
		FROM blocks WHERE id = $1
	`
	var block entity.Block
	err := r.db.GetContext(ctx, &block, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BlockRepository:GetByID:Error:", err)
		return nil, err
	}
	return &block, nil
}

// ListAll returns the full block collection. The migration engine operates
// on this snapshot as a batch.
func (r *BlockRepository) ListAll(ctx context.Context) ([]entity.Block, error) {
	query := `
		SELECT id, court_id, title, type, start_at, end_at, description, created_at
		FROM blocks
		ORDER BY start_at
	`
	var blocks []entity.Block
	err := r.db.SelectContext(ctx, &blocks, query)
	if err != nil {
		logger.Error("BlockRepository:ListAll:Error:", err)
		return nil, err
	}
	return blocks, nil
}

func (r *BlockRepository) ListPaginated(ctx context.Context, params params.QueryParams) (*entity.PaginatedBlockEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	var totalItems int
	if err := r.db.GetContext(ctx, &totalItems, `SELECT COUNT(*) FROM blocks`); err != nil {
		logger.Error("BlockRepository:ListPaginated:Count:Error:", err)
		return nil, err
	}

	query := `
		SELECT id, court_id, title, type, start_at, end_at, description, created_at
		FROM blocks
		ORDER BY start_at
		LIMIT $1 OFFSET $2
	`
	var blocks []entity.Block
	if err := r.db.SelectContext(ctx, &blocks, query, params.PageSize, offset); err != nil {
		logger.Error("BlockRepository:ListPaginated:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedBlockEntity{
		Items:      blocks,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

// ListIntersecting returns blocks for a court whose [start, end) range
// overlaps the given day window. Half-open on both sides so a block ending
// exactly at midnight does not leak into the next day. Legacy rows with a
// NULL court_id follow the default-court policy, same as the migration
// engine.
func (r *BlockRepository) ListIntersecting(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]entity.Block, error) {
	query := `
		SELECT id, court_id, title, type, start_at, end_at, description, created_at
		FROM blocks
		WHERE COALESCE(court_id, $4) = $1 AND start_at < $3 AND end_at > $2
		ORDER BY start_at
	`
	var blocks []entity.Block
	err := r.db.SelectContext(ctx, &blocks, query, courtID, dayStart, dayEnd, constants.DefaultCourtID)
	if err != nil {
		logger.Error("BlockRepository:ListIntersecting:Error:", err)
		return nil, err
	}
	return blocks, nil
}

func (r *BlockRepository) Delete(ctx context.Context, id string) error {
	err := r.db.ExecContext(ctx, `DELETE FROM blocks WHERE id = $1`, id)
	if err != nil {
		logger.Error("BlockRepository:Delete:Error:", err)
		return err
	}
	return nil
}
