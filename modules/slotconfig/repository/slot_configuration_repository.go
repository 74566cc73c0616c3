package repository

import (
	"context"
	"database/sql"

	"courtsched/core/database"
	"courtsched/core/logger"
	"courtsched/modules/slotconfig/entity"
)

type SlotConfigRepositoryInterface interface {
	Upsert(ctx context.Context, config *entity.SlotConfiguration) error
	GetByID(ctx context.Context, id string) (*entity.SlotConfiguration, error)
	ListByCourt(ctx context.Context, courtID string) ([]entity.SlotConfiguration, error)
	ListActiveByCourtAndDay(ctx context.Context, courtID string, dayOfWeek int) ([]entity.SlotConfiguration, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type SlotConfigRepository struct {
	db database.IDatabase
}

func NewSlotConfigRepository(db database.IDatabase) *SlotConfigRepository {
	return &SlotConfigRepository{db: db}
}

// Upsert writes a configuration at its derived key. A second write with the
// same key overwrites the previous row (last write wins).
func (r *SlotConfigRepository) Upsert(ctx context.Context, config *entity.SlotConfiguration) error {
	query := `
		INSERT INTO slot_configurations
			(id, court_id, day_of_week, start_time, end_time, slot_duration,
			 activity_type, is_active, notes, migrated_from, original_date)
		VALUES
			(:id, :court_id, :day_of_week, :start_time, :end_time, :slot_duration,
			 :activity_type, :is_active, :notes, :migrated_from, :original_date)
		ON CONFLICT (id) DO UPDATE SET
			court_id      = EXCLUDED.court_id,
			day_of_week   = EXCLUDED.day_of_week,
			start_time    = EXCLUDED.start_time,
			end_time      = EXCLUDED.end_time,
			slot_duration = EXCLUDED.slot_duration,
			activity_type = EXCLUDED.activity_type,
			is_active     = EXCLUDED.is_active,
			notes         = EXCLUDED.notes,
			migrated_from = EXCLUDED.migrated_from,
			original_date = EXCLUDED.original_date,
			updated_at    = NOW()
	`
	_, err := r.db.NamedExecContext(ctx, query, config)
	if err != nil {
		logger.Error("SlotConfigRepository:Upsert:Error:", err)
		return err
	}
	return nil
}

func (r *SlotConfigRepository) GetByID(ctx context.Context, id string) (*entity.SlotConfiguration, error) {
	query := `
		SELECT id, court_id, day_of_week, start_time, end_time, slot_duration,
		       activity_type, is_active, notes, migrated_from, original_date,
		       created_at, updated_at
		FROM slot_configurations WHERE id = $1
	`
	var config entity.SlotConfiguration
	err := r.db.GetContext(ctx, &config, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SlotConfigRepository:GetByID:Error:", err)
		return nil, err
	}
	return &config, nil
}

func (r *SlotConfigRepository) ListByCourt(ctx context.Context, courtID string) ([]entity.SlotConfiguration, error) {
	query := `
		SELECT id, court_id, day_of_week, start_time, end_time, slot_duration,
		       activity_type, is_active, notes, migrated_from, original_date,
		       created_at, updated_at
		FROM slot_configurations
		WHERE court_id = $1
		ORDER BY day_of_week, start_time
	`
	var configs []entity.SlotConfiguration
	err := r.db.SelectContext(ctx, &configs, query, courtID)
	if err != nil {
		logger.Error("SlotConfigRepository:ListByCourt:Error:", err)
		return nil, err
	}
	return configs, nil
}

// ListActiveByCourtAndDay feeds the availability resolver: inactive
// configurations are retained in storage but excluded here.
func (r *SlotConfigRepository) ListActiveByCourtAndDay(ctx context.Context, courtID string, dayOfWeek int) ([]entity.SlotConfiguration, error) {
	query := `
		SELECT id, court_id, day_of_week, start_time, end_time, slot_duration,
		       activity_type, is_active, notes, migrated_from, original_date,
		       created_at, updated_at
		FROM slot_configurations
		WHERE court_id = $1 AND day_of_week = $2 AND is_active = true
		ORDER BY start_time
	`
	var configs []entity.SlotConfiguration
	err := r.db.SelectContext(ctx, &configs, query, courtID, dayOfWeek)
	if err != nil {
		logger.Error("SlotConfigRepository:ListActiveByCourtAndDay:Error:", err)
		return nil, err
	}
	return configs, nil
}

func (r *SlotConfigRepository) SetActive(ctx context.Context, id string, active bool) error {
	err := r.db.ExecContext(ctx, `UPDATE slot_configurations SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		logger.Error("SlotConfigRepository:SetActive:Error:", err)
		return err
	}
	return nil
}
