package repository

import (
	"context"
	"database/sql"

	"courtsched/core/database"
	"courtsched/core/logger"
	"courtsched/modules/booking/entity"
)

type BookingRepositoryInterface interface {
	CreateIfFree(ctx context.Context, booking *entity.Booking) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	ListConfirmed(ctx context.Context, courtID, date string) ([]entity.Booking, error)
	Cancel(ctx context.Context, id string) (bool, error)
}

type BookingRepository struct {
	db database.IDatabase
}

func NewBookingRepository(db database.IDatabase) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateIfFree inserts a confirmed booking only if no confirmed booking on
// the same court and date overlaps its [startTime, endTime) interval. The
// conflict check and the insert run in one transaction; the court row is
// locked first so two concurrent requests for the same court serialize
// instead of both passing the check. Returns false when the slot is taken.
func (r *BookingRepository) CreateIfFree(ctx context.Context, booking *entity.Booking) (bool, error) {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("BookingRepository:CreateIfFree:Begin:Error:", err)
		return false, err
	}
	defer tx.Rollback()

	var courtID string
	err = tx.GetContext(ctx, &courtID, `SELECT id FROM courts WHERE id = $1 FOR UPDATE`, booking.CourtID)
	if err != nil {
		logger.Error("BookingRepository:CreateIfFree:LockCourt:Error:", err)
		return false, err
	}

	// Half-open overlap on zero-padded HH:MM strings; lexicographic order
	// matches time order.
	var conflict bool
	err = tx.GetContext(ctx, &conflict, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE court_id = $1 AND date = $2 AND status = 'confirmed'
			  AND start_time < $4 AND end_time > $3
		)
	`, booking.CourtID, booking.Date, booking.StartTime, booking.EndTime)
	if err != nil {
		logger.Error("BookingRepository:CreateIfFree:OverlapCheck:Error:", err)
		return false, err
	}
	if conflict {
		return false, nil
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings
			(id, user_id, user_name, user_first_name, user_last_name,
			 court_id, court_name, date, start_time, end_time, duration, status)
		VALUES
			(:id, :user_id, :user_name, :user_first_name, :user_last_name,
			 :court_id, :court_name, :date, :start_time, :end_time, :duration, :status)
	`, booking)
	if err != nil {
		logger.Error("BookingRepository:CreateIfFree:Insert:Error:", err)
		return false, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("BookingRepository:CreateIfFree:Commit:Error:", err)
		return false, err
	}
	return true, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, user_name, user_first_name, user_last_name,
		       court_id, court_name, date, start_time, end_time, duration, status,
		       created_at, updated_at
		FROM bookings WHERE id = $1
	`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BookingRepository:GetByID:Error:", err)
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListConfirmed(ctx context.Context, courtID, date string) ([]entity.Booking, error) {
	query := `
		SELECT id, user_id, user_name, user_first_name, user_last_name,
		       court_id, court_name, date, start_time, end_time, duration, status,
		       created_at, updated_at
		FROM bookings
		WHERE court_id = $1 AND date = $2 AND status = 'confirmed'
		ORDER BY start_time
	`
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, courtID, date)
	if err != nil {
		logger.Error("BookingRepository:ListConfirmed:Error:", err)
		return nil, err
	}
	return bookings, nil
}

// Cancel flips a confirmed booking to cancelled. Returns false if the
// booking was not in the confirmed state.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (bool, error) {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE bookings SET status = 'cancelled', updated_at = NOW()
		WHERE id = :id AND status = 'confirmed'
	`, map[string]any{"id": id})
	if err != nil {
		logger.Error("BookingRepository:Cancel:Error:", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
