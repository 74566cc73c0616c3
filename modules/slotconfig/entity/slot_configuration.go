package entity

import (
	"fmt"
	"strings"
	"time"

	"courtsched/core/timeutil"
)

// ActivityType categorizes what a recurring slot is reserved for.
type ActivityType string

const (
	ActivityRegular    ActivityType = "regular"
	ActivitySchool     ActivityType = "school"
	ActivityIndividual ActivityType = "individual"
	ActivityBlocked    ActivityType = "blocked"
)

// SlotConfiguration is a recurring weekly availability template for one
// court, weekday and time range. The tuple (courtId, dayOfWeek, startTime)
// is the natural key: writes with the same tuple overwrite, never duplicate.
type SlotConfiguration struct {
	ID           string       `db:"id" json:"id"`
	CourtID      string       `db:"court_id" json:"courtId"`
	DayOfWeek    int          `db:"day_of_week" json:"dayOfWeek"`
	StartTime    string       `db:"start_time" json:"startTime"`
	EndTime      string       `db:"end_time" json:"endTime"`
	SlotDuration int          `db:"slot_duration" json:"slotDuration"`
	ActivityType ActivityType `db:"activity_type" json:"activityType"`
	IsActive     bool         `db:"is_active" json:"isActive"`
	Notes        *string      `db:"notes" json:"notes,omitempty"`
	MigratedFrom *string      `db:"migrated_from" json:"migratedFrom,omitempty"`
	OriginalDate *time.Time   `db:"original_date" json:"originalDate,omitempty"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updatedAt"`
}

// ConfigKey derives the deterministic identifier for a recurring slot:
// "<courtId>_<dayOfWeek>_<HHMM>". Two slots on the same court, weekday and
// start time always collapse onto the same key.
func ConfigKey(courtID string, dayOfWeek int, startTime string) string {
	return fmt.Sprintf("%s_%d_%s", courtID, dayOfWeek, strings.ReplaceAll(startTime, ":", ""))
}

// Key returns the configuration's derived identifier.
func (s *SlotConfiguration) Key() string {
	return ConfigKey(s.CourtID, s.DayOfWeek, s.StartTime)
}

// Validate checks the template's structural invariants.
func (s *SlotConfiguration) Validate() error {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek must be 0-6, got %d", s.DayOfWeek)
	}
	start, err := timeutil.ParseClock(s.StartTime)
	if err != nil {
		return err
	}
	end, err := timeutil.ParseClock(s.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return timeutil.ErrInvalidInterval
	}
	if s.SlotDuration <= 0 {
		return fmt.Errorf("slotDuration must be positive, got %d", s.SlotDuration)
	}
	switch s.ActivityType {
	case ActivityRegular, ActivitySchool, ActivityIndividual, ActivityBlocked:
	default:
		return fmt.Errorf("unknown activityType %q", s.ActivityType)
	}
	return nil
}
