package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the booking lifecycle state. The only permitted
// transition is confirmed -> cancelled.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is one concrete, dated reservation of a court. Date and clock
// times are stored as strings ("YYYY-MM-DD", "HH:MM"), matching the schema
// the mobile clients already read.
type Booking struct {
	ID            string        `db:"id" json:"id"`
	UserID        uuid.UUID     `db:"user_id" json:"userId"`
	UserName      string        `db:"user_name" json:"userName"`
	UserFirstName *string       `db:"user_first_name" json:"userFirstName,omitempty"`
	UserLastName  *string       `db:"user_last_name" json:"userLastName,omitempty"`
	CourtID       string        `db:"court_id" json:"courtId"`
	CourtName     string        `db:"court_name" json:"courtName"`
	Date          string        `db:"date" json:"date"`
	StartTime     string        `db:"start_time" json:"startTime"`
	EndTime       string        `db:"end_time" json:"endTime"`
	Duration      int           `db:"duration" json:"duration"`
	Status        BookingStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updatedAt"`
}
