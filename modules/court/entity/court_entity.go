package entity

import "time"

// Court is a physical bookable playing surface.
type Court struct {
	ID        string    `db:"id" json:"courtId"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Surface   *string   `db:"surface" json:"surface,omitempty"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
