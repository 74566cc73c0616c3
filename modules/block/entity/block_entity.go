package entity

import "time"

// Block is an ad-hoc exclusion tied to an absolute time range: maintenance,
// a tournament, or a legacy entry recorded before recurring templates
// existed. Legacy blocks whose title marks a weekly pattern are consumed by
// the migration engine; the rest persist as standing exclusions.
type Block struct {
	ID          string    `db:"id" json:"id"`
	CourtID     *string   `db:"court_id" json:"courtId,omitempty"`
	Title       string    `db:"title" json:"title"`
	Type        *string   `db:"type" json:"type,omitempty"`
	Start       time.Time `db:"start_at" json:"start"`
	End         time.Time `db:"end_at" json:"end"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type PaginatedBlockEntity struct {
	Items      []Block `json:"items"`
	TotalItems int     `json:"totalItems"`
	PageNumber int     `json:"pageNumber"`
	PageSize   int     `json:"pageSize"`
}
