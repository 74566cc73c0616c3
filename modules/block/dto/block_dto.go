package dto

import "time"

// CreateBlockRequest records an ad-hoc exclusion with absolute instants.
type CreateBlockRequest struct {
	CourtID     *string   `json:"courtId,omitempty"`
	Title       string    `json:"title" validate:"required"`
	Type        *string   `json:"type,omitempty"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	Description *string   `json:"description,omitempty"`
}
