package dto

// CreateCourtRequest registers a new court.
type CreateCourtRequest struct {
	CourtID string  `json:"courtId" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Surface *string `json:"surface,omitempty"`
}
