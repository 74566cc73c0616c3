package dto

// CreateBookingRequest reserves one court for one dated interval.
type CreateBookingRequest struct {
	UserID        string  `json:"userId" validate:"required,uuid"`
	UserName      string  `json:"userName" validate:"required"`
	UserFirstName *string `json:"userFirstName,omitempty"`
	UserLastName  *string `json:"userLastName,omitempty"`
	CourtID       string  `json:"courtId" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"startTime" validate:"required"`
	EndTime       string  `json:"endTime" validate:"required"`
}
