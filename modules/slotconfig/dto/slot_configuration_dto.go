package dto

// UpsertSlotConfigurationRequest creates or overwrites a recurring weekly
// template. The identifier is derived server-side from (courtId, dayOfWeek,
// startTime); clients never choose it.
type UpsertSlotConfigurationRequest struct {
	CourtID      string  `json:"courtId" validate:"required"`
	DayOfWeek    int     `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime    string  `json:"startTime" validate:"required"`
	EndTime      string  `json:"endTime" validate:"required"`
	ActivityType string  `json:"activityType" validate:"required,oneof=regular school individual blocked"`
	Notes        *string `json:"notes,omitempty"`
}
