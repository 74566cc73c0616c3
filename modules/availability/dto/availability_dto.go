package dto

// IntervalResponse is one half-open [startTime, endTime) range of a day.
type IntervalResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// OccupiedResponse is an unavailable range with the reason it is taken.
type OccupiedResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"` // "booking" or "block"
	Label     string `json:"label,omitempty"`
}

// DayAvailabilityResponse is the resolved calendar for one court and date.
type DayAvailabilityResponse struct {
	CourtID   string             `json:"courtId"`
	Date      string             `json:"date"`
	DayOfWeek int                `json:"dayOfWeek"`
	Free      []IntervalResponse `json:"free"`
	Occupied  []OccupiedResponse `json:"occupied"`
}
