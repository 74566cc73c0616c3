package service

import (
	"sort"
	"time"

	"courtsched/core/timeutil"
	blockentity "courtsched/modules/block/entity"
	bookingentity "courtsched/modules/booking/entity"
	slotentity "courtsched/modules/slotconfig/entity"
)

const minutesPerDay = 24 * 60

// OccupiedReason tags why an interval is unavailable.
type OccupiedReason string

const (
	ReasonBooking OccupiedReason = "booking"
	ReasonBlock   OccupiedReason = "block"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// OccupiedInterval is an occupied range with its reason, for display.
type OccupiedInterval struct {
	Interval
	Reason OccupiedReason
	Label  string
}

// DayAvailability is the resolved calendar for one court and date: ordered
// non-overlapping free intervals, plus disjoint occupied ones with reasons.
// The union of free and occupied exactly covers the configured recurring
// intervals for that weekday.
type DayAvailability struct {
	Free     []Interval
	Occupied []OccupiedInterval
}

// Resolve merges a court's recurring configurations with the dated blocks
// and confirmed bookings intersecting one day. All arithmetic is half-open
// so boundary instants are never double-counted. Pure: inputs are a
// point-in-time snapshot, nothing is mutated.
func Resolve(date time.Time, configs []slotentity.SlotConfiguration, blocks []blockentity.Block, bookings []bookingentity.Booking) (*DayAvailability, error) {
	open, err := openIntervals(configs)
	if err != nil {
		return nil, err
	}

	result := &DayAvailability{Free: open}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	for _, blk := range blocks {
		iv, ok := clipToDay(blk.Start, blk.End, dayStart)
		if !ok {
			continue
		}
		result.Occupied = append(result.Occupied, intersectAll(result.Free, iv, ReasonBlock, blk.Title)...)
		result.Free = subtract(result.Free, iv)
	}

	for _, bk := range bookings {
		if bk.Status != bookingentity.StatusConfirmed {
			continue
		}
		iv, err := parseInterval(bk.StartTime, bk.EndTime)
		if err != nil {
			return nil, err
		}
		result.Occupied = append(result.Occupied, intersectAll(result.Free, iv, ReasonBooking, bk.UserName)...)
		result.Free = subtract(result.Free, iv)
	}

	sort.Slice(result.Occupied, func(i, j int) bool {
		return result.Occupied[i].Start < result.Occupied[j].Start
	})
	return result, nil
}

// openIntervals turns active configurations into a sorted, merged set of
// open intervals.
func openIntervals(configs []slotentity.SlotConfiguration) ([]Interval, error) {
	intervals := make([]Interval, 0, len(configs))
	for _, cfg := range configs {
		if !cfg.IsActive {
			continue
		}
		iv, err := parseInterval(cfg.StartTime, cfg.EndTime)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}

	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Start < intervals[j].Start })

	merged := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if n := len(merged); n > 0 && iv.Start <= merged[n-1].End {
			if iv.End > merged[n-1].End {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged, nil
}

func parseInterval(startTime, endTime string) (Interval, error) {
	start, err := timeutil.ParseClock(startTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := timeutil.ParseClock(endTime)
	if err != nil {
		return Interval{}, err
	}
	if end <= start {
		return Interval{}, timeutil.ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// clipToDay projects an absolute [start, end) range onto minutes of the day
// beginning at dayStart. Multi-day blocks clip to [0, 1440).
func clipToDay(start, end time.Time, dayStart time.Time) (Interval, bool) {
	dayEnd := dayStart.Add(minutesPerDay * time.Minute)
	if !start.Before(dayEnd) || !end.After(dayStart) {
		return Interval{}, false
	}

	startMin := 0
	if start.After(dayStart) {
		startMin = int(start.Sub(dayStart).Minutes())
	}
	endMin := minutesPerDay
	if end.Before(dayEnd) {
		endMin = int(end.Sub(dayStart).Minutes())
	}
	if endMin <= startMin {
		return Interval{}, false
	}
	return Interval{Start: startMin, End: endMin}, true
}

// Contains reports whether iv lies fully inside one interval of the set.
// Free intervals are disjoint after merging, so a containing interval is
// unique when it exists.
func Contains(set []Interval, iv Interval) bool {
	for _, s := range set {
		if s.Start <= iv.Start && iv.End <= s.End {
			return true
		}
	}
	return false
}

// overlaps is the half-open overlap test.
func overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// intersectAll returns the pieces of iv that fall inside the given interval
// set. Intersecting against the still-free set keeps the occupied list
// disjoint when a booking and a block cover the same range.
func intersectAll(set []Interval, iv Interval, reason OccupiedReason, label string) []OccupiedInterval {
	var pieces []OccupiedInterval
	for _, o := range set {
		if !overlaps(o, iv) {
			continue
		}
		piece := Interval{Start: max(o.Start, iv.Start), End: min(o.End, iv.End)}
		pieces = append(pieces, OccupiedInterval{Interval: piece, Reason: reason, Label: label})
	}
	return pieces
}

// subtract removes iv from every interval in set; an interval fully
// containing iv splits into two.
func subtract(set []Interval, iv Interval) []Interval {
	out := make([]Interval, 0, len(set)+1)
	for _, s := range set {
		if !overlaps(s, iv) {
			out = append(out, s)
			continue
		}
		if s.Start < iv.Start {
			out = append(out, Interval{Start: s.Start, End: iv.Start})
		}
		if iv.End < s.End {
			out = append(out, Interval{Start: iv.End, End: s.End})
		}
	}
	return out
}
