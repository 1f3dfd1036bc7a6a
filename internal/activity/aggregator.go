package activity

import (
	"fmt"
	"sort"
	"strconv"

	"cloud.google.com/go/civil"
)

// WindowDays is the length of the reporting window, today included.
const WindowDays = 365

// ActivityEvent is the number of logged sets on a date.
// Dates without an event have no activity.
type ActivityEvent struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyActivity is one gap-filled, classified day of the window.
type DailyActivity struct {
	Date           civil.Date `json:"date"`
	Count          int        `json:"count"`
	IntensityLevel int        `json:"level"`
}

type StreakResult struct {
	LongestStreak int `json:"longestStreak"`
}

// Window is the inclusive range of calendar days a report covers.
type Window struct {
	Start civil.Date
	End   civil.Date
}

// WindowEndingAt returns the WindowDays long window whose last day is today.
func WindowEndingAt(today civil.Date) Window {
	return Window{
		Start: today.AddDays(-(WindowDays - 1)),
		End:   today,
	}
}

func (w Window) Contains(d civil.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// IntensityLevel buckets a daily count into the 0..4 heatmap scale.
func IntensityLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 5:
		return 1
	case count <= 10:
		return 2
	case count <= 15:
		return 3
	default:
		return 4
	}
}

// BuildDailySequence expands sparse events into exactly WindowDays entries,
// oldest first, ending at today. Missing days count as 0, events outside
// the window are ignored and, for repeated dates, the last event wins.
// Any malformed date or negative count fails the whole call.
func BuildDailySequence(events []ActivityEvent, today civil.Date) ([]DailyActivity, error) {
	if !today.IsValid() {
		return nil, &ValidationError{Field: "today", Value: today.String(), Reason: "not a calendar date"}
	}

	counts := make(map[civil.Date]int, len(events))
	for i, e := range events {
		d, err := ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("event at index %d: %w", i, err)
		}
		if e.Count < 0 {
			return nil, fmt.Errorf("event at index %d: %w", i, &ValidationError{
				Field:  "count",
				Value:  strconv.Itoa(e.Count),
				Reason: "must not be negative",
			})
		}
		counts[d] = e.Count
	}

	window := WindowEndingAt(today)
	days := make([]DailyActivity, 0, WindowDays)
	for d := window.Start; !d.After(window.End); d = d.AddDays(1) {
		count := counts[d]
		days = append(days, DailyActivity{
			Date:           d,
			Count:          count,
			IntensityLevel: IntensityLevel(count),
		})
	}

	return days, nil
}

// ComputeLongestStreak returns the longest run of consecutive calendar days.
// Input order does not matter and duplicate dates are counted once.
func ComputeLongestStreak(activeDates []civil.Date) StreakResult {
	if len(activeDates) == 0 {
		return StreakResult{}
	}

	seen := make(map[civil.Date]struct{}, len(activeDates))
	unique := make([]civil.Date, 0, len(activeDates))
	for _, d := range activeDates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Before(unique[j])
	})

	longest, current := 1, 1
	for i := 1; i < len(unique); i++ {
		if unique[i].DaysSince(unique[i-1]) == 1 {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}

	return StreakResult{LongestStreak: longest}
}

// ActiveDates returns the dates with a positive count, in sequence order.
func ActiveDates(days []DailyActivity) []civil.Date {
	var dates []civil.Date
	for _, d := range days {
		if d.Count > 0 {
			dates = append(dates, d.Date)
		}
	}
	return dates
}
