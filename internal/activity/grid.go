package activity

import (
	"time"

	"cloud.google.com/go/civil"
)

// CalendarGrid lays the days out in Monday-first week columns for the heatmap.
// The first column is padded with nil cells before the first day; the last
// column is not padded.
func CalendarGrid(days []DailyActivity) [][]*DailyActivity {
	if len(days) == 0 {
		return [][]*DailyActivity{}
	}

	var weeks [][]*DailyActivity
	week := make([]*DailyActivity, 0, 7)
	for i := 0; i < mondayOffset(days[0].Date); i++ {
		week = append(week, nil)
	}

	for i := range days {
		week = append(week, &days[i])
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]*DailyActivity, 0, 7)
		}
	}
	if len(week) > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}

// WeekBounds returns the Monday and Sunday of the week containing d.
func WeekBounds(d civil.Date) (monday, sunday civil.Date) {
	monday = d.AddDays(-mondayOffset(d))
	return monday, monday.AddDays(6)
}

// mondayOffset is the number of days since the last Monday, 0 for Monday.
func mondayOffset(d civil.Date) int {
	weekday := d.In(time.UTC).Weekday()
	return (int(weekday) + 6) % 7
}
