package activity

import "cloud.google.com/go/civil"

// Totals are the all-time aggregates of a user's training log.
type Totals struct {
	TrainingDays      int
	WeightLifted      float64
	FirstTrainingDate *civil.Date
}

type UserStats struct {
	TotalTrainings    int         `json:"totalTrainings"`
	TotalWeightLifted float64     `json:"totalWeightLifted"`
	ActiveDays        int         `json:"activeDays"`
	TrainingsThisWeek int         `json:"trainingsThisWeek"`
	LongestStreak     int         `json:"longestStreak"`
	FirstTrainingDate *civil.Date `json:"firstTrainingDate"`
}

type Report struct {
	Today        civil.Date         `json:"today"`
	ActivityData []DailyActivity    `json:"activityData"`
	Grid         [][]*DailyActivity `json:"grid"`
	Stats        UserStats          `json:"stats"`
}

// BuildReport assembles the heatmap report for the window ending at today.
// Week and streak figures are derived from the same gap-filled sequence,
// so they always agree with the heatmap.
func BuildReport(events []ActivityEvent, totals Totals, today civil.Date) (*Report, error) {
	days, err := BuildDailySequence(events, today)
	if err != nil {
		return nil, err
	}

	activeDates := ActiveDates(days)
	monday, _ := WeekBounds(today)
	trainingsThisWeek := 0
	for _, d := range activeDates {
		if !d.Before(monday) {
			trainingsThisWeek++
		}
	}

	return &Report{
		Today:        today,
		ActivityData: days,
		Grid:         CalendarGrid(days),
		Stats: UserStats{
			TotalTrainings:    totals.TrainingDays,
			TotalWeightLifted: totals.WeightLifted,
			ActiveDays:        len(activeDates),
			TrainingsThisWeek: trainingsThisWeek,
			LongestStreak:     ComputeLongestStreak(activeDates).LongestStreak,
			FirstTrainingDate: totals.FirstTrainingDate,
		},
	}, nil
}
