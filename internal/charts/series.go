package charts

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
)

const maxWeightSeriesName = "Max Weight"

// SetRecord is one performed set of a single exercise.
type SetRecord struct {
	Date   civil.Date
	Set    int
	Weight float64
	Reps   float64
}

type Series struct {
	Name string    `json:"name"`
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

type ChartData struct {
	Dates  []string `json:"dates"`
	Series []Series `json:"series"`
}

// ProgressSeries reduces sets to the heaviest weight per training day, ascending by date.
func ProgressSeries(sets []SetRecord) ChartData {
	maxByDate := make(map[civil.Date]float64)
	for _, s := range sets {
		if current, ok := maxByDate[s.Date]; !ok || s.Weight > current {
			maxByDate[s.Date] = s.Weight
		}
	}

	dates := make([]civil.Date, 0, len(maxByDate))
	for d := range maxByDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	chart := ChartData{
		Dates: make([]string, len(dates)),
		Series: []Series{{
			Name: maxWeightSeriesName,
			Type: "line",
			Data: make([]float64, len(dates)),
		}},
	}
	for i, d := range dates {
		chart.Dates[i] = d.String()
		chart.Series[0].Data[i] = maxByDate[d]
	}
	return chart
}

// WeeklyMuscleRow is the set count of one muscle within the week starting at WeekStart.
type WeeklyMuscleRow struct {
	WeekStart civil.Date
	Muscle    string
	Sets      int
}

type MuscleSeries struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

type WeeklyMuscleSeries struct {
	Weeks  []string       `json:"weeks"`
	Series []MuscleSeries `json:"series"`
}

// WeekLabel formats the ISO week of d, e.g. 2024-W05.
func WeekLabel(d civil.Date) string {
	year, week := d.In(utc).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeeklyMuscleSets pivots rows into one zero-filled series per muscle over the sorted weeks.
func WeeklyMuscleSets(rows []WeeklyMuscleRow) WeeklyMuscleSeries {
	counts := make(map[string]map[string]int)
	weekSet := make(map[string]bool)
	for _, row := range rows {
		week := WeekLabel(row.WeekStart)
		weekSet[week] = true
		if counts[row.Muscle] == nil {
			counts[row.Muscle] = make(map[string]int)
		}
		counts[row.Muscle][week] += row.Sets
	}

	weeks := make([]string, 0, len(weekSet))
	for w := range weekSet {
		weeks = append(weeks, w)
	}
	sort.Strings(weeks)

	muscles := make([]string, 0, len(counts))
	for m := range counts {
		muscles = append(muscles, m)
	}
	sort.Strings(muscles)

	result := WeeklyMuscleSeries{
		Weeks:  weeks,
		Series: make([]MuscleSeries, 0, len(muscles)),
	}
	for _, m := range muscles {
		data := make([]int, len(weeks))
		for i, w := range weeks {
			data[i] = counts[m][w]
		}
		result.Series = append(result.Series, MuscleSeries{Name: m, Data: data})
	}
	return result
}

// ExerciseUsage is the number of distinct training days an exercise was done on.
type ExerciseUsage struct {
	Muscle   string
	Exercise string
	Sessions int
}

type MuscleGroup struct {
	Name          string   `json:"name"`
	Exercises     []string `json:"exercises"`
	TotalSessions int      `json:"totalSessions"`
}

type MostUsed struct {
	Muscle   string `json:"muscle"`
	Exercise string `json:"exercise"`
}

type UserExercises struct {
	Muscles  []MuscleGroup `json:"muscles"`
	MostUsed *MostUsed     `json:"mostUsed"`
}

// GroupUserExercises groups usage rows by muscle, keeping the order muscles first appear in.
func GroupUserExercises(rows []ExerciseUsage) UserExercises {
	result := UserExercises{Muscles: []MuscleGroup{}}

	index := make(map[string]int)
	mostUsedSessions := 0
	for _, row := range rows {
		if result.MostUsed == nil || row.Sessions > mostUsedSessions {
			result.MostUsed = &MostUsed{Muscle: row.Muscle, Exercise: row.Exercise}
			mostUsedSessions = row.Sessions
		}

		i, ok := index[row.Muscle]
		if !ok {
			i = len(result.Muscles)
			index[row.Muscle] = i
			result.Muscles = append(result.Muscles, MuscleGroup{Name: row.Muscle, Exercises: []string{}})
		}
		result.Muscles[i].Exercises = append(result.Muscles[i].Exercises, row.Exercise)
		result.Muscles[i].TotalSessions += row.Sessions
	}

	return result
}
