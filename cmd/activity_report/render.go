package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2beens/gymtrack/internal/activity"
)

// glyphs and colours by intensity level
var (
	levelGlyphs = [...]string{"·", "░", "▒", "▓", "█"}
	levelColors = [...]lipgloss.Color{"#3d444d", "#0e4429", "#006d32", "#26a641", "#39d353"}
)

var weekdayLabels = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type styles struct {
	cells   [len(levelColors)]lipgloss.Style
	weekday lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	muted := lipgloss.Color("#8b949e")
	s := styles{
		weekday: r.NewStyle().Foreground(muted).Width(4),
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Foreground(muted).Width(21),
		value:   r.NewStyle().Bold(true),
	}
	for level, color := range levelColors {
		s.cells[level] = r.NewStyle().Foreground(color)
	}
	return s
}

// renderHeatmap draws the grid with weekdays as rows and weeks as columns.
func renderHeatmap(s styles, grid [][]*activity.DailyActivity) string {
	rows := make([]string, 0, len(weekdayLabels))
	for weekday, label := range weekdayLabels {
		cells := make([]string, 0, len(grid))
		for _, week := range grid {
			if weekday >= len(week) || week[weekday] == nil {
				cells = append(cells, " ")
				continue
			}
			level := week[weekday].IntensityLevel
			cells = append(cells, s.cells[level].Render(levelGlyphs[level]))
		}
		rows = append(rows, s.weekday.Render(label)+strings.Join(cells, ""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderStats(s styles, stats activity.UserStats) string {
	lines := [][2]string{
		{"longest streak:", fmt.Sprintf("%d days", stats.LongestStreak)},
		{"active days:", fmt.Sprintf("%d", stats.ActiveDays)},
		{"trainings this week:", fmt.Sprintf("%d", stats.TrainingsThisWeek)},
		{"total trainings:", fmt.Sprintf("%d", stats.TotalTrainings)},
		{"total weight lifted:", fmt.Sprintf("%.1f kg", stats.TotalWeightLifted)},
	}
	if stats.FirstTrainingDate != nil {
		lines = append(lines, [2]string{"first training:", stats.FirstTrainingDate.String()})
	}

	labels := make([]string, 0, len(lines))
	values := make([]string, 0, len(lines))
	for _, line := range lines {
		labels = append(labels, s.label.Render(line[0]))
		values = append(values, s.value.Render(line[1]))
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, labels...),
		lipgloss.JoinVertical(lipgloss.Left, values...),
	)
}

func renderReport(s styles, report *activity.Report) string {
	window := activity.WindowEndingAt(report.Today)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render(fmt.Sprintf("activity %s .. %s", window.Start, window.End)),
		"",
		renderHeatmap(s, report.Grid),
		"",
		renderStats(s, report.Stats),
	) + "\n"
}
