package charts

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtrack/internal/db"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
)

var utc = time.UTC

type Repo struct {
	db db.Conn
}

func NewRepo(conn db.Conn) *Repo {
	return &Repo{
		db: conn,
	}
}

func (r *Repo) ExerciseSets(ctx context.Context, userID int64, muscle, exercise string) (_ []SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.charts.exercise_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.String("muscle", muscle),
		attribute.String("exercise", exercise),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				to_char(t.date, 'YYYY-MM-DD'), COALESCE(t.set, 0),
				COALESCE(t.weight, 0)::float8, COALESCE(t.reps, 0)::float8
			FROM training t
			JOIN muscles m ON m.id = t.muscle_id
			JOIN exercises e ON e.id = t.exercise_id
			WHERE t.user_id = $1 AND m.name = $2 AND e.name = $3
			ORDER BY t.date ASC, t.set ASC
		`,
		userID,
		muscle,
		exercise,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise sets [query]: %w", err)
	}
	defer rows.Close()

	var sets []SetRecord
	for rows.Next() {
		var (
			day string
			set SetRecord
		)
		if err := rows.Scan(&day, &set.Set, &set.Weight, &set.Reps); err != nil {
			return nil, fmt.Errorf("exercise sets [rows scan]: %w", err)
		}
		if set.Date, err = civil.ParseDate(day); err != nil {
			return nil, fmt.Errorf("exercise sets, parse day [%s]: %w", day, err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise sets [rows error]: %w", err)
	}

	return sets, nil
}

// WeeklyMuscleSets counts sets per muscle and Monday-started week, for days in [from, to].
func (r *Repo) WeeklyMuscleSets(ctx context.Context, userID int64, from, to civil.Date) (_ []WeeklyMuscleRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.charts.weekly_muscle_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				to_char(date_trunc('week', t.date), 'YYYY-MM-DD') AS week_start,
				m.name AS muscle,
				COUNT(t.set) AS sets_count
			FROM training t
			JOIN muscles m ON m.id = t.muscle_id
			WHERE t.user_id = $1 AND t.date >= $2 AND t.date < $3
			GROUP BY week_start, m.name
			ORDER BY week_start ASC, m.name ASC
		`,
		userID,
		from.In(utc),
		to.AddDays(1).In(utc),
	)
	if err != nil {
		return nil, fmt.Errorf("weekly muscle sets [query]: %w", err)
	}
	defer rows.Close()

	var result []WeeklyMuscleRow
	for rows.Next() {
		var (
			weekStart string
			row       WeeklyMuscleRow
		)
		if err := rows.Scan(&weekStart, &row.Muscle, &row.Sets); err != nil {
			return nil, fmt.Errorf("weekly muscle sets [rows scan]: %w", err)
		}
		if row.WeekStart, err = civil.ParseDate(weekStart); err != nil {
			return nil, fmt.Errorf("weekly muscle sets, parse week [%s]: %w", weekStart, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weekly muscle sets [rows error]: %w", err)
	}

	return result, nil
}

// ExerciseUsage lists exercises by the number of distinct days they were trained, most used first.
func (r *Repo) ExerciseUsage(ctx context.Context, userID int64) (_ []ExerciseUsage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.charts.exercise_usage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT m.name AS muscle, e.name AS exercise, COUNT(DISTINCT t.date::date) AS session_count
			FROM training t
			JOIN muscles m ON m.id = t.muscle_id
			JOIN exercises e ON e.id = t.exercise_id
			WHERE t.user_id = $1
			GROUP BY m.name, e.name
			ORDER BY session_count DESC, m.name ASC, e.name ASC
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise usage [query]: %w", err)
	}
	defer rows.Close()

	var usage []ExerciseUsage
	for rows.Next() {
		var u ExerciseUsage
		if err := rows.Scan(&u.Muscle, &u.Exercise, &u.Sessions); err != nil {
			return nil, fmt.Errorf("exercise usage [rows scan]: %w", err)
		}
		usage = append(usage, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise usage [rows error]: %w", err)
	}

	return usage, nil
}
