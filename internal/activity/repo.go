package activity

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtrack/internal/db"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
)

type Repo struct {
	db db.Conn
}

func NewRepo(db db.Conn) *Repo {
	return &Repo{
		db: db,
	}
}

// DailySetCounts returns the number of logged sets per calendar day in [from, to].
func (r *Repo) DailySetCounts(ctx context.Context, userID int64, from, to civil.Date) (_ []ActivityEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.daily-set-counts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT to_char(t.date, 'YYYY-MM-DD') AS day, COUNT(t.set) AS sets_count
			FROM training t
			WHERE t.user_id = $1 AND t.date >= $2 AND t.date < $3
			GROUP BY day
			ORDER BY day;`,
		userID, from.In(time.UTC), to.AddDays(1).In(time.UTC),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []ActivityEvent
	for rows.Next() {
		var e ActivityEvent
		if err := rows.Scan(&e.Date, &e.Count); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("events.count", len(events)))
	return events, nil
}

// Totals returns the all-time aggregates for the user.
func (r *Repo) Totals(ctx context.Context, userID int64) (_ *Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.totals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	var (
		totals        Totals
		firstTraining string
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(DISTINCT t.date::date),
				COALESCE(SUM(t.weight * t.reps), 0)::float8,
				COALESCE(to_char(MIN(t.date), 'YYYY-MM-DD'), '')
			FROM training t
			WHERE t.user_id = $1;`,
		userID,
	).Scan(&totals.TrainingDays, &totals.WeightLifted, &firstTraining); err != nil {
		return nil, fmt.Errorf("scan totals: %w", err)
	}

	if firstTraining != "" {
		d, err := ParseDate(firstTraining)
		if err != nil {
			return nil, err
		}
		totals.FirstTrainingDate = &d
	}

	return &totals, nil
}
