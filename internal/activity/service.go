package activity

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=activity_test

type activityRepo interface {
	DailySetCounts(ctx context.Context, userID int64, from, to civil.Date) ([]ActivityEvent, error)
	Totals(ctx context.Context, userID int64) (*Totals, error)
}

type Service struct {
	repo           activityRepo
	location       *time.Location
	metricsManager *metrics.Manager
	// Now can be replaced in tests
	Now func() time.Time
}

func NewService(repo activityRepo, location *time.Location, metricsManager *metrics.Manager) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:           repo,
		location:       location,
		metricsManager: metricsManager,
		Now:            time.Now,
	}
}

// Today is the current calendar date in the configured timezone.
func (s *Service) Today() civil.Date {
	return civil.DateOf(s.Now().In(s.location))
}

func (s *Service) UserActivity(ctx context.Context, userID int64) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.user-activity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.Today()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.String("today", today.String()),
	)

	window := WindowEndingAt(today)
	events, err := s.repo.DailySetCounts(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("daily set counts: %w", err)
	}

	totals, err := s.repo.Totals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}

	report, err := BuildReport(events, *totals, today)
	if err != nil {
		if s.metricsManager != nil {
			s.metricsManager.CounterValidationFailures.WithLabelValues("activity").Inc()
		}
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterActivityReports.Inc()
		s.metricsManager.HistogramActivityReportLength.Observe(float64(report.Stats.ActiveDays))
	}
	log.Tracef("activity report for user %d: %d active days, longest streak %d",
		userID, report.Stats.ActiveDays, report.Stats.LongestStreak)

	return report, nil
}
