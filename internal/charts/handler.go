package charts

import (
	"context"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=charts_test

const (
	defaultMuscle   = "Chest"
	defaultExercise = "Bench press"
	weeklyMonths    = 12
)

type chartsRepo interface {
	ExerciseSets(ctx context.Context, userID int64, muscle, exercise string) ([]SetRecord, error)
	WeeklyMuscleSets(ctx context.Context, userID int64, from, to civil.Date) ([]WeeklyMuscleRow, error)
	ExerciseUsage(ctx context.Context, userID int64) ([]ExerciseUsage, error)
}

type Handler struct {
	repo  chartsRepo
	today func() civil.Date
}

func NewHandler(repo chartsRepo, today func() civil.Date) *Handler {
	return &Handler{
		repo:  repo,
		today: today,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/user/progress", h.HandleProgress).Methods("GET", "OPTIONS").Name("user-progress")
	r.HandleFunc("/api/user/muscle-sets-weekly", h.HandleWeeklyMuscleSets).Methods("GET", "OPTIONS").Name("user-muscle-sets-weekly")
	r.HandleFunc("/api/user/exercises", h.HandleUserExercises).Methods("GET", "OPTIONS").Name("user-exercises")
}

// WeeklyWindow is the trailing range of days the weekly chart covers, ending at today.
func WeeklyWindow(today civil.Date) (civil.Date, civil.Date) {
	from := civil.DateOf(today.In(utc).AddDate(0, -weeklyMonths, 0))
	return from, today
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.charts.progress")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	muscle := r.URL.Query().Get("muscle")
	if muscle == "" {
		muscle = defaultMuscle
	}
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		exercise = defaultExercise
	}

	sets, err := h.repo.ExerciseSets(ctx, session.UserID, muscle, exercise)
	if err != nil {
		log.Errorf("progress chart for user %d [%s/%s]: %s", session.UserID, muscle, exercise, err)
		http.Error(w, "failed to get progress data", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ProgressSeries(sets), http.StatusOK)
}

func (h *Handler) HandleWeeklyMuscleSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.charts.weekly-muscle-sets")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to := WeeklyWindow(h.today())
	rows, err := h.repo.WeeklyMuscleSets(ctx, session.UserID, from, to)
	if err != nil {
		log.Errorf("weekly muscle sets for user %d: %s", session.UserID, err)
		http.Error(w, "failed to get weekly muscle sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, WeeklyMuscleSets(rows), http.StatusOK)
}

func (h *Handler) HandleUserExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.charts.user-exercises")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	usage, err := h.repo.ExerciseUsage(ctx, session.UserID)
	if err != nil {
		log.Errorf("exercise usage for user %d: %s", session.UserID, err)
		http.Error(w, "failed to get user exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, GroupUserExercises(usage), http.StatusOK)
}
