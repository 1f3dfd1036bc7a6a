package training

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/middleware"
	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type trainingRepo interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	ListMuscles(ctx context.Context, params ListParams) ([]Muscle, error)
	AddMuscle(ctx context.Context, name string) (*Muscle, error)
	UpdateMuscle(ctx context.Context, id int, name string) error
	ListExercises(ctx context.Context, params ListParams) ([]Exercise, error)
	AddExercise(ctx context.Context, name string, muscleID int) (*Exercise, error)
	UpdateExercise(ctx context.Context, id int, name string, muscleID int) error
	ListUserMuscles(ctx context.Context, userID int64) ([]Muscle, error)
	ListUserExercises(ctx context.Context, userID int64, muscleID int) ([]Exercise, error)
	ListTraining(ctx context.Context, userID int64, params ListParams) ([]Training, error)
	AddTraining(ctx context.Context, userID int64, training NewUserTraining) (string, error)
	UpdateTrainingSet(ctx context.Context, userID int64, trainingID string, update TrainingSetUpdate) error
}

type AddTrainingResponse struct {
	ID string `json:"id"`
}

type Handler struct {
	repo           trainingRepo
	staticData     StaticData
	metricsManager *metrics.Manager
}

func NewHandler(repo trainingRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		staticData:     NewStaticData(),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	adminOnly := middleware.AdminOnly()
	admin := func(path string, h http.HandlerFunc, methods ...string) {
		r.Handle(path, adminOnly(h)).Methods(methods...)
	}

	admin("/api/v1/muscles", handler.HandleListMuscles, "GET", "OPTIONS")
	admin("/api/v1/muscles", handler.HandleAddMuscle, "POST", "OPTIONS")
	admin("/api/v1/muscles/{id}", handler.HandleUpdateMuscle, "PUT", "OPTIONS")
	admin("/api/v1/exercises", handler.HandleListExercises, "GET", "OPTIONS")
	admin("/api/v1/exercises", handler.HandleAddExercise, "POST", "OPTIONS")
	admin("/api/v1/exercises/{id}", handler.HandleUpdateExercise, "PUT", "OPTIONS")
	admin("/api/v1/training", handler.HandleListTraining, "GET", "OPTIONS")

	r.HandleFunc("/api/v1/static-data", handler.HandleStaticData).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/v1/user/profile", handler.HandleUserProfile).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/v1/user/muscles", handler.HandleUserMuscles).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/v1/user/exercises", handler.HandleUserExercises).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/v1/user/training", handler.HandleUserTraining).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/v1/user/training", handler.HandleAddUserTraining).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/v1/user/training/{id}", handler.HandleUpdateUserTraining).Methods("PUT", "OPTIONS")
}

func listParamsFromQuery(r *http.Request) (ListParams, error) {
	var params ListParams
	query := r.URL.Query()
	if skip := query.Get("skip"); skip != "" {
		v, err := strconv.Atoi(skip)
		if err != nil || v < 0 {
			return ListParams{}, errors.New("invalid skip")
		}
		params.Skip = v
	}
	if limit := query.Get("limit"); limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil || v <= 0 {
			return ListParams{}, errors.New("invalid limit")
		}
		params.Limit = v
	}
	return params, nil
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil && id > 0
}

func decodeRequest[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, req T) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Tracef("%s %s, unmarshal json params: %s", r.Method, r.URL.Path, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func sessionOrUnauthorized(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
	}
	return session, ok
}

// trainingOwnerOrForbidden returns the session of a caller that can own training sets.
func trainingOwnerOrForbidden(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return nil, false
	}
	if !session.HasTelegramAccount() {
		http.Error(w, "password login has no training log, log in with telegram", http.StatusForbidden)
		return nil, false
	}
	return session, true
}

func (handler *Handler) HandleListMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.muscles.list")
	defer span.End()

	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	muscles, err := handler.repo.ListMuscles(ctx, params)
	if err != nil {
		log.Errorf("list muscles: %s", err)
		http.Error(w, "failed to list muscles", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, muscles, http.StatusOK)
}

func (handler *Handler) HandleAddMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.muscles.add")
	defer span.End()

	var req MuscleRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	muscle, err := handler.repo.AddMuscle(ctx, req.Name)
	if err != nil {
		if errors.Is(err, ErrMuscleExists) {
			http.Error(w, "muscle already exists", http.StatusConflict)
			return
		}
		log.Errorf("add muscle [%s]: %s", req.Name, err)
		http.Error(w, "failed to add muscle", http.StatusInternalServerError)
		return
	}

	log.Debugf("new muscle added: [%s] %d", muscle.Name, muscle.ID)
	pkg.WriteJSON(w, muscle, http.StatusCreated)
}

func (handler *Handler) HandleUpdateMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.muscles.update")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid muscle id", http.StatusBadRequest)
		return
	}

	var req MuscleRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := handler.repo.UpdateMuscle(ctx, id, req.Name); err != nil {
		switch {
		case errors.Is(err, ErrMuscleNotFound):
			http.Error(w, "muscle not found", http.StatusNotFound)
		case errors.Is(err, ErrMuscleExists):
			http.Error(w, "muscle already exists", http.StatusConflict)
		default:
			log.Errorf("update muscle %d: %s", id, err)
			http.Error(w, "failed to update muscle", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, Muscle{ID: id, Name: req.Name, IsGlobal: true}, http.StatusOK)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.exercises.list")
	defer span.End()

	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercises, err := handler.repo.ListExercises(ctx, params)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.exercises.add")
	defer span.End()

	var req ExerciseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	exercise, err := handler.repo.AddExercise(ctx, req.Name, req.MuscleID)
	if err != nil {
		if errors.Is(err, ErrMuscleNotFound) {
			http.Error(w, "muscle not found", http.StatusNotFound)
			return
		}
		log.Errorf("add exercise [%s]: %s", req.Name, err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.exercises.update")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	var req ExerciseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := handler.repo.UpdateExercise(ctx, id, req.Name, req.MuscleID); err != nil {
		switch {
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrMuscleNotFound):
			http.Error(w, "muscle not found", http.StatusNotFound)
		default:
			log.Errorf("update exercise %d: %s", id, err)
			http.Error(w, "failed to update exercise", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, Exercise{ID: id, Name: req.Name, MuscleID: req.MuscleID, IsGlobal: true}, http.StatusOK)
}

func (handler *Handler) HandleListTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.list")
	defer span.End()

	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	trainings, err := handler.repo.ListTraining(ctx, 0, params)
	if err != nil {
		log.Errorf("list training: %s", err)
		http.Error(w, "failed to list training", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, trainings, http.StatusOK)
}

func (handler *Handler) HandleStaticData(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, handler.staticData, http.StatusOK)
}

func (handler *Handler) HandleUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.user.profile")
	defer span.End()

	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	user, err := handler.repo.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %d: %s", session.UserID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleUserMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.user.muscles")
	defer span.End()

	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	muscles, err := handler.repo.ListUserMuscles(ctx, session.UserID)
	if err != nil {
		log.Errorf("list muscles for user %d: %s", session.UserID, err)
		http.Error(w, "failed to list muscles", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, muscles, http.StatusOK)
}

func (handler *Handler) HandleUserExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.user.exercises")
	defer span.End()

	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	muscleID, err := strconv.Atoi(r.URL.Query().Get("muscle_id"))
	if err != nil || muscleID <= 0 {
		http.Error(w, "invalid muscle_id", http.StatusBadRequest)
		return
	}

	exercises, err := handler.repo.ListUserExercises(ctx, session.UserID, muscleID)
	if err != nil {
		log.Errorf("list exercises for user %d, muscle %d: %s", session.UserID, muscleID, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleUserTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.user.list")
	defer span.End()

	session, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	trainings, err := handler.repo.ListTraining(ctx, session.UserID, params)
	if err != nil {
		log.Errorf("list training for user %d: %s", session.UserID, err)
		http.Error(w, "failed to list training", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, trainings, http.StatusOK)
}

func (handler *Handler) HandleAddUserTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.user.add")
	defer span.End()

	session, ok := trainingOwnerOrForbidden(w, r)
	if !ok {
		return
	}

	var req NewUserTraining
	if !decodeRequest(w, r, &req) {
		return
	}

	id, err := handler.repo.AddTraining(ctx, session.UserID, req)
	if err != nil {
		if errors.Is(err, ErrMuscleNotFound) || errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("add training for user %d: %s", session.UserID, err)
		http.Error(w, "failed to add training", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterTrainingSets.Inc()
	}

	pkg.WriteJSON(w, AddTrainingResponse{ID: id}, http.StatusCreated)
}

func (handler *Handler) HandleUpdateUserTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.user.update")
	defer span.End()

	session, ok := trainingOwnerOrForbidden(w, r)
	if !ok {
		return
	}

	trainingID := mux.Vars(r)["id"]
	if trainingID == "" {
		http.Error(w, "invalid training id", http.StatusBadRequest)
		return
	}

	var req TrainingSetUpdate
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := handler.repo.UpdateTrainingSet(ctx, session.UserID, trainingID, req); err != nil {
		if errors.Is(err, ErrTrainingNotFound) {
			http.Error(w, "training record not found or access denied", http.StatusNotFound)
			return
		}
		log.Errorf("update training %s for user %d: %s", trainingID, session.UserID, err)
		http.Error(w, "failed to update training", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, AddTrainingResponse{ID: trainingID}, http.StatusOK)
}
