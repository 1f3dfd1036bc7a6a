package training

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtrack/internal/db"
	"github.com/2beens/gymtrack/internal/telegram"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"
)

type Repo struct {
	db db.Conn
	// timestamps are stored as wall clock time in this zone,
	// the same zone activity reports resolve "today" in
	location *time.Location
	// Now and NewID can be replaced in tests
	Now   func() time.Time
	NewID func() string
}

func NewRepo(conn db.Conn, location *time.Location) *Repo {
	if location == nil {
		location = time.UTC
	}
	return &Repo{
		db:       conn,
		location: location,
		Now:      time.Now,
		NewID:    NewTrainingID,
	}
}

// localNow is the current wall clock time in the repo zone, for the
// TIMESTAMP WITHOUT TIME ZONE columns.
func (r *Repo) localNow() time.Time {
	n := r.Now().In(r.location)
	return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), n.Nanosecond(), time.UTC)
}

// NewTrainingID is a 32 char hex uuid.
func NewTrainingID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// UpsertUser records a telegram user on login.
func (r *Repo) UpsertUser(ctx context.Context, user *telegram.User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.users.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", user.ID))

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO users (id, registration_date, last_interaction, first_name, lastname, username)
			VALUES ($1, $2, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				last_interaction = EXCLUDED.last_interaction,
				first_name = EXCLUDED.first_name,
				lastname = EXCLUDED.lastname,
				username = EXCLUDED.username
		`,
		user.ID,
		r.localNow(),
		user.FirstName,
		user.LastName,
		user.Username,
	)
	if err != nil {
		return fmt.Errorf("upsert user [exec]: %w", err)
	}
	return nil
}

func (r *Repo) GetUser(ctx context.Context, id int64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(lastname, ''),
				registration_date, COALESCE(last_interaction, registration_date)
			FROM users
			WHERE id = $1
		`,
		id,
	).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.RegistrationDate,
		&user.LastInteraction,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user [query row]: %w", err)
	}

	return &user, nil
}

func (r *Repo) ListMuscles(ctx context.Context, params ListParams) (_ []Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.muscles.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	params = params.normalized()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, COALESCE(is_global, TRUE), COALESCE(created_by, 0)
			FROM muscles
			ORDER BY id
			OFFSET $1 LIMIT $2
		`,
		params.Skip,
		params.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list muscles [query]: %w", err)
	}
	return collectMuscles(rows)
}

// ListUserMuscles returns global muscles the user did not hide, plus the user's own.
func (r *Repo) ListUserMuscles(ctx context.Context, userID int64) (_ []Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.muscles.list_for_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT m.id, m.name, COALESCE(m.is_global, TRUE), COALESCE(m.created_by, 0)
			FROM muscles m
			WHERE (
				m.is_global = TRUE
				AND m.id NOT IN (SELECT muscle_id FROM user_hidden_muscles WHERE user_id = $1)
			) OR m.created_by = $1
			ORDER BY m.name
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user muscles [query]: %w", err)
	}
	return collectMuscles(rows)
}

func collectMuscles(rows pgx.Rows) ([]Muscle, error) {
	defer rows.Close()

	muscles := []Muscle{}
	for rows.Next() {
		var m Muscle
		if err := rows.Scan(&m.ID, &m.Name, &m.IsGlobal, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("muscles [rows scan]: %w", err)
		}
		muscles = append(muscles, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("muscles [rows error]: %w", err)
	}
	return muscles, nil
}

func (r *Repo) AddMuscle(ctx context.Context, name string) (_ *Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.muscles.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	muscle := &Muscle{Name: name, IsGlobal: true}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO muscles (name, is_global) VALUES ($1, TRUE) RETURNING id`,
		name,
	).Scan(&muscle.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrMuscleExists
		}
		return nil, fmt.Errorf("add muscle [query row]: %w", err)
	}

	return muscle, nil
}

func (r *Repo) UpdateMuscle(ctx context.Context, id int, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.muscles.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("muscle.id", id))

	tag, err := r.db.Exec(ctx, `UPDATE muscles SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrMuscleExists
		}
		return fmt.Errorf("update muscle [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMuscleNotFound
	}
	return nil
}

func (r *Repo) ListExercises(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	params = params.normalized()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.id, e.name, COALESCE(e.muscle, 0), COALESCE(m.name, ''),
				COALESCE(e.is_global, TRUE), COALESCE(e.created_by, 0)
			FROM exercises e
			LEFT JOIN muscles m ON m.id = e.muscle
			ORDER BY e.id
			OFFSET $1 LIMIT $2
		`,
		params.Skip,
		params.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises [query]: %w", err)
	}
	return collectExercises(rows)
}

// ListUserExercises applies the same visibility rule as ListUserMuscles, within one muscle.
func (r *Repo) ListUserExercises(ctx context.Context, userID int64, muscleID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.exercises.list_for_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int("muscle.id", muscleID),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.id, e.name, COALESCE(e.muscle, 0), COALESCE(m.name, ''),
				COALESCE(e.is_global, TRUE), COALESCE(e.created_by, 0)
			FROM exercises e
			LEFT JOIN muscles m ON m.id = e.muscle
			WHERE e.muscle = $2 AND (
				(
					e.is_global = TRUE
					AND e.id NOT IN (SELECT exercise_id FROM user_hidden_exercises WHERE user_id = $1)
				) OR e.created_by = $1
			)
			ORDER BY e.name
		`,
		userID,
		muscleID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user exercises [query]: %w", err)
	}
	return collectExercises(rows)
}

func collectExercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleID, &e.MuscleName, &e.IsGlobal, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}
	return exercises, nil
}

func (r *Repo) AddExercise(ctx context.Context, name string, muscleID int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise := &Exercise{Name: name, MuscleID: muscleID, IsGlobal: true}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercises (name, muscle, is_global) VALUES ($1, $2, TRUE) RETURNING id`,
		name,
		muscleID,
	).Scan(&exercise.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrMuscleNotFound
		}
		return nil, fmt.Errorf("add exercise [query row]: %w", err)
	}

	return exercise, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, id int, name string, muscleID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercises SET name = $1, muscle = $2 WHERE id = $3`,
		name,
		muscleID,
		id,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrMuscleNotFound
		}
		return fmt.Errorf("update exercise [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// ListTraining returns sets newest first. A zero userID lists everyone's sets.
func (r *Repo) ListTraining(ctx context.Context, userID int64, params ListParams) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	params = params.normalized()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int("params.skip", params.Skip),
		attribute.Int("params.limit", params.Limit),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				t.id, t.date, COALESCE(t.user_id, 0),
				COALESCE(t.muscle_id, 0), COALESCE(m.name, ''),
				COALESCE(t.exercise_id, 0), COALESCE(e.name, ''),
				COALESCE(t.set, 0), COALESCE(t.weight, 0)::float8, COALESCE(t.reps, 0)::float8
			FROM training t
			LEFT JOIN muscles m ON m.id = t.muscle_id
			LEFT JOIN exercises e ON e.id = t.exercise_id
			WHERE ($1::bigint = 0 OR t.user_id = $1)
			ORDER BY t.date DESC
			OFFSET $2 LIMIT $3
		`,
		userID,
		params.Skip,
		params.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list training [query]: %w", err)
	}
	defer rows.Close()

	trainings := []Training{}
	for rows.Next() {
		var t Training
		err := rows.Scan(
			&t.ID,
			&t.Date,
			&t.UserID,
			&t.MuscleID,
			&t.MuscleName,
			&t.ExerciseID,
			&t.ExerciseName,
			&t.Set,
			&t.Weight,
			&t.Reps,
		)
		if err != nil {
			return nil, fmt.Errorf("list training [rows scan]: %w", err)
		}
		trainings = append(trainings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list training [rows error]: %w", err)
	}

	return trainings, nil
}

// AddTraining resolves muscle and exercise by name and stores the set dated now.
func (r *Repo) AddTraining(ctx context.Context, userID int64, training NewUserTraining) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.String("muscle.name", training.MuscleName),
		attribute.String("exercise.name", training.ExerciseName),
	)

	var muscleID int
	err = r.db.QueryRow(
		ctx,
		`SELECT id FROM muscles WHERE name = $1 ORDER BY id LIMIT 1`,
		training.MuscleName,
	).Scan(&muscleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrMuscleNotFound, training.MuscleName)
		}
		return "", fmt.Errorf("add training, resolve muscle: %w", err)
	}

	var exerciseID int
	err = r.db.QueryRow(
		ctx,
		`SELECT id FROM exercises WHERE name = $1 AND muscle = $2 ORDER BY id LIMIT 1`,
		training.ExerciseName,
		muscleID,
	).Scan(&exerciseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrExerciseNotFound, training.ExerciseName)
		}
		return "", fmt.Errorf("add training, resolve exercise: %w", err)
	}

	id := r.NewID()
	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO training (id, date, user_id, muscle_id, exercise_id, set, weight, reps)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
		id,
		r.localNow(),
		userID,
		muscleID,
		exerciseID,
		training.Set,
		training.Weight,
		training.Reps,
	)
	if err != nil {
		return "", fmt.Errorf("add training [exec]: %w", err)
	}

	return id, nil
}

// UpdateTrainingSet changes weight and reps of a set owned by userID.
func (r *Repo) UpdateTrainingSet(ctx context.Context, userID int64, trainingID string, update TrainingSetUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.update_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.String("training.id", trainingID),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training SET weight = $1, reps = $2 WHERE id = $3 AND user_id = $4`,
		update.Weight,
		update.Reps,
		trainingID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("update training set [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}
	return nil
}
