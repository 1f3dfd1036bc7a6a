package training

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMuscleNotFound   = errors.New("muscle not found")
	ErrMuscleExists     = errors.New("muscle already exists")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrTrainingNotFound = errors.New("training not found")
	ErrInvalidRequest   = errors.New("invalid request")
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	RegistrationDate time.Time `json:"registrationDate"`
	LastInteraction  time.Time `json:"lastInteraction"`
}

type Muscle struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsGlobal bool   `json:"isGlobal"`
	// CreatedBy is 0 for global muscles
	CreatedBy int64 `json:"createdBy,omitempty"`
}

type Exercise struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	MuscleID   int    `json:"muscleId"`
	MuscleName string `json:"muscleName"`
	IsGlobal   bool   `json:"isGlobal"`
	CreatedBy  int64  `json:"createdBy,omitempty"`
}

// Training is a single recorded set.
type Training struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	UserID       int64     `json:"userId"`
	MuscleID     int       `json:"muscleId"`
	MuscleName   string    `json:"muscleName"`
	ExerciseID   int       `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Set          int       `json:"set"`
	Weight       float64   `json:"weight"`
	Reps         float64   `json:"reps"`
}

type ListParams struct {
	Skip  int
	Limit int
}

func (p ListParams) normalized() ListParams {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}
	return p
}

type MuscleRequest struct {
	Name string `json:"name"`
}

func (r *MuscleRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("%w: muscle name empty", ErrInvalidRequest)
	}
	return nil
}

type ExerciseRequest struct {
	Name     string `json:"name"`
	MuscleID int    `json:"muscleId"`
}

func (r *ExerciseRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("%w: exercise name empty", ErrInvalidRequest)
	}
	if r.MuscleID <= 0 {
		return fmt.Errorf("%w: muscle id must be positive", ErrInvalidRequest)
	}
	return nil
}

// NewUserTraining is a set recorded by a user, muscle and exercise are given by name.
type NewUserTraining struct {
	MuscleName   string  `json:"muscleName"`
	ExerciseName string  `json:"exerciseName"`
	Set          int     `json:"set"`
	Weight       float64 `json:"weight"`
	Reps         float64 `json:"reps"`
}

func (t *NewUserTraining) Validate() error {
	t.MuscleName = strings.TrimSpace(t.MuscleName)
	t.ExerciseName = strings.TrimSpace(t.ExerciseName)
	if t.MuscleName == "" || t.ExerciseName == "" {
		return fmt.Errorf("%w: muscle or exercise name empty", ErrInvalidRequest)
	}
	if t.Set <= 0 {
		return fmt.Errorf("%w: set must be positive", ErrInvalidRequest)
	}
	return validateLoad(t.Weight, t.Reps)
}

type TrainingSetUpdate struct {
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
}

func (u *TrainingSetUpdate) Validate() error {
	return validateLoad(u.Weight, u.Reps)
}

func validateLoad(weight, reps float64) error {
	if weight < 0 {
		return fmt.Errorf("%w: negative weight", ErrInvalidRequest)
	}
	if reps < 0 {
		return fmt.Errorf("%w: negative reps", ErrInvalidRequest)
	}
	return nil
}
