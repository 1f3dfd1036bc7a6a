//go:build integration_test || all_tests

package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymtrack/internal/activity"
	"github.com/2beens/gymtrack/internal/charts"
	"github.com/2beens/gymtrack/internal/training"
)

func (s *IntegrationTestSuite) TestTrainingFlow() {
	adminToken := s.adminToken()
	userID := int64(700100)
	userToken := s.telegramToken(userID)

	// catalog, admin only
	status, _ := s.doRequest("POST", "/api/v1/muscles", userToken, training.MuscleRequest{Name: "Chest"})
	s.Require().Equal(http.StatusForbidden, status)

	status, body := s.doRequest("POST", "/api/v1/muscles", adminToken, training.MuscleRequest{Name: "Chest"})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var chest training.Muscle
	s.Require().NoError(json.Unmarshal(body, &chest))

	status, _ = s.doRequest("POST", "/api/v1/muscles", adminToken, training.MuscleRequest{Name: "Chest"})
	s.Equal(http.StatusConflict, status)

	status, body = s.doRequest("POST", "/api/v1/exercises", adminToken, training.ExerciseRequest{Name: "Bench press", MuscleID: chest.ID})
	s.Require().Equal(http.StatusCreated, status, string(body))
	var bench training.Exercise
	s.Require().NoError(json.Unmarshal(body, &bench))

	status, body = s.doRequest("GET", "/api/v1/user/muscles", userToken, nil)
	s.Require().Equal(http.StatusOK, status)
	var muscles []training.Muscle
	s.Require().NoError(json.Unmarshal(body, &muscles))
	s.Require().Len(muscles, 1)
	s.Equal("Chest", muscles[0].Name)

	status, body = s.doRequest("GET", fmt.Sprintf("/api/v1/user/exercises?muscle_id=%d", chest.ID), userToken, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Contains(string(body), `"Bench press"`)

	// three sets today, plus two earlier days seeded directly
	var lastID string
	for set := 1; set <= 3; set++ {
		status, body = s.doRequest("POST", "/api/v1/user/training", userToken, training.NewUserTraining{
			MuscleName:   "Chest",
			ExerciseName: "Bench press",
			Set:          set,
			Weight:       80 + float64(set)*2.5,
			Reps:         8,
		})
		s.Require().Equal(http.StatusCreated, status, string(body))
		var added training.AddTrainingResponse
		s.Require().NoError(json.Unmarshal(body, &added))
		s.Len(added.ID, 32)
		lastID = added.ID
	}

	status, _ = s.doRequest("POST", "/api/v1/user/training", userToken, training.NewUserTraining{
		MuscleName: "Chest", ExerciseName: "Squat", Set: 1, Weight: 100, Reps: 5,
	})
	s.Equal(http.StatusNotFound, status)

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	s.seedTraining(userID, chest.ID, bench.ID, midnight.AddDate(0, 0, -1).Add(8*time.Hour), 2)
	s.seedTraining(userID, chest.ID, bench.ID, midnight.AddDate(0, 0, -2).Add(8*time.Hour), 12)

	// someone else cannot touch the set
	otherToken := s.telegramToken(700200)
	status, _ = s.doRequest("PUT", "/api/v1/user/training/"+lastID, otherToken, training.TrainingSetUpdate{Weight: 200, Reps: 1})
	s.Equal(http.StatusNotFound, status)
	status, _ = s.doRequest("PUT", "/api/v1/user/training/"+lastID, userToken, training.TrainingSetUpdate{Weight: 90, Reps: 6})
	s.Equal(http.StatusOK, status)

	// activity heatmap
	status, body = s.doRequest("GET", "/api/user/activity", userToken, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var report activity.Report
	s.Require().NoError(json.Unmarshal(body, &report))
	s.Require().Len(report.ActivityData, activity.WindowDays)

	last := report.ActivityData[len(report.ActivityData)-1]
	s.Equal(report.Today, last.Date)
	s.Equal(3, last.Count)
	s.Equal(1, last.IntensityLevel)
	s.Equal(12, report.ActivityData[len(report.ActivityData)-3].Count)
	s.Equal(3, report.ActivityData[len(report.ActivityData)-3].IntensityLevel)
	s.Equal(3, report.Stats.TotalTrainings)
	s.Equal(3, report.Stats.ActiveDays)
	s.Equal(3, report.Stats.LongestStreak)
	s.Require().NotNil(report.Stats.FirstTrainingDate)

	// charts
	status, body = s.doRequest("GET", "/api/user/progress", userToken, nil)
	s.Require().Equal(http.StatusOK, status)
	var progress charts.ChartData
	s.Require().NoError(json.Unmarshal(body, &progress))
	s.Len(progress.Dates, 3)
	s.Equal(report.Today.String(), progress.Dates[2])
	s.Equal(90.0, progress.Series[0].Data[2])

	status, body = s.doRequest("GET", "/api/user/exercises", userToken, nil)
	s.Require().Equal(http.StatusOK, status)
	var exercises charts.UserExercises
	s.Require().NoError(json.Unmarshal(body, &exercises))
	s.Require().NotNil(exercises.MostUsed)
	s.Equal(charts.MostUsed{Muscle: "Chest", Exercise: "Bench press"}, *exercises.MostUsed)
	s.Equal(3, exercises.Muscles[0].TotalSessions)

	status, body = s.doRequest("GET", "/api/user/muscle-sets-weekly", userToken, nil)
	s.Require().Equal(http.StatusOK, status)
	var weekly charts.WeeklyMuscleSeries
	s.Require().NoError(json.Unmarshal(body, &weekly))
	s.NotEmpty(weekly.Weeks)
	s.Equal("Chest", weekly.Series[0].Name)
}
