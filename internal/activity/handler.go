package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/civil"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activity_test

type reportService interface {
	UserActivity(ctx context.Context, userID int64) (*Report, error)
	Today() civil.Date
}

const (
	// MaxSequenceEvents caps the events of one sequence request.
	MaxSequenceEvents    = 10_000
	maxSequenceBodyBytes = 1 << 20
)

type SequenceRequest struct {
	// Today defaults to the service's current date when empty.
	Today  string          `json:"today"`
	Events []ActivityEvent `json:"events"`
}

type SequenceResponse struct {
	Days          []DailyActivity `json:"days"`
	LongestStreak int             `json:"longestStreak"`
}

type Handler struct {
	service reportService
}

func NewHandler(service reportService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleUserActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.user")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	report, err := h.service.UserActivity(ctx, session.UserID)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			// the request carries nothing but the session, so this is stored data
			log.Errorf("activity report for user %d, bad stored data: %s", session.UserID, err)
		} else {
			log.Errorf("failed to build activity report for user %d: %s", session.UserID, err)
		}
		http.Error(w, "failed to get activity data", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

// HandleSequence runs the aggregation over caller-supplied events,
// used by the dashboard to preview imported data.
func (h *Handler) HandleSequence(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.sequence")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxSequenceBodyBytes)

	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Tracef("activity sequence, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Events) > MaxSequenceEvents {
		http.Error(w, fmt.Sprintf("too many events, max %d", MaxSequenceEvents), http.StatusBadRequest)
		return
	}

	today := h.service.Today()
	if req.Today != "" {
		parsed, err := ParseDate(req.Today)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		today = parsed
	}

	days, err := BuildDailySequence(req.Events, today)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, SequenceResponse{
		Days:          days,
		LongestStreak: ComputeLongestStreak(ActiveDates(days)).LongestStreak,
	}, http.StatusOK)
}
