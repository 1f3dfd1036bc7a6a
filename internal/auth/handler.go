package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtrack/internal/telegram"
	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	TelegramLogin(ctx context.Context, user *telegram.User) (string, *Session, error)
	PasswordLogin(ctx context.Context, credentials Credentials) (string, *Session, error)
	Logout(ctx context.Context, token string) error
}

type LoginResponse struct {
	Token   string   `json:"token"`
	Session *Session `json:"session"`
}

type WebAppLoginRequest struct {
	InitData string `json:"initData"`
}

type Handler struct {
	service        authService
	botToken       string
	maxAuthAge     time.Duration
	metricsManager *metrics.Manager
	// Now can be replaced in tests
	Now func() time.Time
}

func NewHandler(
	service authService,
	botToken string,
	maxAuthAge time.Duration,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:        service,
		botToken:       botToken,
		maxAuthAge:     maxAuthAge,
		metricsManager: metricsManager,
		Now:            time.Now,
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func (h *Handler) countLogin(method, result string) {
	if h.metricsManager != nil {
		h.metricsManager.CounterLogins.WithLabelValues(method, result).Inc()
	}
}

func (h *Handler) HandleTelegramLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.telegram")
	defer span.End()

	var data telegram.LoginWidgetData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Tracef("telegram login, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := telegram.VerifyLoginWidget(data, h.botToken, h.Now(), h.maxAuthAge)
	if err != nil {
		log.Warnf("telegram login rejected for %d: %s", data.ID, err)
		h.countLogin("telegram", "rejected")
		http.Error(w, "invalid telegram authentication", http.StatusUnauthorized)
		return
	}

	h.login(ctx, w, "telegram", user)
}

func (h *Handler) HandleTelegramWebAppLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.telegram-webapp")
	defer span.End()

	var req WebAppLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.InitData == "" {
		http.Error(w, "error, init data empty", http.StatusBadRequest)
		return
	}

	user, err := telegram.VerifyInitData(req.InitData, h.botToken, h.Now(), h.maxAuthAge)
	if err != nil {
		log.Warnf("telegram web app login rejected: %s", err)
		h.countLogin("telegram_webapp", "rejected")
		http.Error(w, "invalid telegram authentication", http.StatusUnauthorized)
		return
	}

	h.login(ctx, w, "telegram_webapp", user)
}

func (h *Handler) login(ctx context.Context, w http.ResponseWriter, method string, user *telegram.User) {
	token, session, err := h.service.TelegramLogin(ctx, user)
	if err != nil {
		log.Errorf("%s login for user %d failed: %s", method, user.ID, err)
		h.countLogin(method, "error")
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	h.countLogin(method, "ok")
	pkg.WriteJSON(w, LoginResponse{Token: token, Session: session}, http.StatusOK)
}

func (h *Handler) HandlePasswordLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.password")
	defer span.End()

	var credentials Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if credentials.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if credentials.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, session, err := h.service.PasswordLogin(ctx, credentials)
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			h.countLogin("password", "rejected")
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("password login failed: %s", err)
		h.countLogin("password", "error")
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	h.countLogin("password", "ok")
	pkg.WriteJSON(w, LoginResponse{Token: token, Session: session}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := BearerToken(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(ctx, token); err != nil {
		if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrMissingToken) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	pkg.WriteJSON(w, session, http.StatusOK)
}
