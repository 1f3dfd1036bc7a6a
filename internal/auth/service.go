package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtrack/internal/telegram"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"
)

const revokedKeyPrefix = "gymtrack-revoked-jti||"

// AdminUserID is the session subject for password logins, which have no telegram account.
const AdminUserID int64 = -1

var ErrWrongCredentials = errors.New("wrong credentials")

type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userRegistry interface {
	UpsertUser(ctx context.Context, user *telegram.User) error
}

type Service struct {
	tokens           *TokenIssuer
	redisClient      redis.Cmdable
	admin            Admin
	adminTelegramIDs map[int64]bool
	users            userRegistry
}

func NewService(
	tokens *TokenIssuer,
	redisClient redis.Cmdable,
	admin Admin,
	adminTelegramIDs []int64,
	users userRegistry,
) *Service {
	adminIDs := make(map[int64]bool, len(adminTelegramIDs))
	for _, id := range adminTelegramIDs {
		adminIDs[id] = true
	}
	return &Service{
		tokens:           tokens,
		redisClient:      redisClient,
		admin:            admin,
		adminTelegramIDs: adminIDs,
		users:            users,
	}
}

// RoleFor resolves the role of a telegram user.
func (s *Service) RoleFor(telegramID int64) Role {
	if s.adminTelegramIDs[telegramID] {
		return RoleAdmin
	}
	return RoleUser
}

func (s *Service) Login(ctx context.Context, identity Identity) (_ string, _ *Session, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", identity.UserID),
		attribute.String("user.role", string(identity.Role)),
	)

	token, session, err := s.tokens.Issue(identity)
	if err != nil {
		return "", nil, err
	}

	log.Debugf("new session for user %d [%s], expires at %s", session.UserID, session.Role, session.ExpiresAt)
	return token, session, nil
}

// TelegramLogin records the verified telegram user and opens a session for it.
func (s *Service) TelegramLogin(ctx context.Context, user *telegram.User) (string, *Session, error) {
	if user == nil || user.ID == 0 {
		return "", nil, errors.New("telegram login: empty user")
	}

	if s.users != nil {
		if err := s.users.UpsertUser(ctx, user); err != nil {
			return "", nil, fmt.Errorf("upsert user %d: %w", user.ID, err)
		}
	}

	return s.Login(ctx, Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     s.RoleFor(user.ID),
	})
}

// PasswordLogin is reserved for the admin account.
func (s *Service) PasswordLogin(ctx context.Context, credentials Credentials) (string, *Session, error) {
	if s.admin.Username == "" || s.admin.PasswordHash == "" {
		return "", nil, ErrWrongCredentials
	}
	if credentials.Username != s.admin.Username {
		log.Tracef("[username] failed login attempt for user: %s", credentials.Username)
		return "", nil, ErrWrongCredentials
	}
	if !pkg.CheckPasswordHash(credentials.Password, s.admin.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", credentials.Username)
		return "", nil, ErrWrongCredentials
	}

	return s.Login(ctx, Identity{
		UserID:   AdminUserID,
		Username: s.admin.Username,
		Role:     RoleAdmin,
	})
}

// Logout revokes the token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}

	remaining := session.ExpiresAt.Sub(s.tokens.Now())
	if remaining <= 0 {
		return nil
	}

	if err := s.redisClient.Set(ctx, revokedKeyPrefix+session.TokenID, session.UserID, remaining.Round(time.Second)).Err(); err != nil {
		return fmt.Errorf("revoke token %s: %w", session.TokenID, err)
	}

	log.Debugf("logout for user %d, token %s revoked", session.UserID, session.TokenID)
	return nil
}
