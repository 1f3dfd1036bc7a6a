package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultTTL = 24 * 7 * time.Hour

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
	ErrRevokedToken = errors.New("revoked token")
)

// Identity is who a token gets issued for.
type Identity struct {
	UserID   int64
	Username string
	Role     Role
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	// Now and NewID can be replaced in tests
	Now   func() time.Time
	NewID func() string
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

func (ti *TokenIssuer) Issue(identity Identity) (string, *Session, error) {
	if identity.UserID == 0 {
		return "", nil, errors.New("issue token: empty user id")
	}
	if identity.Role == "" {
		identity.Role = RoleUser
	}

	session := &Session{
		UserID:    identity.UserID,
		Username:  identity.Username,
		Role:      identity.Role,
		TokenID:   ti.NewID(),
		ExpiresAt: ti.Now().Add(ti.ttl).Truncate(time.Second),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.FormatInt(session.UserID, 10),
		"username": session.Username,
		"role":     string(session.Role),
		"jti":      session.TokenID,
		"exp":      jwt.NewNumericDate(session.ExpiresAt),
	})
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, session, nil
}

// Parse validates the signature and expiry, revocation is checked by LoginChecker.
func (ti *TokenIssuer) Parse(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ti.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(ti.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, fmt.Errorf("%w: bad subject [%s]", ErrInvalidToken, subject)
	}

	role, _ := claims["role"].(string)
	if Role(role) != RoleAdmin && Role(role) != RoleUser {
		return nil, fmt.Errorf("%w: unknown role [%s]", ErrInvalidToken, role)
	}
	tokenID, _ := claims["jti"].(string)
	if tokenID == "" {
		return nil, fmt.Errorf("%w: missing jti", ErrInvalidToken)
	}
	username, _ := claims["username"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing exp", ErrInvalidToken)
	}

	return &Session{
		UserID:    userID,
		Username:  username,
		Role:      Role(role),
		TokenID:   tokenID,
		ExpiresAt: exp.Time,
	}, nil
}
