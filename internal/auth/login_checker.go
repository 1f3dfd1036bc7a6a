package auth

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	tokens      *TokenIssuer
	redisClient redis.Cmdable
}

func NewLoginChecker(tokens *TokenIssuer, redisClient redis.Cmdable) *LoginChecker {
	return &LoginChecker{
		tokens:      tokens,
		redisClient: redisClient,
	}
}

// Check returns the session behind a valid, unrevoked token.
func (c *LoginChecker) Check(ctx context.Context, token string) (*Session, error) {
	session, err := c.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := c.redisClient.Exists(ctx, revokedKeyPrefix+session.TokenID).Result()
	if err != nil {
		return nil, fmt.Errorf("check revoked token: %w", err)
	}
	if revoked > 0 {
		return nil, ErrRevokedToken
	}

	return session, nil
}
