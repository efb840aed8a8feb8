package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	guardWindow      = 15 * time.Minute
	guardMaxFailures = 5
)

// LoginGuard throttles repeated failed logins per email using a fixed-window
// counter. Key format: login_fail:<email>
type LoginGuard struct {
	client *redis.Client
}

// NewLoginGuard creates a LoginGuard wrapping the given Redis client.
func NewLoginGuard(client *redis.Client) *LoginGuard {
	return &LoginGuard{client: client}
}

// Blocked reports whether the email has reached the failure budget within
// the current window.
func (g *LoginGuard) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(email)).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("login guard get: %w", err)
	}
	return n >= guardMaxFailures, nil
}

// RecordFailure counts one failed attempt. The window starts at the first
// failure and is not extended by later ones.
func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	key := g.key(email)
	n, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login guard incr: %w", err)
	}
	if n == 1 {
		if err := g.client.Expire(ctx, key, guardWindow).Err(); err != nil {
			return fmt.Errorf("login guard expire: %w", err)
		}
	}
	return nil
}

// Clear resets the counter after a successful login.
func (g *LoginGuard) Clear(ctx context.Context, email string) error {
	return g.client.Del(ctx, g.key(email)).Err()
}

func (g *LoginGuard) key(email string) string {
	return "login_fail:" + email
}
