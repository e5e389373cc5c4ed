package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v9"
)

const cadenceKeyPrefix = "posecheck:cadence:"

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
	Reset(ctx context.Context, key string) error
}

// Cadence lets one posture check through per interval for every session.
// Frames arriving in between are not evaluated.
type Cadence struct {
	limiter RateLimiter
	limit   redis_rate.Limit
}

func NewCadence(limiter RateLimiter, interval time.Duration) *Cadence {
	return &Cadence{
		limiter: limiter,
		limit: redis_rate.Limit{
			Rate:   1,
			Burst:  1,
			Period: interval,
		},
	}
}

func (c *Cadence) Interval() time.Duration {
	return c.limit.Period
}

// Due reports whether the session may be checked now, and if not, how long
// until the next check.
func (c *Cadence) Due(ctx context.Context, sessionID string) (bool, time.Duration, error) {
	res, err := c.limiter.Allow(ctx, cadenceKeyPrefix+sessionID, c.limit)
	if err != nil {
		return false, 0, fmt.Errorf("check cadence: %w", err)
	}
	if res.Allowed > 0 {
		return true, 0, nil
	}
	return false, res.RetryAfter, nil
}

func (c *Cadence) Reset(ctx context.Context, sessionID string) error {
	if err := c.limiter.Reset(ctx, cadenceKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("reset cadence: %w", err)
	}
	return nil
}
