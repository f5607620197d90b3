package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter 基于 Redis 的固定窗口限流器
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	logger *zap.Logger
}

func NewLimiter(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Allow 检查某个用户在当前窗口内是否还有配额
// Redis 不可用时放行，限流不能成为单点故障
func (l *Limiter) Allow(ctx context.Context, userID int) bool {
	key := fmt.Sprintf("ratelimit:generate:%d:%d", userID, time.Now().Unix()/int64(l.window.Seconds()))

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		if l.logger != nil {
			l.logger.Warn("Redis rate limit check failed, allowing request",
				zap.Int("user_id", userID),
				zap.Error(err),
			)
		}
		return true
	}
	if count == 1 {
		l.rdb.Expire(ctx, key, l.window)
	}

	if count > int64(l.limit) {
		if l.logger != nil {
			l.logger.Info("Rate limit exceeded",
				zap.Int("user_id", userID),
				zap.Int64("count", count),
				zap.Int("limit", l.limit),
			)
		}
		return false
	}
	return true
}
