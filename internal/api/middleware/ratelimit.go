package middleware

import (
	"context"
	"fmt"
	"time"

	"newtube-go/internal/api/response"
	"newtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CounterStore 窗口计数存储。Incr 对 key 自增并在首次写入时设置过期，
// 返回自增后的计数
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Limiter 按用户固定窗口限流器
type Limiter struct {
	store  CounterStore
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewLimiter 创建限流器
func NewLimiter(store CounterStore, limit int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow 判断该用户本窗口内是否还允许请求。
// 窗口键为 userID + 窗口序号，窗口翻转后计数自然清零
func (l *Limiter) Allow(ctx context.Context, userID int64) (bool, error) {
	windowIdx := l.now().UnixNano() / int64(l.window)
	key := fmt.Sprintf("newtube:ratelimit:%d:%d", userID, windowIdx)

	count, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return false, err
	}
	return count <= int64(l.limit), nil
}

// redisCounterStore go-redis 实现的窗口计数存储
type redisCounterStore struct {
	client *redis.Client
}

// NewRedisCounterStore 创建 Redis 窗口计数存储
func NewRedisCounterStore(client *redis.Client) CounterStore {
	return &redisCounterStore{client: client}
}

func (s *redisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// 过期设为两个窗口宽度，保证翻转边界上旧键自行清理
	pipe.Expire(ctx, key, 2*window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimit 写操作限流中间件（必须在 AuthRequired 之后使用）。
// 超限请求在任何副作用发生之前被拒绝；
// 限流存储不可用时放行并告警，避免 Redis 故障放大为全站写故障
func RateLimit(limiter *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		userID, ok := GetCurrentUserID(c)
		if !ok {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Rate limit store unavailable, allowing request",
				zap.Int64("user_id", userID), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			response.TooManyRequests(c, "请求过于频繁，请稍后重试")
			c.Abort()
			return
		}

		c.Next()
	}
}
