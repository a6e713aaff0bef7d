package middleware

import (
	"context"
	"errors"
	"strconv"

	"storelink/config"
	"storelink/internal/core"
	redisRepo "storelink/internal/database/redis/repository"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/pkg/response"
	"storelink/internal/preview"
	"storelink/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPreviewLimit  = 30
	defaultPreviewWindow = int64(60)
)

type attemptConsumer interface {
	Consume(ctx context.Context, clientKey string, windowSeconds int64, limitCount int) (int, int64, error)
}

type PreviewRateLimit struct {
	logger   *zap.Logger
	trace    *telemetry.Trace
	metric   *telemetry.Metric
	config   *config.Configuration
	attempts attemptConsumer
}

func NewPreviewRateLimit(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	attempts *redisRepo.PreviewAttemptRepository,
) *PreviewRateLimit {
	return &PreviewRateLimit{
		logger:   logger,
		trace:    trace,
		metric:   metric,
		config:   config,
		attempts: attempts,
	}
}

// Guard 只對帶預覽參數的請求計數；Redis 失敗時依 FailClosed 決定放行或回 503
func (m *PreviewRateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := m.config.Preview.RateLimit
		req, _ := preview.RequestFrom(c.Request.Context())
		if !settings.Enabled || !req.Active() || m.attempts == nil {
			c.Next()
			return
		}
		limit := settings.Limit
		if limit <= 0 {
			limit = defaultPreviewLimit
		}
		window := settings.WindowSeconds
		if window <= 0 {
			window = defaultPreviewWindow
		}

		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanPreviewRateLimit))
		clientKey := c.ClientIP()
		remaining, ttl, err := m.attempts.Consume(ctx, clientKey, window, limit)
		if err != nil && !errors.Is(err, redisRepo.ErrRateLimitExceeded) {
			m.logger.Warn("preview rate limit unavailable", zap.Error(err))
			if settings.FailClosed {
				appErr := cErr.RateLimiterUnavailable("preview rate limiter unavailable")
				response.AbortWithError(c, appErr)
				end(appErr)
				return
			}
			end(nil)
			c.Next()
			return
		}
		blocked := err != nil

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		m.trace.ApplyTraceAttributes(span, core.TracePreviewRateLimitMiddlewareMeta{
			ClientKey:  clientKey,
			Limit:      limit,
			Remaining:  remaining,
			TTLSeconds: ttl,
			Blocked:    blocked,
		})

		if blocked {
			if ttl > 0 {
				c.Header("Retry-After", strconv.FormatInt(ttl, 10))
			}
			m.metric.IncPreviewValidation("limited")
			appErr := cErr.RateLimitExceeded("too many preview attempts")
			response.AbortWithError(c, appErr)
			end(appErr)
			return
		}
		end(nil)
		c.Next()
	}
}
