package repository

import (
	"context"
	"errors"
	"fmt"

	"storelink/internal/core"
	client "storelink/internal/database/client"
	"storelink/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// consumeScript 在同一次往返內遞增計數並確保 key 帶有視窗 TTL。
// TTL 遺失（-1）時補上，避免計數永久存在。
// 回傳 {count, ttl}
var consumeScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
local ttl = redis.call("TTL", KEYS[1])
if ttl < 0 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// PreviewAttemptRepository 以固定視窗計數限制每個來源的預覽 token 驗證次數
type PreviewAttemptRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewPreviewAttemptRepository(trace *telemetry.Trace, client *client.RedisClient) *PreviewAttemptRepository {
	return &PreviewAttemptRepository{trace: trace, client: client.Client()}
}

// Consume 記錄一次嘗試，回傳視窗內剩餘次數與視窗剩餘秒數。
// 超過 limit 時回傳 ErrRateLimitExceeded；limit<=0 表示一律拒絕。
func (repository *PreviewAttemptRepository) Consume(ctx context.Context, clientKey string, windowSeconds int64, limit int) (remaining int, ttlSeconds int64, err error) {
	ctx, span, end := repository.trace.WithSpan(ctx)
	defer func() { end(err) }()

	meta := core.TraceRateLimitMeta{ClientKey: clientKey, Limit: limit, WindowSec: windowSeconds, Op: "consume"}
	defer func() {
		meta.Remaining, meta.TTL = remaining, ttlSeconds
		repository.trace.ApplyTraceAttributes(span, meta)
	}()

	if windowSeconds <= 0 {
		return 0, 0, fmt.Errorf("preview attempt window must be positive, got %d", windowSeconds)
	}

	result, err := consumeScript.Run(ctx, repository.client, []string{repository.key(clientKey)}, windowSeconds).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(result) != 2 {
		return 0, 0, fmt.Errorf("unexpected preview attempt reply %v", result)
	}
	count, ttlSeconds := result[0], result[1]

	if count > int64(limit) {
		return 0, ttlSeconds, ErrRateLimitExceeded
	}
	return limit - int(count), ttlSeconds, nil
}

// key 例如 storelink:preview_check:203.0.113.7
func (repository *PreviewAttemptRepository) key(clientKey string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyPreviewAttempt, clientKey)
}
