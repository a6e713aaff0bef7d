package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	redisRepo "storelink/internal/database/redis/repository"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/preview"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAttempts struct {
	calls int
	limit int
	err   error
}

func (f *fakeAttempts) Consume(_ context.Context, _ string, windowSeconds int64, limitCount int) (int, int64, error) {
	f.calls++
	if f.err != nil {
		return 0, 0, f.err
	}
	remaining := limitCount - f.calls
	if remaining < 0 {
		return 0, windowSeconds, redisRepo.ErrRateLimitExceeded
	}
	return remaining, windowSeconds, nil
}

func storefrontEngine(params *PreviewParams, limiter *PreviewRateLimit) *gin.Engine {
	engine := gin.New()
	engine.Use(renderErrors())
	engine.Use(params.Handler())
	if limiter != nil {
		engine.Use(limiter.Guard())
	}
	engine.GET("/storefront/:storeCode/products/:productID", func(c *gin.Context) {
		req, ok := preview.RequestFrom(c.Request.Context())
		if !ok {
			c.String(http.StatusOK, "none")
			return
		}
		c.String(http.StatusOK, req.Flag+"|"+req.Token)
	})
	return engine
}

func TestPreviewParamsCapture(t *testing.T) {
	_, trace, _, _ := testDeps()
	engine := storefrontEngine(NewPreviewParams(trace, preview.DefaultParams()), nil)

	w := perform(t, engine, httptest.NewRequest(http.MethodGet, "/storefront/default/products/42?ist_preview=1&ist_preview_token=abc", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1|abc", w.Body.String())

	w = perform(t, engine, httptest.NewRequest(http.MethodGet, "/storefront/default/products/42", nil))
	assert.Equal(t, "|", w.Body.String())
}

func TestPreviewParamsCustomNames(t *testing.T) {
	_, trace, _, _ := testDeps()
	engine := storefrontEngine(NewPreviewParams(trace, preview.Params{Flag: "pv", Token: "pvt"}), nil)

	w := perform(t, engine, httptest.NewRequest(http.MethodGet, "/storefront/default/products/42?pv=1&pvt=xyz&ist_preview_token=ignored", nil))
	assert.Equal(t, "1|xyz", w.Body.String())
}

func newTestRateLimit(attempts attemptConsumer) *PreviewRateLimit {
	logger, trace, metric, conf := testDeps()
	return &PreviewRateLimit{logger: logger, trace: trace, metric: metric, config: conf, attempts: attempts}
}

func TestPreviewRateLimitBlocksAfterLimit(t *testing.T) {
	_, trace, _, _ := testDeps()
	attempts := &fakeAttempts{}
	engine := storefrontEngine(NewPreviewParams(trace, preview.DefaultParams()), newTestRateLimit(attempts))
	target := "/storefront/default/products/42?ist_preview=1&ist_preview_token=abc"

	w := perform(t, engine, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = perform(t, engine, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = perform(t, engine, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestPreviewRateLimitIgnoresPlainRequests(t *testing.T) {
	_, trace, _, _ := testDeps()
	attempts := &fakeAttempts{}
	engine := storefrontEngine(NewPreviewParams(trace, preview.DefaultParams()), newTestRateLimit(attempts))

	for i := 0; i < 5; i++ {
		w := perform(t, engine, httptest.NewRequest(http.MethodGet, "/storefront/default/products/42", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Zero(t, attempts.calls)
}

func TestPreviewRateLimitFailsOpen(t *testing.T) {
	_, trace, _, _ := testDeps()
	attempts := &fakeAttempts{err: errors.New("redis down")}
	engine := storefrontEngine(NewPreviewParams(trace, preview.DefaultParams()), newTestRateLimit(attempts))

	w := perform(t, engine, httptest.NewRequest(http.MethodGet, "/storefront/default/products/42?ist_preview=1&ist_preview_token=abc", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, attempts.calls)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestPreviewRateLimitFailsClosedWhenConfigured(t *testing.T) {
	_, trace, _, _ := testDeps()
	attempts := &fakeAttempts{err: errors.New("redis down")}
	limiter := newTestRateLimit(attempts)
	limiter.config.Preview.RateLimit.FailClosed = true
	engine := storefrontEngine(NewPreviewParams(trace, preview.DefaultParams()), limiter)

	w := perform(t, engine, httptest.NewRequest(http.MethodGet, "/storefront/default/products/42?ist_preview=1&ist_preview_token=abc", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"code":`+strconv.Itoa(cErr.SERVICE_UNAVAILABLE)+`}`, w.Body.String())

	w = perform(t, engine, httptest.NewRequest(http.MethodGet, "/storefront/default/products/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
