package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"storelink/config"
	"storelink/internal/core"
	"storelink/internal/database/fluentd/model"
	"storelink/internal/database/fluentd/repository"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/pkg/response"
	"storelink/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	successMessage  = "Request Success"
	previewMaxBytes = 2000
)

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// FormatHandler 把 handler 透過 response.Success/Create 放入的資料包成統一格式；
// 狀態碼 >= 400 且尚未寫出時改交給 Recovery 輸出錯誤。
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if skipLogging(endpoint) {
			c.Next()
			return
		}
		started := requestStart(c)

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}
		statusCode := c.Writer.Status()
		if statusCode >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, "request error"))
			return
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanResponseMiddleware))
		defer end(nil)

		data, message := successPayload(c)
		duration := time.Since(started)
		traceID := span.SpanContext().TraceID().String()

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			DurationMs: float64(duration.Milliseconds()),
			Data:       previewJSON(data, previewMaxBytes),
		})
		middleware.logger.Info("[Response] "+message,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("spanId", span.SpanContext().SpanID().String()),
			zap.String("traceId", traceID),
		)
		middleware.record(c, endpoint, statusCode, duration)

		body, err := json.Marshal(response.Response{
			RequestID:   traceID,
			Data:        data,
			Message:     "OK",
			Description: message,
		})
		if err != nil {
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}

		logEntry := model.ResponseLog{
			RequestID:  traceID,
			Subject:    subjectFrom(c),
			StatusCode: statusCode,
			LatencyMs:  float64(duration.Milliseconds()),
			Body:       previewJSON(data, previewMaxBytes),
			ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
			Version:    middleware.config.App.Version,
		}
		if err := middleware.fluentdRepository.LogResponse(ctx, logEntry); err != nil {
			middleware.logger.Debug("fluentd response log failed", zap.Error(err))
		}

		// handler 可能已設定 201
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Writer.WriteHeader(statusCode)
		if _, err := c.Writer.Write(body); err != nil {
			response.AbortWithError(c, cErr.InternalServer("write response failed"))
		}
	}
}

func (middleware *Response) record(c *gin.Context, endpoint string, statusCode int, duration time.Duration) {
	if middleware.metric.ResponseSuccessTotal == nil || middleware.metric.HttpRequestDuration == nil {
		return
	}
	middleware.metric.ResponseSuccessTotal.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
	middleware.metric.HttpRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// successPayload 讀出 handler 設定的 data 與 message
func successPayload(c *gin.Context) (any, string) {
	data, _ := c.Get("data")
	if data == nil {
		data = map[string]any{}
	}
	message := successMessage
	if s := c.GetString("message"); s != "" {
		message = s
	}
	return data, message
}

// requestStart 取得 Trace middleware 記下的請求起點，沒有時以現在時間補上
func requestStart(c *gin.Context) time.Time {
	if v, ok := c.Get("requestDuration"); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	now := time.Now()
	c.Set("requestDuration", now)
	return now
}

// previewJSON 序列化後截斷到 max bytes；JSON 字串會先正規化
func previewJSON(data any, max int) string {
	var out string
	switch v := data.(type) {
	case string:
		out = v
		var js any
		if json.Unmarshal([]byte(v), &js) == nil {
			b, _ := json.Marshal(js)
			out = string(b)
		}
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("[marshal error: %v]", err)
		}
		out = string(b)
	}
	if len(out) > max {
		return out[:max] + "…"
	}
	return out
}
