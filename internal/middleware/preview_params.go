package middleware

import (
	"storelink/internal/core"
	"storelink/internal/preview"
	"storelink/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type PreviewParams struct {
	trace  *telemetry.Trace
	params preview.Params
}

func NewPreviewParams(trace *telemetry.Trace, params preview.Params) *PreviewParams {
	return &PreviewParams{trace: trace, params: params}
}

// Handler 將 query 中的預覽旗標與 token 放入 request context，供 Gate 判斷
func (m *PreviewParams) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanPreviewParamsCapture))
		req := preview.Request{
			Flag:  c.Query(m.params.Flag),
			Token: c.Query(m.params.Token),
		}
		span.SetAttributes(attribute.Bool("preview.active", req.Active()))
		end(nil)

		c.Request = c.Request.WithContext(preview.WithRequest(c.Request.Context(), req))
		c.Next()
	}
}
