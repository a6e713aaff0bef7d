package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storelink/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordingTrace(t *testing.T) (*Trace, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return &Trace{TracerProvider: provider, ServiceName: "storelink-test"}, recorder
}

func attributesOf(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

type sampleRepository struct {
	trace *Trace
}

func (r *sampleRepository) Lookup(ctx context.Context) {
	_, _, end := r.trace.WithSpan(ctx)
	end(nil)
}

func TestWithSpanNamesSpanAfterCaller(t *testing.T) {
	trace, recorder := recordingTrace(t)

	(&sampleRepository{trace: trace}).Lookup(context.Background())

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "sampleRepository.Lookup", ended[0].Name())
}

func TestWithSpanOverrideNameAndError(t *testing.T) {
	trace, recorder := recordingTrace(t)

	_, _, end := trace.WithSpan(context.Background(), "custom")
	end(errors.New("boom"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "custom", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}

func TestWithSpanStoresContextOnGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	trace, recorder := recordingTrace(t)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/storefront/default/products/42", nil)

	parentCtx, parent, endParent := trace.WithSpan(c, "parent")
	stored, ok := c.Get(core.ContextTraceKey)
	require.True(t, ok)
	assert.Equal(t, parentCtx, stored)

	_, child, endChild := trace.WithSpan(c, "child")
	endChild(nil)
	endParent(nil)

	assert.Equal(t, parent.SpanContext().SpanID(), recorder.Ended()[0].Parent().SpanID())
	assert.Equal(t, child.SpanContext().TraceID(), parent.SpanContext().TraceID())
}

type sampleMeta struct {
	Path      string            `trace:"request.path"`
	Status    int               `trace:"http.status"`
	Remaining int               `trace:"rl.remaining,omitempty"`
	Blocked   bool              `trace:"rl.blocked"`
	Scopes    []string          `trace:"auth.scopes"`
	Headers   map[string]string `trace:"http.header"`
	Nested    *sampleNested     `trace:"nested"`
	Ignored   string
}

type sampleNested struct {
	Op string `trace:"nested.op"`
}

func TestApplyTraceAttributes(t *testing.T) {
	trace, recorder := recordingTrace(t)

	_, span, end := trace.WithSpan(context.Background(), "attrs")
	trace.ApplyTraceAttributes(span, &sampleMeta{
		Path:    "/healthz",
		Status:  200,
		Blocked: true,
		Scopes:  []string{"a", "b"},
		Headers: map[string]string{"user-agent": "curl"},
		Nested:  &sampleNested{Op: "consume"},
		Ignored: "x",
	})
	end(nil)

	attrs := attributesOf(recorder.Ended()[0])
	assert.Equal(t, "/healthz", attrs["request.path"].AsString())
	assert.Equal(t, int64(200), attrs["http.status"].AsInt64())
	assert.True(t, attrs["rl.blocked"].AsBool())
	assert.Equal(t, []string{"a", "b"}, attrs["auth.scopes"].AsStringSlice())
	assert.Equal(t, "curl", attrs["http.header.user-agent"].AsString())
	assert.Equal(t, "consume", attrs["nested.op"].AsString())
	assert.NotContains(t, attrs, attribute.Key("rl.remaining"))
	assert.NotContains(t, attrs, attribute.Key("rl.remaining,omitempty"))
	assert.Len(t, attrs, 6)
}

func TestDisabledTraceIsNoop(t *testing.T) {
	trace := &Trace{}
	ctx, span, end := trace.WithSpan(context.Background())
	assert.NotNil(t, ctx)
	assert.False(t, span.IsRecording())
	trace.ApplyTraceAttributes(span, sampleMeta{Path: "/"})
	end(nil)
}

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "storelink/internal/service.(*PreviewService).Issue", want: "PreviewService.Issue"},
		{in: "storelink/internal/handler.(*PreviewHandler).Issue-fm", want: "PreviewHandler.Issue"},
		{in: "storelink/internal/cron.(*Cron).Run.func1", want: "Cron.Run"},
		{in: "storelink/internal/service.(*Registry[go.shape.int]).Find", want: "Registry.Find"},
		{in: "main.main", want: "main"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shortFuncName(tt.in), tt.in)
	}
}
