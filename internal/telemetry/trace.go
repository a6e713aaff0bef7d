package telemetry

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"storelink/config"
	"storelink/internal/core"

	gcppropagator "github.com/GoogleCloudPlatform/opentelemetry-operations-go/propagator"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type Trace struct {
	TracerProvider *sdktrace.TracerProvider
	ServiceName    string
}

func NewTrace(conf *config.Configuration) (*Trace, error) {
	if conf == nil || !conf.Telemetry.Trace.Enabled {
		return &Trace{}, nil
	}
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpointURL(conf.Telemetry.Trace.EndpointUrl),
		otlptracehttp.WithRetry(otlptracehttp.RetryConfig{
			Enabled:         true,             // 是否啟用重試
			InitialInterval: 5 * time.Second,  // 初次失敗後等待多久
			MaxInterval:     10 * time.Second, // 每次加倍延遲的最大值
			MaxElapsedTime:  60 * time.Second, // 單次請求最大重試時長（超過則丟棄）
		}),
		otlptracehttp.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(conf.App.Name),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(NewPropagator())
	return &Trace{
		TracerProvider: tp,
		ServiceName:    conf.App.Name,
	}, nil
}

// NewPropagator W3C trace context + baggage，並接受 GCP 負載平衡器帶入的 X-Cloud-Trace-Context
func NewPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		gcppropagator.CloudTraceOneWayPropagator{},
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

// Shutdown flush 尚未送出的 span
func (t *Trace) Shutdown(ctx context.Context) error {
	if t == nil || t.TracerProvider == nil {
		return nil
	}
	return t.TracerProvider.Shutdown(ctx)
}

// Start 開一個具名 span；未啟用追蹤時使用 noop tracer
func (t *Trace) Start(ctx context.Context, spanName core.TraceSpanName, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	var tracer trace.Tracer = noop.NewTracerProvider().Tracer("noop")
	if t != nil && t.TracerProvider != nil {
		tracer = t.TracerProvider.Tracer(t.ServiceName)
	}
	return tracer.Start(ctx, string(spanName), opts...)
}

// End 結束 span，err 非 nil 時標記為錯誤
func (t *Trace) End(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// WithSpan handler 與 service 共用的開 span 入口。
//   - *gin.Context：沿用 middleware 存下的 ctx，名稱取 handler 名稱，並把新 ctx 存回 gin
//   - context.Context：名稱取呼叫者的方法名稱
//
// name 可覆寫 span 名稱。
func (t *Trace) WithSpan(parent any, name ...string) (context.Context, trace.Span, func(error)) {
	var (
		ctx      context.Context
		spanName string
		ginCtx   *gin.Context
	)
	switch p := parent.(type) {
	case *gin.Context:
		ginCtx = p
		ctx = p.Request.Context()
		if stored, ok := p.Get(core.ContextTraceKey); ok {
			if storedCtx, ok := stored.(context.Context); ok {
				ctx = storedCtx
			}
		}
		spanName = ginSpanName(p)
	case context.Context:
		ctx = p
		// 0 = callerName, 1 = WithSpan, 2 = 呼叫者
		spanName = shortFuncName(callerName(2))
	default:
		ctx = context.Background()
	}
	if len(name) > 0 && strings.TrimSpace(name[0]) != "" {
		spanName = name[0]
	}
	if spanName == "" {
		spanName = "unknown"
	}

	ctx, span := t.Start(ctx, core.TraceSpanName(spanName))
	if ginCtx != nil {
		ginCtx.Set(core.ContextTraceKey, ctx)
	}
	return ctx, span, func(err error) { t.End(span, err) }
}

// ApplyTraceAttributes 依 `trace:"key[,omitempty]"` tag 把結構欄位寫成 span attribute。
// 巢狀結構與指標遞迴展開；map[string]T 展開為 key.<mapKey>。
func (t *Trace) ApplyTraceAttributes(span trace.Span, obj any) {
	if span == nil || obj == nil || !span.IsRecording() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			span.RecordError(fmt.Errorf("ApplyTraceAttributes panic: %v", r))
		}
	}()
	span.SetAttributes(traceAttributes(reflect.ValueOf(obj))...)
}

func traceAttributes(val reflect.Value) []attribute.KeyValue {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	var attrs []attribute.KeyValue
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		key, opts, _ := strings.Cut(typ.Field(i).Tag.Get("trace"), ",")
		field := val.Field(i)
		if key == "" || !field.CanInterface() {
			continue
		}
		if opts == "omitempty" && field.IsZero() {
			continue
		}

		switch field.Kind() {
		case reflect.Struct, reflect.Ptr:
			attrs = append(attrs, traceAttributes(field)...)
		case reflect.Map:
			if field.Type().Key().Kind() != reflect.String {
				continue
			}
			iter := field.MapRange()
			for iter.Next() {
				if kv, ok := scalarAttribute(key+"."+iter.Key().String(), iter.Value()); ok {
					attrs = append(attrs, kv)
				}
			}
		case reflect.Slice, reflect.Array:
			if field.Type().Elem().Kind() != reflect.String {
				continue
			}
			strs := make([]string, field.Len())
			for j := range strs {
				strs[j] = field.Index(j).String()
			}
			attrs = append(attrs, attribute.StringSlice(key, strs))
		default:
			if kv, ok := scalarAttribute(key, field); ok {
				attrs = append(attrs, kv)
			}
		}
	}
	return attrs
}

func scalarAttribute(key string, v reflect.Value) (attribute.KeyValue, bool) {
	switch v.Kind() {
	case reflect.String:
		return attribute.String(key, v.String()), true
	case reflect.Bool:
		return attribute.Bool(key, v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return attribute.Int64(key, v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return attribute.Int64(key, int64(v.Uint())), true
	case reflect.Float32, reflect.Float64:
		return attribute.Float64(key, v.Float()), true
	}
	return attribute.KeyValue{}, false
}

// shortFuncName storelink/internal/service.(*PreviewService).Issue-fm → PreviewService.Issue
func shortFuncName(full string) string {
	full = full[strings.LastIndex(full, "/")+1:]
	full = strings.TrimSuffix(full, "-fm")
	if i := strings.LastIndex(full, ".func"); i >= 0 {
		full = full[:i]
	}
	if _, rest, ok := strings.Cut(full, "."); ok {
		full = rest
	}
	full = strings.NewReplacer("(*", "", "(", "", ")", "").Replace(full)
	// 泛型型參
	if i := strings.Index(full, "["); i >= 0 {
		if j := strings.Index(full[i:], "]"); j >= 0 {
			full = full[:i] + full[i+j+1:]
		}
	}
	return full
}

func ginSpanName(c *gin.Context) string {
	if handlerName := c.HandlerName(); handlerName != "" {
		return shortFuncName(handlerName)
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return c.Request.Method + " " + route
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return ""
}
