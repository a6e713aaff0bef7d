package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest          TraceSpanName = "http_request"
	SpanLoggerMiddleware     TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware   TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware       TraceSpanName = "cors_middleware"
	SpanResponseMiddleware   TraceSpanName = "response_middleware"
	SpanAdminAuthMiddleware  TraceSpanName = "admin_auth_middleware"
	SpanPreviewRateLimit     TraceSpanName = "preview_ratelimit_middleware"
	SpanPreviewParamsCapture TraceSpanName = "preview_params_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal      MetricName = "requests_total"
	MetricHttpRequestDuration    MetricName = "request_duration_seconds"
	MetricResponseSuccessTotal   MetricName = "response_success_total"
	MetricResponseFailTotal      MetricName = "response_fail_total"
	MetricPreviewTokensIssued    MetricName = "preview_tokens_issued_total"
	MetricPreviewValidations     MetricName = "preview_validations_total"
	MetricStoreURLResolutions    MetricName = "store_url_resolutions_total"
	MetricStoreURLResolveSeconds MetricName = "store_url_resolve_duration_seconds"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint   MetricLabelName = "endpoint"
	MetricLabelStatus     MetricLabelName = "status"
	MetricLabelReason     MetricLabelName = "reason"
	MetricLabelResult     MetricLabelName = "result"
	MetricLabelEntityType MetricLabelName = "entity_type"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceAdminAuthMeta struct {
	Subject string `trace:"auth.subject,omitempty"`
	Issuer  string `trace:"auth.issuer,omitempty"`
	Status  string `trace:"auth.status"`
}

// 供 Redis 預覽驗證限流使用
type TraceRateLimitMeta struct {
	ClientKey string `trace:"rl.client_key"`
	Limit     int    `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int    `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"`
}

type TracePreviewRateLimitMiddlewareMeta struct {
	ClientKey  string `trace:"ratelimit.client_key"`
	Limit      int    `trace:"ratelimit.config.limit"`
	Remaining  int    `trace:"ratelimit.remaining"`
	TTLSeconds int64  `trace:"ratelimit.ttl_sec"`
	Blocked    bool   `trace:"ratelimit.blocked"`
}

type TraceStoreURLMeta struct {
	EntityType  string `trace:"storeurl.entity_type"`
	EntityID    int    `trace:"storeurl.entity_id"`
	ResultCount int    `trace:"storeurl.result_count"`
	Previews    int    `trace:"storeurl.preview_count"`
}

type TracePreviewTokenMeta struct {
	Op        string `trace:"preview.op"` // "issue" / "verify" / "gate"
	ProductID int    `trace:"preview.product_id"`
	StoreID   int    `trace:"preview.store_id"`
	TTLSec    int64  `trace:"preview.ttl_sec,omitempty"`
	Valid     bool   `trace:"preview.valid"`
	Elevated  bool   `trace:"preview.elevated"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}
type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}
