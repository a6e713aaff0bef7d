package telemetry

import (
	"time"

	"storelink/config"
	"storelink/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct；未啟用時所有欄位為 nil，記錄方法皆為 no-op
type Metric struct {
	HttpRequestsTotal     *prometheus.CounterVec
	HttpRequestDuration   *prometheus.HistogramVec
	ResponseSuccessTotal  *prometheus.CounterVec
	ResponseFailTotal     *prometheus.CounterVec
	PreviewTokensIssued   *prometheus.CounterVec
	PreviewValidations    *prometheus.CounterVec
	StoreURLResolutions   *prometheus.CounterVec
	StoreURLResolveTiming *prometheus.HistogramVec
	config                *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricName(config, core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		ResponseSuccessTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricResponseSuccessTotal),
				Help: "Successful API responses",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		ResponseFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricResponseFailTotal),
				Help: "Failed API responses",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelReason),
		),
		PreviewTokensIssued: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricPreviewTokensIssued),
				Help: "Preview tokens issued",
			},
			labelNames(core.MetricLabelEntityType),
		),
		PreviewValidations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricPreviewValidations),
				Help: "Preview token validations by result",
			},
			labelNames(core.MetricLabelResult),
		),
		StoreURLResolutions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricName(config, core.MetricStoreURLResolutions),
				Help: "Store URL resolutions by entity type",
			},
			labelNames(core.MetricLabelEntityType),
		),
		StoreURLResolveTiming: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricName(config, core.MetricStoreURLResolveSeconds),
				Help:    "Store URL resolution duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEntityType),
		),
	}
}

func (m *Metric) IncPreviewIssued(entityType core.EntityType) {
	if m == nil || m.PreviewTokensIssued == nil {
		return
	}
	m.PreviewTokensIssued.WithLabelValues(string(entityType)).Inc()
}

// IncPreviewValidation result: "valid" / "invalid" / "limited"
func (m *Metric) IncPreviewValidation(result string) {
	if m == nil || m.PreviewValidations == nil {
		return
	}
	m.PreviewValidations.WithLabelValues(result).Inc()
}

func (m *Metric) ObserveResolution(entityType core.EntityType, started time.Time) {
	if m == nil || m.StoreURLResolutions == nil {
		return
	}
	m.StoreURLResolutions.WithLabelValues(string(entityType)).Inc()
	m.StoreURLResolveTiming.WithLabelValues(string(entityType)).Observe(time.Since(started).Seconds())
}

func metricName(config *config.Configuration, name core.MetricName) string {
	if config.App.Name == "" {
		return string(name)
	}
	return config.App.Name + "_" + string(name)
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
