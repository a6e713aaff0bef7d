package model

type ResponseLog struct {
	// 對應鍵
	RequestID  string  `bson:"request_id" json:"request_id"`
	Subject    string  `bson:"subject,omitempty" json:"subject,omitempty"`
	Code       int     `bson:"code" json:"code"`
	StatusCode int     `bson:"status_code" json:"status_code"`
	LatencyMs  float64 `bson:"latency_ms" json:"latency_ms"`
	Body       string  `bson:"body,omitempty" json:"body,omitempty"`
	Error      string  `bson:"error,omitempty" json:"error,omitempty"`
	Version    string  `bson:"version,omitempty" json:"version,omitempty"`
	ResponseTS string  `bson:"response_ts" json:"response_ts"`
	LoggedAt   string  `bson:"logged_at" json:"logged_at"`
}
