package config

// Preview 預覽 token 相關設定
type Preview struct {
	// 對稱金鑰來源（必填），token 以此衍生的金鑰加密
	SecretKey string `mapstructure:"SECRET_KEY" json:"-" yaml:"secret_key"`
	// token 有效秒數，<=0 時使用預設 3600
	TTLSeconds int64 `mapstructure:"TTL_SECONDS" json:"ttlSeconds" yaml:"ttlSeconds"`
	// 預覽旗標與 token 的 query 參數名稱
	FlagParam  string `mapstructure:"FLAG_PARAM" json:"flagParam" yaml:"flagParam"`
	TokenParam string `mapstructure:"TOKEN_PARAM" json:"tokenParam" yaml:"tokenParam"`

	RateLimit PreviewRateLimit `mapstructure:"RATE_LIMIT" json:"rateLimit" yaml:"rateLimit"`
}

// PreviewRateLimit 限制 storefront 端每個來源 IP 的 token 驗證次數
type PreviewRateLimit struct {
	Enabled       bool  `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Limit         int   `mapstructure:"LIMIT" json:"limit" yaml:"limit"`
	WindowSeconds int64 `mapstructure:"WINDOW_SECONDS" json:"windowSeconds" yaml:"windowSeconds"`
	// Redis 無法使用時是否拒絕請求（預設放行）
	FailClosed bool `mapstructure:"FAIL_CLOSED" json:"failClosed" yaml:"failClosed"`
}
