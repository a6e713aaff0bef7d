package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Postgres  Postgres        `mapstructure:"POSTGRES" json:"postgres" yaml:"postgres"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
	Preview   Preview         `mapstructure:"PREVIEW" json:"preview" yaml:"preview"`
	Catalog   Catalog         `mapstructure:"CATALOG" json:"catalog" yaml:"catalog"`
	Auth      Auth            `mapstructure:"AUTH" json:"auth" yaml:"auth"`
	Cron      Cron            `mapstructure:"CRON" json:"cron" yaml:"cron"`
}
