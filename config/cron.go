package config

type Cron struct {
	// 依賴健康檢查排程（含秒欄位），空字串使用預設每 15 秒
	ProbeSpec string `mapstructure:"PROBE_SPEC" json:"probeSpec" yaml:"probeSpec"`
}
