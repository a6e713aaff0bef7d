package config

// Postgres 僅供 URL rewrite 索引使用；DSN 為空時改用 MongoDB
type Postgres struct {
	DSN      string `mapstructure:"DSN" json:"dsn" yaml:"dsn"`
	MaxConns int32  `mapstructure:"MAX_CONNS" json:"maxConns" yaml:"maxConns"`
	// url_rewrite 資料表名稱
	RewriteTable string `mapstructure:"REWRITE_TABLE" json:"rewriteTable" yaml:"rewriteTable"`
}

func (p Postgres) Enabled() bool {
	return p.DSN != ""
}
