package config

type Auth struct {
	// 管理端 Bearer JWT 的 HS256 金鑰
	JWTSecret string `mapstructure:"JWT_SECRET" json:"-" yaml:"jwt_secret"`
	// 允許的 issuer，空字串不檢查
	Issuer string `mapstructure:"ISSUER" json:"issuer" yaml:"issuer"`
}
