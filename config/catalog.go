package config

type Catalog struct {
	// 分類 url_key 後綴，例如 ".html"
	CategoryURLSuffix string `mapstructure:"CATEGORY_URL_SUFFIX" json:"categoryUrlSuffix" yaml:"categoryUrlSuffix"`
	// storefront 是否使用 session id query 參數（空字串表示不附加）
	SessionIDParam string `mapstructure:"SESSION_ID_PARAM" json:"sessionIdParam" yaml:"sessionIdParam"`
}
