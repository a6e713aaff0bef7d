package preview

import (
	"net/url"
	"strings"

	"storelink/config"
	"storelink/internal/core"
)

// Params 預覽連結使用的 query 參數名稱，兩者必定同時出現
type Params struct {
	Flag  string
	Token string
}

func DefaultParams() Params {
	return Params{Flag: core.PreviewFlagParam, Token: core.PreviewTokenParam}
}

func NewParams(conf *config.Configuration) Params {
	p := DefaultParams()
	if conf == nil {
		return p
	}
	if conf.Preview.FlagParam != "" {
		p.Flag = conf.Preview.FlagParam
	}
	if conf.Preview.TokenParam != "" {
		p.Token = conf.Preview.TokenParam
	}
	return p
}

// Query 組出 "flag=1&token=..."，依 RFC 3986 編碼
func (p Params) Query(token string) string {
	return EscapeRFC3986(p.Flag) + "=1&" + EscapeRFC3986(p.Token) + "=" + EscapeRFC3986(token)
}

// AppendQuery 將 query 接到 URL 後；已有 query string 時以 & 相接
func AppendQuery(rawURL, query string) string {
	if query == "" {
		return rawURL
	}
	separator := "?"
	if strings.Contains(rawURL, "?") {
		separator = "&"
	}
	return rawURL + separator + query
}

// EscapeRFC3986 除 unreserved 字元 (A-Z a-z 0-9 - _ . ~) 外全部百分比編碼
func EscapeRFC3986(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
