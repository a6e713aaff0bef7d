package core

import "github.com/golang-jwt/jwt/v4"

// AdminClaims 管理端 Bearer token 內容
type AdminClaims struct {
	Username string   `json:"username"`
	Scopes   []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// HasScope 預設拒絕；只有明確列出該 scope 或 "*" 才放行
func (c *AdminClaims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope || s == ScopeAll {
			return true
		}
	}
	return false
}

const ContextAdminClaimsKey = "admin_claims"

const (
	ScopeAll          = "*"
	ScopeStoreURLRead = "storeurl:read"
	ScopePreviewWrite = "preview:write"
)
