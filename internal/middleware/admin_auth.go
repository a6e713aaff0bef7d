package middleware

import (
	"errors"
	"strings"

	"storelink/config"
	"storelink/internal/core"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/pkg/response"
	"storelink/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type AdminAuth struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	config *config.Configuration
}

func NewAdminAuth(logger *zap.Logger, trace *telemetry.Trace, config *config.Configuration) *AdminAuth {
	return &AdminAuth{logger: logger, trace: trace, config: config}
}

// Handler 驗證 Authorization: Bearer <jwt>（HS256），成功後將 claims 放入 gin.Context
// scopes 為空時只要求 token 有效
func (m *AdminAuth) Handler(scopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanAdminAuthMiddleware))

		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.trace.ApplyTraceAttributes(span, core.TraceAdminAuthMeta{Status: "missing_token"})
			err := cErr.Unauthorized("missing bearer token")
			response.AbortWithError(c, err)
			end(err)
			return
		}

		claims, err := m.parse(raw)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceAdminAuthMeta{Status: "invalid_token"})
			m.logger.Debug("admin token rejected", zap.Error(err))
			appErr := cErr.InvalidAccessToken("invalid or expired access token")
			response.AbortWithError(c, appErr)
			end(appErr)
			return
		}

		meta := core.TraceAdminAuthMeta{Subject: claims.Username, Issuer: claims.Issuer}
		for _, scope := range scopes {
			if !claims.HasScope(scope) {
				meta.Status = "insufficient_scope"
				m.trace.ApplyTraceAttributes(span, meta)
				appErr := cErr.InsufficientScope("missing scope " + scope)
				response.AbortWithError(c, appErr)
				end(appErr)
				return
			}
		}

		meta.Status = "success"
		m.trace.ApplyTraceAttributes(span, meta)
		c.Set(core.ContextAdminClaimsKey, claims)
		end(nil)
		c.Next()
	}
}

func (m *AdminAuth) parse(raw string) (*core.AdminClaims, error) {
	secret := m.config.Auth.JWTSecret
	if secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	claims := &core.AdminClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, options...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if issuer := m.config.Auth.Issuer; issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, errors.New("unexpected issuer")
	}
	if claims.Username == "" {
		claims.Username = claims.Subject
	}
	return claims, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// subjectFrom 取出已驗證管理者名稱，未驗證時為空字串
func subjectFrom(c *gin.Context) string {
	raw, ok := c.Get(core.ContextAdminClaimsKey)
	if !ok {
		return ""
	}
	claims, ok := raw.(*core.AdminClaims)
	if !ok || claims == nil {
		return ""
	}
	return claims.Username
}
