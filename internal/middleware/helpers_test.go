package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storelink/config"
	cErr "storelink/internal/pkg/error"
	"storelink/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDeps() (*zap.Logger, *telemetry.Trace, *telemetry.Metric, *config.Configuration) {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "admin-secret"
	conf.Preview.RateLimit.Enabled = true
	conf.Preview.RateLimit.Limit = 2
	conf.Preview.RateLimit.WindowSeconds = 60
	return zap.NewNop(), &telemetry.Trace{}, &telemetry.Metric{}, conf
}

// renderErrors 以最小方式輸出 c.Errors 中的 *cErr.Error
func renderErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		if appErr, ok := c.Errors.Last().Err.(*cErr.Error); ok {
			c.JSON(appErr.HttpCode(), gin.H{"code": appErr.ErrorCode()})
		}
	}
}

func perform(t *testing.T, engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
