package error

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapHttpStatusToError(t *testing.T) {
	tests := []struct {
		status    int
		httpCode  int
		errorCode int
	}{
		{status: http.StatusBadRequest, httpCode: http.StatusBadRequest, errorCode: BAD_REQUEST_BODY},
		{status: http.StatusUnauthorized, httpCode: http.StatusUnauthorized, errorCode: UNAUTHORIZED},
		{status: http.StatusForbidden, httpCode: http.StatusForbidden, errorCode: FORBIDDEN},
		{status: http.StatusNotFound, httpCode: http.StatusNotFound, errorCode: NOT_FOUND},
		{status: http.StatusServiceUnavailable, httpCode: http.StatusServiceUnavailable, errorCode: SERVICE_UNAVAILABLE},
		{status: http.StatusGatewayTimeout, httpCode: http.StatusGatewayTimeout, errorCode: GATEWAY_TIMEOUT},
		{status: http.StatusTeapot, httpCode: http.StatusInternalServerError, errorCode: INTERNAL_ERROR},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			appErr := MapHttpStatusToError(tt.status, "request error")
			assert.Equal(t, tt.httpCode, appErr.HttpCode())
			assert.Equal(t, tt.errorCode, appErr.ErrorCode())
			assert.Equal(t, "request error", appErr.ErrorDesc())
		})
	}
}

func TestRateLimiterUnavailable(t *testing.T) {
	appErr := RateLimiterUnavailable("redis down")
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HttpCode())
	assert.Equal(t, SERVICE_UNAVAILABLE, appErr.ErrorCode())
	assert.Equal(t, "rate-limiter-unavailable", appErr.Error())
}

func TestOptionalErrorCodeOverride(t *testing.T) {
	assert.Equal(t, BAD_REQUEST_PARAMS, BadRequest("x", BAD_REQUEST_PARAMS).ErrorCode())
	assert.Equal(t, INVALID_ACCESS_TOKEN, Unauthorized("x", INVALID_ACCESS_TOKEN).ErrorCode())
	assert.Equal(t, NOT_FOUND, NotFound("x").ErrorCode())
}
