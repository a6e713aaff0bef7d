package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	cErr "storelink/internal/pkg/error"
	"storelink/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseEngine() *gin.Engine {
	logger, trace, metric, conf := testDeps()
	engine := gin.New()
	engine.Use(renderErrors())
	engine.Use(NewResponse(logger, trace, metric, conf, nil).FormatHandler())
	return engine
}

func TestResponseFormatHandlerWrapsSuccess(t *testing.T) {
	engine := newResponseEngine()
	engine.GET("/ok", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "found", "id": 7})
	})
	engine.POST("/created", func(c *gin.Context) {
		response.Create(c, gin.H{"id": 8})
	})

	w := perform(t, engine, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "OK", body.Message)
	assert.Equal(t, "found", body.Description)
	assert.Equal(t, map[string]any{"id": float64(7)}, body.Data)

	w = perform(t, engine, httptest.NewRequest(http.MethodPost, "/created", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Create Success", body.Description)
}

func TestResponseFormatHandlerLeavesWrittenAndFailures(t *testing.T) {
	engine := newResponseEngine()
	engine.GET("/raw", func(c *gin.Context) {
		c.String(http.StatusAccepted, "raw")
	})
	engine.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := perform(t, engine, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "raw", w.Body.String())

	w = perform(t, engine, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":`+strconv.Itoa(cErr.NOT_FOUND)+`}`, w.Body.String())
}

func TestRequestStartReusesStoredTime(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	first := requestStart(c)
	stored, ok := c.Get("requestDuration")
	require.True(t, ok)
	assert.Equal(t, first, stored)

	earlier := first.Add(-time.Minute)
	c.Set("requestDuration", earlier)
	assert.Equal(t, earlier, requestStart(c))
}

func TestPreviewJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, previewJSON(`{ "a" : 1 }`, 100))
	assert.Equal(t, "plain text", previewJSON("plain text", 100))
	assert.Equal(t, `{"id":7}`, previewJSON(map[string]int{"id": 7}, 100))
	assert.Equal(t, "abc…", previewJSON("abcdef", 3))
	assert.Equal(t, strings.Repeat("x", 4)+"…", previewJSON(strings.Repeat("x", 10), 4))
	assert.Contains(t, previewJSON(make(chan int), 100), "marshal error")
}
