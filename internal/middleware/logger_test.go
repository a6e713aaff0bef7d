package middleware

import (
	"net/url"
	"testing"

	"storelink/internal/preview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactQuery(t *testing.T) {
	logger, trace, _, conf := testDeps()
	m := NewLogger(logger, trace, conf, preview.DefaultParams(), nil)

	out := m.redactQuery("ist_preview=1&ist_preview_token=secret-token&page=2")
	values, err := url.ParseQuery(out)
	require.NoError(t, err)
	assert.Equal(t, redacted, values.Get("ist_preview_token"))
	assert.Equal(t, "1", values.Get("ist_preview"))
	assert.Equal(t, "2", values.Get("page"))
	assert.NotContains(t, out, "secret-token")

	assert.Equal(t, "", m.redactQuery(""))
	assert.Equal(t, "page=2", m.redactQuery("page=2"))
}

func TestSkipLogging(t *testing.T) {
	assert.True(t, skipLogging("/metrics"))
	assert.True(t, skipLogging("/swagger/*any"))
	assert.True(t, skipLogging("/readyz"))
	assert.False(t, skipLogging("/admin/products/:productID/store-urls"))
}

func TestHashClientIP(t *testing.T) {
	h := hashClientIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, hashClientIP("203.0.113.7"))
	assert.NotEqual(t, h, hashClientIP("203.0.113.8"))
}
