package preview

import (
	"testing"

	"storelink/config"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	assert.Equal(t, Params{Flag: "ist_preview", Token: "ist_preview_token"}, NewParams(nil))

	conf := &config.Configuration{}
	conf.Preview.FlagParam = "pv"
	assert.Equal(t, Params{Flag: "pv", Token: "ist_preview_token"}, NewParams(conf))
}

func TestParams_Query(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, "ist_preview=1&ist_preview_token=abc-_Z9", p.Query("abc-_Z9"))
	assert.Equal(t, "ist_preview=1&ist_preview_token=a%20b%2Bc%2F%3D", p.Query("a b+c/="))
}

func TestAppendQuery(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "no query", url: "https://a.example/p.html", want: "https://a.example/p.html?x=1"},
		{name: "existing query", url: "https://a.example/p.html?___store=en", want: "https://a.example/p.html?___store=en&x=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendQuery(tt.url, "x=1"))
		})
	}
	assert.Equal(t, "https://a.example/", AppendQuery("https://a.example/", ""))
}
