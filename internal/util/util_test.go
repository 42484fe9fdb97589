package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3}
	lookup := func(k string) (int, bool) {
		v, ok := m[k]
		return v, ok
	}

	v, ok := First(lookup, "a", "c", "b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = First(lookup, "x", "y")
	assert.False(t, ok)
	assert.Zero(t, v)

	_, ok = First[string, int](lookup)
	assert.False(t, ok, "no candidates resolves nothing")
}

func TestProxyFunc(t *testing.T) {
	fn := ProxyFunc("http://proxy.local:3128", "", "internal.local")

	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/api/predict", nil)
	u, err := fn(req)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "proxy.local:3128", u.Host)

	req = httptest.NewRequest(http.MethodGet, "http://internal.local/api/predict", nil)
	u, err = fn(req)
	require.NoError(t, err)
	assert.Nil(t, u, "NO_PROXY hosts bypass the proxy")
}
