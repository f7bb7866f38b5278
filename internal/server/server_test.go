package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ctasbihas/portfolio/internal/config"
	"github.com/ctasbihas/portfolio/internal/email"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(ttl time.Duration) Server {
	return NewServer(config.Config{PublicCacheTTL: ttl}, mux.NewRouter(), nil, email.NewClient("", "", "", "", ""), nil, nil, zerolog.Nop())
}

func TestCacheRespectsTTL(t *testing.T) {
	svr := newTestServer(time.Hour)
	_, ok := svr.CacheGet(CacheKeySitemap)
	assert.False(t, ok)

	require.NoError(t, svr.CacheSet(CacheKeySitemap, []byte("<urlset/>")))
	out, ok := svr.CacheGet(CacheKeySitemap)
	assert.True(t, ok)
	assert.Equal(t, "<urlset/>", string(out))

	require.NoError(t, svr.CacheDelete(CacheKeySitemap))
	require.NoError(t, svr.CacheDelete(CacheKeySitemap))
	_, ok = svr.CacheGet(CacheKeySitemap)
	assert.False(t, ok)

	stale := newTestServer(time.Nanosecond)
	require.NoError(t, stale.CacheSet(CacheKeyBlogFeed, []byte("feed")))
	time.Sleep(time.Millisecond)
	_, ok = stale.CacheGet(CacheKeyBlogFeed)
	assert.False(t, ok)
}

func TestSeenSince(t *testing.T) {
	svr := newTestServer(time.Hour)
	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	r.RemoteAddr = "10.0.0.1:5555"

	assert.False(t, svr.SeenSince(r, "contact", time.Minute))
	assert.True(t, svr.SeenSince(r, "contact", time.Minute))
	assert.False(t, svr.SeenSince(r, "other", time.Minute))

	require.NoError(t, svr.ForgetSeen(r, "contact"))
	assert.False(t, svr.SeenSince(r, "contact", time.Minute))

	spoofed := httptest.NewRequest(http.MethodPost, "/contact", nil)
	spoofed.RemoteAddr = "10.0.0.9:5555"
	spoofed.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")
	assert.True(t, svr.SeenSince(spoofed, "contact", time.Minute))

	r2 := httptest.NewRequest(http.MethodPost, "/contact", nil)
	r2.RemoteAddr = "10.0.0.2:5555"
	assert.False(t, svr.SeenSince(r2, "contact", time.Minute))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.168.1.9:1234"
	assert.Equal(t, "192.168.1.9", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", ClientIP(r))

	// a spoofed first hop does not change the address the proxy appended
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 203.0.113.7")
	assert.Equal(t, "203.0.113.7", ClientIP(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "unix"
	assert.Equal(t, "unix", ClientIP(r))
}

func TestIsEmail(t *testing.T) {
	svr := newTestServer(time.Hour)
	assert.True(t, svr.IsEmail("someone@example.com"))
	assert.False(t, svr.IsEmail("someone"))
	assert.False(t, svr.IsEmail("a b@example.com"))
}
