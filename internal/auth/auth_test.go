package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(ttl time.Duration) *Provider {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	return NewProvider(store, []byte("signing-key"), ttl, "http://localhost")
}

func withCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func signedRequest(t *testing.T, p *Provider, token string) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, p.SignIn(rec, httptest.NewRequest(http.MethodPost, "/login", nil), "me@example.com", token))
	return withCookies(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)
}

func TestSignInRoundTrip(t *testing.T) {
	p := newProvider(time.Hour)
	req := signedRequest(t, p, "remote-token")

	assert.True(t, p.IsSignedOn(req))
	assert.Equal(t, "remote-token", p.Token(req))
	claims, err := p.Claims(req)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", claims.Email)
	assert.Equal(t, "http://localhost", claims.Issuer)
}

func TestNoCookie(t *testing.T) {
	p := newProvider(time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	assert.False(t, p.IsSignedOn(req))
	_, err := p.Claims(req)
	assert.Equal(t, ErrNotSignedOn, err)
}

func TestEmptyTokenRejected(t *testing.T) {
	p := newProvider(time.Hour)
	assert.Error(t, p.SignIn(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/login", nil), "", ""))
}

func TestExpiredSession(t *testing.T) {
	p := newProvider(-time.Minute)
	req := signedRequest(t, p, "remote-token")
	assert.False(t, p.IsSignedOn(req))
}

func TestForeignSignatureRejected(t *testing.T) {
	p := newProvider(time.Hour)
	other := NewProvider(p.store, []byte("another-key"), time.Hour, "x")
	req := signedRequest(t, other, "remote-token")
	assert.False(t, p.IsSignedOn(req))
}

func TestUnsignedTokenRejected(t *testing.T) {
	p := newProvider(time.Hour)
	tk, err := jwt.NewWithClaims(jwt.SigningMethodNone, UserJWT{Token: "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, _ := p.store.Get(req, sessionName)
	sess.Values[jwtKey] = tk
	require.NoError(t, sess.Save(req, rec))

	assert.False(t, p.IsSignedOn(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
}

func TestSignOut(t *testing.T) {
	p := newProvider(time.Hour)
	req := signedRequest(t, p, "remote-token")

	rec := httptest.NewRecorder()
	require.NoError(t, p.SignOut(rec, req))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestGate(t *testing.T) {
	p := newProvider(time.Hour)
	called := 0
	h := p.Gate(func(w http.ResponseWriter, r *http.Request) {
		called++
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 0, called)

	rec = httptest.NewRecorder()
	h(rec, signedRequest(t, p, "remote-token"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, called)
}
