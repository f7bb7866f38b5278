package auth

import (
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	sessionName = "_portfolio_session"
	jwtKey      = "jwt"
)

var ErrNotSignedOn = errors.New("not signed on")

// UserJWT wraps the opaque bearer token issued by the remote API.
type UserJWT struct {
	Token string `json:"token"`
	Email string `json:"email"`
	jwt.StandardClaims
}

// Provider is the single place the dashboard credential is read and written.
// Navigation, the dashboard gate and the CRUD handlers all go through it.
type Provider struct {
	store      sessions.Store
	signingKey []byte
	ttl        time.Duration
	issuer     string
}

func NewProvider(store sessions.Store, signingKey []byte, ttl time.Duration, issuer string) *Provider {
	return &Provider{
		store:      store,
		signingKey: signingKey,
		ttl:        ttl,
		issuer:     issuer,
	}
}

func (p *Provider) SignIn(w http.ResponseWriter, r *http.Request, email, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	sess, err := p.store.Get(r, sessionName)
	if err != nil && sess == nil {
		return errors.Wrap(err, "unable to get session")
	}
	now := time.Now().UTC()
	claims := UserJWT{
		Token: token,
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(p.ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    p.issuer,
		},
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.signingKey)
	if err != nil {
		return errors.Wrap(err, "unable to sign session token")
	}
	sess.Values[jwtKey] = ss
	sess.Options.MaxAge = int(p.ttl.Seconds())
	return errors.Wrap(sess.Save(r, w), "unable to save jwt into session cookie")
}

func (p *Provider) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, err := p.store.Get(r, sessionName)
	if err != nil && sess == nil {
		return errors.Wrap(err, "unable to get session")
	}
	delete(sess.Values, jwtKey)
	sess.Options.MaxAge = -1
	return errors.Wrap(sess.Save(r, w), "unable to clear session cookie")
}

func (p *Provider) Claims(r *http.Request) (*UserJWT, error) {
	sess, err := p.store.Get(r, sessionName)
	if err != nil {
		return nil, ErrNotSignedOn
	}
	tk, ok := sess.Values[jwtKey].(string)
	if !ok || tk == "" {
		return nil, ErrNotSignedOn
	}
	token, err := jwt.ParseWithClaims(tk, &UserJWT{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.signingKey, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ErrNotSignedOn
	}
	claims, ok := token.Claims.(*UserJWT)
	if !ok || claims.Token == "" {
		return nil, ErrNotSignedOn
	}
	return claims, nil
}

// Token returns the remote API bearer token of the signed on user, empty when there is none.
func (p *Provider) Token(r *http.Request) string {
	claims, err := p.Claims(r)
	if err != nil {
		return ""
	}
	return claims.Token
}

func (p *Provider) IsSignedOn(r *http.Request) bool {
	return p.Token(r) != ""
}

// Gate redirects to the home page when no valid token is present. It only guards
// page rendering: the remote API is what authorizes mutations.
func (p *Provider) Gate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !p.IsSignedOn(r) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r)
	}
}
