package server

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/ctasbihas/portfolio/internal/auth"
	"github.com/ctasbihas/portfolio/internal/config"
	"github.com/ctasbihas/portfolio/internal/email"
	"github.com/ctasbihas/portfolio/internal/middleware"
	"github.com/ctasbihas/portfolio/internal/nav"
	"github.com/ctasbihas/portfolio/internal/notice"
	"github.com/ctasbihas/portfolio/internal/template"
	"github.com/getsentry/raven-go"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const (
	CacheKeyBlogFeed     = "blogFeed"
	CacheKeySitemap      = "sitemap"
	CacheKeyPreviewImage = "previewImage"
)

type Server struct {
	cfg         config.Config
	router      *mux.Router
	tmpl        *template.Template
	emailClient email.Client
	Auth        *auth.Provider
	Notices     *notice.Store
	bigCache    *bigcache.BigCache
	emailRe     *regexp.Regexp
	logger      zerolog.Logger
}

func NewServer(
	cfg config.Config,
	r *mux.Router,
	t *template.Template,
	emailClient email.Client,
	authProvider *auth.Provider,
	notices *notice.Store,
	logger zerolog.Logger,
) Server {
	if cfg.SentryDSN != "" {
		raven.SetDSN(cfg.SentryDSN)
	}

	bigCache, err := bigcache.NewBigCache(bigcache.DefaultConfig(12 * time.Hour))
	svr := Server{
		cfg:         cfg,
		router:      r,
		tmpl:        t,
		emailClient: emailClient,
		Auth:        authProvider,
		Notices:     notices,
		bigCache:    bigCache,
		emailRe:     regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$"),
		logger:      logger,
	}
	if err != nil {
		svr.Log(err, "unable to initialise big cache")
	}

	return svr
}

func (s Server) RegisterRoute(path string, handler func(w http.ResponseWriter, r *http.Request), methods []string) {
	s.router.HandleFunc(path, handler).Methods(methods...)
}

func (s Server) RegisterPathPrefix(path string, handler http.Handler, methods []string) {
	s.router.PathPrefix(path).Handler(handler).Methods(methods...)
}

func (s Server) SetNotFoundHandler(handler http.HandlerFunc) {
	s.router.NotFoundHandler = handler
}

func (s Server) GetConfig() config.Config {
	return s.cfg
}

func (s Server) GetEmail() email.Client {
	return s.emailClient
}

func (s Server) Logger() zerolog.Logger {
	return s.logger
}

// Render adds the layout data shared by every page (site details, navigation,
// pending notices) to data and renders htmlView. Notices already in data are kept
// after the flashed ones.
func (s Server) Render(w http.ResponseWriter, r *http.Request, status int, htmlView string, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}
	signedOn := s.Auth.IsSignedOn(r)
	notices, err := s.Notices.Pop(w, r)
	if err != nil {
		s.Log(err, "unable to pop notices")
	}
	if inline, ok := data["Notices"].([]notice.Notice); ok {
		notices = append(notices, inline...)
	}
	data["Notices"] = notices
	data["SiteName"] = s.cfg.SiteName
	data["SiteHost"] = s.cfg.SiteHost
	data["SiteURL"] = s.cfg.SiteURL()
	data["OwnerName"] = s.cfg.OwnerName
	data["OwnerEmail"] = s.cfg.OwnerEmail
	data["Menu"] = nav.NewMenu(r.URL.Path, signedOn)
	data["Sidebar"] = nav.Sidebar()
	data["SignedOn"] = signedOn
	data["CurrentYear"] = time.Now().Year()
	data["RequestID"] = middleware.RequestID(r.Context())

	if err := s.tmpl.Render(w, status, htmlView, data); err != nil {
		s.Log(err, fmt.Sprintf("unable to render %s", htmlView))
		s.TEXT(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (s Server) Flash(w http.ResponseWriter, r *http.Request, n notice.Notice) {
	if err := s.Notices.Add(w, r, n); err != nil {
		s.Log(err, "unable to flash notice")
	}
}

func (s Server) XML(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(status)
	w.Write(data)
}

func (s Server) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (s Server) PNG(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(status)
	w.Write(data)
}

func (s Server) TEXT(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func (s Server) Log(err error, msg string) {
	if s.cfg.SentryDSN != "" {
		raven.CaptureErrorAndWait(err, map[string]string{"ctx": msg})
	}
	s.logger.Error().Err(err).Msg(msg)
}

func (s Server) Redirect(w http.ResponseWriter, r *http.Request, status int, dst string) {
	http.Redirect(w, r, dst, status)
}

// Handler is the router behind the middleware chain.
func (s Server) Handler() http.Handler {
	return middleware.HTTPSMiddleware(
		middleware.GzipMiddleware(
			middleware.LoggingMiddleware(middleware.HeadersMiddleware(s.router, s.cfg.Env), s.logger),
		),
		s.cfg.Env,
	)
}

func (s Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	if s.cfg.Env == "dev" {
		s.logger.Info().Msgf("local env http://localhost:%s", s.cfg.Port)
		addr = fmt.Sprintf("localhost:%s", s.cfg.Port)
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// CacheGet returns entries written by CacheSet for at most the public cache ttl.
func (s Server) CacheGet(key string) ([]byte, bool) {
	if s.bigCache == nil {
		return nil, false
	}
	out, err := s.bigCache.Get(key)
	if err != nil || len(out) < 8 {
		return nil, false
	}
	storedAt := time.Unix(0, int64(binary.BigEndian.Uint64(out[:8])))
	if time.Since(storedAt) > s.cfg.PublicCacheTTL {
		s.bigCache.Delete(key)
		return nil, false
	}
	return out[8:], true
}

func (s Server) CacheSet(key string, val []byte) error {
	if s.bigCache == nil {
		return nil
	}
	entry := make([]byte, 8+len(val))
	binary.BigEndian.PutUint64(entry[:8], uint64(time.Now().UnixNano()))
	copy(entry[8:], val)
	return s.bigCache.Set(key, entry)
}

func (s Server) CacheDelete(key string) error {
	if s.bigCache == nil {
		return nil
	}
	err := s.bigCache.Delete(key)
	if err == bigcache.ErrEntryNotFound {
		return nil
	}
	return err
}

// ForgetSeen drops the visit SeenSince recorded for the client ip under key.
func (s Server) ForgetSeen(r *http.Request, key string) error {
	ip := ClientIP(r)
	if ip == "" {
		return nil
	}
	return s.CacheDelete(key + ":" + ip)
}

// SeenSince reports whether the client ip hit key within timeAgo, recording the
// visit when it did not.
func (s Server) SeenSince(r *http.Request, key string, timeAgo time.Duration) bool {
	if s.bigCache == nil {
		return false
	}
	ip := ClientIP(r)
	if ip == "" {
		return false
	}
	cacheKey := key + ":" + ip
	now := []byte(time.Now().Format(time.RFC3339))
	lastSeen, err := s.bigCache.Get(cacheKey)
	if err == bigcache.ErrEntryNotFound {
		s.bigCache.Set(cacheKey, now)
		return false
	}
	if err != nil {
		return false
	}
	lastSeenTime, err := time.Parse(time.RFC3339, string(lastSeen))
	if err != nil {
		s.bigCache.Set(cacheKey, now)
		return false
	}
	if !lastSeenTime.After(time.Now().Add(-timeAgo)) {
		s.bigCache.Set(cacheKey, now)
		return false
	}

	return true
}

// ClientIP is the last X-Forwarded-For hop, the one appended by the proxy in front of
// the server. Earlier hops are set by the client and cannot be trusted.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("x-forwarded-for"); fwd != "" {
		hops := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(hops[len(hops)-1]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s Server) IsEmail(val string) bool {
	return s.emailRe.MatchString(val)
}
