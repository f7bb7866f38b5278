package handler

import (
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ctasbihas/portfolio/internal/api"
	"github.com/ctasbihas/portfolio/internal/auth"
	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/config"
	"github.com/ctasbihas/portfolio/internal/email"
	"github.com/ctasbihas/portfolio/internal/notice"
	"github.com/ctasbihas/portfolio/internal/server"
	"github.com/ctasbihas/portfolio/internal/template"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const blogsFixture = `[
  {"id": "first-post", "title": "First Post", "content": "# Hello\n\n` + "```go\\nfmt.Println(\\\"hi\\\")\\n```" + `\n", "excerpt": "The first one", "published": true,
   "created_at": "2025-06-12T09:30:00Z", "updated_at": "2025-06-12T09:30:00Z", "author_id": "u1", "profiles": {"full_name": "Tasbih Ahmed"}},
  {"id": "second-post", "title": "Second Post", "content": "Plain text", "excerpt": null, "published": true,
   "created_at": "2025-07-01T10:00:00Z", "updated_at": "2025-07-01T10:00:00Z", "author_id": "u1", "profiles": null}
]`

// fakeBackend stands in for the remote REST API and counts every call by "METHOD path".
type fakeBackend struct {
	mu           sync.Mutex
	calls        map[string]int
	unauthorized bool
	failLists    bool
}

func (f *fakeBackend) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeBackend) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = make(map[string]int)
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.Method+" "+r.URL.Path]++
	unauthorized, failLists := f.unauthorized, f.failLists
	f.mu.Unlock()

	reply := func(status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
	if r.Method != http.MethodGet && !strings.HasPrefix(r.URL.Path, "/auth/") && unauthorized {
		reply(http.StatusUnauthorized, `{"success":false,"message":"Unauthorized"}`)
		return
	}
	if r.Method == http.MethodGet && failLists {
		reply(http.StatusInternalServerError, `{"success":false,"message":"database unavailable"}`)
		return
	}
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
		var rq api.LoginRq
		json.NewDecoder(r.Body).Decode(&rq)
		if rq.Password != "pw" {
			reply(http.StatusUnauthorized, `{"success":false,"message":"Invalid credentials"}`)
			return
		}
		reply(http.StatusOK, `{"success":true,"data":{"token":"remote-token"}}`)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/signup":
		reply(http.StatusCreated, `{"success":true,"message":"User created"}`)
	case r.Method == http.MethodGet && r.URL.Path == "/projects":
		reply(http.StatusOK, `{"success":true,"data":[
			{"_id":"p1","title":"ZipRide","status":"Completed","techStacks":["React","Node.js"],"featured":true},
			{"_id":"p2","title":"Librium","status":"In Progress","techStacks":["React"]}
		],"pagination":{"page":1,"limit":10,"total":2,"totalPages":1}}`)
	case r.Method == http.MethodGet && r.URL.Path == "/users":
		reply(http.StatusOK, `{"success":true,"data":[
			{"id":"u1","name":"Tasbih Ahmed","email":"ctasbihas@gmail.com","createdAt":"2025-01-02T00:00:00Z"},
			{"id":"u2","name":null,"email":null,"createdAt":"2025-02-02T00:00:00Z"},
			{"id":"u3","name":"Jane","email":"jane@example.com","createdAt":"2025-03-02T00:00:00Z"}
		]}`)
	case r.Method == http.MethodGet && r.URL.Path == "/blogs":
		reply(http.StatusOK, `{"success":true,"data":[{"id":"b1","title":"Remote Post","content":"Body","published":false}]}`)
	case r.Method == http.MethodPost || r.Method == http.MethodPatch:
		reply(http.StatusOK, `{"success":true,"data":{}}`)
	case r.Method == http.MethodDelete:
		reply(http.StatusOK, `{"success":true,"message":"deleted"}`)
	default:
		reply(http.StatusNotFound, `{"success":false,"message":"Not found"}`)
	}
}

type testEnv struct {
	t       *testing.T
	backend *fakeBackend
	site    *httptest.Server
	client  *http.Client
}

type envOption func(*config.Config)

func withEmail(baseURL string) envOption {
	return func(cfg *config.Config) {
		cfg.EmailAPIKey = "test-key"
		cfg.EmailBaseURL = baseURL
	}
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	backend := &fakeBackend{calls: make(map[string]int)}
	backendSrv := httptest.NewServer(backend)
	t.Cleanup(backendSrv.Close)

	blogsPath := filepath.Join(t.TempDir(), "blogs.json")
	require.NoError(t, os.WriteFile(blogsPath, []byte(blogsFixture), 0o644))

	cfg := config.Config{
		Port:           "0",
		Env:            "dev",
		SessionTTL:     time.Hour,
		APIBaseURL:     backendSrv.URL,
		APITimeout:     time.Second,
		BlogsJSONPath:  blogsPath,
		PublicCacheTTL: time.Minute,
		SiteName:       "Tasbih",
		SiteHost:       "localhost",
		OwnerName:      "Tasbih Ahmed",
		OwnerEmail:     "owner@example.com",
		NoReplyEmail:   "noreply@example.com",
		URLProtocol:    "http://",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tmpl, err := template.NewTemplate(os.DirFS("../.."))
	require.NoError(t, err)
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	svr := server.NewServer(
		cfg,
		mux.NewRouter(),
		tmpl,
		email.NewClient(cfg.EmailAPIKey, cfg.EmailBaseURL, cfg.OwnerEmail, cfg.NoReplyEmail, cfg.SiteName),
		auth.NewProvider(store, []byte("signing-key"), cfg.SessionTTL, cfg.SiteURL()),
		notice.NewStore(store),
		zerolog.Nop(),
	)
	assets, err := fs.Sub(os.DirFS("../.."), "static/assets")
	require.NoError(t, err)
	Routes(svr, api.NewClient(cfg.APIBaseURL, cfg.APITimeout), blog.NewRepository(cfg.BlogsJSONPath), assets)

	site := httptest.NewServer(svr.Handler())
	t.Cleanup(site.Close)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testEnv{
		t:       t,
		backend: backend,
		site:    site,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (e *testEnv) get(path string) *http.Response {
	e.t.Helper()
	res, err := e.client.Get(e.site.URL + path)
	require.NoError(e.t, err)
	e.t.Cleanup(func() { res.Body.Close() })
	return res
}

func (e *testEnv) post(path string, form url.Values) *http.Response {
	e.t.Helper()
	res, err := e.client.PostForm(e.site.URL+path, form)
	require.NoError(e.t, err)
	e.t.Cleanup(func() { res.Body.Close() })
	return res
}

// follow issues the GET a 303 or 302 response points to.
func (e *testEnv) follow(res *http.Response) *http.Response {
	e.t.Helper()
	loc := res.Header.Get("Location")
	require.NotEmpty(e.t, loc, "expected a redirect, got %d", res.StatusCode)
	u, err := url.Parse(loc)
	require.NoError(e.t, err)
	return e.get(u.RequestURI())
}

func (e *testEnv) signIn() {
	e.t.Helper()
	res := e.post("/login", url.Values{"email": {"me@example.com"}, "password": {"pw"}})
	require.Equal(e.t, http.StatusSeeOther, res.StatusCode)
	require.Equal(e.t, "/dashboard", res.Header.Get("Location"))
	// consume the "Logged in" flash
	require.Equal(e.t, http.StatusOK, e.follow(res).StatusCode)
}

func doc(t *testing.T, res *http.Response) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(res.Body)
	require.NoError(t, err)
	return d
}

func noticeTexts(d *goquery.Document) []string {
	out := make([]string, 0)
	d.Find(".notice").Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}
