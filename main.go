package main

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ctasbihas/portfolio/internal/api"
	"github.com/ctasbihas/portfolio/internal/auth"
	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/config"
	"github.com/ctasbihas/portfolio/internal/email"
	"github.com/ctasbihas/portfolio/internal/handler"
	"github.com/ctasbihas/portfolio/internal/notice"
	"github.com/ctasbihas/portfolio/internal/server"
	"github.com/ctasbihas/portfolio/internal/template"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
)

//go:embed static/views static/assets
var embedded embed.FS

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to load config")
	}
	tmpl, err := template.NewTemplate(embedded)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to parse templates")
	}
	assets, err := fs.Sub(embedded, "static/assets")
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to load static assets")
	}

	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Secure = !strings.EqualFold(cfg.Env, "dev")

	svr := server.NewServer(
		cfg,
		mux.NewRouter(),
		tmpl,
		email.NewClient(cfg.EmailAPIKey, cfg.EmailBaseURL, cfg.OwnerEmail, cfg.NoReplyEmail, cfg.SiteName),
		auth.NewProvider(sessionStore, cfg.JwtSigningKey, cfg.SessionTTL, cfg.SiteURL()),
		notice.NewStore(sessionStore),
		logger,
	)
	handler.Routes(
		svr,
		api.NewClient(cfg.APIBaseURL, cfg.APITimeout),
		blog.NewRepository(cfg.BlogsJSONPath),
		assets,
	)

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("api", cfg.APIBaseURL).Msg("starting server")
	if err := svr.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
