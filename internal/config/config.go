package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultAPIBaseURL    = "https://portfolio-backend-nu-six.vercel.app/api/v1"
	DefaultBlogsJSONPath = "./static/blogs.json"
)

type Config struct {
	Port           string
	Env            string // either prod or dev, will disable https and few other bits
	SessionKey     []byte
	JwtSigningKey  []byte
	SessionTTL     time.Duration // how long a dashboard sign on lasts
	APIBaseURL     string        // remote REST API root, versioned path included
	APITimeout     time.Duration
	BlogsJSONPath  string // static blog file served at /blogs.json and read by the public blog pages
	PublicCacheTTL time.Duration
	SiteName       string
	SiteHost       string
	SiteGithub     string
	SiteLinkedin   string
	OwnerName      string
	OwnerEmail     string // contact form messages are delivered here
	EmailAPIKey    string // empty disables contact form delivery
	EmailBaseURL   string
	NoReplyEmail   string
	SentryDSN      string
	URLProtocol    string
}

func LoadConfig() (Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		return Config{}, fmt.Errorf("PORT cannot be empty")
	}
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		return Config{}, fmt.Errorf("ENV cannot be empty")
	}
	sessionKeyString := os.Getenv("SESSION_KEY")
	if sessionKeyString == "" {
		return Config{}, fmt.Errorf("SESSION_KEY cannot be empty")
	}
	sessionKeyBytes, err := base64.StdEncoding.DecodeString(sessionKeyString)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to decode session key to bytes")
	}
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		return Config{}, fmt.Errorf("JWT_SIGNING_KEY cannot be empty")
	}
	jwtSigningKeyBytes, err := base64.StdEncoding.DecodeString(jwtSigningKey)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to decode jwt signing key to bytes")
	}
	sessionTTL, err := durationFromEnv("SESSION_TTL", 7*24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	apiTimeout, err := durationFromEnv("API_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	publicCacheTTL, err := durationFromEnv("PUBLIC_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return Config{}, err
	}
	apiBaseURL := strings.TrimRight(os.Getenv("API_BASE_URL"), "/")
	if apiBaseURL == "" {
		apiBaseURL = DefaultAPIBaseURL
	}
	blogsJSONPath := os.Getenv("BLOGS_JSON_PATH")
	if blogsJSONPath == "" {
		blogsJSONPath = DefaultBlogsJSONPath
	}
	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		siteName = "Tasbih"
	}
	siteHost := os.Getenv("SITE_HOST")
	if siteHost == "" {
		siteHost = "localhost:" + port
	}
	ownerName := os.Getenv("OWNER_NAME")
	if ownerName == "" {
		ownerName = siteName
	}
	ownerEmail := os.Getenv("OWNER_EMAIL")
	if ownerEmail == "" {
		ownerEmail = "ctasbihas@gmail.com"
	}
	emailBaseURL := os.Getenv("EMAIL_BASE_URL")
	if emailBaseURL == "" {
		emailBaseURL = "https://api.sendinblue.com"
	}
	noReplyEmail := os.Getenv("NO_REPLY_EMAIL")
	if noReplyEmail == "" {
		noReplyEmail = ownerEmail
	}
	urlProtocol := "http://"
	if !strings.EqualFold(env, "dev") {
		urlProtocol = "https://"
	}

	return Config{
		Port:           port,
		Env:            env,
		SessionKey:     sessionKeyBytes,
		JwtSigningKey:  jwtSigningKeyBytes,
		SessionTTL:     sessionTTL,
		APIBaseURL:     apiBaseURL,
		APITimeout:     apiTimeout,
		BlogsJSONPath:  blogsJSONPath,
		PublicCacheTTL: publicCacheTTL,
		SiteName:       siteName,
		SiteHost:       siteHost,
		SiteGithub:     os.Getenv("SITE_GITHUB"),
		SiteLinkedin:   os.Getenv("SITE_LINKEDIN"),
		OwnerName:      ownerName,
		OwnerEmail:     ownerEmail,
		EmailAPIKey:    os.Getenv("EMAIL_API_KEY"),
		EmailBaseURL:   emailBaseURL,
		NoReplyEmail:   noReplyEmail,
		SentryDSN:      os.Getenv("SENTRY_DSN"),
		URLProtocol:    urlProtocol,
	}, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to parse %s as duration", key)
	}
	return d, nil
}

// SiteURL is the absolute root of the site, without trailing slash.
func (c Config) SiteURL() string {
	return c.URLProtocol + c.SiteHost
}
