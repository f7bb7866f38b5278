package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ctasbihas/portfolio/internal/api"
	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/config"

	"github.com/PuerkitoBio/goquery"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	apply     bool
	site      string
	apiURL    string
	blogsPath string
	token     string
}

type summary struct {
	Missing int
	Created int
	Failed  int
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	if err := rootCmd(logger).Execute(); err != nil {
		logger.Fatal().Err(err).Msg("blogsync failed")
	}
}

func rootCmd(logger zerolog.Logger) *cobra.Command {
	opts := options{
		apiURL:    envOr("API_BASE_URL", config.DefaultAPIBaseURL),
		blogsPath: envOr("BLOGS_JSON_PATH", config.DefaultBlogsJSONPath),
		token:     os.Getenv("API_TOKEN"),
	}
	cmd := &cobra.Command{
		Use:   "blogsync",
		Short: "Copy the posts of blogs.json missing from the remote API, matched by title",
		Example: `blogsync
API_TOKEN=... blogsync --apply --site https://tasbih.dev`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := run(cmd.Context(), logger, opts)
			if err != nil {
				return err
			}
			if s.Failed > 0 {
				return errors.Errorf("%d posts could not be created", s.Failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "create the missing posts, without it only report them")
	cmd.Flags().StringVar(&opts.site, "site", "", "site root, each local post page is fetched to check it renders")
	cmd.Flags().StringVar(&opts.apiURL, "api", opts.apiURL, "remote API root")
	cmd.Flags().StringVar(&opts.blogsPath, "blogs", opts.blogsPath, "path of blogs.json")
	return cmd
}

func run(ctx context.Context, logger zerolog.Logger, opts options) (summary, error) {
	var s summary
	if opts.apply && opts.token == "" {
		return s, errors.New("API_TOKEN cannot be empty with --apply")
	}
	local, err := blog.NewRepository(opts.blogsPath).GetAll()
	if err != nil {
		return s, errors.Wrap(err, "unable to read local blogs")
	}
	client := api.NewClient(strings.TrimRight(opts.apiURL, "/"), 30*time.Second)
	remote, err := client.ListBlogs(ctx)
	if err != nil {
		return s, errors.Wrap(err, "unable to list remote blogs")
	}

	missing := blog.MissingByTitle(local, remote)
	s.Missing = len(missing)
	logger.Info().Int("local", len(local)).Int("remote", len(remote)).Int("missing", s.Missing).Bool("apply", opts.apply).Msg("compared blog stores")
	for _, b := range missing {
		if !opts.apply {
			logger.Info().Str("id", b.ID).Str("title", b.Title).Msg("would create")
			continue
		}
		if _, err := client.CreateBlog(ctx, opts.token, b.Input()); err != nil {
			logger.Error().Err(err).Str("title", b.Title).Msg(api.Message(err, "unable to create blog"))
			s.Failed++
			continue
		}
		logger.Info().Str("title", b.Title).Msg("created")
		s.Created++
	}

	if opts.site != "" {
		for _, b := range local {
			checkPage(ctx, logger, strings.TrimRight(opts.site, "/")+"/blogs/"+b.ID, b.Title)
		}
	}
	logger.Info().Int("created", s.Created).Int("failed", s.Failed).Msg("done")
	return s, nil
}

func checkPage(ctx context.Context, logger zerolog.Logger, pageURL, want string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		logger.Error().Err(err).Str("url", pageURL).Msg("invalid page url")
		return false
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("url", pageURL).Msg("unable to fetch page")
		return false
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		logger.Warn().Str("url", pageURL).Int("status", res.StatusCode).Msg("page did not render")
		return false
	}
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		logger.Error().Err(err).Str("url", pageURL).Msg("unable to parse page")
		return false
	}
	title := strings.TrimSpace(doc.Find(".blog-post .post-title").Text())
	if title != want {
		logger.Warn().Str("url", pageURL).Str("got", title).Str("want", want).Msg("page title mismatch")
		return false
	}
	logger.Info().Str("url", pageURL).Msg("page ok")
	return true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
