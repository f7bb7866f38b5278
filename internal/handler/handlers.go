package handler

import (
	"bytes"
	"fmt"
	"html"
	"image"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/email"
	"github.com/ctasbihas/portfolio/internal/imagemeta"
	"github.com/ctasbihas/portfolio/internal/notice"
	"github.com/ctasbihas/portfolio/internal/portfolio"
	"github.com/ctasbihas/portfolio/internal/project"
	"github.com/ctasbihas/portfolio/internal/seo"
	"github.com/ctasbihas/portfolio/internal/server"
	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"github.com/segmentio/ksuid"
	"github.com/snabb/sitemap"
)

const contactRateLimit = 10 * time.Minute

type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (f ContactForm) validate(svr server.Server) string {
	if f.Name == "" || f.Email == "" || f.Subject == "" || f.Message == "" {
		return "All fields are required"
	}
	if !svr.IsEmail(f.Email) {
		return "Please enter a valid email address"
	}
	return ""
}

func IndexPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.Render(w, r, http.StatusOK, "index.html", map[string]interface{}{
			"Home":    portfolio.Content(),
			"Contact": ContactForm{},
		})
	}
}

func SubmitContactHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid form")
			return
		}
		// the message is delivered as plain text, markup is stripped and entities restored
		policy := bluemonday.StrictPolicy()
		clean := func(key string) string {
			return strings.TrimSpace(html.UnescapeString(policy.Sanitize(r.FormValue(key))))
		}
		form := ContactForm{
			Name:    clean("name"),
			Email:   strings.TrimSpace(r.FormValue("email")),
			Subject: clean("subject"),
			Message: clean("message"),
		}
		if msg := form.validate(svr); msg != "" {
			svr.Render(w, r, http.StatusBadRequest, "index.html", map[string]interface{}{
				"Home":    portfolio.Content(),
				"Contact": form,
				"Notices": []notice.Notice{notice.Error(msg)},
			})
			return
		}
		emailClient := svr.GetEmail()
		if !emailClient.Enabled() {
			svr.Flash(w, r, notice.Info("Coming Soon"))
			svr.Redirect(w, r, http.StatusSeeOther, "/#contact")
			return
		}
		if svr.SeenSince(r, "contact", contactRateLimit) {
			svr.Flash(w, r, notice.Error("You already sent a message recently, please try again later"))
			svr.Redirect(w, r, http.StatusSeeOther, "/#contact")
			return
		}
		messageID := ksuid.New().String()
		body := fmt.Sprintf("Message %s\n\nFrom: %s <%s>\nSubject: %s\n\n%s", messageID, form.Name, form.Email, form.Subject, form.Message)
		err := emailClient.SendTextEmail(
			r.Context(),
			emailClient.NoReplySender(),
			emailClient.OwnerAddress(),
			&email.Address{Name: form.Name, Email: form.Email},
			fmt.Sprintf("[%s] %s", svr.GetConfig().SiteName, form.Subject),
			body,
		)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to deliver contact message %s", messageID))
			if err := svr.ForgetSeen(r, "contact"); err != nil {
				svr.Log(err, "unable to clear contact rate limit")
			}
			svr.Flash(w, r, notice.Error("Unable to send your message, please try again later"))
			svr.Redirect(w, r, http.StatusSeeOther, "/#contact")
			return
		}
		svr.Flash(w, r, notice.Success("Message sent! I'll get back to you soon."))
		svr.Redirect(w, r, http.StatusSeeOther, "/#contact")
	}
}

func ProjectsPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := project.CategoryFromSlug(r.URL.Query().Get("category"))
		svr.Render(w, r, http.StatusOK, "projects.html", map[string]interface{}{
			"Title":      "Projects",
			"Projects":   project.Filter(project.AllProjects, category),
			"Categories": project.Categories,
			"Category":   category,
		})
	}
}

func ProjectPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			projectNotFound(svr, w, r)
			return
		}
		p, ok := project.FindShowcase(project.AllProjects, id)
		if !ok {
			projectNotFound(svr, w, r)
			return
		}
		svr.Render(w, r, http.StatusOK, "project.html", map[string]interface{}{
			"Title":       p.Title,
			"Description": p.Description,
			"OGImage":     svr.GetConfig().SiteURL() + p.ImageURL(),
			"Project":     p,
		})
	}
}

func projectNotFound(svr server.Server, w http.ResponseWriter, r *http.Request) {
	svr.Render(w, r, http.StatusNotFound, "not-found.html", map[string]interface{}{
		"Title":     "Project Not Found",
		"Message":   "The project you're looking for doesn't exist.",
		"BackURL":   "/projects",
		"BackLabel": "Back to Projects",
	})
}

func BlogsPageHandler(svr server.Server, blogRepo *blog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{"Title": "Blog"}
		blogs, err := blogRepo.GetAll()
		if err != nil {
			svr.Log(err, "unable to load blogs")
			data["Notices"] = []notice.Notice{notice.Error("Failed to load blogs")}
		}
		data["Blogs"] = blogs
		svr.Render(w, r, http.StatusOK, "blogs.html", data)
	}
}

func BlogPageHandler(svr server.Server, blogRepo *blog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := blogRepo.GetByID(mux.Vars(r)["id"])
		if err != nil {
			if err != blog.ErrNotFound {
				svr.Log(err, "unable to load blog")
			}
			svr.Render(w, r, http.StatusNotFound, "not-found.html", map[string]interface{}{
				"Title":     "Blog Post Not Found",
				"Message":   "The blog post you're looking for doesn't exist.",
				"BackURL":   "/blogs",
				"BackLabel": "Back to Blogs",
			})
			return
		}
		svr.Render(w, r, http.StatusOK, "blog.html", map[string]interface{}{
			"Title":       b.Title,
			"Description": b.Summary(),
			"OGImage":     fmt.Sprintf("%s/blogs/%s/og.png", svr.GetConfig().SiteURL(), b.ID),
			"Blog":        b,
		})
	}
}

// previewWidth reads the optional ?w=<pixels> of a preview image request, 0 means full size.
func previewWidth(r *http.Request) int {
	width, _ := strconv.Atoi(r.URL.Query().Get("w"))
	if width < 0 || width >= imagemeta.Width {
		return 0
	}
	return width
}

func writePreviewImage(svr server.Server, w http.ResponseWriter, cacheKey string, img image.Image, width int) {
	buf := new(bytes.Buffer)
	if err := imagemeta.Encode(buf, img, uint(width)); err != nil {
		svr.Log(err, "unable to generate preview image")
		svr.TEXT(w, http.StatusInternalServerError, "unable to generate image")
		return
	}
	if err := svr.CacheSet(cacheKey, buf.Bytes()); err != nil {
		svr.Log(err, "unable to cache preview image")
	}
	svr.PNG(w, http.StatusOK, buf.Bytes())
}

func BlogImageHandler(svr server.Server, blogRepo *blog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		width := previewWidth(r)
		cacheKey := fmt.Sprintf("%s:blog:%s:%d", server.CacheKeyPreviewImage, id, width)
		if cached, ok := svr.CacheGet(cacheKey); ok {
			svr.PNG(w, http.StatusOK, cached)
			return
		}
		b, err := blogRepo.GetByID(id)
		if err != nil {
			if err != blog.ErrNotFound {
				svr.Log(err, "unable to load blog for preview image")
			}
			svr.TEXT(w, http.StatusNotFound, "blog post not found")
			return
		}
		writePreviewImage(svr, w, cacheKey, imagemeta.GenerateImageForBlog(b, svr.GetConfig().SiteName), width)
	}
}

func ProjectImageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			svr.TEXT(w, http.StatusNotFound, "project not found")
			return
		}
		width := previewWidth(r)
		cacheKey := fmt.Sprintf("%s:project:%d:%d", server.CacheKeyPreviewImage, id, width)
		if cached, ok := svr.CacheGet(cacheKey); ok {
			svr.PNG(w, http.StatusOK, cached)
			return
		}
		p, ok := project.FindShowcase(project.AllProjects, id)
		if !ok {
			svr.TEXT(w, http.StatusNotFound, "project not found")
			return
		}
		writePreviewImage(svr, w, cacheKey, imagemeta.GenerateImageForProject(p), width)
	}
}

func BlogsJSONHandler(blogRepo *blog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, blogRepo.Path())
	}
}

func ServeRSSFeed(svr server.Server, blogRepo *blog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := svr.CacheGet(server.CacheKeyBlogFeed); ok {
			svr.XML(w, http.StatusOK, cached)
			return
		}
		blogs, err := blogRepo.GetAll()
		if err != nil {
			svr.Log(err, "unable to retrieve blogs for RSS Feed")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		cfg := svr.GetConfig()
		feed := &feeds.Feed{
			Title:       cfg.SiteName + " Blog",
			Link:        &feeds.Link{Href: cfg.SiteURL() + "/blogs"},
			Description: "Thoughts, tutorials, and insights on web development",
			Author:      &feeds.Author{Name: cfg.OwnerName, Email: cfg.OwnerEmail},
			Created:     time.Now(),
		}
		for _, b := range blogs {
			item := &feeds.Item{
				Id:          b.ID,
				Title:       b.Title,
				Link:        &feeds.Link{Href: fmt.Sprintf("%s/blogs/%s", cfg.SiteURL(), b.ID)},
				Description: b.Summary(),
				Author:      &feeds.Author{Name: b.AuthorName()},
				Created:     b.CreatedAt,
				Updated:     b.UpdatedAt,
			}
			if thumb := b.Thumbnail(); thumb != "" {
				item.Enclosure = &feeds.Enclosure{Url: thumb, Type: "image", Length: "0"}
			}
			feed.Items = append(feed.Items, item)
		}
		rssFeed, err := feed.ToRss()
		if err != nil {
			svr.Log(err, "unable to convert rss feed to xml")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		if err := svr.CacheSet(server.CacheKeyBlogFeed, []byte(rssFeed)); err != nil {
			svr.Log(err, "unable to cache rss feed")
		}
		svr.XML(w, http.StatusOK, []byte(rssFeed))
	}
}

func SitemapHandler(svr server.Server, blogRepo *blog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := svr.CacheGet(server.CacheKeySitemap); ok {
			svr.XML(w, http.StatusOK, cached)
			return
		}
		blogs, err := blogRepo.GetAll()
		if err != nil {
			svr.Log(err, "unable to retrieve blogs for sitemap")
		}
		sitemapFile := sitemap.New()
		for _, e := range seo.SitemapEntries(svr.GetConfig().SiteURL(), blogs, project.AllProjects, time.Now().UTC()) {
			lastMod := e.LastMod
			sitemapFile.Add(&sitemap.URL{
				Loc:        e.Loc,
				LastMod:    &lastMod,
				ChangeFreq: sitemap.ChangeFreq(e.ChangeFreq),
			})
		}
		buf := new(bytes.Buffer)
		if _, err := sitemapFile.WriteTo(buf); err != nil {
			svr.Log(err, "sitemapFile.WriteTo")
			svr.TEXT(w, http.StatusInternalServerError, "unable to save sitemap file")
			return
		}
		if err := svr.CacheSet(server.CacheKeySitemap, buf.Bytes()); err != nil {
			svr.Log(err, "unable to cache sitemap")
		}
		svr.XML(w, http.StatusOK, buf.Bytes())
	}
}

func RobotsTxtHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.TEXT(w, http.StatusOK, fmt.Sprintf("User-agent: *\nDisallow: /dashboard\nDisallow: /login\nDisallow: /signup\n\nSitemap: %s/sitemap.xml\n", svr.GetConfig().SiteURL()))
	}
}

func NotFoundHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.Render(w, r, http.StatusNotFound, "not-found.html", map[string]interface{}{
			"Title":     "Page Not Found",
			"Message":   "The page you're looking for doesn't exist.",
			"BackURL":   "/",
			"BackLabel": "Back Home",
		})
	}
}

func DisableDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") || r.URL.Path == "" {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
