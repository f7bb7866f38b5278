package seo

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/project"
)

type SitemapEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
}

func StaticPages() []string {
	return []string{
		"",
		"projects",
		"blogs",
		"login",
	}
}

// SitemapEntries lists every public page: static pages, one page per showcase
// category and project, and one per blog post.
func SitemapEntries(siteURL string, blogs []blog.Blog, projects []project.Showcase, now time.Time) []SitemapEntry {
	siteURL = strings.TrimRight(siteURL, "/")
	entries := make([]SitemapEntry, 0, len(StaticPages())+len(project.Categories)+len(projects)+len(blogs))
	for _, p := range StaticPages() {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/%s", siteURL, p),
			LastMod:    now,
			ChangeFreq: "weekly",
		})
	}
	for _, c := range project.Categories {
		if c == project.CategoryAll {
			continue
		}
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/projects?category=%s", siteURL, url.QueryEscape(c.Slug())),
			LastMod:    now,
			ChangeFreq: "monthly",
		})
	}
	for _, p := range projects {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/projects/%d", siteURL, p.ID),
			LastMod:    now,
			ChangeFreq: "monthly",
		})
	}
	for _, b := range blogs {
		lastMod := b.UpdatedAt
		if lastMod.IsZero() {
			lastMod = b.CreatedAt
		}
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/blogs/%s", siteURL, url.PathEscape(b.ID)),
			LastMod:    lastMod,
			ChangeFreq: "monthly",
		})
	}
	return entries
}
