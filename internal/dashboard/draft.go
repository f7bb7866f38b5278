package dashboard

import (
	"net/url"
	"strings"

	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/project"
)

// ValidationError is returned by Save when a draft is rejected before any request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ProjectDraft struct {
	Title            string
	ShortDescription string
	LongDescription  string
	TechStacks       string // comma separated as typed in the form
	Frontend         string
	Backend          string
	GithubFrontend   string
	GithubBackend    string
	BannerImage      string
	Status           project.Status
	Featured         bool
}

func NewProjectDraft() ProjectDraft {
	return ProjectDraft{Status: project.StatusInProgress}
}

func ProjectDraftFromForm(form url.Values) ProjectDraft {
	d := ProjectDraft{
		Title:            strings.TrimSpace(form.Get("title")),
		ShortDescription: strings.TrimSpace(form.Get("shortDescription")),
		LongDescription:  strings.TrimSpace(form.Get("longDescription")),
		TechStacks:       form.Get("techStacks"),
		Frontend:         strings.TrimSpace(form.Get("frontend")),
		Backend:          strings.TrimSpace(form.Get("backend")),
		GithubFrontend:   strings.TrimSpace(form.Get("githubFrontend")),
		GithubBackend:    strings.TrimSpace(form.Get("githubBackend")),
		BannerImage:      strings.TrimSpace(form.Get("bannerImage")),
		Status:           project.Status(form.Get("status")),
		Featured:         checked(form.Get("featured")),
	}
	if d.Status == "" {
		d.Status = project.StatusInProgress
	}
	return d
}

func DraftFromProject(p project.Project) ProjectDraft {
	status := p.Status
	if status == "" {
		status = project.StatusInProgress
	}
	return ProjectDraft{
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		TechStacks:       strings.Join(p.TechStacks, ", "),
		Frontend:         p.URLs.Frontend,
		Backend:          p.URLs.Backend,
		GithubFrontend:   p.URLs.GithubFrontend,
		GithubBackend:    p.URLs.GithubBackend,
		BannerImage:      p.BannerImage,
		Status:           status,
		Featured:         p.Featured,
	}
}

func (d ProjectDraft) Validate() error {
	if d.Title == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if !d.Status.Valid() {
		return &ValidationError{Field: "status", Message: "Status must be one of In Progress, Completed or On Hold"}
	}
	return nil
}

// Stacks splits the comma separated tech stack input, dropping blanks.
func (d ProjectDraft) Stacks() []string {
	out := make([]string, 0)
	for _, s := range strings.Split(d.TechStacks, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (d ProjectDraft) Input() project.Input {
	return project.Input{
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		LongDescription:  d.LongDescription,
		TechStacks:       d.Stacks(),
		URLs: project.URLs{
			Frontend:       d.Frontend,
			Backend:        d.Backend,
			GithubFrontend: d.GithubFrontend,
			GithubBackend:  d.GithubBackend,
		},
		BannerImage: d.BannerImage,
		Status:      d.Status,
		Featured:    d.Featured,
	}
}

type BlogDraft struct {
	Title        string
	Content      string
	Excerpt      string
	ThumbnailURL string
	Published    bool
}

func BlogDraftFromForm(form url.Values) BlogDraft {
	return BlogDraft{
		Title:        strings.TrimSpace(form.Get("title")),
		Content:      form.Get("content"),
		Excerpt:      strings.TrimSpace(form.Get("excerpt")),
		ThumbnailURL: strings.TrimSpace(form.Get("thumbnail_url")),
		Published:    checked(form.Get("published")),
	}
}

func DraftFromBlog(b blog.Blog) BlogDraft {
	d := BlogDraft{
		Title:     b.Title,
		Content:   b.Content,
		Published: b.Published,
	}
	if b.Excerpt != nil {
		d.Excerpt = *b.Excerpt
	}
	if b.ThumbnailURL != nil {
		d.ThumbnailURL = *b.ThumbnailURL
	}
	return d
}

func (d BlogDraft) Validate() error {
	if d.Title == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if strings.TrimSpace(d.Content) == "" {
		return &ValidationError{Field: "content", Message: "Content is required"}
	}
	return nil
}

func (d BlogDraft) Input() blog.Input {
	return blog.Input{
		Title:        d.Title,
		Content:      d.Content,
		Excerpt:      d.Excerpt,
		ThumbnailURL: d.ThumbnailURL,
		Published:    d.Published,
	}
}

func checked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
