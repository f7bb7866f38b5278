package blog

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Profile struct {
	FullName *string `json:"full_name"`
}

type Blog struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Excerpt      *string   `json:"excerpt"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	AuthorID     string    `json:"author_id"`
	Profiles     *Profile  `json:"profiles"`
}

// Input is the body sent to the remote API on create and update.
type Input struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Excerpt      string `json:"excerpt"`
	ThumbnailURL string `json:"thumbnail_url"`
	Published    bool   `json:"published"`
}

const summaryLength = 160

func (b Blog) AuthorName() string {
	if b.Profiles != nil && b.Profiles.FullName != nil && strings.TrimSpace(*b.Profiles.FullName) != "" {
		return *b.Profiles.FullName
	}
	return "Anonymous"
}

// Summary is the excerpt when present, otherwise the start of the content.
func (b Blog) Summary() string {
	if b.Excerpt != nil && strings.TrimSpace(*b.Excerpt) != "" {
		return *b.Excerpt
	}
	content := strings.Join(strings.Fields(b.Content), " ")
	if utf8.RuneCountInString(content) <= summaryLength {
		return content
	}
	return string([]rune(content)[:summaryLength]) + "..."
}

func (b Blog) Thumbnail() string {
	if b.ThumbnailURL == nil {
		return ""
	}
	return *b.ThumbnailURL
}

// Edited reports whether the post was updated after it was first created.
func (b Blog) Edited() bool {
	return !b.UpdatedAt.IsZero() && b.UpdatedAt.After(b.CreatedAt)
}

func (b Blog) Input() Input {
	in := Input{Title: b.Title, Content: b.Content, ThumbnailURL: b.Thumbnail(), Published: b.Published}
	if b.Excerpt != nil {
		in.Excerpt = *b.Excerpt
	}
	return in
}

// MissingByTitle returns the posts of local whose title, compared case-insensitively,
// is not used by any post of remote.
func MissingByTitle(local, remote []Blog) []Blog {
	seen := make(map[string]struct{}, len(remote))
	for _, b := range remote {
		seen[strings.ToLower(strings.TrimSpace(b.Title))] = struct{}{}
	}
	out := make([]Blog, 0)
	for _, b := range local {
		if _, ok := seen[strings.ToLower(strings.TrimSpace(b.Title))]; !ok {
			out = append(out, b)
		}
	}
	return out
}
