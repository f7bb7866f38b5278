package template

import (
	"bytes"
	"io/fs"
	"net/http"
	"regexp"
	"strings"
	"time"

	stdtemplate "html/template"

	humanize "github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	blackfriday "gopkg.in/russross/blackfriday.v2"
)

type Template struct {
	templates *stdtemplate.Template
	policy    *bluemonday.Policy
}

// NewTemplate parses every view under static/views of fsys.
func NewTemplate(fsys fs.FS) (*Template, error) {
	t := &Template{policy: markdownPolicy()}
	funcMap := stdtemplate.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"humantime": humanize.Time,
		"humannumber": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"humandate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"join": strings.Join,
		"markdown": t.MarkdownToHTML,
		"initial": func(s string) string {
			s = strings.TrimSpace(s)
			if s == "" {
				return ""
			}
			return strings.ToUpper(string([]rune(s)[0]))
		},
	}
	tmpl, err := stdtemplate.New("stdtmpl").Funcs(funcMap).ParseFS(fsys, "static/views/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse views")
	}
	t.templates = tmpl
	return t, nil
}

// Render executes the view into a buffer first so a failing template never leaves
// a half written page behind.
func (t *Template) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := t.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, "unable to render %s", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func (t *Template) StringToHTML(s string) stdtemplate.HTML {
	return stdtemplate.HTML(s)
}

// MarkdownToHTML renders GitHub flavoured markdown (tables, fenced code blocks and
// autolinks) and sanitises the result. Fenced code keeps its language-x class for
// client side highlighting.
func (t *Template) MarkdownToHTML(s string) stdtemplate.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink |
			blackfriday.NofollowLinks |
			blackfriday.NoreferrerLinks |
			blackfriday.HrefTargetBlank,
	})
	out := blackfriday.Run(
		[]byte(strings.ReplaceAll(s, "\r\n", "\n")),
		blackfriday.WithRenderer(renderer),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Autolink),
	)
	return stdtemplate.HTML(t.policy.SanitizeBytes(out))
}

func markdownPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+#-]+$`)).OnElements("code")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	return p
}
