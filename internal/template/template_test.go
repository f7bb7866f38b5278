package template

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTemplate(t *testing.T) *Template {
	t.Helper()
	tmpl, err := NewTemplate(fstest.MapFS{
		"static/views/hello.html": {Data: []byte(`<p>{{ .Name }} {{ humannumber .Count }}</p>`)},
		"static/views/broken.html": {Data: []byte(`{{ .Missing.Field }}`)},
		"static/views/markdown.html": {Data: []byte(`{{ markdown .Body }}`)},
	})
	require.NoError(t, err)
	return tmpl
}

func TestRender(t *testing.T) {
	tmpl := newTestTemplate(t)
	rec := httptest.NewRecorder()

	require.NoError(t, tmpl.Render(rec, http.StatusCreated, "hello.html", map[string]interface{}{"Name": "<b>", "Count": 1200}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "<p>&lt;b&gt; 1,200</p>", rec.Body.String())
}

func TestRenderFailureWritesNothing(t *testing.T) {
	tmpl := newTestTemplate(t)
	rec := httptest.NewRecorder()

	err := tmpl.Render(rec, http.StatusOK, "broken.html", map[string]interface{}{"Missing": 3})
	assert.Error(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestMarkdownToHTML(t *testing.T) {
	tmpl := newTestTemplate(t)

	out := string(tmpl.MarkdownToHTML("# Title\n\n```go\nfmt.Println(1)\n```\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n<script>alert(1)</script>\n"))
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, `<code class="language-go">`)
	assert.Contains(t, out, "<table>")
	assert.NotContains(t, out, "<script>")
}

func TestMarkdownAutolink(t *testing.T) {
	tmpl := newTestTemplate(t)
	out := string(tmpl.MarkdownToHTML("see https://example.com"))
	assert.Contains(t, out, `href="https://example.com"`)
}

func TestNewTemplateMissingViews(t *testing.T) {
	_, err := NewTemplate(fstest.MapFS{})
	assert.Error(t, err)
}
