package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent(t *testing.T) {
	c := Content()
	assert.Len(t, c.TopProjects, 3)
	assert.Len(t, c.Roles, 4)
	assert.Len(t, c.Skills, 4)
	for _, p := range c.TopProjects {
		assert.True(t, p.Featured)
	}
}

func TestLinkExternal(t *testing.T) {
	assert.True(t, Link{Href: "https://maps.google.com"}.External())
	assert.False(t, Link{Href: "mailto:x@y.z"}.External())
	assert.False(t, Link{Href: "/blogs"}.External())
}
