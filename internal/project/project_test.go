package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var fixture = []Showcase{
	{ID: 1, Title: "a", Category: CategoryFullStack},
	{ID: 2, Title: "b", Category: CategoryFrontend},
	{ID: 3, Title: "c", Category: CategoryFrontend},
	{ID: 4, Title: "d", Category: CategoryBackend},
}

func TestFilterAllReturnsInputUnmodified(t *testing.T) {
	got := Filter(fixture, CategoryAll)
	assert.Equal(t, fixture, got)
	assert.Same(t, &fixture[0], &got[0])
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(fixture, CategoryFrontend)
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, CategoryFrontend, p.Category)
	}
	assert.Equal(t, []int{2, 3}, []int{got[0].ID, got[1].ID})

	assert.Len(t, Filter(fixture, CategoryBackend), 1)
	assert.Empty(t, Filter(fixture[1:3], CategoryBackend))
}

func TestCategoryFromSlug(t *testing.T) {
	assert.Equal(t, CategoryFullStack, CategoryFromSlug("full-stack"))
	assert.Equal(t, CategoryFrontend, CategoryFromSlug("Frontend"))
	assert.Equal(t, CategoryAll, CategoryFromSlug(""))
	assert.Equal(t, CategoryAll, CategoryFromSlug("mobile"))
	assert.Equal(t, "full-stack", CategoryFullStack.Slug())
}

func TestFindShowcase(t *testing.T) {
	p, ok := FindShowcase(fixture, 3)
	assert.True(t, ok)
	assert.Equal(t, "c", p.Title)

	_, ok = FindShowcase(fixture, 42)
	assert.False(t, ok)
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "/projects/3/og.png", Showcase{ID: 3}.ImageURL())
	assert.Equal(t, "https://cdn.example.com/a.png", Showcase{ID: 3, Image: "https://cdn.example.com/a.png"}.ImageURL())
}

func TestFeatured(t *testing.T) {
	got := Featured(AllProjects, 3)
	assert.Len(t, got, 3)
	for _, p := range got {
		assert.True(t, p.Featured)
	}
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusOnHold.Valid())
	assert.False(t, Status("Abandoned").Valid())

	projects := []Project{
		{ID: "1", Status: StatusCompleted},
		{ID: "2", Status: StatusInProgress},
		{ID: "3", Status: StatusCompleted},
	}
	assert.Len(t, FilterByStatus(projects, StatusCompleted), 2)
	assert.Equal(t, projects, FilterByStatus(projects, ""))

	p, ok := FindByID(projects, "2")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, p.Status)
}
