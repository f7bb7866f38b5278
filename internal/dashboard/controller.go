package dashboard

import (
	"context"

	"github.com/ctasbihas/portfolio/internal/api"
	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/notice"
	"github.com/ctasbihas/portfolio/internal/project"
	"github.com/pkg/errors"
)

var ErrNotConfirmed = errors.New("deletion not confirmed")

type ProjectAPI interface {
	CreateProject(ctx context.Context, token string, in project.Input) (project.Project, error)
	UpdateProject(ctx context.Context, token, id string, in project.Input) (project.Project, error)
	DeleteProject(ctx context.Context, token, id string) error
}

type BlogAPI interface {
	CreateBlog(ctx context.Context, token string, in blog.Input) (blog.Blog, error)
	UpdateBlog(ctx context.Context, token, id string, in blog.Input) (blog.Blog, error)
	DeleteBlog(ctx context.Context, token, id string) error
}

type ProjectController struct {
	api ProjectAPI
}

func NewProjectController(a ProjectAPI) *ProjectController {
	return &ProjectController{api: a}
}

// Save creates the project when id is empty and updates it otherwise. An invalid
// draft is rejected without calling the API.
func (c *ProjectController) Save(ctx context.Context, token, id string, d ProjectDraft) (notice.Notice, error) {
	if err := d.Validate(); err != nil {
		return notice.Error(err.Error()), err
	}
	if id == "" {
		if _, err := c.api.CreateProject(ctx, token, d.Input()); err != nil {
			return notice.Error(api.Message(err, "Failed to create project")), err
		}
		return notice.Success("Project created successfully"), nil
	}
	if _, err := c.api.UpdateProject(ctx, token, id, d.Input()); err != nil {
		return notice.Error(api.Message(err, "Failed to update project")), err
	}
	return notice.Success("Project updated successfully"), nil
}

func (c *ProjectController) Delete(ctx context.Context, token, id string, confirmed bool) (notice.Notice, error) {
	if !confirmed {
		return notice.Info("Deletion cancelled"), ErrNotConfirmed
	}
	if err := c.api.DeleteProject(ctx, token, id); err != nil {
		return notice.Error(api.Message(err, "Failed to delete project")), err
	}
	return notice.Success("Project deleted successfully"), nil
}

type BlogController struct {
	api BlogAPI
}

func NewBlogController(a BlogAPI) *BlogController {
	return &BlogController{api: a}
}

func (c *BlogController) Save(ctx context.Context, token, id string, d BlogDraft) (notice.Notice, error) {
	if err := d.Validate(); err != nil {
		return notice.Error(err.Error()), err
	}
	if id == "" {
		if _, err := c.api.CreateBlog(ctx, token, d.Input()); err != nil {
			return notice.Error(api.Message(err, "Failed to create blog")), err
		}
		return notice.Success("Blog created successfully"), nil
	}
	if _, err := c.api.UpdateBlog(ctx, token, id, d.Input()); err != nil {
		return notice.Error(api.Message(err, "Failed to update blog")), err
	}
	return notice.Success("Blog updated successfully"), nil
}

func (c *BlogController) Delete(ctx context.Context, token, id string, confirmed bool) (notice.Notice, error) {
	if !confirmed {
		return notice.Info("Deletion cancelled"), ErrNotConfirmed
	}
	if err := c.api.DeleteBlog(ctx, token, id); err != nil {
		return notice.Error(api.Message(err, "Failed to delete blog")), err
	}
	return notice.Success("Blog deleted successfully"), nil
}
