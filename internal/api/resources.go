package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/project"
	"github.com/ctasbihas/portfolio/internal/user"
)

func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	projects := make([]project.Project, 0)
	if err := c.do(ctx, "list projects", http.MethodGet, "/projects", "", nil, &projects); err != nil {
		return make([]project.Project, 0), err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, token string, in project.Input) (project.Project, error) {
	var p project.Project
	err := c.do(ctx, "create project", http.MethodPost, "/projects", token, in, &p)
	return p, err
}

func (c *Client) UpdateProject(ctx context.Context, token, id string, in project.Input) (project.Project, error) {
	var p project.Project
	err := c.do(ctx, "update project", http.MethodPatch, "/projects/"+url.PathEscape(id), token, in, &p)
	return p, err
}

func (c *Client) DeleteProject(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete project", http.MethodDelete, "/projects/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]user.Profile, error) {
	users := make([]user.Profile, 0)
	if err := c.do(ctx, "list users", http.MethodGet, "/users", "", nil, &users); err != nil {
		return make([]user.Profile, 0), err
	}
	return users, nil
}

func (c *Client) ListBlogs(ctx context.Context) ([]blog.Blog, error) {
	blogs := make([]blog.Blog, 0)
	if err := c.do(ctx, "list blogs", http.MethodGet, "/blogs", "", nil, &blogs); err != nil {
		return make([]blog.Blog, 0), err
	}
	return blogs, nil
}

func (c *Client) CreateBlog(ctx context.Context, token string, in blog.Input) (blog.Blog, error) {
	var b blog.Blog
	err := c.do(ctx, "create blog", http.MethodPost, "/blogs", token, in, &b)
	return b, err
}

func (c *Client) UpdateBlog(ctx context.Context, token, id string, in blog.Input) (blog.Blog, error) {
	var b blog.Blog
	err := c.do(ctx, "update blog", http.MethodPatch, "/blogs/"+url.PathEscape(id), token, in, &b)
	return b, err
}

func (c *Client) DeleteBlog(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete blog", http.MethodDelete, "/blogs/"+url.PathEscape(id), token, nil, nil)
}
