package handler

import (
	"fmt"
	"net/http"

	"github.com/ctasbihas/portfolio/internal/api"
	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/dashboard"
	"github.com/ctasbihas/portfolio/internal/notice"
	"github.com/ctasbihas/portfolio/internal/portfolio"
	"github.com/ctasbihas/portfolio/internal/project"
	"github.com/ctasbihas/portfolio/internal/server"
	"github.com/ctasbihas/portfolio/internal/user"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Stats struct {
	Users    int
	Projects int
	Blogs    int
}

type StatusCount struct {
	Status project.Status
	Count  int
}

// expireSession handles a 401 from the remote API on a mutation: the stored token is
// no longer accepted so the user has to login again.
func expireSession(svr server.Server, w http.ResponseWriter, r *http.Request) {
	if err := svr.Auth.SignOut(w, r); err != nil {
		svr.Log(err, "unable to sign out expired session")
	}
	svr.Flash(w, r, notice.Error("Session expired, please login again"))
	svr.Redirect(w, r, http.StatusSeeOther, "/login")
}

func DashboardHomeHandler(svr server.Server, client *api.Client) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		var (
			users    []user.Profile
			projects []project.Project
			blogs    []blog.Blog
			errs     [3]error
		)
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			users, errs[0] = client.ListUsers(ctx)
			return nil
		})
		g.Go(func() error {
			projects, errs[1] = client.ListProjects(ctx)
			return nil
		})
		g.Go(func() error {
			blogs, errs[2] = client.ListBlogs(ctx)
			return nil
		})
		// each fetch records its own error, the group never fails
		_ = g.Wait()

		notices := make([]notice.Notice, 0)
		for i, name := range []string{"users", "projects", "blogs"} {
			if errs[i] != nil {
				svr.Log(errs[i], fmt.Sprintf("unable to fetch %s for dashboard stats", name))
				notices = append(notices, notice.Error(fmt.Sprintf("Failed to load %s", name)))
			}
		}
		counts := make([]StatusCount, 0, len(project.Statuses))
		for _, s := range project.Statuses {
			counts = append(counts, StatusCount{Status: s, Count: len(project.FilterByStatus(projects, s))})
		}
		svr.Render(w, r, http.StatusOK, "dashboard.html", map[string]interface{}{
			"Title":        "Dashboard",
			"Stats":        Stats{Users: len(users), Projects: len(projects), Blogs: len(blogs)},
			"StatusCounts": counts,
			"Notices":      notices,
		})
	})
}

func DashboardUsersHandler(svr server.Server, client *api.Client) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{"Title": "Users"}
		users, err := client.ListUsers(r.Context())
		if err != nil {
			svr.Log(err, "unable to fetch users")
			data["Notices"] = []notice.Notice{notice.Error(api.Message(err, "Failed to load users"))}
		}
		data["Users"] = users
		svr.Render(w, r, http.StatusOK, "dashboard-users.html", data)
	})
}

func DashboardAboutHandler(svr server.Server) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		svr.Render(w, r, http.StatusOK, "dashboard-about.html", map[string]interface{}{
			"Title": "About Me",
			"Home":  portfolio.Content(),
		})
	})
}

func DashboardProjectsHandler(svr server.Server, client *api.Client) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		status := project.Status(r.URL.Query().Get("status"))
		if !status.Valid() {
			status = ""
		}
		data := map[string]interface{}{
			"Title":    "Projects",
			"Statuses": project.Statuses,
			"Status":   status,
		}
		projects, err := client.ListProjects(r.Context())
		if err != nil {
			svr.Log(err, "unable to fetch projects")
			data["Notices"] = []notice.Notice{notice.Error(api.Message(err, "Failed to load projects"))}
		}
		data["Projects"] = project.FilterByStatus(projects, status)
		svr.Render(w, r, http.StatusOK, "dashboard-projects.html", data)
	})
}

func renderProjectForm(svr server.Server, w http.ResponseWriter, r *http.Request, status int, id string, draft dashboard.ProjectDraft, notices []notice.Notice) {
	title := "New Project"
	if id != "" {
		title = "Edit Project"
	}
	svr.Render(w, r, status, "dashboard-project-form.html", map[string]interface{}{
		"Title":    title,
		"ID":       id,
		"Draft":    draft,
		"Statuses": project.Statuses,
		"Notices":  notices,
	})
}

func NewProjectPageHandler(svr server.Server) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		renderProjectForm(svr, w, r, http.StatusOK, "", dashboard.NewProjectDraft(), nil)
	})
}

// EditProjectPageHandler loads the project through the list endpoint, the remote
// API has no single project read.
func EditProjectPageHandler(svr server.Server, client *api.Client) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		projects, err := client.ListProjects(r.Context())
		if err != nil {
			svr.Log(err, "unable to fetch projects")
			svr.Flash(w, r, notice.Error(api.Message(err, "Failed to load project")))
			svr.Redirect(w, r, http.StatusSeeOther, "/dashboard/projects")
			return
		}
		p, ok := project.FindByID(projects, id)
		if !ok {
			svr.Flash(w, r, notice.Error("Project not found"))
			svr.Redirect(w, r, http.StatusSeeOther, "/dashboard/projects")
			return
		}
		renderProjectForm(svr, w, r, http.StatusOK, id, dashboard.DraftFromProject(p), nil)
	})
}

func SaveProjectHandler(svr server.Server, controller *dashboard.ProjectController) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid form")
			return
		}
		id := mux.Vars(r)["id"]
		draft := dashboard.ProjectDraftFromForm(r.PostForm)
		n, err := controller.Save(r.Context(), svr.Auth.Token(r), id, draft)
		if err != nil {
			if api.IsUnauthorized(err) {
				expireSession(svr, w, r)
				return
			}
			status := http.StatusUnprocessableEntity
			if _, invalid := err.(*dashboard.ValidationError); !invalid {
				svr.Log(err, "unable to save project")
				status = http.StatusBadGateway
			}
			renderProjectForm(svr, w, r, status, id, draft, []notice.Notice{n})
			return
		}
		svr.Flash(w, r, n)
		svr.Redirect(w, r, http.StatusSeeOther, "/dashboard/projects")
	})
}

func DeleteProjectHandler(svr server.Server, controller *dashboard.ProjectController) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		n, err := controller.Delete(r.Context(), svr.Auth.Token(r), mux.Vars(r)["id"], r.FormValue("confirm") == "yes")
		if err != nil && api.IsUnauthorized(err) {
			expireSession(svr, w, r)
			return
		}
		if err != nil && errors.Cause(err) != dashboard.ErrNotConfirmed {
			svr.Log(err, "unable to delete project")
		}
		svr.Flash(w, r, n)
		svr.Redirect(w, r, http.StatusSeeOther, "/dashboard/projects")
	})
}

func DashboardBlogsHandler(svr server.Server, client *api.Client) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{"Title": "Blogs"}
		blogs, err := client.ListBlogs(r.Context())
		if err != nil {
			svr.Log(err, "unable to fetch blogs")
			data["Notices"] = []notice.Notice{notice.Error(api.Message(err, "Failed to load blogs"))}
		}
		data["Blogs"] = blogs
		svr.Render(w, r, http.StatusOK, "dashboard-blogs.html", data)
	})
}

func renderBlogForm(svr server.Server, w http.ResponseWriter, r *http.Request, status int, id string, draft dashboard.BlogDraft, notices []notice.Notice) {
	title := "New Post"
	if id != "" {
		title = "Edit Post"
	}
	svr.Render(w, r, status, "dashboard-blog-form.html", map[string]interface{}{
		"Title":   title,
		"ID":      id,
		"Draft":   draft,
		"Notices": notices,
	})
}

func NewBlogPageHandler(svr server.Server) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		renderBlogForm(svr, w, r, http.StatusOK, "", dashboard.BlogDraft{}, nil)
	})
}

func EditBlogPageHandler(svr server.Server, client *api.Client) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		blogs, err := client.ListBlogs(r.Context())
		if err != nil {
			svr.Log(err, "unable to fetch blogs")
			svr.Flash(w, r, notice.Error(api.Message(err, "Failed to load blog")))
			svr.Redirect(w, r, http.StatusSeeOther, "/dashboard/blogs")
			return
		}
		for _, b := range blogs {
			if b.ID == id {
				renderBlogForm(svr, w, r, http.StatusOK, id, dashboard.DraftFromBlog(b), nil)
				return
			}
		}
		svr.Flash(w, r, notice.Error("Blog not found"))
		svr.Redirect(w, r, http.StatusSeeOther, "/dashboard/blogs")
	})
}

func SaveBlogHandler(svr server.Server, controller *dashboard.BlogController) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid form")
			return
		}
		id := mux.Vars(r)["id"]
		draft := dashboard.BlogDraftFromForm(r.PostForm)
		n, err := controller.Save(r.Context(), svr.Auth.Token(r), id, draft)
		if err != nil {
			if api.IsUnauthorized(err) {
				expireSession(svr, w, r)
				return
			}
			status := http.StatusUnprocessableEntity
			if _, invalid := err.(*dashboard.ValidationError); !invalid {
				svr.Log(err, "unable to save blog")
				status = http.StatusBadGateway
			}
			renderBlogForm(svr, w, r, status, id, draft, []notice.Notice{n})
			return
		}
		svr.Flash(w, r, n)
		svr.Redirect(w, r, http.StatusSeeOther, "/dashboard/blogs")
	})
}

func DeleteBlogHandler(svr server.Server, controller *dashboard.BlogController) http.HandlerFunc {
	return svr.Auth.Gate(func(w http.ResponseWriter, r *http.Request) {
		n, err := controller.Delete(r.Context(), svr.Auth.Token(r), mux.Vars(r)["id"], r.FormValue("confirm") == "yes")
		if err != nil && api.IsUnauthorized(err) {
			expireSession(svr, w, r)
			return
		}
		if err != nil && errors.Cause(err) != dashboard.ErrNotConfirmed {
			svr.Log(err, "unable to delete blog")
		}
		svr.Flash(w, r, n)
		svr.Redirect(w, r, http.StatusSeeOther, "/dashboard/blogs")
	})
}
