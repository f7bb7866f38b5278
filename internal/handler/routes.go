package handler

import (
	"io/fs"
	"net/http"

	"github.com/ctasbihas/portfolio/internal/api"
	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/dashboard"
	"github.com/ctasbihas/portfolio/internal/server"
)

// Routes registers every page of the site on svr. assets holds the files served under /s/.
func Routes(svr server.Server, client *api.Client, blogRepo *blog.Repository, assets fs.FS) {
	projectController := dashboard.NewProjectController(client)
	blogController := dashboard.NewBlogController(client)

	svr.RegisterRoute("/sitemap.xml", SitemapHandler(svr, blogRepo), []string{"GET"})
	svr.RegisterRoute("/robots.txt", RobotsTxtHandler(svr), []string{"GET"})
	svr.RegisterRoute("/blogs.json", BlogsJSONHandler(blogRepo), []string{"GET"})
	svr.RegisterPathPrefix("/s/", http.StripPrefix("/s/", DisableDirListing(http.FileServer(http.FS(assets)))), []string{"GET"})

	svr.RegisterRoute("/", IndexPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/contact", SubmitContactHandler(svr), []string{"POST"})
	svr.RegisterRoute("/projects", ProjectsPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/projects/{id}/og.png", ProjectImageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/projects/{id}", ProjectPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/blogs", BlogsPageHandler(svr, blogRepo), []string{"GET"})
	svr.RegisterRoute("/blogs/rss", ServeRSSFeed(svr, blogRepo), []string{"GET"})
	svr.RegisterRoute("/blogs/{id}/og.png", BlogImageHandler(svr, blogRepo), []string{"GET"})
	svr.RegisterRoute("/blogs/{id}", BlogPageHandler(svr, blogRepo), []string{"GET"})

	svr.RegisterRoute("/login", LoginPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/login", SubmitLoginHandler(svr, client), []string{"POST"})
	svr.RegisterRoute("/signup", SignupPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/signup", SubmitSignupHandler(svr, client), []string{"POST"})
	svr.RegisterRoute("/logout", LogoutHandler(svr), []string{"POST"})

	// dashboard, every handler below is wrapped in the auth gate
	svr.RegisterRoute("/dashboard", DashboardHomeHandler(svr, client), []string{"GET"})
	svr.RegisterRoute("/dashboard/users", DashboardUsersHandler(svr, client), []string{"GET"})
	svr.RegisterRoute("/dashboard/about", DashboardAboutHandler(svr), []string{"GET"})

	svr.RegisterRoute("/dashboard/projects", DashboardProjectsHandler(svr, client), []string{"GET"})
	svr.RegisterRoute("/dashboard/projects", SaveProjectHandler(svr, projectController), []string{"POST"})
	svr.RegisterRoute("/dashboard/projects/new", NewProjectPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/dashboard/projects/{id}/edit", EditProjectPageHandler(svr, client), []string{"GET"})
	svr.RegisterRoute("/dashboard/projects/{id}", SaveProjectHandler(svr, projectController), []string{"POST"})
	svr.RegisterRoute("/dashboard/projects/{id}/delete", DeleteProjectHandler(svr, projectController), []string{"POST"})

	svr.RegisterRoute("/dashboard/blogs", DashboardBlogsHandler(svr, client), []string{"GET"})
	svr.RegisterRoute("/dashboard/blogs", SaveBlogHandler(svr, blogController), []string{"POST"})
	svr.RegisterRoute("/dashboard/blogs/new", NewBlogPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/dashboard/blogs/{id}/edit", EditBlogPageHandler(svr, client), []string{"GET"})
	svr.RegisterRoute("/dashboard/blogs/{id}", SaveBlogHandler(svr, blogController), []string{"POST"})
	svr.RegisterRoute("/dashboard/blogs/{id}/delete", DeleteBlogHandler(svr, blogController), []string{"POST"})

	svr.SetNotFoundHandler(NotFoundHandler(svr))
}
