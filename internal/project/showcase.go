package project

import (
	"fmt"

	"github.com/gosimple/slug"
)

type Category string

const (
	CategoryAll       Category = "All"
	CategoryFullStack Category = "Full Stack"
	CategoryFrontend  Category = "Frontend"
	CategoryBackend   Category = "Backend"
)

var Categories = []Category{CategoryAll, CategoryFullStack, CategoryFrontend, CategoryBackend}

func (c Category) Slug() string {
	return slug.Make(string(c))
}

// CategoryFromSlug maps a url slug like "full-stack" back to its category.
// Unknown or empty slugs resolve to CategoryAll.
func CategoryFromSlug(s string) Category {
	for _, c := range Categories {
		if c.Slug() == slug.Make(s) {
			return c
		}
	}
	return CategoryAll
}

// Showcase is a project displayed on the public site. The list is compiled into
// the binary and is independent from the dashboard records.
type Showcase struct {
	ID              int
	Title           string
	Description     string
	LongDescription string
	Image           string
	Technologies    []string
	Category        Category
	Status          Status
	LiveURL         string
	GithubURL       string
	Featured        bool
	Date            string
}

// ImageURL is the project image, or its generated preview card when none is set.
func (p Showcase) ImageURL() string {
	if p.Image != "" {
		return p.Image
	}
	return fmt.Sprintf("/projects/%d/og.png", p.ID)
}

// Filter returns the showcase projects in the given category. CategoryAll returns
// the input slice unmodified.
func Filter(projects []Showcase, category Category) []Showcase {
	if category == CategoryAll || category == "" {
		return projects
	}
	out := make([]Showcase, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func FindShowcase(projects []Showcase, id int) (Showcase, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Showcase{}, false
}

// Featured returns at most n featured projects, in list order.
func Featured(projects []Showcase, n int) []Showcase {
	out := make([]Showcase, 0, n)
	for _, p := range projects {
		if len(out) == n {
			break
		}
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

var AllProjects = []Showcase{
	{
		ID:              1,
		Title:           "ZipRide",
		Description:     "A production-grade, role-based ride booking platform inspired by Uber and Pathao with tailored experiences for riders, drivers and admins.",
		LongDescription: "ZipRide is a fully responsive ride booking platform built with React, Redux Toolkit and RTK Query. Riders request and track rides, drivers manage availability and earnings, and admins oversee the whole fleet. Payments go through SSL Commerz and the API is an Express + MongoDB service with JWT authentication.",
		Technologies:    []string{"React", "Node.js", "MongoDB", "SSL Commerz", "Redux"},
		Category:        CategoryFullStack,
		Status:          StatusCompleted,
		LiveURL:         "https://zipride.vercel.app/",
		GithubURL:       "https://github.com/ctasbihas/zipride_frontend",
		Featured:        true,
		Date:            "2025",
	},
	{
		ID:              2,
		Title:           "Doctors Portal",
		Description:     "A web application for booking medical appointments and managing schedules with real-time updates.",
		LongDescription: "Doctors Portal lets patients book appointments and doctors manage their schedules. Built with React and Firebase it offers real-time updates, secure authentication and a friendly interface for both sides.",
		Technologies:    []string{"React", "Firebase", "Daisy UI", "React Router"},
		Category:        CategoryFrontend,
		Status:          StatusCompleted,
		LiveURL:         "https://doctors-portal-48670.web.app/",
		GithubURL:       "https://github.com/ctasbihas/doctors-portal-client",
		Featured:        true,
		Date:            "2023",
	},
	{
		ID:              3,
		Title:           "Librium",
		Description:     "A minimal library management system focused on book management and borrowing.",
		LongDescription: "Librium is a client-side library manager built with React, RTK Query and TypeScript. There is no user authentication, only the core library flows: adding, editing and borrowing books with a borrow summary.",
		Technologies:    []string{"React", "TypeScript", "RTK Query", "Tailwind CSS"},
		Category:        CategoryFrontend,
		Status:          StatusCompleted,
		LiveURL:         "https://mylibrium.vercel.app",
		GithubURL:       "https://github.com/ctasbihas/librium",
		Featured:        true,
		Date:            "2025",
	},
	{
		ID:              4,
		Title:           "Librium API",
		Description:     "REST API powering Librium with book inventory and borrow aggregation.",
		LongDescription: "An Express and Mongoose API with schema validation, business rules for copies availability and an aggregation pipeline summarising borrowed books.",
		Technologies:    []string{"Node.js", "Express.js", "MongoDB", "Mongoose", "TypeScript"},
		Category:        CategoryBackend,
		Status:          StatusCompleted,
		GithubURL:       "https://github.com/ctasbihas/librium-server",
		Date:            "2025",
	},
	{
		ID:              5,
		Title:           "Portfolio",
		Description:     "This site: landing page, blog and a small admin dashboard backed by a REST API.",
		LongDescription: "A portfolio with a project showcase, Markdown blog and an admin dashboard for projects and blog posts, talking to a separate REST backend.",
		Technologies:    []string{"Next.js", "TypeScript", "Tailwind CSS", "Express.js"},
		Category:        CategoryFullStack,
		Status:          StatusInProgress,
		GithubURL:       "https://github.com/ctasbihas/portfolio",
		Date:            "2025",
	},
	{
		ID:              6,
		Title:           "Portfolio Backend",
		Description:     "Auth, users, projects and blogs API for the portfolio dashboard.",
		LongDescription: "A versioned REST API with JWT authentication, user management and CRUD endpoints for projects and blogs, deployed on Vercel.",
		Technologies:    []string{"Node.js", "Express.js", "PostgreSQL", "Prisma"},
		Category:        CategoryBackend,
		Status:          StatusInProgress,
		GithubURL:       "https://github.com/ctasbihas/portfolio-backend",
		Date:            "2025",
	},
}
