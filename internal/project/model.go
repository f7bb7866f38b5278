package project

import "time"

type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
)

var Statuses = []Status{StatusInProgress, StatusCompleted, StatusOnHold}

func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

type URLs struct {
	Frontend       string `json:"frontend"`
	Backend        string `json:"backend"`
	GithubFrontend string `json:"githubFrontend"`
	GithubBackend  string `json:"githubBackend"`
}

// Project is a project record as stored by the remote API.
type Project struct {
	ID               string    `json:"_id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	TechStacks       []string  `json:"techStacks"`
	URLs             URLs      `json:"urls"`
	BannerImage      string    `json:"bannerImage"`
	Status           Status    `json:"status"`
	Featured         bool      `json:"featured"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Input is the body sent to the remote API on create and update.
type Input struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	TechStacks       []string `json:"techStacks"`
	URLs             URLs     `json:"urls"`
	BannerImage      string   `json:"bannerImage"`
	Status           Status   `json:"status"`
	Featured         bool     `json:"featured"`
}

// FilterByStatus returns the projects with the given status. An empty status returns
// the input slice as is.
func FilterByStatus(projects []Project, status Status) []Project {
	if status == "" {
		return projects
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

func FindByID(projects []Project, id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
