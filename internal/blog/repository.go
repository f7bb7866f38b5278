package blog

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("blog post not found")

// Repository serves the public blog posts from the static blogs.json file. The file
// is re-read whenever its modification time changes.
type Repository struct {
	path    string
	mu      sync.RWMutex
	blogs   []Blog
	modTime time.Time
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) GetAll() ([]Blog, error) {
	if err := r.load(); err != nil {
		return make([]Blog, 0), err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Blog, len(r.blogs))
	copy(all, r.blogs)
	return all, nil
}

func (r *Repository) GetByID(id string) (Blog, error) {
	all, err := r.GetAll()
	if err != nil {
		return Blog{}, err
	}
	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}
	return Blog{}, ErrNotFound
}

func (r *Repository) load() error {
	fi, err := os.Stat(r.path)
	if err != nil {
		return errors.Wrapf(err, "unable to stat %s", r.path)
	}
	r.mu.RLock()
	fresh := r.blogs != nil && fi.ModTime().Equal(r.modTime)
	r.mu.RUnlock()
	if fresh {
		return nil
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return errors.Wrapf(err, "unable to read %s", r.path)
	}
	blogs := make([]Blog, 0)
	if err := json.Unmarshal(data, &blogs); err != nil {
		return errors.Wrapf(err, "unable to decode %s", r.path)
	}
	r.mu.Lock()
	r.blogs = blogs
	r.modTime = fi.ModTime()
	r.mu.Unlock()
	return nil
}
