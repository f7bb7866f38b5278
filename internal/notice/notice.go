package notice

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notice is a transient message shown once on the next rendered page.
type Notice struct {
	Kind    Kind
	Message string
}

func Success(msg string) Notice { return Notice{Kind: KindSuccess, Message: msg} }
func Error(msg string) Notice   { return Notice{Kind: KindError, Message: msg} }
func Info(msg string) Notice    { return Notice{Kind: KindInfo, Message: msg} }

func (n Notice) IsZero() bool {
	return n.Message == ""
}

func init() {
	gob.Register(Notice{})
}

const sessionName = "____notice"

// Store keeps notices as session flashes between a redirect and the next render.
type Store struct {
	store sessions.Store
}

func NewStore(store sessions.Store) *Store {
	return &Store{store: store}
}

func (s *Store) Add(w http.ResponseWriter, r *http.Request, n Notice) error {
	sess, err := s.store.Get(r, sessionName)
	if err != nil && sess == nil {
		return errors.Wrap(err, "unable to get notice session")
	}
	sess.AddFlash(n)
	return errors.Wrap(sess.Save(r, w), "unable to save notice session")
}

// Pop returns and clears the pending notices. The notices are returned even when the
// cleared session could not be saved.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) ([]Notice, error) {
	sess, err := s.store.Get(r, sessionName)
	if err != nil || sess == nil {
		return nil, nil
	}
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil, nil
	}
	out := make([]Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(Notice); ok {
			out = append(out, n)
		}
	}
	return out, errors.Wrap(sess.Save(r, w), "unable to clear notice session")
}
