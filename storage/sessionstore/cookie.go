// Package sessionstore provides the places a Session can live between page
// loads: an encrypted cookie (single instance), Redis (shared between
// instances, the cookie only carries the session id) and an in-process store
// for tests.
package sessionstore

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

const (
	tokenKey  = "token"
	roleKey   = "role"
	userIDKey = "user_id"
)

// CookieStore keeps the whole session in a signed cookie.
type CookieStore struct {
	name  string
	store *sessions.CookieStore
}

var _ session.Store = (*CookieStore)(nil)

func NewCookieStore(conf *core.Config) *CookieStore {
	cs := sessions.NewCookieStore([]byte(conf.SecretKey))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(conf.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   !conf.Debug,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{name: conf.Session.CookieName, store: cs}
}

func (s *CookieStore) Load(r *http.Request) (session.Session, error) {
	gs, err := s.store.Get(r, s.name)
	if err != nil {
		// a tampered or stale cookie counts as no session
		return session.Session{}, nil
	}
	var sess session.Session
	if v, ok := gs.Values[tokenKey].(string); ok {
		sess.Token = v
	}
	if v, ok := gs.Values[roleKey].(string); ok {
		if role, ok := session.ParseRole(v); ok {
			sess.Role = role
		}
	}
	if v, ok := gs.Values[userIDKey].(int); ok {
		sess.UserID = v
	}
	return sess, nil
}

func (s *CookieStore) Save(w http.ResponseWriter, r *http.Request, sess session.Session) error {
	gs, _ := s.store.Get(r, s.name)
	gs.Values[tokenKey] = sess.Token
	gs.Values[roleKey] = string(sess.Role)
	gs.Values[userIDKey] = sess.UserID
	return errors.Wrap(gs.Save(r, w), "saving session cookie")
}

func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	gs, _ := s.store.Get(r, s.name)
	if gs.IsNew && len(gs.Values) == 0 {
		return nil // nothing stored; clearing twice must stay harmless
	}
	for k := range gs.Values {
		delete(gs.Values, k)
	}
	gs.Options.MaxAge = -1
	return errors.Wrap(gs.Save(r, w), "clearing session cookie")
}
