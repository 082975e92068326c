package sessionstore

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/sardorbek/darsxona/core"
	"github.com/sardorbek/darsxona/core/session"
)

// RedisStore keeps session records in Redis so several gateway instances can
// serve the same browser; the cookie carries only a signed session id.
type RedisStore struct {
	name   string
	codec  *securecookie.SecureCookie
	client *redis.Client
	ttl    time.Duration
	secure bool
}

var _ session.Store = (*RedisStore)(nil)

type sessionRecord struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID int    `json:"user_id"`
}

func NewRedisStore(conf *core.Config) *RedisStore {
	return &RedisStore{
		name:   conf.Session.CookieName,
		codec:  securecookie.New([]byte(conf.SecretKey), nil),
		client: redis.NewClient(&redis.Options{Addr: conf.Session.RedisAddr}),
		ttl:    conf.Session.MaxAge,
		secure: !conf.Debug,
	}
}

func (s *RedisStore) key(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) sid(r *http.Request) string {
	c, err := r.Cookie(s.name)
	if err != nil {
		return ""
	}
	var sid string
	if err = s.codec.Decode(s.name, c.Value, &sid); err != nil {
		return "" // tampered cookie: no session
	}
	return sid
}

func (s *RedisStore) Load(r *http.Request) (session.Session, error) {
	sid := s.sid(r)
	if sid == "" {
		return session.Session{}, nil
	}
	data, err := s.client.Get(r.Context(), s.key(sid)).Bytes()
	if err == redis.Nil {
		return session.Session{}, nil
	}
	if err != nil {
		return session.Session{}, errors.Wrap(err, "loading session record")
	}
	var rec sessionRecord
	if err = json.Unmarshal(data, &rec); err != nil {
		return session.Session{}, errors.Wrap(err, "decoding session record")
	}
	role, _ := session.ParseRole(rec.Role)
	return session.Session{Token: rec.Token, Role: role, UserID: rec.UserID}, nil
}

func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, sess session.Session) error {
	sid := s.sid(r)
	if sid == "" {
		sid = uuid.New().String()
	}
	data, err := json.Marshal(sessionRecord{Token: sess.Token, Role: string(sess.Role), UserID: sess.UserID})
	if err != nil {
		return errors.Wrap(err, "encoding session record")
	}
	if err = s.client.Set(r.Context(), s.key(sid), data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "storing session record")
	}
	encoded, err := s.codec.Encode(s.name, sid)
	if err != nil {
		return errors.Wrap(err, "encoding session cookie")
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sid := s.sid(r)
	if sid == "" {
		return nil
	}
	if err := s.client.Del(r.Context(), s.key(sid)).Err(); err != nil {
		return errors.Wrap(err, "deleting session record")
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
