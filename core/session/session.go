package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Role determines route and action permissions.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

var AllRoles = []Role{RoleAdmin, RoleManager, RoleTeacher, RoleStudent}

// ParseRole maps a backend role string onto the closed enum.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleManager, RoleTeacher, RoleStudent:
		return r, true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// CanRegisterUsers reports whether the role may reach the register page.
func (r Role) CanRegisterUsers() bool {
	return r == RoleAdmin || r == RoleManager
}

// Session is the client-held authentication state: the backend's bearer
// token plus the role and user id it was issued for. It is created on a
// successful login, persisted by a Store across requests, and destroyed on
// logout or on the first authorization failure from the backend.
type Session struct {
	Token  string
	Role   Role
	UserID int
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Live reports whether the session can still be presented to the backend.
func (s Session) Live() bool {
	return s.Authenticated() && !s.Expired()
}

// Expired peeks at the token's exp claim without verifying the signature;
// the backend is the authority and rejects a bad token with a 401 anyway.
// An unparsable token is not treated as expired for the same reason.
func (s Session) Expired() bool {
	if s.Token == "" {
		return true
	}
	claims := new(jwt.StandardClaims)
	if _, _, err := new(jwt.Parser).ParseUnverified(s.Token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != 0 && time.Now().Unix() >= claims.ExpiresAt
}

// TokenUserID extracts the user id from the token's sub claim; 0 when the
// token carries none.
func TokenUserID(token string) int {
	claims := new(jwt.StandardClaims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return 0
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0
	}
	return id
}

// Store persists the session across page loads. Load returns a zero Session
// when none is stored; Clear on an empty store is a no-op.
type Store interface {
	Load(r *http.Request) (Session, error)
	Save(w http.ResponseWriter, r *http.Request, sess Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}
