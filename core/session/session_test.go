package session

import (
	"strconv"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	claims := jwt.StandardClaims{Subject: sub}
	if !exp.IsZero() {
		claims.ExpiresAt = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signedToken() failed: %v", err)
	}
	return token
}

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		got, ok := ParseRole(string(r))
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}
	for _, s := range []string{"", "superuser", "Admin", "ADMIN"} {
		_, ok := ParseRole(s)
		assert.False(t, ok, s)
	}
}

func TestRole_CanRegisterUsers(t *testing.T) {
	assert.True(t, RoleAdmin.CanRegisterUsers())
	assert.True(t, RoleManager.CanRegisterUsers())
	assert.False(t, RoleTeacher.CanRegisterUsers())
	assert.False(t, RoleStudent.CanRegisterUsers())
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "no token", token: "", want: true},
		{name: "future exp", token: signedToken(t, "1", now.Add(time.Hour)), want: false},
		{name: "past exp", token: signedToken(t, "1", now.Add(-time.Hour)), want: true},
		{name: "no exp claim", token: signedToken(t, "1", time.Time{}), want: false},
		// the backend is the authority on garbage; it answers with a 401
		{name: "unparsable token", token: "not-a-jwt", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := Session{Token: tt.token}
			assert.Equal(t, tt.want, sess.Expired())
		})
	}
}

func TestSession_Live(t *testing.T) {
	assert.False(t, Session{}.Live())
	assert.False(t, Session{Token: signedToken(t, "1", time.Now().Add(-time.Minute))}.Live())
	assert.True(t, Session{Token: signedToken(t, "1", time.Now().Add(time.Minute))}.Live())
	assert.True(t, Session{Token: "opaque-token"}.Live())
}

func TestTokenUserID(t *testing.T) {
	exp := time.Now().Add(time.Hour)

	assert.Equal(t, 42, TokenUserID(signedToken(t, "42", exp)))
	assert.Equal(t, 0, TokenUserID(signedToken(t, "", exp)))
	assert.Equal(t, 0, TokenUserID(signedToken(t, "jdoe", exp)))
	assert.Equal(t, 0, TokenUserID("not-a-jwt"))

	// round-trip with a large id
	id := 987654
	assert.Equal(t, id, TokenUserID(signedToken(t, strconv.Itoa(id), exp)))
}
