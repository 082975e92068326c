package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckRoute(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	none := Session{}
	stale := Session{Token: signedToken(t, "1", time.Now().Add(-time.Hour)), Role: RoleAdmin}
	admin := Session{Token: signedToken(t, "1", exp), Role: RoleAdmin}
	manager := Session{Token: signedToken(t, "2", exp), Role: RoleManager}
	teacher := Session{Token: signedToken(t, "3", exp), Role: RoleTeacher}
	student := Session{Token: signedToken(t, "4", exp), Role: RoleStudent}

	tests := []struct {
		name string
		path string
		sess Session
		want Decision
	}{
		{name: "login, no session", path: "/login", sess: none, want: Allow},
		{name: "login, live session", path: "/login", sess: student, want: RedirectDashboard},
		{name: "login, expired session", path: "/login", sess: stale, want: Allow},

		{name: "register, no session", path: "/register", sess: none, want: RedirectLogin},
		{name: "register, admin", path: "/register", sess: admin, want: Allow},
		{name: "register, manager", path: "/register", sess: manager, want: Allow},
		{name: "register, teacher", path: "/register", sess: teacher, want: RedirectLogin},
		{name: "register, student", path: "/register", sess: student, want: RedirectLogin},

		{name: "dashboard, no session", path: "/dashboard", sess: none, want: RedirectLogin},
		{name: "dashboard, any live session", path: "/dashboard", sess: student, want: Allow},
		{name: "dashboard page, live session", path: "/dashboard/guruhlar", sess: teacher, want: Allow},
		{name: "dashboard page, expired session", path: "/dashboard/guruhlar", sess: stale, want: RedirectLogin},
		{name: "logout, live session", path: "/logout", sess: admin, want: Allow},
		{name: "logout, no session", path: "/logout", sess: none, want: RedirectLogin},

		{name: "unknown path, no session", path: "/whatever", sess: none, want: RedirectLogin},
		{name: "unknown path, live session", path: "/whatever", sess: admin, want: RedirectLogin},
		{name: "root", path: "/", sess: admin, want: RedirectLogin},
		// prefix must match on a path boundary
		{name: "lookalike prefix", path: "/dashboardx", sess: admin, want: RedirectLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckRoute(tt.path, tt.sess))
		})
	}
}

func TestCanManageScheduleEntry(t *testing.T) {
	tests := []struct {
		name  string
		sess  Session
		owner int
		want  bool
	}{
		{name: "admin manages any entry", sess: Session{Role: RoleAdmin, UserID: 1}, owner: 99, want: true},
		{name: "manager manages any entry", sess: Session{Role: RoleManager, UserID: 2}, owner: 99, want: true},
		{name: "teacher manages own entry", sess: Session{Role: RoleTeacher, UserID: 7}, owner: 7, want: true},
		{name: "teacher blocked on others", sess: Session{Role: RoleTeacher, UserID: 7}, owner: 8, want: false},
		{name: "student never manages", sess: Session{Role: RoleStudent, UserID: 7}, owner: 7, want: false},
		{name: "no role never manages", sess: Session{}, owner: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManageScheduleEntry(tt.sess, tt.owner))
		})
	}
}
