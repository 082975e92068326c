package session

import "strings"

// Decision is the outcome of the route gate.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
)

const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	LogoutPath    = "/logout"
	DashboardPath = "/dashboard"
)

// CheckRoute decides whether sess may visit path:
//
//	login route       - no session required; a live session is sent to the dashboard
//	dashboard, logout - token present
//	register          - token present AND role admin or manager
//	anything else     - back to login
//
// It is evaluated fresh on every navigation; nothing is cached.
func CheckRoute(path string, sess Session) Decision {
	live := sess.Live()
	switch {
	case path == LoginPath:
		if live {
			return RedirectDashboard
		}
		return Allow
	case path == RegisterPath:
		if live && sess.Role.CanRegisterUsers() {
			return Allow
		}
		return RedirectLogin
	case path == LogoutPath, path == DashboardPath, strings.HasPrefix(path, DashboardPath+"/"):
		if live {
			return Allow
		}
		return RedirectLogin
	default:
		return RedirectLogin
	}
}

// CanManageScheduleEntry reports whether sess may edit, delete or relocate a
// schedule entry owned by ownerTeacherID. Admins and managers manage any
// entry, teachers only their own, students none. Every page consults this
// one predicate instead of re-implementing the role comparison.
func CanManageScheduleEntry(sess Session, ownerTeacherID int) bool {
	switch sess.Role {
	case RoleAdmin, RoleManager:
		return true
	case RoleTeacher:
		return sess.UserID == ownerTeacherID
	default:
		return false
	}
}
