package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core/session"
)

func Test_groupsApi_list(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	server, store := setup(t, fb)
	signIn(t, store, session.RoleManager, 2)

	groups := []backend.Group{{ID: 1, Name: "Ingliz tili B2", CourseID: 1, TeacherID: 7}}
	courses := []backend.Course{{ID: 1, Name: "Ingliz tili", Price: 400000}}
	fb.respond(t, http.MethodGet, "/groups", http.StatusOK, groups)
	fb.respond(t, http.MethodGet, "/groups/courses", http.StatusOK, courses)

	req, rec := newRequest(http.MethodGet, "/dashboard/guruhlar")
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Contains(t, body, `"groups"`)
	assert.Contains(t, body, `"courses"`)
	assert.Contains(t, body, "Ingliz tili B2")
}

func Test_groupsApi_lookups(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	server, store := setup(t, fb)
	signIn(t, store, session.RoleAdmin, 1)

	teachers := []backend.User{{ID: 7, Name: "Bek Tursunov", Role: "teacher"}}
	students := []backend.Student{{ID: 11, Name: "Aziza Karimova", Status: "active"}}
	fb.respond(t, http.MethodGet, "/groups/teachers/1", http.StatusOK, teachers)
	fb.respond(t, http.MethodGet, "/groups/students/1", http.StatusOK, students)

	req, rec := newRequest(http.MethodGet, "/dashboard/guruhlar/lookups?course_id=1")
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Bek Tursunov")
	assert.Contains(t, rec.Body.String(), "Aziza Karimova")
}

func Test_groupsApi_update(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	server, store := setup(t, fb)
	signIn(t, store, session.RoleAdmin, 1)

	fresh := []backend.Group{{ID: 5, Name: "Matematika A1", CourseID: 2, TeacherID: 8, StartTime: "10:00"}}
	fb.respond(t, http.MethodPut, "/groups/5", http.StatusOK, fresh[0])
	fb.respond(t, http.MethodGet, "/groups", http.StatusOK, fresh)

	form := backend.GroupForm{ID: 5, Name: "Matematika A1", CourseID: 2, TeacherID: 8, StartTime: "10:00"}
	req, rec := newRequest(http.MethodPost, "/dashboard/guruhlar", marshallObj(t, form))
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, string(marshallObj(t, fresh)), rec.Body.String())
	assert.Equal(t, 1, fb.count(http.MethodPut, "/groups/5"))
	assert.Equal(t, 1, fb.count(http.MethodGet, "/groups"))
}

func Test_groupsApi_delete(t *testing.T) {
	t.Run("without confirmation", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleAdmin, 1)

		req, rec := newRequest(http.MethodDelete, "/dashboard/guruhlar/5")
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"deletion must be confirmed"}`, rec.Body.String())
		assert.Equal(t, 0, fb.total(), "an unconfirmed delete must not reach the backend")
	})

	t.Run("confirmed", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleAdmin, 1)

		fb.respondStatus(http.MethodDelete, "/groups/5", http.StatusNoContent)
		fb.respond(t, http.MethodGet, "/groups", http.StatusOK, []backend.Group{})

		req, rec := newRequest(http.MethodDelete, "/dashboard/guruhlar/5?confirm=true")
		server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `[]`, rec.Body.String())
		assert.Equal(t, 1, fb.count(http.MethodDelete, "/groups/5"))
		assert.Equal(t, 1, fb.count(http.MethodGet, "/groups"))
	})

	t.Run("bad id", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleAdmin, 1)

		req, rec := newRequest(http.MethodDelete, "/dashboard/guruhlar/abc?confirm=true")
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 0, fb.total())
	})
}
