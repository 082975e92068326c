package tests

import (
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardorbek/darsxona/core/schedule"
	"github.com/sardorbek/darsxona/core/session"
)

func Test_scheduleApi_grid(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	server, store := setup(t, fb)
	signIn(t, store, session.RoleTeacher, 7)

	entries := []schedule.Entry{
		{ID: 11, GroupID: 1, GroupName: "Ingliz tili B2", Day: schedule.Monday, StartTime: "08:00", EndTime: "09:00", Room: "A-1", TeacherID: 7},
	}
	// teachers get the entry set scoped to themselves
	fb.respond(t, http.MethodGet, "/schedules/my", http.StatusOK, entries)

	req, rec := newRequest(http.MethodGet, "/dashboard/jadval")
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Contains(t, body, `"days"`)
	assert.Contains(t, body, `"slots"`)
	assert.Contains(t, body, `"cells"`)
	assert.Contains(t, body, "Ingliz tili B2")
	assert.Equal(t, 0, fb.count(http.MethodGet, "/schedules"))
}

func Test_scheduleApi_move(t *testing.T) {
	entry := schedule.Entry{ID: 11, GroupID: 1, Day: schedule.Monday, StartTime: "08:00", EndTime: "09:00", TeacherID: 7}

	t.Run("admin relocates", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleAdmin, 1)

		var putBody []byte
		fb.respond(t, http.MethodGet, "/schedules", http.StatusOK, []schedule.Entry{entry})
		fb.handle(http.MethodPut, "/schedules/11", func(w http.ResponseWriter, r *http.Request) {
			putBody, _ = ioutil.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		})

		req, rec := newRequest(http.MethodPost, "/dashboard/jadval/11/move", []byte(`{"day_of_week":"Tuesday","slot":1}`))
		server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		// the update carries the destination cell's day and times, nothing else
		assert.JSONEq(t, `{"day_of_week":"Tuesday","start_time":"09:00","end_time":"10:00"}`, string(putBody))
		assert.Equal(t, 1, fb.count(http.MethodPut, "/schedules/11"))
		// one fetch to locate the entry, one re-fetch for the final layout
		assert.Equal(t, 2, fb.count(http.MethodGet, "/schedules"))
	})

	t.Run("teacher relocates own entry", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleTeacher, 7)

		fb.respond(t, http.MethodGet, "/schedules/my", http.StatusOK, []schedule.Entry{entry})
		fb.respondStatus(http.MethodPut, "/schedules/11", http.StatusOK)

		req, rec := newRequest(http.MethodPost, "/dashboard/jadval/11/move", []byte(`{"day_of_week":"Friday","slot":0}`))
		server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 1, fb.count(http.MethodPut, "/schedules/11"))
	})

	t.Run("teacher blocked on another's entry", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleTeacher, 8)

		fb.respond(t, http.MethodGet, "/schedules/my", http.StatusOK, []schedule.Entry{entry})

		req, rec := newRequest(http.MethodPost, "/dashboard/jadval/11/move", []byte(`{"day_of_week":"Tuesday","slot":1}`))
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 0, fb.count(http.MethodPut, "/schedules/11"), "a forbidden drag must never reach the backend")
	})

	t.Run("student never relocates", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleStudent, 3)

		fb.respond(t, http.MethodGet, "/schedules/student", http.StatusOK, []schedule.Entry{entry})

		req, rec := newRequest(http.MethodPost, "/dashboard/jadval/11/move", []byte(`{"day_of_week":"Tuesday","slot":1}`))
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 0, fb.count(http.MethodPut, "/schedules/11"))
	})

	t.Run("destination outside the grid", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleAdmin, 1)

		fb.respond(t, http.MethodGet, "/schedules", http.StatusOK, []schedule.Entry{entry})

		req, rec := newRequest(http.MethodPost, "/dashboard/jadval/11/move", []byte(`{"day_of_week":"Monday","slot":10}`))
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, fb.count(http.MethodPut, "/schedules/11"))
	})

	t.Run("unknown entry", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleAdmin, 1)

		fb.respond(t, http.MethodGet, "/schedules", http.StatusOK, []schedule.Entry{})

		req, rec := newRequest(http.MethodPost, "/dashboard/jadval/99/move", []byte(`{"day_of_week":"Monday","slot":0}`))
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_scheduleApi_delete(t *testing.T) {
	entry := schedule.Entry{ID: 11, GroupID: 1, Day: schedule.Monday, StartTime: "08:00", EndTime: "09:00", TeacherID: 7}

	t.Run("without confirmation", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleAdmin, 1)

		req, rec := newRequest(http.MethodDelete, "/dashboard/jadval/11")
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, fb.total())
	})

	t.Run("confirmed", func(t *testing.T) {
		fb := newFakeBackend()
		defer fb.Close()
		server, store := setup(t, fb)
		signIn(t, store, session.RoleAdmin, 1)

		fb.respond(t, http.MethodGet, "/schedules", http.StatusOK, []schedule.Entry{entry})
		fb.respondStatus(http.MethodDelete, "/schedules/11", http.StatusNoContent)

		req, rec := newRequest(http.MethodDelete, "/dashboard/jadval/11?confirm=true")
		server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 1, fb.count(http.MethodDelete, "/schedules/11"))
		assert.Equal(t, 2, fb.count(http.MethodGet, "/schedules"))
	})
}
