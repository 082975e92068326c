package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardorbek/darsxona/backend"
	"github.com/sardorbek/darsxona/core/session"
)

func Test_attendanceApi_list(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	server, store := setup(t, fb)
	signIn(t, store, session.RoleTeacher, 7)

	records := []backend.AttendanceRecord{
		{ID: 1, StudentID: 11, StudentName: "Aziza Karimova", GroupID: 5, Date: "2026-08-28", Present: true},
	}
	fb.handle(http.MethodGet, "/attendance", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("group_id"))
		assert.Equal(t, "2026-08-28", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(marshallObj(t, records))
	})

	req, rec := newRequest(http.MethodGet, "/dashboard/davomat?group_id=5&date=2026-08-28")
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, string(marshallObj(t, records)), rec.Body.String())
}

func Test_attendanceApi_list_missingGroup(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	server, store := setup(t, fb)
	signIn(t, store, session.RoleTeacher, 7)

	req, rec := newRequest(http.MethodGet, "/dashboard/davomat")
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, fb.total())
}

func Test_attendanceApi_save(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	server, store := setup(t, fb)
	signIn(t, store, session.RoleTeacher, 7)

	fresh := []backend.AttendanceRecord{
		{ID: 1, StudentID: 11, GroupID: 5, Date: "2026-08-28", Present: true},
		{ID: 2, StudentID: 12, GroupID: 5, Date: "2026-08-28", Present: false},
	}
	fb.respondStatus(http.MethodPost, "/attendance", http.StatusCreated)
	fb.respond(t, http.MethodGet, "/attendance", http.StatusOK, fresh)

	form := backend.AttendanceForm{
		GroupID: 5,
		Date:    "2026-08-28",
		Marks: []backend.AttendanceMark{
			{StudentID: 11, Present: true},
			{StudentID: 12, Present: false},
		},
	}
	req, rec := newRequest(http.MethodPost, "/dashboard/davomat", marshallObj(t, form))
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, string(marshallObj(t, fresh)), rec.Body.String())
	assert.Equal(t, 1, fb.count(http.MethodPost, "/attendance"))
	assert.Equal(t, 1, fb.count(http.MethodGet, "/attendance"))
}

func Test_attendanceApi_save_validation(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	server, store := setup(t, fb)
	signIn(t, store, session.RoleTeacher, 7)

	// no marks, malformed date
	req, rec := newRequest(http.MethodPost, "/dashboard/davomat", []byte(`{"group_id":5,"date":"28.08.2026","marks":[]}`))
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, fb.total())
}
