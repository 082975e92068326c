package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardorbek/darsxona/core/session"
)

func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots()
	require.Len(t, slots, 10)
	assert.Equal(t, Slot{Start: "08:00", End: "09:00"}, slots[0])
	assert.Equal(t, Slot{Start: "17:00", End: "18:00"}, slots[9])
}

func TestNewGrid(t *testing.T) {
	slots := DefaultSlots()
	math := Entry{ID: 1, Day: Monday, StartTime: "08:00", EndTime: "09:00", TeacherID: 7}
	english := Entry{ID: 2, Day: Wednesday, StartTime: "10:00", EndTime: "11:00", TeacherID: 8}
	// same cell as math; the grid draws whatever arrived first
	clash := Entry{ID: 3, Day: Monday, StartTime: "08:00", EndTime: "09:00", TeacherID: 9}

	g := NewGrid(slots, []Entry{math, english, clash})

	got, ok := g.EntryAt(Monday, 0)
	require.True(t, ok)
	assert.Equal(t, math, got)

	got, ok = g.EntryAt(Wednesday, 2)
	require.True(t, ok)
	assert.Equal(t, english, got)

	_, ok = g.EntryAt(Sunday, 0)
	assert.False(t, ok)
	_, ok = g.EntryAt(Monday, -1)
	assert.False(t, ok)
	_, ok = g.EntryAt(Monday, len(slots))
	assert.False(t, ok)
}

func TestGrid_Matrix(t *testing.T) {
	slots := DefaultSlots()
	math := Entry{ID: 1, Day: Monday, StartTime: "08:00", EndTime: "09:00"}
	english := Entry{ID: 2, Day: Sunday, StartTime: "17:00", EndTime: "18:00"}

	m := NewGrid(slots, []Entry{math, english}).Matrix()

	require.Len(t, m, len(slots))
	for _, row := range m {
		require.Len(t, row, len(Week))
	}
	require.NotNil(t, m[0][0])
	assert.Equal(t, math, *m[0][0])
	require.NotNil(t, m[9][6])
	assert.Equal(t, english, *m[9][6])
	assert.Nil(t, m[0][1])
	assert.Nil(t, m[5][3])
}

func TestGrid_PlanMove(t *testing.T) {
	slots := DefaultSlots()
	entry := Entry{ID: 11, Day: Monday, StartTime: "08:00", EndTime: "09:00", TeacherID: 7}
	g := NewGrid(slots, []Entry{entry})

	admin := session.Session{Role: session.RoleAdmin, UserID: 1}
	owner := session.Session{Role: session.RoleTeacher, UserID: 7}
	other := session.Session{Role: session.RoleTeacher, UserID: 8}
	student := session.Session{Role: session.RoleStudent, UserID: 7}

	t.Run("admin relocates any entry", func(t *testing.T) {
		mv, err := g.PlanMove(admin, entry, Thursday, 3)
		require.NoError(t, err)
		assert.Equal(t, Move{EntryID: 11, Day: Thursday, StartTime: "11:00", EndTime: "12:00"}, mv)
	})

	t.Run("teacher relocates own entry", func(t *testing.T) {
		mv, err := g.PlanMove(owner, entry, Friday, 0)
		require.NoError(t, err)
		assert.Equal(t, Move{EntryID: 11, Day: Friday, StartTime: "08:00", EndTime: "09:00"}, mv)
	})

	t.Run("teacher blocked on another's entry", func(t *testing.T) {
		_, err := g.PlanMove(other, entry, Friday, 0)
		assert.Equal(t, ErrNotPermitted, err)
	})

	t.Run("student never relocates", func(t *testing.T) {
		_, err := g.PlanMove(student, entry, Friday, 0)
		assert.Equal(t, ErrNotPermitted, err)
	})

	t.Run("destination outside the grid", func(t *testing.T) {
		_, err := g.PlanMove(admin, entry, Monday, len(slots))
		assert.Equal(t, ErrNoSuchCell, err)

		_, err = g.PlanMove(admin, entry, Monday, -1)
		assert.Equal(t, ErrNoSuchCell, err)

		_, err = g.PlanMove(admin, entry, Day("Caturday"), 0)
		assert.Equal(t, ErrNoSuchCell, err)
	})

	t.Run("occupied destination is allowed", func(t *testing.T) {
		blocker := Entry{ID: 12, Day: Tuesday, StartTime: "09:00", EndTime: "10:00", TeacherID: 7}
		g2 := NewGrid(slots, []Entry{entry, blocker})

		mv, err := g2.PlanMove(admin, entry, Tuesday, 1)
		require.NoError(t, err)
		assert.Equal(t, Move{EntryID: 11, Day: Tuesday, StartTime: "09:00", EndTime: "10:00"}, mv)
	})
}
