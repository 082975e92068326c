package schedule

import (
	"github.com/pkg/errors"

	"github.com/sardorbek/darsxona/core/session"
)

var (
	ErrNotPermitted = errors.New("you are not allowed to modify this entry")
	ErrNoSuchCell   = errors.New("destination cell is outside the grid")
)

// Grid is the weekly matrix: 7 days across, one row per lesson slot. A cell
// holds at most one entry, found by matching the entry's day and start time
// against the slot's start. The grid never prevents double-booking itself;
// the backend is the authority and whatever it returns is what gets drawn,
// a duplicate in a cell is simply not rendered.
type Grid struct {
	Slots []Slot
	cells map[cellKey]Entry
}

type cellKey struct {
	day   Day
	start string
}

func NewGrid(slots []Slot, entries []Entry) *Grid {
	g := &Grid{
		Slots: slots,
		cells: make(map[cellKey]Entry, len(entries)),
	}
	for _, e := range entries {
		key := cellKey{day: e.Day, start: e.StartTime}
		if _, taken := g.cells[key]; taken {
			continue
		}
		g.cells[key] = e
	}
	return g
}

// EntryAt returns the entry occupying the (day, slot) cell, if any.
func (g *Grid) EntryAt(day Day, slot int) (Entry, bool) {
	if slot < 0 || slot >= len(g.Slots) {
		return Entry{}, false
	}
	e, ok := g.cells[cellKey{day: day, start: g.Slots[slot].Start}]
	return e, ok
}

// Matrix renders the grid row-major: Matrix()[slot][day] is the entry in
// that cell or nil. This is the view-model the schedule page serves.
func (g *Grid) Matrix() [][]*Entry {
	rows := make([][]*Entry, len(g.Slots))
	for si := range g.Slots {
		row := make([]*Entry, len(Week))
		for di, day := range Week {
			if e, ok := g.EntryAt(day, si); ok {
				cell := e
				row[di] = &cell
			}
		}
		rows[si] = row
	}
	return rows
}

// Move is the day/time update submitted for a relocated entry. The move is
// optimistic only on the caller's side: authoritative placement is whatever
// the follow-up fetch returns.
type Move struct {
	EntryID   int
	Day       Day
	StartTime string
	EndTime   string
}

// PlanMove validates dragging entry to the cell (dstDay, dstSlot) and
// computes the update to submit. It performs no I/O, so the permission rule
// always runs before any network call: students may never relocate, teachers
// only their own entries. Occupancy of the destination is deliberately not
// checked; the backend decides, and a rejected move just re-renders the
// prior layout.
func (g *Grid) PlanMove(sess session.Session, entry Entry, dstDay Day, dstSlot int) (Move, error) {
	if !session.CanManageScheduleEntry(sess, entry.TeacherID) {
		return Move{}, ErrNotPermitted
	}
	if !dstDay.Valid() || dstSlot < 0 || dstSlot >= len(g.Slots) {
		return Move{}, ErrNoSuchCell
	}
	dst := g.Slots[dstSlot]
	return Move{
		EntryID:   entry.ID,
		Day:       dstDay,
		StartTime: dst.Start,
		EndTime:   dst.End,
	}, nil
}
