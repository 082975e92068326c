package schedule

// Day of week as the backend spells it.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Week lists the grid's columns in display order.
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayIndex returns the column of d in the grid, or -1 for an unknown day.
func DayIndex(d Day) int {
	for i, wd := range Week {
		if wd == d {
			return i
		}
	}
	return -1
}

func (d Day) Valid() bool {
	return DayIndex(d) >= 0
}

// Entry is a single class occupying one day/time cell, owned by a teacher
// and belonging to a group. The backend owns the record; the gateway only
// holds the copy rendered for one screen.
type Entry struct {
	ID          int    `json:"id"`
	GroupID     int    `json:"group_id"`
	GroupName   string `json:"group_name,omitempty"`
	Day         Day    `json:"day_of_week"`
	StartTime   string `json:"start_time"` // "HH:MM"
	EndTime     string `json:"end_time"`
	Room        string `json:"room,omitempty"`
	TeacherID   int    `json:"teacher_id"`
	TeacherName string `json:"teacher_name,omitempty"`
}

// Slot is one row of the weekly grid.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DefaultSlots is the reference configuration: ten one-hour lessons from
// 08:00 to 18:00.
func DefaultSlots() []Slot {
	starts := []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	ends := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}
	slots := make([]Slot, len(starts))
	for i := range starts {
		slots[i] = Slot{Start: starts[i], End: ends[i]}
	}
	return slots
}
