package schedule

import (
	"testing"
	"time"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"13:45", 825, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
	}

	for _, tt := range tests {
		got, err := TimeToMinutes(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("TimeToMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSlotsOverlap(t *testing.T) {
	base := Slot{Day: time.Monday, Start: "10:00", End: "12:00"}

	tests := []struct {
		name  string
		other Slot
		want  bool
	}{
		{"same interval", Slot{Day: time.Monday, Start: "10:00", End: "12:00"}, true},
		{"partial overlap", Slot{Day: time.Monday, Start: "11:00", End: "13:00"}, true},
		{"contained", Slot{Day: time.Monday, Start: "10:30", End: "11:30"}, true},
		{"touching end is not overlap", Slot{Day: time.Monday, Start: "12:00", End: "14:00"}, false},
		{"touching start is not overlap", Slot{Day: time.Monday, Start: "08:00", End: "10:00"}, false},
		{"different day", Slot{Day: time.Tuesday, Start: "10:00", End: "12:00"}, false},
		{"malformed time", Slot{Day: time.Monday, Start: "ten", End: "12:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotsOverlap(base, tt.other); got != tt.want {
				t.Errorf("SlotsOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInWeek(t *testing.T) {
	sched := CourseSchedule{
		StartDate: date(t, "2026-02-02"),
		EndDate:   date(t, "2026-03-29"),
	}

	tests := []struct {
		name      string
		weekStart string
		want      bool
	}{
		{"before course begins", "2026-01-19", false},
		{"week containing start", "2026-02-02", true},
		{"middle of course", "2026-03-02", true},
		{"week containing end", "2026-03-23", true},
		{"after course ends", "2026-03-30", false},
		{"week just before start", "2026-01-26", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sched.InWeek(date(t, tt.weekStart)); got != tt.want {
				t.Errorf("InWeek(%s) = %v, want %v", tt.weekStart, got, tt.want)
			}
		})
	}
}

func TestWeeksAndBarSpan(t *testing.T) {
	weeks := Weeks(date(t, "2026-02-02"), date(t, "2026-03-29"))
	if len(weeks) != 8 {
		t.Fatalf("Weeks() returned %d weeks, want 8", len(weeks))
	}
	if !weeks[0].Equal(date(t, "2026-02-02")) {
		t.Errorf("first week = %s, want 2026-02-02", weeks[0].Format("2006-01-02"))
	}

	sched := CourseSchedule{
		OfferingID: "o1",
		StartDate:  date(t, "2026-02-16"),
		EndDate:    date(t, "2026-03-08"),
	}
	first, last, ok := sched.BarSpan(weeks)
	if !ok {
		t.Fatal("BarSpan reported no intersection")
	}
	if first != 2 || last != 4 {
		t.Errorf("BarSpan = (%d, %d), want (2, 4)", first, last)
	}

	outside := CourseSchedule{StartDate: date(t, "2027-01-01"), EndDate: date(t, "2027-02-01")}
	if _, _, ok := outside.BarSpan(weeks); ok {
		t.Error("BarSpan matched a schedule outside the semester")
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-02-04", "2026-02-02"}, // Wednesday
		{"2026-02-02", "2026-02-02"}, // already Monday
		{"2026-02-08", "2026-02-02"}, // Sunday
	}
	for _, tt := range tests {
		if got := MondayOf(date(t, tt.in)); !got.Equal(date(t, tt.want)) {
			t.Errorf("MondayOf(%s) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestConflicts(t *testing.T) {
	weeks := Weeks(date(t, "2026-02-02"), date(t, "2026-03-01"))

	algorithms := CourseSchedule{
		OfferingID: "algo",
		StartDate:  date(t, "2026-02-02"),
		EndDate:    date(t, "2026-03-29"),
		Slots:      []Slot{{Day: time.Monday, Start: "10:00", End: "12:00"}},
	}
	databases := CourseSchedule{
		OfferingID: "db",
		StartDate:  date(t, "2026-02-02"),
		EndDate:    date(t, "2026-02-15"),
		Slots:      []Slot{{Day: time.Monday, Start: "11:00", End: "13:00"}},
	}
	networks := CourseSchedule{
		OfferingID: "net",
		StartDate:  date(t, "2026-02-02"),
		EndDate:    date(t, "2026-03-29"),
		Slots:      []Slot{{Day: time.Friday, Start: "10:00", End: "12:00"}},
	}

	conflicts := Conflicts([]CourseSchedule{algorithms, databases, networks}, weeks)

	// algo and db overlap only during the two weeks db is running.
	if len(conflicts) != 2 {
		t.Fatalf("got %d conflicts, want 2: %+v", len(conflicts), conflicts)
	}
	for _, c := range conflicts {
		if c.OfferingA != "algo" || c.OfferingB != "db" {
			t.Errorf("unexpected conflict pair: %+v", c)
		}
	}
}
