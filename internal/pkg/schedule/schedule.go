// Package schedule holds the calendar arithmetic behind the semester
// timeline: HH:MM parsing, time-slot overlap and week/date-range math.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const daysPerWeek = 7

// Slot is a weekly recurring class meeting. Weekday follows time.Weekday.
type Slot struct {
	Day   time.Weekday
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// CourseSchedule ties a set of weekly slots to the date range the course
// actually runs.
type CourseSchedule struct {
	OfferingID string
	StartDate  time.Time
	EndDate    time.Time
	Slots      []Slot
}

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
func TimeToMinutes(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", value, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return hours*60 + minutes, nil
}

// SlotsOverlap reports whether two weekly slots collide: same weekday and
// intersecting half-open time intervals. Malformed times never overlap.
func SlotsOverlap(a, b Slot) bool {
	if a.Day != b.Day {
		return false
	}
	aStart, err := TimeToMinutes(a.Start)
	if err != nil {
		return false
	}
	aEnd, err := TimeToMinutes(a.End)
	if err != nil {
		return false
	}
	bStart, err := TimeToMinutes(b.Start)
	if err != nil {
		return false
	}
	bEnd, err := TimeToMinutes(b.End)
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// InWeek reports whether the schedule's date range intersects the week
// starting at weekStart (inclusive of both range endpoints).
func (s CourseSchedule) InWeek(weekStart time.Time) bool {
	weekEnd := weekStart.AddDate(0, 0, daysPerWeek-1)
	return !s.StartDate.After(weekEnd) && !s.EndDate.Before(weekStart)
}

// Weeks returns the Monday-aligned week starts covering [from, to].
func Weeks(from, to time.Time) []time.Time {
	if to.Before(from) {
		return nil
	}
	start := MondayOf(from)
	var weeks []time.Time
	for cursor := start; !cursor.After(to); cursor = cursor.AddDate(0, 0, daysPerWeek) {
		weeks = append(weeks, cursor)
	}
	return weeks
}

// MondayOf returns the Monday of the week containing t.
func MondayOf(t time.Time) time.Time {
	day := t.Truncate(24 * time.Hour)
	offset := (int(day.Weekday()) + 6) % daysPerWeek
	return day.AddDate(0, 0, -offset)
}

// BarSpan maps a schedule onto week indices for timeline rendering: the
// index of the first and last week (within weeks) the course is active in.
// ok is false when the course does not intersect any of the weeks.
func (s CourseSchedule) BarSpan(weeks []time.Time) (first, last int, ok bool) {
	first = -1
	for i, week := range weeks {
		if !s.InWeek(week) {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	return first, last, first != -1
}

// Conflict is a pair of offerings whose meetings collide within a week.
type Conflict struct {
	OfferingA string
	OfferingB string
	WeekStart time.Time
}

// Conflicts scans every pair of schedules over the given weeks and reports
// each week where two simultaneously active courses have colliding slots.
func Conflicts(schedules []CourseSchedule, weeks []time.Time) []Conflict {
	var conflicts []Conflict
	for _, week := range weeks {
		for i := 0; i < len(schedules); i++ {
			if !schedules[i].InWeek(week) {
				continue
			}
			for j := i + 1; j < len(schedules); j++ {
				if !schedules[j].InWeek(week) {
					continue
				}
				if schedulesCollide(schedules[i], schedules[j]) {
					conflicts = append(conflicts, Conflict{
						OfferingA: schedules[i].OfferingID,
						OfferingB: schedules[j].OfferingID,
						WeekStart: week,
					})
				}
			}
		}
	}
	return conflicts
}

func schedulesCollide(a, b CourseSchedule) bool {
	for _, sa := range a.Slots {
		for _, sb := range b.Slots {
			if SlotsOverlap(sa, sb) {
				return true
			}
		}
	}
	return false
}
