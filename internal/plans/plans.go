// Package plans picks the day's lesson plan from static subject tables.
package plans

import (
	"strings"
	"time"

	"github.com/abhisek/sahayak/internal/profile"
)

// LessonPlan is a ready-to-run classroom activity.
type LessonPlan struct {
	Title     string
	Prep      string
	Steps     []string
	Duration  string
	GroupSize string
}

// DefaultTable is the key of the fallback table.
const DefaultTable = "default"

// DayOfYear returns the whole days elapsed since January 1 of now's year in
// now's location. January 1 is day 0.
func DayOfYear(now time.Time) int {
	return now.YearDay() - 1
}

// Table returns the plans for subject, or the default table when the
// subject is blank or unknown.
func Table(subject string) []LessonPlan {
	subject = strings.TrimSpace(subject)
	if subject != "" {
		if t, ok := tables[subject]; ok && len(t) > 0 {
			return t
		}
	}
	return tables[DefaultTable]
}

// SelectAt picks the plan at (dayOfYear + offset) mod len(table).
func SelectAt(p profile.UserProfile, offset, dayOfYear int) LessonPlan {
	t := Table(p.Subject)
	i := (dayOfYear + offset) % len(t)
	if i < 0 {
		i += len(t)
	}
	return t[i]
}

// Select picks the plan for now's calendar day.
func Select(p profile.UserProfile, offset int, now time.Time) LessonPlan {
	return SelectAt(p, offset, DayOfYear(now))
}

// Rotation is the "another task" counter. It starts at zero for every
// view that shows a plan.
type Rotation struct {
	offset int
}

// Offset returns the current offset.
func (r *Rotation) Offset() int { return r.offset }

// Next advances to the following plan and returns the new offset.
func (r *Rotation) Next() int {
	r.offset++
	return r.offset
}

// Reset returns to today's first plan.
func (r *Rotation) Reset() { r.offset = 0 }
