// Package stats tracks local usage counters and the rolling weekly
// activity histogram shown on the dashboard.
package stats

import (
	"time"
)

// DateLayout is the calendar-date format of LastActiveDate.
const DateLayout = "2006-01-02"

// MaxWeeklyBuckets bounds WeeklyActivity.
const MaxWeeklyBuckets = 7

// Kind is a tracked activity.
type Kind string

const (
	KindQuery        Kind = "query"
	KindResourceView Kind = "resource_view"
)

// Valid reports whether k is a tracked activity.
func (k Kind) Valid() bool {
	return k == KindQuery || k == KindResourceView
}

// DailyActivity is one weekly bucket. Date holds a weekday label such as
// "Mon", not a full date, so the same weekday in different weeks shares a
// bucket.
type DailyActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// UserStats is the persisted usage record.
type UserStats struct {
	TotalQueries    int             `json:"totalQueries"`
	ResourcesViewed int             `json:"resourcesViewed"`
	CurrentStreak   int             `json:"currentStreak"`
	LastActiveDate  string          `json:"lastActiveDate"`
	WeeklyActivity  []DailyActivity `json:"weeklyActivity"`
}

// Default returns zeroed stats with LastActiveDate set to now's date.
func Default(now time.Time) UserStats {
	return UserStats{
		LastActiveDate: now.Format(DateLayout),
		WeeklyActivity: []DailyActivity{},
	}
}

// WeekdayLabel returns the short weekday label used for buckets.
func WeekdayLabel(t time.Time) string {
	return t.Weekday().String()[:3]
}

// RecordActivity returns s updated for one activity of kind at now. s is
// not modified.
//
// The streak grows by one on the first activity of any calendar day that
// differs from LastActiveDate. Gaps between days are not checked.
func RecordActivity(s UserStats, kind Kind, now time.Time) UserStats {
	if !kind.Valid() {
		return s
	}
	out := s
	out.WeeklyActivity = make([]DailyActivity, len(s.WeeklyActivity), len(s.WeeklyActivity)+1)
	copy(out.WeeklyActivity, s.WeeklyActivity)

	switch kind {
	case KindQuery:
		out.TotalQueries++
	case KindResourceView:
		out.ResourcesViewed++
	}

	today := now.Format(DateLayout)
	if out.LastActiveDate != today {
		out.LastActiveDate = today
		out.CurrentStreak++
	}

	label := WeekdayLabel(now)
	for i := range out.WeeklyActivity {
		if out.WeeklyActivity[i].Date == label {
			out.WeeklyActivity[i].Count++
			return out
		}
	}
	out.WeeklyActivity = append(out.WeeklyActivity, DailyActivity{Date: label, Count: 1})
	if len(out.WeeklyActivity) > MaxWeeklyBuckets {
		out.WeeklyActivity = out.WeeklyActivity[len(out.WeeklyActivity)-MaxWeeklyBuckets:]
	}
	return out
}

// QueryGoalPercent is progress toward the "Super Asker" badge.
func (s UserStats) QueryGoalPercent() int {
	return min(s.TotalQueries*5, 100)
}

// ResourceGoalPercent is progress toward the "Methodology Master" badge.
func (s UserStats) ResourceGoalPercent() int {
	return min(s.ResourcesViewed*10, 100)
}

// ChartPoints returns the weekly buckets for charting. An empty history
// yields a single zero point labelled "Today".
func (s UserStats) ChartPoints() []DailyActivity {
	if len(s.WeeklyActivity) == 0 {
		return []DailyActivity{{Date: "Today", Count: 0}}
	}
	out := make([]DailyActivity, len(s.WeeklyActivity))
	copy(out, s.WeeklyActivity)
	return out
}
