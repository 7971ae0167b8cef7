// Package calendar provides the working-day arithmetic and date parsing
// every other package routes through, so that blackout behavior is
// enabled or disabled coherently across the engine (spec §4.1).
package calendar

import (
	"fmt"
	"time"
)

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBlackout reports whether d appears in blackouts, compared at
// day granularity.
func IsBlackout(d time.Time, blackouts []time.Time) bool {
	for _, b := range blackouts {
		if sameDay(b, d) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsWorkingDay reports whether d is a weekday and, when enforceBlackouts
// is true, not a blackout date.
func IsWorkingDay(d time.Time, blackouts []time.Time, enforceBlackouts bool) bool {
	if IsWeekend(d) {
		return false
	}
	if enforceBlackouts && IsBlackout(d, blackouts) {
		return false
	}
	return true
}

// AddWorkingDays advances d by n working days, skipping weekends and
// (when enforceBlackouts is true) blackout dates. n must be >= 0.
func AddWorkingDays(d time.Time, n int, blackouts []time.Time, enforceBlackouts bool) time.Time {
	cur := d
	remaining := n
	for remaining > 0 {
		cur = cur.AddDate(0, 0, 1)
		if IsWorkingDay(cur, blackouts, enforceBlackouts) {
			remaining--
		}
	}
	return cur
}

// dateLayout is the plain YYYY-MM-DD form spec §4.1 requires.
const dateLayout = "2006-01-02"

// ParseISODate accepts "YYYY-MM-DD" and full ISO-8601 timestamps with a
// time suffix, always returning a UTC midnight-truncated date (the
// engine compares calendar dates only, never time-of-day, per spec §9).
func ParseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Truncate(24 * time.Hour), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC().Truncate(24 * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("calendar: invalid date %q (expected YYYY-MM-DD or ISO-8601)", s)
}

// FormatISODate renders d as YYYY-MM-DD for table/CSV output (spec §6).
func FormatISODate(d time.Time) string {
	return d.Format(dateLayout)
}

// DurationBetween returns the number of days between a and b (b - a),
// at calendar-date granularity.
func DurationBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	aa := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bb := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bb.Sub(aa).Hours() / 24)
}
