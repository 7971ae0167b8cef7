package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsWorkingDay(t *testing.T) {
	sat := date("2026-08-01") // Saturday
	mon := date("2026-08-03")
	blackout := []time.Time{mon}

	assert.False(t, IsWorkingDay(sat, nil, true))
	assert.True(t, IsWorkingDay(mon, nil, true))
	assert.False(t, IsWorkingDay(mon, blackout, true))
	assert.True(t, IsWorkingDay(mon, blackout, false), "blackout dimension disabled")
}

func TestAddWorkingDays(t *testing.T) {
	fri := date("2026-07-31") // Friday
	got := AddWorkingDays(fri, 1, nil, true)
	assert.Equal(t, date("2026-08-03"), got, "skips the weekend")

	blackout := []time.Time{date("2026-08-03")}
	got = AddWorkingDays(fri, 1, blackout, true)
	assert.Equal(t, date("2026-08-04"), got, "skips weekend and blackout")
}

func TestParseISODate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-01-15", date("2026-01-15")},
		{"2026-01-15T00:00:00Z", date("2026-01-15")},
		{"2026-01-15T09:30:00", date("2026-01-15")},
	}
	for _, c := range cases {
		got, err := ParseISODate(c.in)
		require.NoError(t, err, c.in)
		assert.True(t, got.Equal(c.want), "input %q: got %v want %v", c.in, got, c.want)
	}

	_, err := ParseISODate("not-a-date")
	assert.Error(t, err)
}

func TestDurationBetween(t *testing.T) {
	assert.Equal(t, 30, DurationBetween(date("2026-01-01"), date("2026-01-31")))
	assert.Equal(t, 0, DurationBetween(date("2026-01-01"), date("2026-01-01")))
}
