package repository

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a queried run does not exist.
var ErrNotFound = errors.New("not found")

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the
// given layout. Returns nil if the value is NULL, empty, or fails to
// parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
