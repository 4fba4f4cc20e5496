package repository

import "time"

// timeToString formats t for SQLite storage as RFC3339 UTC.
func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a stored RFC3339 timestamp, yielding the zero time for
// empty or malformed values.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
