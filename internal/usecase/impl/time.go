package impl

import "time"

// startOfDay truncates t to local midnight. All per-day records are keyed by
// this value, and day windows are [startOfDay, startOfDay+24h).
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
