package ecoscore

import (
	"time"

	"cloud.google.com/go/civil"
)

// Today returns the calendar date of now in loc. A nil loc means time.Local.
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.Local
	}
	return civil.DateOf(now.In(loc))
}

// Window returns the n dates ending at ref (inclusive), oldest first.
func Window(ref civil.Date, n int) []civil.Date {
	if n <= 0 {
		return []civil.Date{}
	}
	out := make([]civil.Date, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, ref.AddDays(-i))
	}
	return out
}

// Key formats d as a log key
func Key(d civil.Date) string {
	return d.String()
}

// ParseKey parses a log key. Anything other than a valid YYYY-MM-DD fails.
func ParseKey(key string) (civil.Date, bool) {
	d, err := civil.ParseDate(key)
	if err != nil {
		return civil.Date{}, false
	}
	return d, true
}
