package utils

import "time"

// West Africa Time (+01:00), the marketplace's home timezone.
var watLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Lagos"); err == nil {
		return loc
	}
	return time.FixedZone("WAT", 3600)
}()

// FromUnixSecondsWAT converts an epoch value in seconds to WAT. Returns the
// zero time for t<=0 so callers decide how to render missing values.
func FromUnixSecondsWAT(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(watLoc)
}

func FormatRFC3339WAT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(watLoc).Format(time.RFC3339)
}
