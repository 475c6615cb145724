package bitbucket

import "time"

// FromEpochMillis converts a Bitbucket Server timestamp (milliseconds since
// the Unix epoch) to UTC time. Zero maps to the zero time.
func FromEpochMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
