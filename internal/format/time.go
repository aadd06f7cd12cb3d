package format

import "time"

const (
	// filetimeEpochUnix is 1601-01-01T00:00:00Z expressed in Unix seconds.
	filetimeEpochUnix = -11644473600

	// ticksPerMicrosecond: FILETIME counts 100ns intervals.
	ticksPerMicrosecond = 10

	microsPerSecond = 1_000_000
)

// maxTimestamp caps decoded timestamps at the end of year 9999. Garbage tick
// values from false-positive matches routinely land far beyond any plausible
// date; they decode to null instead of nonsense.
var maxTimestamp = time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)

// TimeFromFiletime converts a raw FILETIME tick count (100ns units since
// 1601-01-01 UTC) to calendar time at microsecond precision, rounding half
// to even. A zero tick count means "never set"; it and any out-of-range
// value report ok=false.
func TimeFromFiletime(ticks uint64) (t time.Time, ok bool) {
	if ticks == 0 {
		return time.Time{}, false
	}
	us := ticks / ticksPerMicrosecond
	rem := ticks % ticksPerMicrosecond
	if rem > 5 || (rem == 5 && us%2 == 1) {
		us++
	}
	sec := int64(us / microsPerSecond)
	micro := int64(us % microsPerSecond)
	t = time.Unix(filetimeEpochUnix+sec, micro*1000).UTC()
	if !t.Before(maxTimestamp) {
		return time.Time{}, false
	}
	return t, true
}
