package format

import (
	"math"
	"testing"
	"time"
)

// ticksFor is the inverse conversion, for building test inputs.
func ticksFor(t time.Time) uint64 {
	return uint64(t.Unix()-filetimeEpochUnix)*10_000_000 + uint64(t.Nanosecond())/100
}

func TestTimeFromFiletimeZeroIsUnset(t *testing.T) {
	if _, ok := TimeFromFiletime(0); ok {
		t.Fatal("ok = true for zero ticks, want false")
	}
}

func TestTimeFromFiletimeEpoch(t *testing.T) {
	got, ok := TimeFromFiletime(10) // one microsecond past the epoch
	if !ok {
		t.Fatal("ok = false")
	}
	want := time.Date(1601, 1, 1, 0, 0, 0, 1000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTimeFromFiletimeModernDate(t *testing.T) {
	want := time.Date(2018, 6, 1, 14, 11, 46, 102794000, time.UTC)
	got, ok := TimeFromFiletime(ticksFor(want))
	if !ok {
		t.Fatal("ok = false")
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTimeFromFiletimeRoundsHalfEven(t *testing.T) {
	epoch := time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		ticks  uint64
		micros int
	}{
		{14, 1}, // 1.4us rounds down
		{15, 2}, // 1.5us rounds to even
		{16, 2}, // 1.6us rounds up
		{25, 2}, // 2.5us rounds to even
		{5, 0},  // 0.5us rounds to even
	}
	for _, tc := range tests {
		got, ok := TimeFromFiletime(tc.ticks)
		if !ok {
			t.Fatalf("ticks %d: ok = false", tc.ticks)
		}
		want := epoch.Add(time.Duration(tc.micros) * time.Microsecond)
		if !got.Equal(want) {
			t.Errorf("ticks %d: got %v, want %v", tc.ticks, got, want)
		}
	}
}

func TestTimeFromFiletimeOverflowIsNull(t *testing.T) {
	if _, ok := TimeFromFiletime(math.MaxUint64); ok {
		t.Fatal("ok = true for max ticks, want false")
	}
	// First moment of year 10000 is already out of range.
	if _, ok := TimeFromFiletime(ticksFor(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))); ok {
		t.Fatal("ok = true for year 10000, want false")
	}
	// Last representable microsecond of 9999 still decodes.
	if _, ok := TimeFromFiletime(ticksFor(time.Date(9999, 12, 31, 23, 59, 59, 999999000, time.UTC))); !ok {
		t.Fatal("ok = false for end of year 9999, want true")
	}
}
