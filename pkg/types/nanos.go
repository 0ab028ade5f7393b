package types

import "time"

// UnixNanos is a nanosecond-resolution Unix epoch timestamp. The zero value
// means "not set" (e.g. no activation or expiration for perpetual instruments).
type UnixNanos int64

func UnixNanosFromTime(t time.Time) UnixNanos {
	if t.IsZero() {
		return 0
	}
	return UnixNanos(t.UnixNano())
}

func UnixNanosNow() UnixNanos {
	return UnixNanos(time.Now().UnixNano())
}

func (n UnixNanos) Time() time.Time {
	return time.Unix(0, int64(n)).UTC()
}

func (n UnixNanos) IsZero() bool {
	return n == 0
}

func (n UnixNanos) String() string {
	return n.Time().Format(time.RFC3339Nano)
}
