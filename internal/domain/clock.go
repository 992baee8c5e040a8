package domain

import "time"

// TimestampLayout renders an ISO-8601 combined date-time with microsecond
// precision and an explicit UTC offset, e.g. 2024-05-01T12:34:56.789012+00:00.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Clock supplies the current time. It is injected so the channel and the
// signing workflow can run against a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Timestamp formats t as the canonical wire timestamp. Timestamp validation
// is exact string equality — no parsing, no re-normalisation, no tolerance
// window — so producers and consumers must share this layout.
func Timestamp(t time.Time) string { return t.UTC().Format(TimestampLayout) }
