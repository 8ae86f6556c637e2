package scoring

import "time"

// Window bounds how far a timestamp may lag behind (MaxAge) or run ahead of
// (MaxFuture) the current time, both in seconds.
type Window struct {
	MaxAge    int64
	MaxFuture int64
}

// DefaultWindow accepts timestamps up to five minutes old and thirty seconds
// in the future.
var DefaultWindow = Window{MaxAge: 300, MaxFuture: 30}

// Contains reports whether -MaxFuture <= now-ts <= MaxAge.
func (w Window) Contains(ts, now int64) bool {
	age := now - ts
	return age >= -w.MaxFuture && age <= w.MaxAge
}

// Timestamp returns the current Unix time in seconds.
func Timestamp() int64 {
	return time.Now().Unix()
}

// IsTimestampValid checks ts against DefaultWindow and the wall clock.
func IsTimestampValid(ts int64) bool {
	return IsTimestampValidWithin(ts, DefaultWindow)
}

// IsTimestampValidWithin checks ts against w and the wall clock.
func IsTimestampValidWithin(ts int64, w Window) bool {
	return w.Contains(ts, Timestamp())
}
