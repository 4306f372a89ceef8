package microwave

import "time"

// Clock is the monotonic time source used for deadline math and for the
// cooking heartbeat throttle. Injecting it keeps state timing testable.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the process clock. time.Time carries the monotonic
// reading, so deadline comparisons are immune to wall-clock jumps.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }
