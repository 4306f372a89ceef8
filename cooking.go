package microwave

import (
	"time"

	"github.com/enetx/g"
)

// DefaultThrottle caps the polling rate while heating: each tick without
// input sleeps this long after emitting a heartbeat. Deadline overshoot is
// bounded by this interval.
const DefaultThrottle = 200 * time.Millisecond

// CookingState runs the heater until the deadline passes or the user
// intervenes.
type CookingState struct {
	BaseState

	// Throttle overrides DefaultThrottle when positive.
	Throttle time.Duration
}

func (CookingState) Name() g.String { return StateCooking }

// Enter derives the stop deadline from whatever cook time the context
// currently holds. Resuming from a pause therefore restarts with the
// remaining duration, not the originally entered one.
func (CookingState) Enter(ctx *Context) {
	ctx.sink.Line("Start heating")
	ctx.Deadline = ctx.clock.Now().Add(ctx.CookTime)
}

func (CookingState) Exit(ctx *Context) {
	ctx.sink.Line("Stop heating")
}

func (s CookingState) Update(ctx *Context) g.Option[g.String] {
	now := ctx.clock.Now()

	switch {
	case !now.Before(ctx.Deadline):
		return g.Some(StateIdle)
	case ctx.Event == EventCancel:
		ctx.sink.Line("Cancel")
		return g.Some(StateIdle)
	case ctx.Event == EventPause:
		// Freeze the remaining duration; Cooking's Enter rebuilds the
		// deadline from it on resume.
		ctx.CookTime = ctx.Deadline.Sub(now)
		return g.Some(StatePaused)
	default:
		ctx.sink.Mark(".")
		ctx.clock.Sleep(s.throttle())
	}

	return g.None[g.String]()
}

func (s CookingState) throttle() time.Duration {
	if s.Throttle > 0 {
		return s.Throttle
	}

	return DefaultThrottle
}
