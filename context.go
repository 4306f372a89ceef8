package microwave

import "time"

// Context holds the data shared between the Machine and its states. It is
// owned by the Machine and mutated only from the current state's Enter and
// Update, one tick at a time, so no locking exists at this layer.
//
// CookTime is the entered cook time while idling and the remaining cook
// time after a pause. Deadline is the absolute moment heating stops and is
// meaningful only while cooking.
type Context struct {
	Event    Event
	CookTime time.Duration
	Deadline time.Time

	clock Clock
	sink  Sink
}

func newContext(clock Clock, sink Sink) *Context {
	return &Context{clock: clock, sink: sink}
}

// Clock returns the machine's monotonic time source.
func (c *Context) Clock() Clock { return c.clock }

// Sink returns the machine's status output sink.
func (c *Context) Sink() Sink { return c.sink }
