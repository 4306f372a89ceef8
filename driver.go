package microwave

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Driver wires an event source to a controller and runs the poll, assign,
// update cycle until the context is cancelled.
type Driver struct {
	machine  Controller
	source   Source
	log      *zap.Logger
	clock    Clock
	interval time.Duration
	observer func(Event)
}

// DriverOptions configures a Driver. PollInterval throttles the outer loop
// between ticks; zero keeps the free-running behavior, where pacing comes
// only from the cooking heartbeat throttle. OnEvent observes every
// non-empty symbol as it is read.
type DriverOptions struct {
	Logger       *zap.Logger
	Clock        Clock
	PollInterval time.Duration
	OnEvent      func(Event)
}

// NewDriver creates a Driver for the given controller and source.
func NewDriver(machine Controller, source Source, opts DriverOptions) *Driver {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if opts.Clock == nil {
		opts.Clock = SystemClock
	}

	return &Driver{
		machine:  machine,
		source:   source,
		log:      opts.Logger,
		clock:    opts.Clock,
		interval: opts.PollInterval,
		observer: opts.OnEvent,
	}
}

// Run processes events until ctx is cancelled. Cancellation is the clean
// shutdown path: a notice is emitted on the sink and Run returns nil. A
// transition error from the machine aborts the loop.
func (d *Driver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.log.Info("shutting down")
			d.machine.Context().Sink().Line("shutdown")

			return nil
		default:
		}

		event := d.source.Poll().UnwrapOrDefault()
		if !event.IsNone() {
			d.log.Debug("event", zap.String("symbol", event.String()))

			if d.observer != nil {
				d.observer(event)
			}
		}

		d.machine.SetEvent(event)

		if err := d.machine.Update(); err != nil {
			return err
		}

		if d.interval > 0 {
			d.clock.Sleep(d.interval)
		}
	}
}
