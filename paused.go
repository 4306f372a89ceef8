package microwave

import "github.com/enetx/g"

// PausedState holds the remaining cook time until the user resumes or
// gives up.
type PausedState struct{ BaseState }

func (PausedState) Name() g.String { return StatePaused }

func (PausedState) Enter(ctx *Context) {
	ctx.sink.Line("Paused")
}

func (PausedState) Update(ctx *Context) g.Option[g.String] {
	switch ctx.Event {
	case EventStart:
		return g.Some(StateCooking)
	case EventCancel:
		return g.Some(StateIdle)
	}

	return g.None[g.String]()
}
