package microwave

import (
	"time"

	"github.com/enetx/g"
)

// IdleState waits for a cook time to be keyed in and for the start
// command.
type IdleState struct{ BaseState }

func (IdleState) Name() g.String { return StateIdle }

// Enter clears any previously entered or leftover cook time.
func (IdleState) Enter(ctx *Context) {
	ctx.CookTime = 0
}

func (IdleState) Update(ctx *Context) g.Option[g.String] {
	switch {
	case ctx.Event == EventStart:
		return g.Some(StateCooking)
	case ctx.Event.IsDigit():
		// Numeric keypad entry: each digit shifts the value left one
		// decimal place. No upper bound is enforced.
		ctx.CookTime = ctx.CookTime*10 + time.Duration(ctx.Event.Digit().Some())*time.Second
		ctx.sink.Line(g.Format("{}", int64(ctx.CookTime/time.Second)))
	}

	return g.None[g.String]()
}
