package microwave

import "github.com/enetx/g"

// State is a single oven mode. Enter and Exit bracket the time the machine
// spends in the state; Update runs once per driver tick and may request a
// transition by returning the target state's name. States never transition
// themselves and hold no reference to the Machine. Hooks do not fail:
// unrecognized input is ignored, not an error.
type State interface {
	Name() g.String
	Enter(ctx *Context)
	Update(ctx *Context) g.Option[g.String]
	Exit(ctx *Context)
}

// BaseState provides no-op lifecycle hooks so concrete states override
// only what they need.
type BaseState struct{}

func (BaseState) Enter(*Context) {}

func (BaseState) Update(*Context) g.Option[g.String] { return g.None[g.String]() }

func (BaseState) Exit(*Context) {}
