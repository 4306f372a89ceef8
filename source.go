package microwave

import "github.com/enetx/g"

// Source produces at most one input symbol per poll. Poll must not block:
// it returns None immediately when no input is pending. Implementations
// live in the input package; anything that can hand over one symbol at a
// time can drive the machine.
type Source interface {
	Poll() g.Option[Event]
}
