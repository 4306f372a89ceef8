package microwave

import "github.com/enetx/g"

type (
	// Event represents one normalized input symbol observed in a polling
	// tick: a digit '0'-'9', a command symbol, or EventNone when no key
	// was pressed.
	Event g.String

	// TransitionHook is a global observer called on every transition. It
	// runs after the old state's Exit and before the new state's Enter.
	// On the first transition from is empty.
	TransitionHook func(from, to g.String)
)

// Registered state names. The paused state keeps its historical
// mixed-case key; the registry is case-sensitive.
const (
	StateIdle    g.String = "IDLE"
	StateCooking g.String = "COOKING"
	StatePaused  g.String = "Pause"
)

// Command symbols. Digits are their own events; any other symbol is
// accepted and ignored by every state.
const (
	EventNone   Event = ""
	EventStart  Event = "S"
	EventPause  Event = "P"
	EventCancel Event = "Q"
)

// EventFrom normalizes a raw input rune into an event symbol.
func EventFrom(r rune) Event {
	return Event(g.String(r).Upper())
}

// IsNone reports whether no input was observed this tick.
func (e Event) IsNone() bool { return e == EventNone }

// IsDigit reports whether the symbol is a decimal digit key.
func (e Event) IsDigit() bool {
	return len(e) == 1 && e[0] >= '0' && e[0] <= '9'
}

// Digit returns the numeric value of a digit symbol.
func (e Event) Digit() g.Option[int] {
	if !e.IsDigit() {
		return g.None[int]()
	}

	return g.Some(int(e[0] - '0'))
}

func (e Event) String() string { return string(e) }
