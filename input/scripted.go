// Package input provides event sources for the microwave controller: a
// scripted replay source, a reader-backed source for interactive use, and
// an MQTT remote-control source. Every source satisfies microwave.Source:
// non-blocking, at most one symbol per poll.
package input

import (
	"github.com/enetx/g"

	"github.com/enetx/microwave"
)

// Scripted replays a fixed sequence of symbols, one per poll. A space in
// the script is a tick with no input, which makes timing-sensitive
// sequences easy to express in tests and demos.
type Scripted struct {
	symbols g.Slice[microwave.Event]
	pos     int
}

// NewScripted creates a source replaying the given script.
func NewScripted(script g.String) *Scripted {
	s := &Scripted{}

	for _, r := range script.Std() {
		if r == ' ' {
			s.symbols.Push(microwave.EventNone)
			continue
		}

		s.symbols.Push(microwave.EventFrom(r))
	}

	return s
}

// Poll returns the next scripted symbol, or None for an empty tick and
// once the script is exhausted.
func (s *Scripted) Poll() g.Option[microwave.Event] {
	if s.pos >= s.symbols.Len().Std() {
		return g.None[microwave.Event]()
	}

	event := s.symbols[s.pos]
	s.pos++

	if event.IsNone() {
		return g.None[microwave.Event]()
	}

	return g.Some(event)
}

// Done reports whether the script has been fully consumed.
func (s *Scripted) Done() bool {
	return s.pos >= s.symbols.Len().Std()
}
