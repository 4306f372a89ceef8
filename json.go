package microwave

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/enetx/g"
)

// Snapshot is a serializable representation of the controller's state. The
// deadline is never serialized: while cooking, the remaining duration is
// stored instead, and restoring re-derives the deadline from it — the same
// rule Cooking's Enter applies.
type Snapshot struct {
	State    g.String          `json:"state"`
	CookTime float64           `json:"cook_time_seconds"`
	History  g.Slice[g.String] `json:"history"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m *Machine) MarshalJSON() ([]byte, error) {
	cook := m.ctx.CookTime

	if m.current != nil && m.current.Name() == StateCooking {
		cook = m.ctx.Deadline.Sub(m.ctx.clock.Now())
		if cook < 0 {
			cook = 0
		}
	}

	snap := Snapshot{
		State:    m.Current().UnwrapOrDefault(),
		CookTime: cook.Seconds(),
		History:  m.history.Clone(),
	}

	return json.Marshal(snap)
}

// UnmarshalJSON implements the json.Unmarshaler interface. State names are
// validated against the registry; restoring never runs Enter or Exit.
func (m *Machine) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal machine snapshot: %w", err)
	}

	next := m.states.Get(snap.State)
	if next.IsNone() {
		return &ErrUnknownState{Name: snap.State}
	}

	for name := range snap.History.Iter() {
		if !m.states.Contains(name) {
			return &ErrUnknownState{Name: name}
		}
	}

	m.current = next.Some()
	m.history = snap.History
	m.ctx.Event = EventNone
	m.ctx.CookTime = time.Duration(snap.CookTime * float64(time.Second))

	if snap.State == StateCooking {
		m.ctx.Deadline = m.ctx.clock.Now().Add(m.ctx.CookTime)
	}

	return nil
}
