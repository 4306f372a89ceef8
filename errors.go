package microwave

import (
	"fmt"

	"github.com/enetx/g"
)

// ErrUnknownState is returned when a transition names a state that was
// never registered. It indicates a wiring bug rather than a runtime
// condition: the transition is aborted and the current state is left
// untouched.
type ErrUnknownState struct {
	Name g.String
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("microwave: unknown state %q", e.Name)
}
