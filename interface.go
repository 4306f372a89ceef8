package microwave

import "github.com/enetx/g"

// Controller is the surface shared by Machine and SyncMachine: everything
// the driver loop and the admin handlers need.
type Controller interface {
	SetEvent(Event)
	Update() error
	GoToState(g.String) error
	Current() g.Option[g.String]
	Context() *Context
	History() g.Slice[g.String]
	States() g.Slice[g.String]
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}
