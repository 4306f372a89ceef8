package microwave

import (
	"sync"

	. "github.com/enetx/g"
)

// Interface compliance checks.
var (
	_ Controller = (*Machine)(nil)
	_ Controller = (*SyncMachine)(nil)
)

// SyncMachine is a thread-safe wrapper around a Machine. The base Machine
// is single-goroutine by design; the wrapper exists for read paths (admin
// HTTP handlers, snapshots) that run beside the driver loop.
type SyncMachine struct {
	machine *Machine
	mu      sync.RWMutex
}

// NewSync wraps a Machine for concurrent use.
func NewSync(machine *Machine) *SyncMachine {
	return &SyncMachine{machine: machine}
}

// SetEvent is the thread-safe version of Machine.SetEvent.
func (sm *SyncMachine) SetEvent(event Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.machine.SetEvent(event)
}

// Update is the thread-safe version of Machine.Update.
func (sm *SyncMachine) Update() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Update()
}

// GoToState is the thread-safe version of Machine.GoToState.
func (sm *SyncMachine) GoToState(name String) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.GoToState(name)
}

// Current is the thread-safe version of Machine.Current.
func (sm *SyncMachine) Current() Option[String] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.Current()
}

// Context returns a pointer to the machine's shared context. The context
// itself is still mutated only from the update cycle.
func (sm *SyncMachine) Context() *Context {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.Context()
}

// History is the thread-safe version of Machine.History.
func (sm *SyncMachine) History() Slice[String] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.History()
}

// States is the thread-safe version of Machine.States.
func (sm *SyncMachine) States() Slice[String] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.States()
}

// ToDOT is the thread-safe version of Machine.ToDOT.
func (sm *SyncMachine) ToDOT() String {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the machine's state.
func (sm *SyncMachine) MarshalJSON() ([]byte, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// restoration of the machine's state.
func (sm *SyncMachine) UnmarshalJSON(data []byte) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.UnmarshalJSON(data)
}
