// Package microwave models a microwave oven controller as an explicit
// finite state machine. Concrete states (Idle, Cooking, Paused) are
// registered by name on a Machine, which drives the exit/enter protocol on
// every transition; states request transitions by returning the target
// state's name from Update, and the Machine alone applies them. It is
// built with types and utilities from the github.com/enetx/g library.
package microwave

import (
	"os"

	"github.com/enetx/g"
	"go.uber.org/zap"
)

// Machine owns the state registry, the shared context and the current
// state. It is single-goroutine by design; wrap it in a SyncMachine when
// other goroutines need to read it.
type Machine struct {
	current State
	states  g.Map[g.String, State]
	history g.Slice[g.String]
	hooks   g.Slice[TransitionHook]
	ctx     *Context
	log     *zap.Logger
}

// Options configures a Machine. Zero values select the system clock, a
// console sink on stdout and a no-op logger. Transition and event tracing
// is emitted at the logger's debug level, so verbosity is decided here, at
// construction time.
type Options struct {
	Clock  Clock
	Sink   Sink
	Logger *zap.Logger
}

// New creates a Machine with an empty registry and no current state. The
// machine does nothing until states are registered and GoToState selects
// the first one.
func New(opts Options) *Machine {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}

	if opts.Sink == nil {
		opts.Sink = NewConsoleSink(os.Stdout)
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Machine{
		states: g.NewMap[g.String, State](),
		ctx:    newContext(opts.Clock, opts.Sink),
		log:    opts.Logger,
	}
}

// AddState registers a state under its name. Registering a second state
// with the same name overwrites the earlier entry.
func (m *Machine) AddState(state State) *Machine {
	m.states.Set(state.Name(), state)
	return m
}

// OnTransition registers a global transition hook. Hooks run after the old
// state's Exit and before the new state's Enter.
func (m *Machine) OnTransition(hook TransitionHook) *Machine {
	m.hooks.Push(hook)
	return m
}

// GoToState transitions to the named state: the current state's Exit runs
// first, then the hooks, then the new state's Enter. This is the only
// place Exit and Enter are ever invoked. An unregistered name aborts the
// transition with ErrUnknownState and leaves the current state untouched.
func (m *Machine) GoToState(name g.String) error {
	next := m.states.Get(name)
	if next.IsNone() {
		return &ErrUnknownState{Name: name}
	}

	var from g.String

	if m.current != nil {
		from = m.current.Name()
		m.log.Debug("exiting state", zap.String("state", from.Std()))
		m.current.Exit(m.ctx)
	}

	for hook := range m.hooks.Iter() {
		hook(from, name)
	}

	m.current = next.Some()
	m.log.Debug("entering state", zap.String("state", name.Std()))
	m.current.Enter(m.ctx)
	m.history.Push(name)

	return nil
}

// SetEvent stores the input symbol observed this tick. EventNone means no
// new input, not that input never arrived.
func (m *Machine) SetEvent(event Event) {
	m.ctx.Event = event
}

// Update delegates one tick to the current state and applies any
// transition it requests. Without a current state it is a no-op.
func (m *Machine) Update() error {
	if m.current == nil {
		return nil
	}

	if next := m.current.Update(m.ctx); next.IsSome() {
		return m.GoToState(next.Some())
	}

	return nil
}

// Current returns the current state's name, or None before the first
// transition.
func (m *Machine) Current() g.Option[g.String] {
	if m.current == nil {
		return g.None[g.String]()
	}

	return g.Some(m.current.Name())
}

// Context returns the machine's shared context.
func (m *Machine) Context() *Context {
	return m.ctx
}

// History returns a copy of the list of visited state names.
func (m *Machine) History() g.Slice[g.String] {
	return m.history.Clone()
}

// States returns the names of all registered states.
func (m *Machine) States() g.Slice[g.String] {
	return m.states.Keys()
}
