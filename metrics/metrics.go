// Package metrics exposes Prometheus counters for the microwave
// controller: state transitions, input symbols and cooking heartbeats.
package metrics

import (
	"github.com/enetx/g"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/enetx/microwave"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microwave_transitions_total",
		Help: "State transitions by source and destination state.",
	}, []string{"from_state", "to_state"})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microwave_events_total",
		Help: "Input symbols observed by the event loop.",
	}, []string{"symbol"})

	heartbeatsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microwave_heartbeats_total",
		Help: "Cooking heartbeats emitted on the status sink.",
	})
)

// TransitionHook returns a hook counting every applied transition.
func TransitionHook() microwave.TransitionHook {
	return func(from, to g.String) {
		transitionsTotal.WithLabelValues(sanitizeState(from), sanitizeState(to)).Inc()
	}
}

// ObserveEvent counts one observed input symbol.
func ObserveEvent(event microwave.Event) {
	eventsTotal.WithLabelValues(event.String()).Inc()
}

// InstrumentSink decorates a sink so cooking heartbeats are counted as they
// pass through.
func InstrumentSink(next microwave.Sink) microwave.Sink {
	return &instrumentedSink{next: next}
}

type instrumentedSink struct {
	next microwave.Sink
}

func (s *instrumentedSink) Line(text g.String) {
	s.next.Line(text)
}

func (s *instrumentedSink) Mark(text g.String) {
	heartbeatsTotal.Inc()
	s.next.Mark(text)
}

// sanitizeState maps the empty pre-start state name to a stable label.
func sanitizeState(name g.String) string {
	if name.Empty() {
		return "none"
	}

	return name.Std()
}
