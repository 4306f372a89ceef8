package microwave

import (
	"fmt"
	"io"

	"github.com/enetx/g"
)

// Sink receives the controller's human-readable status output. Line emits
// a full status line; Mark emits without a newline (the cooking
// heartbeat).
type Sink interface {
	Line(text g.String)
	Mark(text g.String)
}

// ConsoleSink writes status text to an io.Writer.
type ConsoleSink struct {
	w io.Writer
}

// NewConsoleSink creates a sink writing to w.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Line(text g.String) { fmt.Fprintln(s.w, text) }

func (s *ConsoleSink) Mark(text g.String) { fmt.Fprint(s.w, text) }
