package input

import (
	"bufio"
	"io"

	"github.com/enetx/g"

	"github.com/enetx/microwave"
)

// Reader turns a blocking byte stream into a non-blocking event source by
// pumping runes through a buffered channel on its own goroutine. Line
// endings are skipped, so cooked-mode terminals work: press a key, press
// enter. The goroutine exits when the stream does.
type Reader struct {
	events chan microwave.Event
}

// NewReader creates a source reading symbols from r.
func NewReader(r io.Reader) *Reader {
	src := &Reader{events: make(chan microwave.Event, 16)}

	go func() {
		defer close(src.events)

		br := bufio.NewReader(r)

		for {
			ch, _, err := br.ReadRune()
			if err != nil {
				return
			}

			if ch == '\n' || ch == '\r' {
				continue
			}

			src.events <- microwave.EventFrom(ch)
		}
	}()

	return src
}

// Poll drains at most one pending symbol without blocking.
func (s *Reader) Poll() g.Option[microwave.Event] {
	select {
	case event, ok := <-s.events:
		if !ok {
			return g.None[microwave.Event]()
		}

		return g.Some(event)
	default:
		return g.None[microwave.Event]()
	}
}
