package microwave_test

import (
	"testing"
	"time"

	. "github.com/enetx/g"
	. "github.com/enetx/microwave"
)

func TestIdle_DigitAccumulation(t *testing.T) {
	machine, _, sink := newOven(t)

	feed(t, machine, "120")

	assertEqual(t, machine.Context().CookTime, 120*time.Second)
	assertTrue(t, sink.lines.Eq(SliceOf[String]("1", "12", "120")))
}

func TestIdle_ReentryResetsCookTime(t *testing.T) {
	machine, _, _ := newOven(t)

	feed(t, machine, "5SQ")

	assertEqual(t, machine.Current().Some(), StateIdle)
	assertEqual(t, machine.Context().CookTime, time.Duration(0))
}

func TestIdle_IgnoresUnrecognizedSymbols(t *testing.T) {
	machine, _, sink := newOven(t)

	feed(t, machine, "PQX ")

	assertEqual(t, machine.Current().Some(), StateIdle)
	assertEqual(t, sink.lines.Len(), 0)
}

func TestCooking_DeadlineFromEnteredTime(t *testing.T) {
	machine, clock, sink := newOven(t)

	feed(t, machine, "15S")

	assertEqual(t, machine.Current().Some(), StateCooking)
	assertEqual(t, machine.Context().Deadline, clock.Now().Add(15*time.Second))
	assertTrue(t, sink.lines.Contains("Start heating"))
}

func TestCooking_FinishesAtDeadline(t *testing.T) {
	machine, clock, sink := newOven(t)

	feed(t, machine, "3S")
	clock.Advance(3 * time.Second)
	feed(t, machine, " ")

	assertEqual(t, machine.Current().Some(), StateIdle)
	assertEqual(t, machine.Context().CookTime, time.Duration(0))
	assertTrue(t, sink.lines.Contains("Stop heating"))
}

func TestCooking_ZeroTimeFinishesImmediately(t *testing.T) {
	machine, _, _ := newOven(t)

	// Start without entering any digits: the deadline is already due on
	// the first cooking tick.
	feed(t, machine, "S ")

	assertEqual(t, machine.Current().Some(), StateIdle)
}

func TestCooking_Heartbeat(t *testing.T) {
	machine, clock, sink := newOven(t)

	feed(t, machine, "9S")
	feed(t, machine, "   ")

	assertEqual(t, sink.marks, 3)
	assertTrue(t, clock.sleeps.Eq(SliceOf(time.Second, time.Second, time.Second)))
}

func TestCooking_HeartbeatDrivesTimeout(t *testing.T) {
	machine, _, sink := newOven(t)

	// Two seconds of cook time with a one second throttle: two heartbeat
	// ticks reach the deadline, the third tick finishes.
	feed(t, machine, "2S")
	feed(t, machine, "   ")

	assertEqual(t, machine.Current().Some(), StateIdle)
	assertEqual(t, sink.marks, 2)
}

func TestCooking_Cancel(t *testing.T) {
	machine, _, sink := newOven(t)

	feed(t, machine, "5SQ")

	assertEqual(t, machine.Current().Some(), StateIdle)
	assertTrue(t, sink.lines.Eq(SliceOf[String]("5", "Start heating", "Cancel", "Stop heating")))
}

func TestCooking_IgnoresDigitsAndUnknownSymbols(t *testing.T) {
	machine, _, sink := newOven(t)

	feed(t, machine, "5S")
	sinkLines := sink.lines.Len()

	feed(t, machine, "7X")

	assertEqual(t, machine.Current().Some(), StateCooking)
	assertEqual(t, sink.lines.Len(), sinkLines)
	assertEqual(t, sink.marks, 2)
}

func TestPause_PreservesRemainingTime(t *testing.T) {
	machine, clock, sink := newOven(t)

	feed(t, machine, "97S") // 97 seconds

	clock.Advance(30 * time.Second)
	feed(t, machine, "P")

	assertEqual(t, machine.Current().Some(), StatePaused)
	assertEqual(t, machine.Context().CookTime, 67*time.Second)
	assertTrue(t, sink.lines.Contains("Paused"))
}

func TestPause_ResumeRestartsWithRemaining(t *testing.T) {
	machine, clock, _ := newOven(t)

	feed(t, machine, "10S")
	clock.Advance(4 * time.Second)
	feed(t, machine, "P")

	clock.Advance(time.Hour) // paused time does not count against the cook
	feed(t, machine, "S")

	assertEqual(t, machine.Current().Some(), StateCooking)
	assertEqual(t, machine.Context().Deadline, clock.Now().Add(6*time.Second))
}

func TestPause_Cancel(t *testing.T) {
	machine, _, _ := newOven(t)

	feed(t, machine, "5SPQ")

	assertEqual(t, machine.Current().Some(), StateIdle)
	assertEqual(t, machine.Context().CookTime, time.Duration(0))
}

func TestPause_IgnoresDigitsAndUnknownSymbols(t *testing.T) {
	machine, _, _ := newOven(t)

	feed(t, machine, "5SP")
	feed(t, machine, "3X ")

	assertEqual(t, machine.Current().Some(), StatePaused)
	assertEqual(t, machine.Context().CookTime, 5*time.Second)
}

func TestScenario_FullCookWithPause(t *testing.T) {
	machine, clock, sink := newOven(t)

	feed(t, machine, "30S") // 30 seconds
	clock.Advance(10 * time.Second)
	feed(t, machine, "P")
	feed(t, machine, "S")
	clock.Advance(20 * time.Second)
	feed(t, machine, " ")

	assertEqual(t, machine.Current().Some(), StateIdle)
	assertTrue(t, machine.History().Eq(SliceOf(
		StateIdle, StateCooking, StatePaused, StateCooking, StateIdle,
	)))
	assertTrue(t, sink.lines.Eq(SliceOf[String](
		"3", "30",
		"Start heating",
		"Stop heating", "Paused",
		"Start heating",
		"Stop heating",
	)))
}

func TestScenario_RepeatCooks(t *testing.T) {
	machine, clock, _ := newOven(t)

	feed(t, machine, "2S")
	clock.Advance(2 * time.Second)
	feed(t, machine, " ")

	feed(t, machine, "4S")
	assertEqual(t, machine.Context().Deadline, clock.Now().Add(4*time.Second))

	clock.Advance(4 * time.Second)
	feed(t, machine, " ")

	assertEqual(t, machine.Current().Some(), StateIdle)
	assertEqual(t, machine.History().Len(), 5)
}
