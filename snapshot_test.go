package microwave_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	. "github.com/enetx/g"
	. "github.com/enetx/microwave"
)

func TestSnapshot_Idle(t *testing.T) {
	machine, _, _ := newOven(t)

	data, err := json.Marshal(machine)
	assertNoError(t, err)

	var snap Snapshot
	assertNoError(t, json.Unmarshal(data, &snap))

	assertEqual(t, snap.State, StateIdle)
	assertEqual(t, snap.CookTime, 0.0)
	assertTrue(t, snap.History.Eq(SliceOf(StateIdle)))
}

func TestSnapshot_CookingStoresRemainingTime(t *testing.T) {
	machine, clock, _ := newOven(t)

	feed(t, machine, "10S")
	clock.Advance(3 * time.Second)

	data, err := json.Marshal(machine)
	assertNoError(t, err)

	var snap Snapshot
	assertNoError(t, json.Unmarshal(data, &snap))

	assertEqual(t, snap.State, StateCooking)
	assertEqual(t, snap.CookTime, 7.0)
}

func TestSnapshot_ExpiredCookClampsToZero(t *testing.T) {
	machine, clock, _ := newOven(t)

	feed(t, machine, "2S")
	clock.Advance(time.Minute)

	data, err := json.Marshal(machine)
	assertNoError(t, err)

	var snap Snapshot
	assertNoError(t, json.Unmarshal(data, &snap))

	assertEqual(t, snap.CookTime, 0.0)
}

func TestSnapshot_RoundTripPaused(t *testing.T) {
	machine, clock, _ := newOven(t)

	feed(t, machine, "8S")
	clock.Advance(3 * time.Second)
	feed(t, machine, "P")

	data, err := json.Marshal(machine)
	assertNoError(t, err)

	restored, restoredClock, restoredSink := newOven(t)
	assertNoError(t, json.Unmarshal(data, restored))

	assertEqual(t, restored.Current().Some(), StatePaused)
	assertEqual(t, restored.Context().CookTime, 5*time.Second)
	assertTrue(t, restored.History().Eq(machine.History()))

	// Restoring bypasses Enter, so no "Paused" line beyond the one newOven
	// produced on the initial IDLE entry.
	assertEqual(t, restoredSink.lines.Len(), 0)

	// Resuming cooks the remaining five seconds.
	feed(t, restored, "S")
	assertEqual(t, restored.Context().Deadline, restoredClock.Now().Add(5*time.Second))
}

func TestSnapshot_RestoreIntoCookingRebuildsDeadline(t *testing.T) {
	machine, clock, _ := newOven(t)

	feed(t, machine, "10S")
	clock.Advance(4 * time.Second)

	data, err := json.Marshal(machine)
	assertNoError(t, err)

	restored, restoredClock, _ := newOven(t)
	restoredClock.Advance(time.Hour)
	assertNoError(t, json.Unmarshal(data, restored))

	assertEqual(t, restored.Current().Some(), StateCooking)
	assertEqual(t, restored.Context().Deadline, restoredClock.Now().Add(6*time.Second))
}

func TestSnapshot_UnknownStateRejected(t *testing.T) {
	machine, _, _ := newOven(t)

	err := json.Unmarshal([]byte(`{"state":"DEFROST","cook_time_seconds":0,"history":[]}`), machine)
	assertError(t, err)

	var unknown *ErrUnknownState
	assertTrue(t, errors.As(err, &unknown))
	assertEqual(t, unknown.Name, String("DEFROST"))
	assertEqual(t, machine.Current().Some(), StateIdle)
}

func TestSnapshot_UnknownHistoryRejected(t *testing.T) {
	machine, _, _ := newOven(t)

	err := json.Unmarshal([]byte(`{"state":"IDLE","cook_time_seconds":0,"history":["IDLE","DEFROST"]}`), machine)
	assertError(t, err)

	var unknown *ErrUnknownState
	assertTrue(t, errors.As(err, &unknown))
}
