package engine

import "testing"

func TestEventInvokesAllListeners(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls++ })
	e.AddListener(nil)

	e.Invoke()

	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}
	if e.GetListenerCount() != 2 {
		t.Errorf("Expected nil listener to be ignored, got %d listeners", e.GetListenerCount())
	}

	e.RemoveAllListeners()
	e.Invoke()
	if calls != 2 {
		t.Errorf("Expected no calls after RemoveAllListeners, got %d", calls)
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[string]
	var got []string
	e.AddListener(func(s string) { got = append(got, s) })

	e.Invoke("Door_1")
	e.Invoke("Note_3")

	if len(got) != 2 || got[0] != "Door_1" || got[1] != "Note_3" {
		t.Errorf("Expected [Door_1 Note_3], got %v", got)
	}
}

func TestRunningContext(t *testing.T) {
	sim := Running()
	if sim.Paused || !sim.InputFocused {
		t.Errorf("Expected unpaused focused context, got %+v", sim)
	}
}
