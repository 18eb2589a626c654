package schedule

import (
	"testing"
	"time"
)

func TestSchedulerFiresAfterDelay(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	fired := 0
	s.After(500*time.Millisecond, func() { fired++ })

	s.Update()
	if fired != 0 {
		t.Fatalf("task fired before its deadline")
	}

	clock.Advance(499 * time.Millisecond)
	s.Update()
	if fired != 0 {
		t.Fatalf("task fired 1ms early")
	}

	clock.Advance(time.Millisecond)
	s.Update()
	if fired != 1 {
		t.Fatalf("expected task to fire once at deadline, fired %d", fired)
	}

	clock.Advance(time.Second)
	s.Update()
	if fired != 1 {
		t.Fatalf("one-shot task fired again: %d", fired)
	}
	if s.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	fired := false
	cancel := s.After(time.Second, func() { fired = true })

	if !cancel() {
		t.Fatalf("cancel of a pending task should report true")
	}
	if cancel() {
		t.Fatalf("second cancel should report false")
	}

	clock.Advance(2 * time.Second)
	s.Update()
	if fired {
		t.Fatalf("cancelled task fired")
	}
}

func TestSchedulerCancelAfterFireIsNoop(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	cancel := s.After(0, func() {})
	s.Update()
	if cancel() {
		t.Fatalf("cancel after firing should report false")
	}
}

func TestSchedulerRunsInDeadlineOrder(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(200*time.Millisecond, func() { order = append(order, "b") })
	s.After(100*time.Millisecond, func() { order = append(order, "a2") })

	clock.Advance(time.Second)
	s.Update()

	want := []string{"a", "a2", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestSchedulerTaskScheduledFromTaskWaits(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	inner := false
	s.After(0, func() {
		s.After(0, func() { inner = true })
	})

	s.Update()
	if inner {
		t.Fatalf("task registered during Update ran in the same Update")
	}
	s.Update()
	if !inner {
		t.Fatalf("task registered during Update did not run on the next Update")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	s := NewScheduler(clock)

	fired := 0
	cancel := s.After(time.Millisecond, func() { fired++ })
	s.After(time.Millisecond, func() { fired++ })

	s.CancelAll()
	clock.Advance(time.Second)
	s.Update()

	if fired != 0 {
		t.Fatalf("expected no task to fire after CancelAll, fired %d", fired)
	}
	if cancel() {
		t.Fatalf("cancel after CancelAll should report false")
	}
}
