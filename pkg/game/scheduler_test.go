package game

import "testing"

const testDT = 1.0 / 60.0

// advance 以固定步长推进 n 帧
func advance(s *Scheduler, frames int) {
	for i := 0; i < frames; i++ {
		s.Update(testDT)
	}
}

func TestScheduler_After(t *testing.T) {
	s := NewScheduler()
	calls := 0
	h := s.After(0.5, func() { calls++ })

	advance(s, 29)
	if calls != 0 {
		t.Fatalf("Task fired early after 29 frames")
	}
	advance(s, 2)
	if calls != 1 {
		t.Fatalf("Expected 1 call after 0.5s, got %d", calls)
	}
	if h.Active() {
		t.Error("One-shot task should not be active after firing")
	}

	advance(s, 120)
	if calls != 1 {
		t.Errorf("One-shot task fired again: %d calls", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected 0 pending tasks, got %d", s.Pending())
	}
}

func TestScheduler_Every(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(1.0, func() { calls++ })

	advance(s, 60*3+2)
	if calls != 3 {
		t.Errorf("Expected 3 calls after ~3s, got %d", calls)
	}
	if s.Pending() != 1 {
		t.Errorf("Repeating task should stay pending, got %d", s.Pending())
	}
}

func TestScheduler_CancelIsIdempotent(t *testing.T) {
	s := NewScheduler()
	calls := 0
	h := s.After(0.1, func() { calls++ })

	if !h.Cancel() {
		t.Error("First Cancel should report true")
	}
	if h.Cancel() {
		t.Error("Second Cancel should report false")
	}

	advance(s, 30)
	if calls != 0 {
		t.Errorf("Cancelled task fired %d times", calls)
	}

	var nilHandle *TaskHandle
	if nilHandle.Cancel() || nilHandle.Active() {
		t.Error("nil handle should be inert")
	}
}

func TestScheduler_CancelDuringSameTick(t *testing.T) {
	s := NewScheduler()
	var second *TaskHandle
	secondCalls := 0

	s.After(0.1, func() { second.Cancel() })
	second = s.After(0.1, func() { secondCalls++ })

	advance(s, 10)
	if secondCalls != 0 {
		t.Errorf("Task cancelled earlier in the same tick still fired")
	}
}

func TestScheduler_CancelAllFromCallback(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(0.1, func() {
		calls++
		s.CancelAll()
	})
	s.Every(0.1, func() { calls++ })

	advance(s, 60)
	if calls != 1 {
		t.Errorf("Expected CancelAll to stop everything after the first call, got %d calls", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected 0 pending tasks, got %d", s.Pending())
	}
}

func TestScheduler_AddDuringUpdateStartsNextTick(t *testing.T) {
	s := NewScheduler()
	inner := 0
	s.After(0, func() {
		s.After(0, func() { inner++ })
	})

	s.Update(testDT)
	if inner != 0 {
		t.Fatal("Task registered during Update ran in the same tick")
	}
	s.Update(testDT)
	if inner != 1 {
		t.Errorf("Expected nested task to run on the next tick, got %d", inner)
	}
}
