package event

import "testing"

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	q.Publish(Event{Type: PlayerShoot, X: 1})
	q.Publish(Event{Type: EnemyDestroyed, Points: 100})

	var got []EventType
	q.Drain(func(e Event) {
		got = append(got, e.Type)
	})

	if len(got) != 2 || got[0] != PlayerShoot || got[1] != EnemyDestroyed {
		t.Errorf("unexpected drain order: %v", got)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after drain, has %d", q.Len())
	}
}

func TestQueueDrainHandlesEventsPublishedDuringDrain(t *testing.T) {
	q := NewQueue()
	q.Publish(Event{Type: EnemyDestroyed})

	var got []EventType
	q.Drain(func(e Event) {
		got = append(got, e.Type)
		if e.Type == EnemyDestroyed {
			q.Publish(Event{Type: WaveCleared})
		}
	})

	if len(got) != 2 || got[1] != WaveCleared {
		t.Errorf("expected follow-up event in the same drain, got %v", got)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	q.Publish(Event{Type: PlayerHit})
	q.Clear()

	called := false
	q.Drain(func(Event) { called = true })
	if called {
		t.Error("cleared queue should not deliver events")
	}
}
