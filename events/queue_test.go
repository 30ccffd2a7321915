package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/ripple-fleet/parameter"
)

// TestPushConsumeFIFO verifies events come back in push order with
// payloads intact.
func TestPushConsumeFIFO(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 10; i++ {
		q.Push(Event{Type: EventTuneAdjust, Payload: &TuneAdjustPayload{Param: TuneCohesion, Delta: i}})
	}

	got := q.Consume()
	if len(got) != 10 {
		t.Fatalf("consumed %d events, want 10", len(got))
	}
	for i, ev := range got {
		if ev.Type != EventTuneAdjust {
			t.Fatalf("event %d type = %v, want EventTuneAdjust", i, ev.Type)
		}
		p, ok := ev.Payload.(*TuneAdjustPayload)
		if !ok {
			t.Fatalf("event %d payload type %T", i, ev.Payload)
		}
		if p.Delta != i {
			t.Errorf("event %d delta = %d, want %d", i, p.Delta, i)
		}
	}
}

// TestConsumeEmpty verifies an empty queue yields nil and a drained
// queue stays drained.
func TestConsumeEmpty(t *testing.T) {
	q := NewQueue()
	if got := q.Consume(); got != nil {
		t.Fatalf("empty consume = %v, want nil", got)
	}

	q.Push(Event{Type: EventVariantToggle})
	if got := q.Consume(); len(got) != 1 {
		t.Fatalf("consumed %d events, want 1", len(got))
	}
	if got := q.Consume(); got != nil {
		t.Fatalf("second consume = %v, want nil", got)
	}
}

// TestOverflowKeepsNewest verifies the oldest events are overwritten
// when the ring wraps and FIFO order survives.
func TestOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()

	total := parameter.EventQueueSize + 50
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventTuneAdjust, Payload: &TuneAdjustPayload{Delta: i}})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("consumed %d events, want %d", len(got), parameter.EventQueueSize)
	}
	for i, ev := range got {
		want := total - parameter.EventQueueSize + i
		if p := ev.Payload.(*TuneAdjustPayload); p.Delta != want {
			t.Fatalf("event %d delta = %d, want %d", i, p.Delta, want)
		}
	}
}

// TestConcurrentProducers verifies concurrent pushes are all delivered
// and stay FIFO per producer.
func TestConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 4
	const perProducer = 50 // producers*perProducer stays under queue size

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(producer int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{
					Type:    EventTuneAdjust,
					Payload: &TuneAdjustPayload{Param: TuneParam(producer), Delta: i},
				})
			}
		}(p)
	}
	wg.Wait()

	got := q.Consume()
	if len(got) != producers*perProducer {
		t.Fatalf("consumed %d events, want %d", len(got), producers*perProducer)
	}

	next := make([]int, producers)
	for _, ev := range got {
		p := ev.Payload.(*TuneAdjustPayload)
		producer := int(p.Param)
		if p.Delta != next[producer] {
			t.Errorf("producer %d: delta %d out of order, want %d", producer, p.Delta, next[producer])
		}
		next[producer] = p.Delta + 1
	}
	for p, n := range next {
		if n != perProducer {
			t.Errorf("producer %d delivered %d events, want %d", p, n, perProducer)
		}
	}
}
