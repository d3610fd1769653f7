package server

import (
	"encoding/json"
	"testing"

	"github.com/skylineguessr/api/internal/trivia"
)

func TestBrokerPublishSubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(topicStats)
	defer b.Unsubscribe(topicStats, ch)

	stat := trivia.CityStat{City: "Paris", Correct: 3, Wrong: 1}
	b.Publish(topicStats, SSEEvent{Type: "stats_updated", Stat: &stat})

	select {
	case data := <-ch:
		var ev SSEEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decoding event: %v", err)
		}
		if ev.Type != "stats_updated" || ev.Stat == nil || ev.Stat.City != "Paris" {
			t.Errorf("event = %+v", ev)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestBrokerDropsWhenSlow(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(topicStats)
	defer b.Unsubscribe(topicStats, ch)

	// Overfill the 16-slot buffer; extra events are dropped, not blocked on.
	for range 40 {
		b.Publish(topicStats, SSEEvent{Type: "stats_updated"})
	}

	if got := len(ch); got != 16 {
		t.Errorf("buffered = %d, want 16", got)
	}
}

func TestBrokerIgnoresOtherTopics(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("other")
	defer b.Unsubscribe("other", ch)

	b.Publish(topicStats, SSEEvent{Type: "stats_updated"})

	if len(ch) != 0 {
		t.Error("event leaked across topics")
	}
}
