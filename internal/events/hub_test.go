package events

import (
	"encoding/json"
	"testing"
)

func TestHubPublishReachesSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	defer h.Unsubscribe(a)
	defer h.Unsubscribe(b)

	h.Publish("hello")

	for _, ch := range []chan string{a, b} {
		select {
		case msg := <-ch:
			if msg != "hello" {
				t.Fatalf("got %q", msg)
			}
		default:
			t.Fatal("subscriber missed the event")
		}
	}
}

func TestHubDropsWhenSubscriberIsSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// Overflow the buffer; Publish must not block.
	for i := 0; i < 100; i++ {
		h.Publish("x")
	}
	if len(ch) == 0 || len(ch) > cap(ch) {
		t.Fatalf("channel holds %d of %d", len(ch), cap(ch))
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Fatal("channel still open after unsubscribe")
	}
	// Publishing after unsubscribe must not panic on the closed channel.
	h.Publish("late")
}

func TestMakeEvent(t *testing.T) {
	raw := MakeEvent("req-1", TypeSessionBooked, 1, map[string]any{"id": 7})

	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if e.Type != TypeSessionBooked || e.Version != 1 || e.RequestID != "req-1" {
		t.Fatalf("event = %+v", e)
	}
	var data map[string]any
	if err := json.Unmarshal(e.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data["id"] != float64(7) {
		t.Fatalf("data = %v", data)
	}
}

func TestMakeEventNilData(t *testing.T) {
	raw := MakeEvent("", TypePing, 1, nil)
	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if len(e.Data) != 0 {
		t.Fatalf("data = %s", e.Data)
	}
}
