package events

import (
	"encoding/json"
	"testing"
	"time"
)

// Publish must return after the bounded wait when nothing drains the
// buffer, rather than blocking the request goroutine indefinitely.
func TestPublishDropsWhenBufferFull(t *testing.T) {
	t.Parallel()

	p := &Publisher{
		buf:         make(chan message, 1),
		enqueueWait: 50 * time.Millisecond,
		done:        make(chan struct{}),
	}

	payload := UserCreatedEvent{Username: "alice", Timestamp: time.Now().UTC().Format(time.RFC3339)}

	p.Publish(UserEventsStream, UserCreated, "alice", payload) // fills the buffer

	start := time.Now()
	p.Publish(UserEventsStream, UserCreated, "bob", payload) // must time out and drop
	elapsed := time.Since(start)

	if elapsed < p.enqueueWait {
		t.Fatalf("second publish returned before the bounded wait: %v", elapsed)
	}
	if elapsed > time.Second {
		t.Fatalf("second publish blocked too long: %v", elapsed)
	}
	if len(p.buf) != 1 {
		t.Fatalf("buffer should hold exactly the first message, got %d", len(p.buf))
	}
}

func TestPublishEnqueuesEnvelope(t *testing.T) {
	t.Parallel()

	p := &Publisher{
		buf:         make(chan message, 1),
		enqueueWait: 50 * time.Millisecond,
		done:        make(chan struct{}),
	}

	p.Publish(UserEventsStream, UserCreated, "carol", UserCreatedEvent{
		Username:  "carol",
		Timestamp: "2026-08-29T12:00:00Z",
	})

	msg := <-p.buf
	if msg.stream != UserEventsStream || msg.eventType != UserCreated || msg.key != "carol" {
		t.Fatalf("unexpected message envelope: %+v", msg)
	}

	var payload UserCreatedEvent
	if err := json.Unmarshal(msg.payload, &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if payload.Username != "carol" || payload.Timestamp != "2026-08-29T12:00:00Z" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestPublishSkipsUnmarshalablePayload(t *testing.T) {
	t.Parallel()

	p := &Publisher{
		buf:         make(chan message, 1),
		enqueueWait: 50 * time.Millisecond,
		done:        make(chan struct{}),
	}

	p.Publish(UserEventsStream, UserCreated, "dave", make(chan int))

	if len(p.buf) != 0 {
		t.Fatal("unmarshalable payload must not be enqueued")
	}
}
