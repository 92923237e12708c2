package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultBufferSize  = 64
	defaultEnqueueWait = 2 * time.Second
	xaddTimeout        = 5 * time.Second
)

type message struct {
	stream    string
	eventType string
	key       string
	payload   []byte
}

// Publisher sends domain events to a Redis Stream, best-effort. Publish
// enqueues into a bounded in-process buffer and returns; a background
// goroutine flushes to Redis. Events are dropped (with a log line) when
// the buffer stays full past a bounded wait — a publish failure never
// reaches the HTTP caller.
type Publisher struct {
	client      *redis.Client
	buf         chan message
	enqueueWait time.Duration
	done        chan struct{}
}

func NewPublisher(client *redis.Client) *Publisher {
	p := &Publisher{
		client:      client,
		buf:         make(chan message, defaultBufferSize),
		enqueueWait: defaultEnqueueWait,
		done:        make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues an event for asynchronous delivery. It blocks until the
// buffer accepts the message or the bounded wait elapses, then returns.
func (p *Publisher) Publish(stream, eventType, key string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("events: marshal error for %s: %v", eventType, err)
		return
	}

	msg := message{stream: stream, eventType: eventType, key: key, payload: data}
	select {
	case p.buf <- msg:
	case <-time.After(p.enqueueWait):
		log.Printf("events: buffer full, dropping %s event for key %s", eventType, key)
	}
}

func (p *Publisher) run() {
	defer close(p.done)
	for msg := range p.buf {
		ctx, cancel := context.WithTimeout(context.Background(), xaddTimeout)
		err := p.client.XAdd(ctx, &redis.XAddArgs{
			Stream: msg.stream,
			Values: map[string]any{
				"type":  msg.eventType,
				"key":   msg.key,
				"event": msg.payload,
			},
		}).Err()
		cancel()
		if err != nil {
			log.Printf("events: failed to publish %s for key %s: %v", msg.eventType, msg.key, err)
		}
	}
}

// Close stops the flush goroutine after draining buffered events. Call
// only after request traffic has stopped.
func (p *Publisher) Close() {
	close(p.buf)
	<-p.done
}
