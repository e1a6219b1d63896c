// Package events publishes activity events produced by the service.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=./mock/events.go -package=mock -source=events.go

var log = logrus.WithField("package", "events")

// Type ...
type Type string

const (
	// PostCreated ...
	PostCreated Type = "post_created"
	// PostDeleted ...
	PostDeleted Type = "post_deleted"
	// FollowRequested ...
	FollowRequested Type = "follow_requested"
	// FollowAccepted ...
	FollowAccepted Type = "follow_accepted"
	// Liked ...
	Liked Type = "liked"
	// Commented ...
	Commented Type = "commented"
)

// Event is an activity happened on the node.
type Event struct {
	Type      Type      `json:"type"`
	Actor     uuid.UUID `json:"actor"`
	Object    uuid.UUID `json:"object"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrClosed is returned when publishing into closed publisher.
var ErrClosed = errors.New("publisher is closed")

// Publisher ...
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// ErrQueueFull is returned by kafka publisher when events are produced faster than they are written.
var ErrQueueFull = errors.New("events queue is full")

// KafkaConfig ...
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	QueueSize    int
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher enqueues events and writes them from a single goroutine,
// so Publish never waits for the broker.
type kafkaPublisher struct {
	w       messageWriter
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan kafka.Message
	done   chan struct{}
}

// NewKafkaPublisher creates publisher which writes events into kafka topic keyed by actor.
func NewKafkaPublisher(cfg KafkaConfig) Publisher {
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}

	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}, cfg.WriteTimeout, cfg.QueueSize)
}

func newKafkaPublisher(w messageWriter, timeout time.Duration, size int) *kafkaPublisher {
	p := &kafkaPublisher{
		w:       w,
		timeout: timeout,
		queue:   make(chan kafka.Message, size),
		done:    make(chan struct{}),
	}

	go p.run()

	return p
}

func (p *kafkaPublisher) run() {
	defer close(p.done)

	for msg := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		if err := p.w.WriteMessages(ctx, msg); err != nil {
			log.WithError(err).WithField("key", string(msg.Key)).Error("failed to write event")
		}
		cancel()
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	select {
	case p.queue <- kafka.Message{
		Key:   []byte(e.Actor.String()),
		Value: data,
		Time:  e.Timestamp,
	}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events, flushes the queue and closes the writer.
func (p *kafkaPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done

	return p.w.Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns publisher which only logs events.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(_ context.Context, e Event) error {
	log.WithField("type", e.Type).WithField("actor", e.Actor).Debug("event skipped")
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
