// Package messaging publishes domain events to downstream consumers.
package messaging

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jwalitptl/carehub-api/pkg/logger"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, eventType string, payload json.RawMessage) error
	Ping(ctx context.Context) error
	Close() error
}

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// LogBroker writes events to the log instead of a transport. It is the
// default when no Redis URL is configured.
type LogBroker struct {
	logger *logger.Logger

	mu        sync.Mutex
	published []Message
	keep      bool
}

func NewLogBroker(log *logger.Logger) *LogBroker {
	return &LogBroker{logger: log.With("log_broker")}
}

// NewRecordingBroker is a LogBroker that also keeps every message for
// inspection.
func NewRecordingBroker(log *logger.Logger) *LogBroker {
	b := NewLogBroker(log)
	b.keep = true
	return b
}

func (b *LogBroker) Publish(ctx context.Context, eventType string, payload json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.logger.Info("Event published", "event_type", eventType, "bytes", len(payload))
	if b.keep {
		b.mu.Lock()
		b.published = append(b.published, Message{Type: eventType, Payload: payload})
		b.mu.Unlock()
	}
	return nil
}

// Published returns the messages recorded so far.
func (b *LogBroker) Published() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Message(nil), b.published...)
}

func (b *LogBroker) Ping(context.Context) error { return nil }

func (b *LogBroker) Close() error { return nil }
