// Package pubsub provides a small typed publish/subscribe broker used to
// move state changes made off the UI goroutine back into the tea loop.
package pubsub

import (
	"context"
	"time"
)

// EventType names what changed.
type EventType string

const (
	CategorySelected EventType = "category_selected"
	StyleSelected    EventType = "style_selected"
	ColorCopied      EventType = "color_copied"
	ColorCleared     EventType = "color_cleared"
	LogWritten       EventType = "log_written"
)

// Event is a published change with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
