package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeAccountCreated EventType = "account_created"
	EventTypeCoinChange     EventType = "coin_change"
	EventTypeMessageSent    EventType = "message_sent"
	EventTypePrizeRedeemed  EventType = "prize_redeemed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// AccountCreatedEvent represents a new account registration
type AccountCreatedEvent struct {
	AccountID int64
	Username  string
}

func (e AccountCreatedEvent) Type() EventType {
	return EventTypeAccountCreated
}

// CoinChangeEvent represents a ledger entry that was committed
type CoinChangeEvent struct {
	AccountID int64
	Amount    int64
	Reason    string
}

func (e CoinChangeEvent) Type() EventType {
	return EventTypeCoinChange
}

// MessageSentEvent represents a message that was delivered
type MessageSentEvent struct {
	MessageID  int64
	SenderID   int64
	ReceiverID int64
}

func (e MessageSentEvent) Type() EventType {
	return EventTypeMessageSent
}

// PrizeRedeemedEvent represents a successful prize redemption
type PrizeRedeemedEvent struct {
	AccountID        int64
	PrizeID          int64
	PrizeName        string
	Cost             int64
	RemainingBalance int64
}

func (e PrizeRedeemedEvent) Type() EventType {
	return EventTypePrizeRedeemed
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking the request path
	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}

// TransactionalBus holds pending events coupled to a unit of work and
// flushes them to the underlying bus only after the transaction commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

// NewTransactionalBus creates a transactional bus wrapping the real bus.
func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

// Publish stashes an event until Flush.
func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits all pending events. Called after a successful commit.
func (b *TransactionalBus) Flush(ctx context.Context) {
	// Events are processed independently of the transaction lifecycle,
	// so a background context avoids an already-cancelled request context.
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops all pending events. Called after a rollback.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
