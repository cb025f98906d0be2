package event

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ovenplan/backend/internal/domain/shared"
)

// InMemoryEventBus delivers domain events synchronously to registered
// handlers in the publishing goroutine.
type InMemoryEventBus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
	running  atomic.Bool
	wg       sync.WaitGroup
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger,
	}
}

// Publish dispatches each event to every handler subscribed to its type.
// Handler errors are logged, not propagated; one failing handler does
// not stop delivery to the others.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if !b.running.Load() {
		return fmt.Errorf("event bus is not running")
	}

	for _, event := range events {
		handlers := b.registry.GetHandlers(event.EventType())
		if len(handlers) == 0 {
			b.logger.Debug("no handlers for event",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()))
			continue
		}

		for _, handler := range handlers {
			b.dispatchToHandler(ctx, handler, event)
		}
	}
	return nil
}

func (b *InMemoryEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.Any("panic", r))
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		b.logger.Error("event handler failed",
			zap.String("event_type", event.EventType()),
			zap.String("event_id", event.EventID().String()),
			zap.Error(err))
	}
}

// Subscribe registers a handler. When no event types are given, the
// handler's own EventTypes() declaration is used; an empty declaration
// subscribes to all events.
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if handler == nil {
		return
	}
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
}

// Unsubscribe removes a handler from all event types
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	if handler == nil {
		return
	}
	b.registry.Unregister(handler)
}

// Start marks the bus as accepting events
func (b *InMemoryEventBus) Start() error {
	if !b.running.CompareAndSwap(false, true) {
		return fmt.Errorf("event bus is already running")
	}
	b.logger.Info("event bus started")
	return nil
}

// Stop waits for in-flight dispatches and stops accepting events
func (b *InMemoryEventBus) Stop() error {
	if !b.running.CompareAndSwap(true, false) {
		return fmt.Errorf("event bus is not running")
	}
	b.wg.Wait()
	b.logger.Info("event bus stopped")
	return nil
}
