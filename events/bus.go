package events

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher is the engine-facing side of the bus.
type Publisher interface {
	Publish(event Event)
}

// Handler consumes published events. Handlers must not call back into the
// engine.
type Handler func(event Event)

// Subscription detaches a handler from the bus.
type Subscription interface {
	Unsubscribe()
}

// Bus is a synchronous in-memory fan-out of engine events to subscribers.
// Publishing happens inside the operation that produced the event, so
// handlers see events in operation order per sale instance.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type]map[string]Handler
	logger   *zap.Logger
}

func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		handlers: make(map[Type]map[string]Handler),
		logger:   logger.Named("event_bus"),
	}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(eventType Type, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New().String()
	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[string]Handler)
	}
	b.handlers[eventType][id] = handler

	b.logger.Debug("handler subscribed",
		zap.String("event_type", string(eventType)),
		zap.String("subscription_id", id))

	return &subscription{bus: b, typ: eventType, id: id}
}

// Publish delivers the event to every handler registered for its type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event.Type()]))
	for _, h := range b.handlers[event.Type()] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

func (b *Bus) unsubscribe(eventType Type, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if handlers, ok := b.handlers[eventType]; ok {
		delete(handlers, id)
		if len(handlers) == 0 {
			delete(b.handlers, eventType)
		}
	}
}

type subscription struct {
	bus  *Bus
	typ  Type
	id   string
	once sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() { s.bus.unsubscribe(s.typ, s.id) })
}

// Nop discards every event. It is the engine default when no bus is wired.
type Nop struct{}

func (Nop) Publish(Event) {}
