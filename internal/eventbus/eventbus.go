package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/log"

	"namepick/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventRosterLoaded      = domain.EventRosterLoaded
	EventCandidateSelected = domain.EventCandidateSelected
	EventSelectionCleared  = domain.EventSelectionCleared
	EventQueryApplied      = domain.EventQueryApplied
	EventConfigLoaded      = domain.EventConfigLoaded
	EventConfigSaved       = domain.EventConfigSaved
	EventConfigReloaded    = domain.EventConfigReloaded
	EventError             = domain.EventError
	EventAppReady          = domain.EventAppReady
)

// Re-export domain event types
type RosterLoadedEvent = domain.RosterLoadedEvent
type CandidateSelectedEvent = domain.CandidateSelectedEvent
type SelectionClearedEvent = domain.SelectionClearedEvent
type QueryAppliedEvent = domain.QueryAppliedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigReloadedEvent = domain.ConfigReloadedEvent
type ErrorEvent = domain.ErrorEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Stop()
}

// subscription pairs a handler with a token so unsubscribe can find it
type subscription struct {
	id int64
	fn EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	stopOnce  sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventQueryApplied:
	default:
		log.Debug("publishing event", "type", event.Type())
	}

	select {
	case b.eventChan <- event:
	default:
		log.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, fn: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Stop shuts the dispatcher down, discarding queued events. Publish after
// Stop drops silently; handlers already running are not interrupted.
func (b *bus) Stop() {
	b.stopOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so the lock is not held during handler execution
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, sub := range subsCopy {
				// Call handler in a goroutine to avoid blocking the loop
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Error("event handler panic", "type", eventType, "panic", r, "stack", string(debug.Stack()))
						}
					}()
					h(event)
				}(sub.fn, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
