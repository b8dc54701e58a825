package events

import (
	"sync"
)

// EventHandler defines a function type where its input type is the generic type. Returning an error stops the
// publisher, which surfaces the error to its caller.
type EventHandler[T any] func(T) error

// EventEmitter describes a provider which can subscribe EventHandler methods for callback when the event type (generic)
// is published. It additionally provides methods for publishing events. The zero value is ready to use.
type EventEmitter[T any] struct {
	// subscriptions defines the EventHandler methods which should be invoked when a new event is published to this
	// emitter.
	subscriptions []EventHandler[T]

	// subscriptionsLock guards subscriptions.
	subscriptionsLock sync.Mutex
}

// Publish emits the provided event by calling every EventHandler subscribed, in subscription order. The first error
// returned by a handler stops the remaining handlers from being called and is returned.
func (e *EventEmitter[T]) Publish(event T) error {
	// Copy the subscriptions so handlers may subscribe while being called
	e.subscriptionsLock.Lock()
	subscriptions := append([]EventHandler[T](nil), e.subscriptions...)
	e.subscriptionsLock.Unlock()

	for _, subscription := range subscriptions {
		if err := subscription(event); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe adds an EventHandler to the list of subscribed EventHandler objects for this emitter. When an event is
// published, the callback will be triggered with the event data.
func (e *EventEmitter[T]) Subscribe(callback EventHandler[T]) {
	e.subscriptionsLock.Lock()
	defer e.subscriptionsLock.Unlock()
	e.subscriptions = append(e.subscriptions, callback)
}
