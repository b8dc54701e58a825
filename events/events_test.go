package events

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// TestEventPublishingAndSubscribing creates EventEmitter objects, subscribes EventHandler callbacks to them, and
// ensures that the events are received as intended.
func TestEventPublishingAndSubscribing(t *testing.T) {
	// Define some event types
	type TestEventA struct{}
	type TestEventB struct{ Name string }

	// Create event emitters for both events.
	eventAEmitter := EventEmitter[TestEventA]{}
	eventBEmitter := EventEmitter[TestEventB]{}

	// Track callbacks
	var eventAPublishCount int
	var eventBNames []string
	eventAEmitter.Subscribe(func(event TestEventA) error {
		eventAPublishCount++
		return nil
	})
	eventBEmitter.Subscribe(func(event TestEventB) error {
		eventBNames = append(eventBNames, event.Name)
		return nil
	})

	// Publish events a given amount of times.
	const expectedEventAPublishCount = 5
	for i := 0; i < expectedEventAPublishCount; i++ {
		assert.NoError(t, eventAEmitter.Publish(TestEventA{}))
	}
	assert.NoError(t, eventBEmitter.Publish(TestEventB{Name: "foo.go"}))
	assert.NoError(t, eventBEmitter.Publish(TestEventB{Name: "bar.go"}))

	// Assert we received the expected callbacks.
	assert.EqualValues(t, expectedEventAPublishCount, eventAPublishCount)
	assert.EqualValues(t, []string{"foo.go", "bar.go"}, eventBNames)
}

// TestEventHandlerError ensures a failing handler stops the handlers after it.
func TestEventHandlerError(t *testing.T) {
	type TestEvent struct{}
	emitter := EventEmitter[TestEvent]{}

	handlerErr := errors.New("handler failed")
	calledAfter := false
	emitter.Subscribe(func(event TestEvent) error {
		return handlerErr
	})
	emitter.Subscribe(func(event TestEvent) error {
		calledAfter = true
		return nil
	})

	assert.Equal(t, handlerErr, emitter.Publish(TestEvent{}))
	assert.False(t, calledAfter)
}
