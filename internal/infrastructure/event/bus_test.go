package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/erp/receiving/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", 1)}
}

type testHandler struct {
	eventTypes []string
	err        error
	panicWith  any
	mu         sync.Mutex
	handled    []shared.DomainEvent
}

func (h *testHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	if h.panicWith != nil {
		panic(h.panicWith)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	return h.err
}

func (h *testHandler) EventTypes() []string { return h.eventTypes }

func (h *testHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func TestInMemoryEventBus_RoutesByType(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	created := &testHandler{eventTypes: []string{"Created"}}
	all := &testHandler{}
	bus.Subscribe(created)
	bus.Subscribe(all)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("Created"), newTestEvent("Deleted")))

	assert.Equal(t, 1, created.count())
	assert.Equal(t, 2, all.count())
}

func TestInMemoryEventBus_ExplicitTypesOverrideHandlerTypes(t *testing.T) {
	bus := NewInMemoryEventBus(nil)
	h := &testHandler{eventTypes: []string{"Created"}}
	bus.Subscribe(h, "Deleted")

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("Created"), newTestEvent("Deleted")))
	assert.Equal(t, 1, h.count())
	assert.Equal(t, "Deleted", h.handled[0].EventType())
}

func TestInMemoryEventBus_FailuresAreLoggedAndIsolated(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := NewInMemoryEventBus(zap.New(core))
	failing := &testHandler{eventTypes: []string{"Created"}, err: errors.New("boom")}
	panicking := &testHandler{eventTypes: []string{"Created"}, panicWith: "kaboom"}
	healthy := &testHandler{eventTypes: []string{"Created"}}
	bus.Subscribe(failing)
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), newTestEvent("Created"))

	require.NoError(t, err)
	assert.Equal(t, 1, healthy.count())
	assert.Equal(t, 2, logs.FilterMessage("handler failed to process event").Len())
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	h := &testHandler{eventTypes: []string{"Created"}}
	wild := &testHandler{}
	bus.Subscribe(h)
	bus.Subscribe(wild)
	bus.Unsubscribe(h)
	bus.Unsubscribe(wild)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("Created")))
	assert.Zero(t, h.count())
	assert.Zero(t, wild.count())
	assert.Empty(t, bus.registry.GetHandlers("Created"))
}
