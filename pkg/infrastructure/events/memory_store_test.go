package events

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vsinha/pos/pkg/domain/entities"
)

type recordingHandler struct {
	mu    sync.Mutex
	types []string
	only  string
}

func (h *recordingHandler) Handle(event Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.types = append(h.types, event.Type())
	return nil
}

func (h *recordingHandler) CanHandle(eventType string) bool {
	return h.only == "" || h.only == eventType
}

func (h *recordingHandler) seen() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.types...)
}

func TestInMemoryEventStore_VersionsPerStream(t *testing.T) {
	store := NewInMemoryEventStore(nil)

	require.NoError(t, store.AppendEvent("s1", NewEvent(CartLineAddedEvent, "s1", CartLineAdded{ItemID: "1", Quantity: 2})))
	require.NoError(t, store.AppendEvent("s2", NewEvent(CartClearedEvent, "s2", CartCleared{Reason: "manual"})))
	require.NoError(t, store.AppendEvent("s1", NewEvent(CartLineRemovedEvent, "s1", CartLineRemoved{ItemID: "1"})))

	s1, err := store.ReadEvents("s1", 0)
	require.NoError(t, err)
	require.Len(t, s1, 2)
	assert.Equal(t, 1, s1[0].Version())
	assert.Equal(t, 2, s1[1].Version())
	assert.Equal(t, entities.ItemID("1"), s1[1].Data().(CartLineRemoved).ItemID)

	fromTwo, _ := store.ReadEvents("s1", 2)
	assert.Len(t, fromTwo, 1)

	none, _ := store.ReadEvents("missing", 1)
	assert.Empty(t, none)

	all, _ := store.ReadAllEvents(1)
	require.Len(t, all, 2)
	assert.Equal(t, CartClearedEvent, all[0].Type())
}

func TestInMemoryEventStore_Subscribers(t *testing.T) {
	store := NewInMemoryEventStore(nil)

	everything := &recordingHandler{}
	onlyCleared := &recordingHandler{only: CartClearedEvent}
	require.NoError(t, store.Subscribe([]string{AllEvents}, everything))
	require.NoError(t, store.Subscribe([]string{CartClearedEvent, CartLineAddedEvent}, onlyCleared))

	require.NoError(t, store.AppendEvent("s", NewEvent(CartLineAddedEvent, "s", nil)))
	require.NoError(t, store.AppendEvent("s", NewEvent(CartClearedEvent, "s", nil)))
	store.Wait()

	assert.ElementsMatch(t, []string{CartLineAddedEvent, CartClearedEvent}, everything.seen())
	assert.Equal(t, []string{CartClearedEvent}, onlyCleared.seen())

	require.NoError(t, store.Unsubscribe(everything))
	require.NoError(t, store.AppendEvent("s", NewEvent(CartClearedEvent, "s", nil)))
	store.Wait()

	assert.Len(t, everything.seen(), 2)
	assert.Len(t, onlyCleared.seen(), 2)
}

func TestInMemoryEventStore_HandlerErrorsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := NewInMemoryEventStore(zap.New(core))

	failing := HandlerFunc(func(Event) error { return errors.New("boom") })
	require.NoError(t, store.Subscribe([]string{TransactionCompletedEvent}, failing))

	require.NoError(t, store.AppendEvent("s", NewEvent(TransactionCompletedEvent, "s", nil)))
	store.Wait()

	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, TransactionCompletedEvent, entries[0].ContextMap()["event_type"])
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])

	require.NoError(t, store.Unsubscribe(failing))
	require.NoError(t, store.AppendEvent("s", NewEvent(TransactionCompletedEvent, "s", nil)))
	store.Wait()
	assert.Equal(t, 1, logs.FilterMessage("event handler failed").Len())
}
