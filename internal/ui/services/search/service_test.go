package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emojipick/internal/eventbus"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) Close() {}

func TestUpdateRunsFilterAndPublishes(t *testing.T) {
	bus := &recordingBus{}
	var queries []string
	svc := NewService(bus, 10, func(q string) int {
		queries = append(queries, q)
		return len(q)
	})

	assert.Equal(t, 10, svc.MatchCount())
	assert.Equal(t, 10, svc.Total())

	require.True(t, svc.Update("roc"))
	assert.Equal(t, "roc", svc.Query())
	assert.Equal(t, 3, svc.MatchCount())

	require.True(t, svc.Clear())
	assert.Equal(t, "", svc.Query())
	assert.Equal(t, 0, svc.MatchCount())

	assert.Equal(t, []string{"roc", ""}, queries)
	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.SearchCompletedEvent{Query: "roc", MatchCount: 3},
		eventbus.SearchClearedEvent{Total: 10},
	}, bus.events)
}

func TestUpdateSkipsUnchangedQuery(t *testing.T) {
	calls := 0
	svc := NewService(nil, 2, func(string) int { calls++; return 1 })

	assert.False(t, svc.Update(""))
	assert.True(t, svc.Update("face"))
	assert.False(t, svc.Update("face"))
	assert.Equal(t, 1, calls)
}

func TestUpdateIsCaseSensitiveOnRawText(t *testing.T) {
	// the raw text is tracked; normalization happens in the filter
	calls := 0
	svc := NewService(nil, 2, func(string) int { calls++; return 1 })

	svc.Update("rocket")
	svc.Update("ROCKET")
	assert.Equal(t, 2, calls)
}
