package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan GlyphCopiedEvent, 1)
	b.Subscribe(EventGlyphCopied, func(e DomainEvent) {
		if ev, ok := e.(GlyphCopiedEvent); ok {
			got <- ev
		}
	})

	b.Publish(GlyphCopiedEvent{Glyph: "🚀"})

	select {
	case ev := <-got:
		assert.Equal(t, "🚀", ev.Glyph)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlyReceiveTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var types []EventType
	done := make(chan struct{}, 1)

	b.Subscribe(EventSearchCleared, func(e DomainEvent) {
		mu.Lock()
		types = append(types, e.Type())
		mu.Unlock()
		done <- struct{}{}
	})

	b.Publish(SearchCompletedEvent{Query: "rocket", MatchCount: 1})
	b.Publish(SearchClearedEvent{Total: 2})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleared event was not delivered")
	}

	// give a misrouted completed event a chance to show up
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventType{EventSearchCleared}, types)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	calls := make(chan struct{}, 4)
	unsubscribe := b.Subscribe(EventCatalogLoaded, func(DomainEvent) { calls <- struct{}{} })
	unsubscribe()

	b.Publish(CatalogLoadedEvent{Count: 3})
	select {
	case <-calls:
		t.Fatal("handler called after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	defer b.Close()

	ok := make(chan struct{}, 1)
	b.Subscribe(EventGlyphCopied, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventGlyphCopied, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(GlyphCopiedEvent{Glyph: "😀"})

	select {
	case <-ok:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler not called")
	}
}

func TestPublishAfterCloseIsIgnored(t *testing.T) {
	b := New()
	b.Close()

	require.NotPanics(t, func() {
		b.Publish(SearchClearedEvent{})
		b.Close()
	})
}
