package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan SearchRequestedEvent, 2)
	b.Subscribe(EventSearchRequested, func(e DomainEvent) {
		got <- e.(SearchRequestedEvent)
	})
	b.Subscribe(EventSearchRequested, func(e DomainEvent) {
		got <- e.(SearchRequestedEvent)
	})

	b.Publish(SearchRequestedEvent{Generation: 3, Ticker: "BLCA11", PageSize: 20})

	for i := 0; i < 2; i++ {
		select {
		case e := <-got:
			assert.Equal(t, uint64(3), e.Generation)
			assert.Equal(t, "BLCA11", e.Ticker)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	count := 0
	unsubscribe := b.Subscribe(EventHealthChecked, func(DomainEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	delivered := make(chan struct{}, 1)
	b.Subscribe(EventHealthChecked, func(DomainEvent) { delivered <- struct{}{} })

	unsubscribe()
	b.Publish(HealthCheckedEvent{Online: true})

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber not called")
	}
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, count)
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	ok := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventDownloadCompleted, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})
	b.Publish(DownloadCompletedEvent{DocumentID: 1})

	select {
	case <-ok:
	case <-time.After(time.Second):
		t.Fatal("bus stopped after handler panic")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New()
	b.Close()
	require.NotPanics(t, func() {
		b.Close()
		b.Publish(ErrorEvent{Message: "after close"})
	})
}
