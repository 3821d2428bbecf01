package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteCollect/internal/config"
	"wasteCollect/internal/domain"
	"wasteCollect/internal/service"
	"wasteCollect/pkg/e"
)

func sampleEvent() domain.CollectionEvent {
	return domain.CollectionEvent{
		Type:         domain.EventCollectionSigned,
		CollectionID: uuid.New(),
		WasteID:      uuid.New(),
		CollectorID:  uuid.New(),
		OwnerID:      uuid.New(),
		Status:       domain.CollectionSigned,
		OccurredAt:   fixedTime(),
	}
}

func TestWebhookSender_Deliver_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	event := sampleEvent()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		assert.Equal(t, "collection.signed", r.Header.Get("X-Event-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got domain.CollectionEvent
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, event.CollectionID, got.CollectionID)

		if n < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sender := service.NewWebhookSender(discardLogger(), config.WebhookConfig{URL: srv.URL}, nil)
	sender.SetBackoff(time.Millisecond)

	require.NoError(t, sender.Deliver(context.Background(), event))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestWebhookSender_Deliver_GivesUp(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sender := service.NewWebhookSender(discardLogger(), config.WebhookConfig{URL: srv.URL}, nil)
	sender.SetBackoff(time.Millisecond)

	err := sender.Deliver(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

// sliceSource hands out its events once, then reports an empty queue.
type sliceSource struct {
	mu     sync.Mutex
	events []domain.CollectionEvent
}

func (s *sliceSource) Dequeue(ctx context.Context, timeout time.Duration) (domain.CollectionEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Millisecond):
		}
		return domain.CollectionEvent{}, e.ErrQueueEmpty
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func TestWebhookSender_Run_DrainsQueue(t *testing.T) {
	t.Parallel()

	received := make(chan uuid.UUID, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got domain.CollectionEvent
		_ = json.NewDecoder(r.Body).Decode(&got)
		received <- got.CollectionID
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	first, second := sampleEvent(), sampleEvent()
	src := &sliceSource{events: []domain.CollectionEvent{first, second}}
	sender := service.NewWebhookSender(discardLogger(), config.WebhookConfig{URL: srv.URL}, src)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sender.Run(ctx)
		close(done)
	}()

	for _, want := range []uuid.UUID{first.CollectionID, second.CollectionID} {
		select {
		case got := <-received:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatal("webhook not delivered")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sender did not stop")
	}
}

func TestWebhookSender_Run_Disabled(t *testing.T) {
	t.Parallel()

	sender := service.NewWebhookSender(discardLogger(), config.WebhookConfig{Disabled: true}, nil)

	done := make(chan struct{})
	go func() {
		sender.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled sender kept running")
	}
}
