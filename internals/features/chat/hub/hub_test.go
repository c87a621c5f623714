package hub

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestBroadcastReachesChannelSubscribersOnly(t *testing.T) {
	h := New()
	chA, chB := uuid.New(), uuid.New()

	a1 := h.Subscribe(chA)
	a2 := h.Subscribe(chA)
	b1 := h.Subscribe(chB)

	ev := Event{MessageID: uuid.New(), ChannelID: chA, Payload: "hello"}
	if n := h.Broadcast(ev); n != 2 {
		t.Fatalf("delivered = %d, want 2", n)
	}

	for _, cl := range []*Client{a1, a2} {
		select {
		case got := <-cl.Send:
			if got.MessageID != ev.MessageID {
				t.Errorf("wrong message id: %s", got.MessageID)
			}
		default:
			t.Error("subscriber did not receive the event")
		}
	}
	select {
	case <-b1.Send:
		t.Error("other channel's subscriber received the event")
	default:
	}
}

// The same message id delivered twice must render once per client.
func TestBroadcastDeduplicatesByMessageID(t *testing.T) {
	h := New()
	ch := uuid.New()
	cl := h.Subscribe(ch)

	ev := Event{MessageID: uuid.New(), ChannelID: ch}
	if n := h.Broadcast(ev); n != 1 {
		t.Fatalf("first delivery = %d, want 1", n)
	}
	if n := h.Broadcast(ev); n != 0 {
		t.Fatalf("replay delivery = %d, want 0", n)
	}

	count := 0
	for {
		select {
		case <-cl.Send:
			count++
			continue
		default:
		}
		break
	}
	if count != 1 {
		t.Fatalf("client saw %d events, want 1", count)
	}
}

func TestUnsubscribeClosesClient(t *testing.T) {
	h := New()
	ch := uuid.New()
	cl := h.Subscribe(ch)

	if n := h.Subscribers(ch); n != 1 {
		t.Fatalf("subscribers = %d, want 1", n)
	}
	h.Unsubscribe(ch, cl)
	if n := h.Subscribers(ch); n != 0 {
		t.Fatalf("subscribers after unsubscribe = %d, want 0", n)
	}

	if _, open := <-cl.Send; open {
		t.Fatal("send channel should be closed")
	}

	// Double unsubscribe must not panic.
	h.Unsubscribe(ch, cl)
}

func TestSlowClientDropsInsteadOfBlocking(t *testing.T) {
	h := New()
	ch := uuid.New()
	cl := h.Subscribe(ch)

	// Fill the buffer without draining.
	for i := 0; i < clientBufferSize; i++ {
		h.Broadcast(Event{MessageID: uuid.New(), ChannelID: ch})
	}
	if n := h.Broadcast(Event{MessageID: uuid.New(), ChannelID: ch}); n != 0 {
		t.Fatalf("overflow delivery = %d, want 0 (dropped)", n)
	}
	if len(cl.Send) != clientBufferSize {
		t.Fatalf("buffered = %d, want %d", len(cl.Send), clientBufferSize)
	}
}

// A client already gone by delivery time is skipped, not sent to.
func TestBroadcastAfterUnsubscribeSkipsClient(t *testing.T) {
	h := New()
	ch := uuid.New()
	cl := h.Subscribe(ch)

	h.Unsubscribe(ch, cl)
	if n := h.Broadcast(Event{MessageID: uuid.New(), ChannelID: ch}); n != 0 {
		t.Fatalf("delivered = %d, want 0", n)
	}
	// deliver on the closed client directly must refuse, not panic.
	if cl.deliver(Event{MessageID: uuid.New(), ChannelID: ch}) {
		t.Fatal("deliver to a closed client returned true")
	}
}

// Disconnects racing message posts must never panic the broadcaster.
func TestBroadcastRacesUnsubscribe(t *testing.T) {
	h := New()
	ch := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		cl := h.Subscribe(ch)
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Broadcast(Event{MessageID: uuid.New(), ChannelID: ch})
		}()
		go func() {
			defer wg.Done()
			h.Unsubscribe(ch, cl)
		}()
	}
	wg.Wait()

	if n := h.Subscribers(ch); n != 0 {
		t.Fatalf("subscribers left = %d, want 0", n)
	}
}

func TestDedupeWindowEvicts(t *testing.T) {
	h := New()
	ch := uuid.New()
	cl := h.Subscribe(ch)

	first := Event{MessageID: uuid.New(), ChannelID: ch}
	h.Broadcast(first)
	<-cl.Send

	// Push enough newer ids to evict the first from the window.
	for i := 0; i < dedupeWindow; i++ {
		h.Broadcast(Event{MessageID: uuid.New(), ChannelID: ch})
		<-cl.Send
	}

	if n := h.Broadcast(first); n != 1 {
		t.Fatalf("evicted id should deliver again, got %d", n)
	}
}
