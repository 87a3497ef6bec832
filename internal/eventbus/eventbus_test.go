package eventbus

import (
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	b := New[int]()
	defer b.Close()
	sub := b.Subscribe()

	b.Publish(7)
	select {
	case v := <-sub:
		if v != 7 {
			t.Fatalf("expected 7, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestBus_NonBlockingWhenFull(t *testing.T) {
	b := New[int]()
	defer b.Close()
	b.Subscribe() // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New[int]()
	defer b.Close()
	sub := b.Subscribe()
	b.Unsubscribe(sub)

	if _, ok := <-sub; ok {
		t.Fatal("channel not closed on unsubscribe")
	}
	b.Publish(1) // must not panic
}

func TestBus_Close(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Close()
	b.Close() // idempotent

	if _, ok := <-sub; ok {
		t.Fatal("channel not closed on bus close")
	}
	if _, ok := <-b.Subscribe(); ok {
		t.Fatal("subscribing to a closed bus must yield a closed channel")
	}
	b.Publish(1) // must not panic
}
