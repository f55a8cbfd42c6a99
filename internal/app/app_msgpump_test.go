package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

type testMsg string

func TestPumpBlocksWhenFullAndKeepsOrder(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	p := newMsgPump(1, done)

	p.deliver(testMsg("first"))

	delivered := make(chan struct{})
	go func() {
		p.deliver(testMsg("second"))
		close(delivered)
	}()

	select {
	case <-delivered:
		t.Fatal("expected deliver to block while the queue is full")
	case <-time.After(50 * time.Millisecond):
	}

	sent := make(chan tea.Msg, 2)
	p.start(func(msg tea.Msg) { sent <- msg })

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("expected deliver to return once forwarding starts")
	}
	for _, want := range []testMsg{"first", "second"} {
		if got := readMsg(t, sent); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestPumpIgnoresNil(t *testing.T) {
	p := newMsgPump(1, make(chan struct{}))
	p.deliver(nil)
	if len(p.queue) != 0 {
		t.Fatalf("expected nil message to be dropped")
	}
	p.start(nil)
}

func TestBlockedDeliveryReturnsOnShutdown(t *testing.T) {
	a := &App{done: make(chan struct{})}
	a.pump = newMsgPump(1, a.done)
	a.enqueueExternalMsg(testMsg("fill"))

	returned := make(chan struct{})
	go func() {
		a.enqueueExternalMsg(testMsg("blocked"))
		close(returned)
	}()

	a.Shutdown()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("expected blocked delivery to return after shutdown")
	}
}

func readMsg(t *testing.T, ch <-chan tea.Msg) tea.Msg {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}
