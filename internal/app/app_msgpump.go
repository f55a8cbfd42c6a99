package app

import (
	"sync"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/safego"
)

const pumpQueueSize = 1024

// msgPump carries messages from source goroutines into the running program.
// Delivery blocks while the queue is full, so no snapshot is lost, and
// gives up once the app shuts down.
type msgPump struct {
	queue chan tea.Msg
	done  <-chan struct{}

	once     sync.Once
	lastWarn atomic.Int64
}

func newMsgPump(size int, done <-chan struct{}) *msgPump {
	return &msgPump{queue: make(chan tea.Msg, size), done: done}
}

// start forwards queued messages to send until shutdown.
func (p *msgPump) start(send func(tea.Msg)) {
	if send == nil {
		return
	}
	p.once.Do(func() {
		safego.Go("msg-pump", func() { p.forward(send) })
	})
}

func (p *msgPump) deliver(msg tea.Msg) {
	if msg == nil {
		return
	}
	select {
	case p.queue <- msg:
		return
	default:
	}
	p.warnFull()
	select {
	case p.queue <- msg:
	case <-p.done:
	}
}

func (p *msgPump) forward(send func(tea.Msg)) {
	for {
		select {
		case msg := <-p.queue:
			send(msg)
		case <-p.done:
			return
		}
	}
}

// warnFull logs at most once a second.
func (p *msgPump) warnFull() {
	now := time.Now().UnixNano()
	last := p.lastWarn.Load()
	if now-last < int64(time.Second) || !p.lastWarn.CompareAndSwap(last, now) {
		return
	}
	logging.Warn("message queue full; source is waiting for the UI")
}

// SetMsgSender connects source goroutines to the running program.
func (a *App) SetMsgSender(send func(tea.Msg)) {
	a.pump.start(send)
}

func (a *App) enqueueExternalMsg(msg tea.Msg) {
	a.pump.deliver(msg)
}
