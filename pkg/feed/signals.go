package feed

import (
	"sync"

	"github.com/umputun/passiondaily/pkg/domain"
)

// SignalBus fans out user-facing signals. Sends never block, a full subscriber drops the signal.
type SignalBus struct {
	mu   sync.Mutex
	subs map[int]chan domain.Signal
	seq  int
	size int
}

// NewSignalBus makes a bus with per-subscriber buffer of the given size
func NewSignalBus(size int) *SignalBus {
	if size <= 0 {
		size = 16
	}
	return &SignalBus{subs: map[int]chan domain.Signal{}, size: size}
}

// Subscribe returns a channel of signals and a func to unsubscribe
func (b *SignalBus) Subscribe() (signals <-chan domain.Signal, unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan domain.Signal, b.size)
	b.seq++
	id := b.seq
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

// Publish sends the signal to all subscribers
func (b *SignalBus) Publish(s domain.Signal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- s:
		default: // drop, subscriber is behind
		}
	}
}

// Fail classifies err and publishes it, cancellation is not published
func (b *SignalBus) Fail(err error) {
	kind := domain.Classify(err)
	if kind == domain.KindNone {
		return
	}
	b.Publish(domain.Signal{Kind: kind, Message: signalMessage(kind)})
}

// signalMessage is a short user-facing text of the kind, raw errors are never shown
func signalMessage(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindNetwork:
		return "network error, try again later"
	case domain.KindNotFound:
		return "quote not found"
	case domain.KindStoreConstraint:
		return "can't save favorite"
	default:
		return "something went wrong"
	}
}
