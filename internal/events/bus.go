// Package events is a small in-process publish/subscribe emitter.
//
// Unlike a queued bus, Fire delivers synchronously on the caller's goroutine
// in subscription order. The roller fires from inside its state machine, so
// handlers observe notifications in exactly the order transitions happen.
package events

import (
	"io"
	"log"
	"runtime/debug"
	"sync"
)

// Handler receives a notification payload. The payload type depends on the
// event name.
type Handler func(payload any)

// Emitter is the capability the roller needs from its host.
type Emitter interface {
	On(name string, h Handler) (unsubscribe func())
	Fire(name string, payload any)
}

type subscription struct {
	id int
	h  Handler
}

// Bus is the default Emitter.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]subscription
	nextID int
	logger *log.Logger
}

// New creates an empty bus. A nil logger discards handler panic reports.
func New(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Bus{
		subs:   make(map[string][]subscription),
		logger: logger,
	}
}

var _ Emitter = (*Bus)(nil)

// On subscribes h to name. The returned function removes the subscription;
// calling it more than once is harmless.
func (b *Bus) On(name string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[name] = append(b.subs[name], subscription{id: id, h: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[name]
		for i, s := range subs {
			if s.id == id {
				b.subs[name] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
		if len(b.subs[name]) == 0 {
			delete(b.subs, name)
		}
	}
}

// Fire calls every handler subscribed to name. A panicking handler is
// recovered and logged; the remaining handlers still run.
func (b *Bus) Fire(name string, payload any) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs[name]))
	copy(subs, b.subs[name])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(name, s.h, payload)
	}
}

// Count returns the number of handlers subscribed to name.
func (b *Bus) Count(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[name])
}

func (b *Bus) call(name string, h Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Printf("events: handler panic for %s: %v\n%s", name, r, debug.Stack())
		}
	}()
	h(payload)
}
