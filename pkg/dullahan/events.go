package dullahan

import (
	"sort"
	"sync"
)

// EventKind names one of the client's subscribable event streams
// (spec §6.3 "subscribe(event, cb)").
type EventKind string

const (
	EventSnapshot         EventKind = "snapshot"
	EventDelta            EventKind = "delta"
	EventTitle            EventKind = "title"
	EventBell             EventKind = "bell"
	EventToast            EventKind = "toast"
	EventProgress         EventKind = "progress"
	EventShellIntegration EventKind = "shell_integration"
	EventFocus            EventKind = "focus"
	EventMasterChanged    EventKind = "master_changed"
	EventLayout           EventKind = "layout"
	EventClipboardSet     EventKind = "clipboard_set"
	EventClipboardGet     EventKind = "clipboard_get"
	EventConnectionOpen   EventKind = "connection_open"
	EventDisconnect       EventKind = "disconnect"
)

// eventBus is a minimal typed pub/sub: each subscriber receives every
// payload published under the kind it subscribed to, in subscription
// order. Unlike the teacher's EventEmitter (which is single-threaded
// JS), this one is safe to publish from the read-loop goroutine while
// a caller subscribes/unsubscribes from another.
type eventBus struct {
	mu   sync.Mutex
	subs map[EventKind]map[int]func(any)
	next int
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[EventKind]map[int]func(any))}
}

// Subscribe registers cb for every publish under kind, returning an
// unsubscribe function.
func (b *eventBus) Subscribe(kind EventKind, cb func(any)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[kind] == nil {
		b.subs[kind] = make(map[int]func(any))
	}
	id := b.next
	b.next++
	b.subs[kind][id] = cb
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[kind], id)
	}
}

func (b *eventBus) publish(kind EventKind, payload any) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.subs[kind]))
	for id := range b.subs[kind] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	cbs := make([]func(any), 0, len(ids))
	for _, id := range ids {
		cbs = append(cbs, b.subs[kind][id])
	}
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(payload)
	}
}
