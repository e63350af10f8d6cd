package session

import (
	"sync"
	"time"
)

// resizeDebounceInterval is spec §4.5's "single debounce timer (333 ms)".
const resizeDebounceInterval = 333 * time.Millisecond

// PaneSize is a pending or last-sent pane dimension pair.
type PaneSize struct {
	Cols, Rows int
}

// ResizeEmitter is implemented by the transport layer so ResizeDebouncer
// can send the outbound `resize` message without depending on wire
// directly.
type ResizeEmitter interface {
	EmitResize(paneID string, size PaneSize)
}

// ResizeDebouncer implements spec §4.5's setPaneSize debounce: repeated
// calls for the same pane coalesce into a single `resize` message per
// pane after 333ms of quiet, or immediately via Flush (used on
// connect, per "On connect, the queue is flushed immediately").
type ResizeDebouncer struct {
	emitter ResizeEmitter

	mu       sync.Mutex
	pending  map[string]PaneSize
	lastSent map[string]PaneSize
	timer    *time.Timer
	interval time.Duration
}

// NewResizeDebouncer constructs a debouncer bound to an emitter, using
// the package-default 333ms interval; use SetInterval to override it
// from session.Config.
func NewResizeDebouncer(emitter ResizeEmitter) *ResizeDebouncer {
	return &ResizeDebouncer{
		emitter:  emitter,
		pending:  make(map[string]PaneSize),
		lastSent: make(map[string]PaneSize),
		interval: resizeDebounceInterval,
	}
}

// SetInterval overrides the debounce interval (spec §6.1's Config
// knobs); a non-positive value leaves the current interval in place.
func (d *ResizeDebouncer) SetInterval(interval time.Duration) {
	if interval > 0 {
		d.mu.Lock()
		d.interval = interval
		d.mu.Unlock()
	}
}

// SetPaneSize records a requested pane size. A size identical to the
// last one actually sent for this pane is dropped without restarting
// the debounce timer (spec: "stores into pendingResizes unless equal
// to lastSent").
func (d *ResizeDebouncer) SetPaneSize(paneID string, size PaneSize) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.lastSent[paneID]; ok && last == size {
		delete(d.pending, paneID)
		return
	}
	d.pending[paneID] = size

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.Flush)
}

// Flush emits one `resize` message per pane with a pending size and
// moves each into lastSent. Safe to call concurrently with SetPaneSize
// and to call directly (e.g. on connect) rather than waiting on the
// timer.
func (d *ResizeDebouncer) Flush() {
	d.mu.Lock()
	pending := d.pending
	d.pending = make(map[string]PaneSize)
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	for paneID, size := range pending {
		d.emitter.EmitResize(paneID, size)
		d.mu.Lock()
		d.lastSent[paneID] = size
		d.mu.Unlock()
	}
}

// LastSent returns the last size actually sent on the wire for paneID.
func (d *ResizeDebouncer) LastSent(paneID string) (PaneSize, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.lastSent[paneID]
	return s, ok
}
