// Package dullahan wires the wire codec (C1), per-pane delta-sync
// engine (C2), render pipeline (C3), input core (C4), and session
// control layer (C5) into the single Core type the embedding
// application drives: connect/disconnect, subscribe to server-pushed
// events, and issue master-gated commands (spec §6.3).
package dullahan

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/raymond-w-ko/dullahan-sub003/internal/input"
	"github.com/raymond-w-ko/dullahan-sub003/internal/logging"
	"github.com/raymond-w-ko/dullahan-sub003/internal/render"
	"github.com/raymond-w-ko/dullahan-sub003/internal/session"
	"github.com/raymond-w-ko/dullahan-sub003/internal/syncengine"
	"github.com/raymond-w-ko/dullahan-sub003/internal/transport"
	"github.com/raymond-w-ko/dullahan-sub003/internal/wire"
	"go.uber.org/zap"
)

// paneState bundles one pane's C2 sync engine with its own C3 render
// cache; each pane gets an independent row-cache generation (spec §3).
type paneState struct {
	sync  *syncengine.Pane
	cache *render.RowCache
}

// Core is the top-level client object. The zero value is not usable;
// construct with New.
type Core struct {
	log    *zap.SugaredLogger
	cfg    session.Config
	events *eventBus

	conn       *transport.Conn
	connection *session.Connection
	master     *session.MasterElection
	resize     *session.ResizeDebouncer
	layout     *session.LayoutCache
	layoutCtl  *session.LayoutController
	clientID   string

	mu         sync.Mutex
	panes      map[string]*paneState
	activePane string

	keyboard   *input.KeyboardHandler
	globalCopy *input.GlobalCopyHandler
	ime        *input.IMEHandler
	mouse      map[string]*input.MouseHandler

	// RefocusFunc is called after GlobalCopy reroutes a copy keybind;
	// the embedding UI sets it to move DOM focus back to the pane's
	// input element. Nil is a safe no-op.
	RefocusFunc func()

	cancel context.CancelFunc
}

// New constructs a Core from config and a persisted/generated client
// ID (see session.LoadOrCreateClientID). The returned Core is idle
// until Connect is called.
func New(cfg session.Config, clientID string) *Core {
	log := logging.New(cfg.Debug)
	c := &Core{
		log:      log,
		cfg:      cfg,
		events:   newEventBus(),
		master:   session.NewMasterElection(clientID),
		layout:   session.NewLayoutCache(),
		clientID: clientID,
		panes:    make(map[string]*paneState),
		mouse:    make(map[string]*input.MouseHandler),
	}
	c.connection = session.NewConnection(clientID, c, log)
	c.connection.SetReconnectBackoff(cfg.ReconnectBaseDelay, cfg.ReconnectMaxDelay)
	c.resize = session.NewResizeDebouncer(c)
	c.resize.SetInterval(cfg.ResizeDebounceInterval)
	c.layoutCtl = session.NewLayoutController(c, c.master)

	keybinds, errs := input.LoadDefaultKeybinds()
	for _, err := range errs {
		log.Warnw("skipping malformed default keybind", "err", err)
	}
	c.keyboard = input.NewKeyboardHandler(keybinds, c)
	c.globalCopy = input.NewGlobalCopyHandler(c.keyboard, c)
	c.ime = input.NewIMEHandler(c)

	return c
}

// Connect dials the configured server URL and starts the read loop.
// Reconnection on failure is the caller's responsibility, driven by
// ReconnectDelay (spec §4.5 "reconnect with exponential backoff").
func (c *Core) Connect(ctx context.Context) error {
	c.connection.BeginConnecting()
	conn, err := transport.Dial(ctx, c.cfg.ServerURL, c.log)
	if err != nil {
		c.connection.MarkClosed()
		return fmt.Errorf("dullahan: connect: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.conn = conn
	c.cancel = cancel
	c.mu.Unlock()

	c.connection.MarkOpen()
	c.resize.Flush()

	if err := c.sendHello(); err != nil {
		c.log.Warnw("hello send failed", "err", err)
	}

	go c.readLoop(runCtx, conn)
	return nil
}

// Disconnect closes the active connection, if any.
func (c *Core) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	c.conn = nil
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close()
	}
}

// IsConnected reports whether the connection state machine is Open.
func (c *Core) IsConnected() bool { return c.connection.IsConnected() }

// IsMaster reports whether this client currently holds the master role.
func (c *Core) IsMaster() bool { return c.master.IsMaster() }

// MasterID returns the clientId of the current master, if known.
func (c *Core) MasterID() string { return c.master.MasterID() }

// ClientID returns this client's persisted/generated identifier.
func (c *Core) ClientID() string { return c.clientID }

// Subscribe registers cb for every event published under kind,
// returning an unsubscribe function (spec §6.3 "subscribe(event, cb)").
func (c *Core) Subscribe(kind EventKind, cb func(any)) func() {
	return c.events.Subscribe(kind, cb)
}

func (c *Core) readLoop(ctx context.Context, conn *transport.Conn) {
	for {
		frame, err := conn.ReadBinary()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			c.log.Infow("read loop ending", "err", err)
			c.connection.MarkClosed()
			return
		}
		doc, err := wire.DecodeFrame(frame)
		if err != nil {
			c.log.Warnw("dropping malformed frame", "err", err)
			continue
		}
		msg, err := wire.UnmarshalMessage(doc)
		if err != nil {
			c.log.Warnw("dropping undecodable message", "err", err)
			continue
		}
		c.handleMessage(msg)
	}
}

// handleMessage applies one decoded inbound message: pane-sync messages
// update the owning paneState and publish a render.Line slice; every
// other kind is republished verbatim for the embedding UI (spec §4.1's
// type switch).
func (c *Core) handleMessage(msg wire.Message) {
	switch m := msg.(type) {
	case *wire.Snapshot:
		ps := c.paneFor(m.PaneID)
		if err := ps.sync.ApplySnapshot(m); err != nil {
			c.log.Warnw("snapshot rejected", "pane", m.PaneID, "err", err)
			return
		}
		ps.cache.Flush()
		c.publishRender(EventSnapshot, m.PaneID, ps)

	case *wire.Delta:
		ps := c.paneFor(m.PaneID)
		err := ps.sync.ApplyDelta(m)
		switch err {
		case nil:
			for _, dr := range m.DirtyRows {
				ps.cache.Invalidate(dr.ID)
			}
			c.publishRender(EventDelta, m.PaneID, ps)
		case syncengine.ErrGapDelta:
			c.sendSync(m.PaneID, ps.sync.SyncRequest())
		case syncengine.ErrStaleDelta:
			// drop, per spec §7 PROTOCOL_STALE_DELTA
		default:
			c.log.Warnw("delta rejected", "pane", m.PaneID, "err", err)
		}

	case *wire.Title:
		c.events.publish(EventTitle, *m)
	case *wire.Bell:
		c.events.publish(EventBell, *m)
	case *wire.Toast:
		c.events.publish(EventToast, *m)
	case *wire.Progress:
		c.events.publish(EventProgress, *m)
	case *wire.ShellIntegration:
		c.events.publish(EventShellIntegration, *m)
	case *wire.Focus:
		c.events.publish(EventFocus, *m)
	case *wire.MasterChanged:
		masterID := ""
		if m.MasterID != nil {
			masterID = *m.MasterID
		}
		c.master.OnMasterChanged(masterID)
		c.events.publish(EventMasterChanged, *m)
	case *wire.Layout:
		c.layout.OnLayout(m)
		c.events.publish(EventLayout, *m)
	case *wire.Clipboard:
		switch m.Operation {
		case wire.ClipboardSet:
			c.events.publish(EventClipboardSet, *m)
		case wire.ClipboardGet:
			c.events.publish(EventClipboardGet, *m)
		}
	case *wire.Pong, *wire.HelloIn, *wire.Output:
		// no-op: no UI surface needs these today.
	default:
		c.log.Debugw("unhandled message kind", "kind", msg.Kind())
	}
}

func (c *Core) publishRender(kind EventKind, paneID string, ps *paneState) {
	snap := ps.sync.BuildViewportSnapshot()
	opts := render.RenderOptions{Theme: "default", Active: paneID == c.ActivePane()}
	lines := render.RenderSnapshot(snap, ps.cache, opts)
	c.events.publish(kind, RenderEvent{PaneID: paneID, Snapshot: snap, Lines: lines})
}

// RenderEvent is the payload published on EventSnapshot/EventDelta.
type RenderEvent struct {
	PaneID   string
	Snapshot syncengine.TerminalSnapshot
	Lines    []render.Line
}

// ActivePane returns the pane ID the input layer currently targets.
func (c *Core) ActivePane() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activePane
}

// SetActivePane changes which pane keyboard/mouse input targets.
func (c *Core) SetActivePane(paneID string) {
	c.mu.Lock()
	c.activePane = paneID
	c.mu.Unlock()
}

func (c *Core) paneFor(paneID string) *paneState {
	c.mu.Lock()
	defer c.mu.Unlock()
	ps, ok := c.panes[paneID]
	if !ok {
		ps = &paneState{sync: syncengine.New(paneID, c.log), cache: render.NewRowCache()}
		c.panes[paneID] = ps
		c.mouse[paneID] = input.NewMouseHandler(&mouseEmitter{core: c, paneID: paneID})
	}
	return ps
}

func (c *Core) paneCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.panes)
}

// MouseHandler returns the per-pane mouse handler, creating pane state
// if this is the first reference to paneID.
func (c *Core) MouseHandler(paneID string) *input.MouseHandler {
	c.paneFor(paneID)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouse[paneID]
}

// Keyboard exposes the shared keyboard handler for the embedding UI to
// attach to a focusable element.
func (c *Core) Keyboard() *input.KeyboardHandler { return c.keyboard }

// GlobalCopy exposes the document-level copy rerouter.
func (c *Core) GlobalCopy() *input.GlobalCopyHandler { return c.globalCopy }

// IME exposes the composition handler for the hidden-textarea pattern.
func (c *Core) IME() *input.IMEHandler { return c.ime }

func (c *Core) sendHello() error {
	fg, bg := "", ""
	return c.sendJSON(wire.HelloOut{Type: "hello", ClientID: c.clientID, ThemeFG: &fg, ThemeBG: &bg})
}

func (c *Core) sendJSON(v any) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("dullahan: not connected")
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("dullahan: marshal outbound: %w", err)
	}
	if !conn.SendText(payload) {
		return fmt.Errorf("dullahan: send dropped, connection closing")
	}
	return nil
}

func nowMillis() int64 { return time.Now().UnixMilli() }
