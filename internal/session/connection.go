// Package session implements the connection lifecycle, master election,
// resize debounce, and layout tree management of the session control
// layer (C5): spec §4.5.
package session

import (
	"time"

	"go.uber.org/zap"
)

// ConnectionState enumerates the states of spec §4.5's connection
// lifecycle: "Disconnected → Connecting → Open → Disconnected".
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Open
)

func (s ConnectionState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	default:
		return "disconnected"
	}
}

// reconnectBaseDelay/reconnectMaxDelay implement spec §4.5's "250 × 2^n
// ms capped at 5000 ms" backoff schedule.
const (
	reconnectBaseDelay = 250 * time.Millisecond
	reconnectMaxDelay  = 5000 * time.Millisecond
)

// ReconnectDelay returns the backoff delay for the n-th reconnect
// attempt (n starting at 0), per spec §4.5/§5, using the package
// defaults. Connection.MarkClosed uses its own configured bounds
// instead (see Connection.reconnectDelay).
func ReconnectDelay(n int) time.Duration {
	return reconnectDelay(n, reconnectBaseDelay, reconnectMaxDelay)
}

func reconnectDelay(n int, base, max time.Duration) time.Duration {
	if n < 0 {
		n = 0
	}
	delay := base
	for i := 0; i < n; i++ {
		delay *= 2
		if delay >= max {
			return max
		}
	}
	return delay
}

// ConnectionListener receives connection lifecycle events; the session
// layer's consumers implement whichever callbacks they need (all are
// optional via embedding a NopConnectionListener).
type ConnectionListener interface {
	OnOpen()
	OnDisconnect()
}

// NopConnectionListener is an embeddable no-op ConnectionListener.
type NopConnectionListener struct{}

func (NopConnectionListener) OnOpen()       {}
func (NopConnectionListener) OnDisconnect() {}

// Connection tracks connection state and reconnect backoff. It does not
// itself own a socket: Connect/transition calls are driven by the
// transport layer (e.g. a gorilla/websocket dialer) so this type stays
// independently testable.
type Connection struct {
	log *zap.SugaredLogger

	state    ConnectionState
	attempt  int
	clientID string
	listener ConnectionListener

	reconnectBase time.Duration
	reconnectMax  time.Duration
}

// NewConnection constructs a Connection in the Disconnected state, with
// the package-default reconnect backoff bounds; use SetReconnectBackoff
// to override them from session.Config.
func NewConnection(clientID string, listener ConnectionListener, log *zap.SugaredLogger) *Connection {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if listener == nil {
		listener = NopConnectionListener{}
	}
	return &Connection{
		log: log, clientID: clientID, listener: listener, state: Disconnected,
		reconnectBase: reconnectBaseDelay, reconnectMax: reconnectMaxDelay,
	}
}

// SetReconnectBackoff overrides the base/max reconnect delay bounds
// (spec §6.1's Config knobs); zero values leave the package defaults in
// place.
func (c *Connection) SetReconnectBackoff(base, max time.Duration) {
	if base > 0 {
		c.reconnectBase = base
	}
	if max > 0 {
		c.reconnectMax = max
	}
}

func (c *Connection) State() ConnectionState { return c.state }
func (c *Connection) IsConnected() bool      { return c.state == Open }
func (c *Connection) ClientID() string       { return c.clientID }

// BeginConnecting transitions Disconnected -> Connecting.
func (c *Connection) BeginConnecting() {
	c.state = Connecting
}

// MarkOpen transitions to Open, resets reconnect backoff, and notifies
// the listener (spec: "On Open: ... reset reconnect backoff").
func (c *Connection) MarkOpen() {
	c.state = Open
	c.attempt = 0
	c.listener.OnOpen()
}

// MarkClosed transitions to Disconnected, emits the disconnect event,
// and returns the delay the caller should wait before reconnecting,
// incrementing the backoff attempt counter (spec: "On Close: emit
// disconnect; schedule reconnect with exponential backoff").
func (c *Connection) MarkClosed() time.Duration {
	c.state = Disconnected
	c.listener.OnDisconnect()
	delay := reconnectDelay(c.attempt, c.reconnectBase, c.reconnectMax)
	c.attempt++
	return delay
}
