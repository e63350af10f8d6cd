// Package transport implements the client-side WebSocket connection:
// dialing, ping/pong keepalive, a binary read loop for inbound frames,
// and a writer goroutine for outbound JSON text frames — adapted from
// the teacher's server-side accept handler to a client-side dialer
// (spec §6.1, SUPPLEMENTED FEATURES "Connection keepalive").
package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pingPeriod     = 30 * time.Second
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 32 * 1024 * 1024
	sendQueueDepth = 256
)

// Conn is a thin dialer-side wrapper around *websocket.Conn providing
// the teacher's ping/pong keepalive and writer-goroutine discipline,
// retargeted at the binary-inbound/JSON-text-outbound split of spec §6.1.
type Conn struct {
	log *zap.SugaredLogger
	ws  *websocket.Conn

	send chan []byte
	done chan struct{}
	once sync.Once
}

// Dial opens a client WebSocket connection to url and starts the
// keepalive writer goroutine.
func Dial(ctx context.Context, url string, log *zap.SugaredLogger) (*Conn, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	ws, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", url, err)
	}

	c := &Conn{
		log:  log,
		ws:   ws,
		send: make(chan []byte, sendQueueDepth),
		done: make(chan struct{}),
	}

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.writer()
	return c, nil
}

// ReadBinary blocks for the next inbound binary frame (spec §6.1:
// "raw binary frames for server→client"). Text frames (legacy
// server-originated control messages, if any) are skipped.
func (c *Conn) ReadBinary() ([]byte, error) {
	for {
		kind, data, err := c.ws.ReadMessage()
		if err != nil {
			c.closeOnce()
			return nil, fmt.Errorf("transport: read: %w", err)
		}
		if kind == websocket.BinaryMessage {
			return data, nil
		}
	}
}

// SendText enqueues an outbound JSON text frame (spec §6.1: "JSON text
// frames for client→server"). Returns false if the connection is
// closing and the frame was dropped.
func (c *Conn) SendText(payload []byte) bool {
	select {
	case c.send <- payload:
		return true
	case <-c.done:
		return false
	}
}

// Close shuts down the writer goroutine and the underlying socket.
func (c *Conn) Close() error {
	c.closeOnce()
	return c.ws.Close()
}

func (c *Conn) closeOnce() {
	c.once.Do(func() { close(c.done) })
}

func (c *Conn) writer() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer func() {
		_ = c.ws.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.log.Debugw("transport: write failed", "err", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.Debugw("transport: ping failed", "err", err)
				return
			}
		case <-c.done:
			return
		}
	}
}
