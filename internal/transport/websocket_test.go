package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// newEchoServer accepts one client connection and echoes every text
// frame it reads back as a binary frame, so Conn's read/write paths can
// be exercised without a real Dullahan server.
func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			kind, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			if kind == websocket.TextMessage {
				if err := ws.WriteMessage(websocket.BinaryMessage, data); err != nil {
					return
				}
			}
		}
	}))
}

func TestConn_SendTextIsEchoedBackAsBinary(t *testing.T) {
	srv := newEchoServer(t)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.True(t, conn.SendText([]byte("hello")))

	data, err := conn.ReadBinary()
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func TestConn_CloseStopsWriter(t *testing.T) {
	srv := newEchoServer(t)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ctx := context.Background()

	conn, err := Dial(ctx, url, nil)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	require.False(t, conn.SendText([]byte("after close")))
}
