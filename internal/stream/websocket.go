package stream

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
)

// NewWebsocketDialer returns a [Dialer] that opens a websocket connection
// to streamURL (e.g. "wss://client.pushover.net/push").
func NewWebsocketDialer(streamURL string) Dialer {
	return func(ctx context.Context) (Conn, error) {
		c, _, err := websocket.Dial(ctx, streamURL, nil)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", streamURL, err)
		}
		return &wsConn{conn: c}, nil
	}
}

type wsConn struct {
	conn *websocket.Conn
}

func (w *wsConn) ReadFrame(ctx context.Context) (string, error) {
	_, data, err := w.conn.Read(ctx)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (w *wsConn) WriteFrame(ctx context.Context, payload string) error {
	return w.conn.Write(ctx, websocket.MessageText, []byte(payload))
}

func (w *wsConn) Close() error {
	return w.conn.Close(websocket.StatusNormalClosure, "session teardown")
}
