package network

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsConn serializes writes to one websocket connection; gorilla allows a
// single concurrent writer and both the session and the ping loop write.
type wsConn struct {
	mu sync.Mutex
	c  *websocket.Conn
}

func newWSConn(c *websocket.Conn) *wsConn {
	return &wsConn{c: c}
}

func (w *wsConn) Send(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.c.SetWriteDeadline(time.Now().Add(writeDeadline))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

func (w *wsConn) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.c.SetWriteDeadline(time.Now().Add(writeDeadline))
	return w.c.WriteMessage(websocket.PingMessage, nil)
}

func (w *wsConn) Close() error {
	return w.c.Close()
}
