package wsconn

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Observer adapts one websocket connection to the hub contract. Gorilla
// connections allow a single concurrent writer, so every send takes the
// write mutex.
type Observer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewObserver(conn *websocket.Conn) *Observer {
	return &Observer{conn: conn}
}

func (o *Observer) Send(message any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.conn.WriteJSON(message)
}

func (o *Observer) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.conn.Close()
}
