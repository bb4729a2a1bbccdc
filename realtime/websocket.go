package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // CORS is enforced at the HTTP layer
}

// clientMessage is what a connected browser sends: subscribe/unsubscribe to
// a table's change feed.
type clientMessage struct {
	Type  string `json:"type"`
	Table string `json:"table"`
}

type connection struct {
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	unsubs map[string]func() // one live subscription per table per connection
}

// ServeWS runs the read/write loops for one WebSocket client until it
// disconnects. All of its table subscriptions are torn down on exit, so a
// re-connecting client never accumulates duplicate channels.
func (h *Hub) ServeWS(conn *websocket.Conn) {
	c := &connection{
		conn:   conn,
		send:   make(chan []byte, 64),
		done:   make(chan struct{}),
		unsubs: make(map[string]func()),
	}

	go c.writePump()
	h.readPump(c) // blocks until disconnect
}

func (h *Hub) readPump(c *connection) {
	// c.send is never closed: a Notify callback snapshotted before the
	// unsubscribe below could still fire. writePump exits via done instead.
	defer func() {
		for _, unsub := range c.unsubs {
			unsub()
		}
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var m clientMessage
		if err := json.Unmarshal(msg, &m); err != nil || m.Table == "" {
			continue
		}

		switch m.Type {
		case "subscribe":
			if _, ok := c.unsubs[m.Table]; ok {
				continue // already subscribed, keep it idempotent
			}
			c.unsubs[m.Table] = h.Subscribe(m.Table, func(ev Event) {
				data, err := json.Marshal(ev)
				if err != nil {
					return
				}
				select {
				case c.send <- data:
				default:
					logrus.WithField("table", ev.Table).Warn("realtime: dropping event for slow client")
				}
			})
		case "unsubscribe":
			if unsub, ok := c.unsubs[m.Table]; ok {
				unsub()
				delete(c.unsubs, m.Table)
			}
		}
	}
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
