// Package stream pushes battle updates to WebSocket subscribers.
package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ericogr/pokebattle/internal/constants"
	"github.com/ericogr/pokebattle/internal/engine"
	"github.com/ericogr/pokebattle/internal/logging"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 32
)

// Update is one message sent to subscribers of a battle.
type Update struct {
	BattleID string               `json:"battle_id"`
	Round    int                  `json:"round"`
	Status   string               `json:"status"`
	Winner   string               `json:"winner,omitempty"`
	Events   []engine.BattleEvent `json:"events"`
}

type client struct {
	battleID string
	conn     *websocket.Conn
	send     chan []byte
}

// Hub fans battle updates out to every connection watching that battle.
// It is safe for concurrent use.
type Hub struct {
	mu       sync.Mutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Subscribers reports how many connections watch battleID.
func (h *Hub) Subscribers(battleID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[battleID])
}

// Publish queues u for every subscriber of u.BattleID. Slow subscribers
// whose buffer is full are dropped.
func (h *Hub) Publish(u Update) {
	data, err := json.Marshal(u)
	if err != nil {
		logging.Error("failed to encode battle update", err, logging.Fields{constants.LogFieldBattleID: u.BattleID})
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[u.BattleID] {
		select {
		case c.send <- data:
		default:
			h.removeLocked(c)
		}
	}
}

// ServeWS upgrades the request and subscribes it to battleID until the
// peer goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, battleID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &client{battleID: battleID, conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	if h.clients[battleID] == nil {
		h.clients[battleID] = make(map[*client]struct{})
	}
	h.clients[battleID][c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
	return nil
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	set, ok := h.clients[c.battleID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.battleID)
	}
}

// readPump only watches for the peer closing; clients send nothing.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
