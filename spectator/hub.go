// Package spectator is the non-core websocket broadcast hub: it mirrors
// world-state snapshots out to any number of browser-based viewers, the
// same register/unregister/broadcast shape the session's own transport
// does not need, since a spectator connection is read-only.
package spectator

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Snapshot is one broadcast message: a named event plus whatever payload
// the caller wants mirrored out (a game_state, a turn notice, a chat line).
type Snapshot struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	EnableCompression: true,
}

// Client is one connected spectator.
type Client struct {
	ID   int
	conn *websocket.Conn
	send chan Snapshot
	hub  *Hub
}

// Hub manages the set of connected spectators and fans every Broadcast
// call out to all of them.
type Hub struct {
	mu         sync.RWMutex
	clients    map[int]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Snapshot
	nextID     int

	latest Snapshot // most recent snapshot, replayed to new connections
}

// NewHub returns an empty, unstarted Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Snapshot, 256),
	}
}

// Run drives the hub's register/unregister/broadcast loop. It blocks and
// should be started in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			latest := h.latest
			h.mu.Unlock()
			if latest.Type != "" {
				select {
				case client.send <- latest:
				default:
				}
			}
			log.Printf("spectator: client %d connected", client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("spectator: client %d disconnected", client.ID)

		case snapshot := <-h.broadcast:
			h.mu.Lock()
			h.latest = snapshot
			for _, client := range h.clients {
				select {
				case client.send <- snapshot:
				default:
					log.Printf("spectator: client %d send buffer full, dropping snapshot", client.ID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues snapshot for delivery to every connected spectator.
func (h *Hub) Broadcast(snapshot Snapshot) {
	h.broadcast <- snapshot
}

// ServeWS upgrades r to a websocket connection and registers it as a new
// spectator.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectator: upgrade error: %v", err)
		return
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.mu.Unlock()

	client := &Client{ID: id, conn: conn, send: make(chan Snapshot, 16), hub: h}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump only exists to notice the connection closing - spectators never
// send anything the hub acts on.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case snapshot, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(snapshot); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
