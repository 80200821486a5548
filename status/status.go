package status

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	INFO = iota
	ERROR
)

const (
	pingPeriod   = time.Second * 30
	writeTimeout = time.Second * 40
	clientQueue  = 32
)

type Message struct {
	Message string
	Time    time.Time
	Type    int
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans status messages out to websocket clients.
type Hub struct {
	lock        sync.Mutex
	clients     map[*client]bool
	lastMessage []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]bool)}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}

// readPump drains control frames and notices the peer going away.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

// Attach registers conn and starts its pumps. The last broadcast message,
// if any, is sent first.
func (h *Hub) Attach(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, clientQueue)}

	h.lock.Lock()
	h.clients[c] = true
	if h.lastMessage != nil {
		c.send <- h.lastMessage
	}
	h.lock.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) unregister(c *client) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

// ClientsCount is mostly useful for tests.
func (h *Hub) ClientsCount() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.clients)
}

// Last returns the last broadcast message or nil.
func (h *Hub) Last() *Message {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.lastMessage == nil {
		return nil
	}
	var m Message
	if err := json.Unmarshal(h.lastMessage, &m); err != nil {
		return nil
	}
	return &m
}

func (h *Hub) Status(msg string, _type int) {
	data, err := json.Marshal(&Message{
		Message: msg,
		Time:    time.Now(),
		Type:    _type,
	})
	if err != nil {
		panic(err)
	}

	h.lock.Lock()
	defer h.lock.Unlock()
	h.lastMessage = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Printf("[status] client queue is full, dropping message")
		}
	}
}

func (h *Hub) Info(format string, a ...interface{}) {
	h.Status(fmt.Sprintf(format, a...), INFO)
}

func (h *Hub) Error(format string, a ...interface{}) {
	h.Status(fmt.Sprintf(format, a...), ERROR)
}
