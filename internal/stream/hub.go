package stream

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"autopoiesis/internal/logx"
)

const (
	writeWait    = 10 * time.Second
	publishWait  = time.Second
	queuedFrames = 16
)

var (
	// ErrHubClosed is returned when publishing to a closed hub.
	ErrHubClosed = errors.New("stream: hub closed")
	// ErrQueueFull is returned when frames back up faster than they are sent.
	ErrQueueFull = errors.New("stream: frame queue full")
)

// Hub fans encoded frames out to websocket clients. New clients immediately
// receive the most recent frame. A single goroutine owns the client set and
// does every write.
type Hub struct {
	log      logx.Logger
	upgrader websocket.Upgrader

	clients    map[*websocket.Conn]struct{}
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once

	mu     sync.RWMutex
	latest []byte
	count  int
}

// NewHub starts a hub. A nil logger discards output.
func NewHub(log logx.Logger) *Hub {
	if log == nil {
		log = logx.NewNoOp()
	}
	h := &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients:    make(map[*websocket.Conn]struct{}),
		broadcast:  make(chan []byte, queuedFrames),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
	}
	h.wg.Add(1)
	go h.run()
	return h
}

// Publish encodes f and queues it for every client.
func (h *Hub) Publish(ctx context.Context, f Frame) error {
	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}
	data, err := f.JSON()
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.latest = data
	h.mu.Unlock()

	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishWait):
		return ErrQueueFull
	}
}

// Latest returns the most recently published frame, or nil.
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Clients reports how many websocket clients are attached.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// ServeWS upgrades the request and keeps the connection registered until the
// client goes away. Anything the client sends is discarded.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("websocket upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case <-h.done:
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.setCount()
			return

		case conn := <-h.register:
			h.clients[conn] = struct{}{}
			h.setCount()
			h.log.Debugf("client %s attached (%d total)", conn.RemoteAddr(), len(h.clients))
			if latest := h.Latest(); latest != nil {
				h.write(conn, latest)
			}

		case conn := <-h.unregister:
			h.drop(conn)

		case data := <-h.broadcast:
			for conn := range h.clients {
				h.write(conn, data)
			}
		}
	}
}

func (h *Hub) write(conn *websocket.Conn, data []byte) {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err == nil {
		err = conn.WriteMessage(websocket.TextMessage, data)
		if err == nil {
			return
		}
		h.log.Infof("dropping client %s: %v", conn.RemoteAddr(), err)
	}
	h.drop(conn)
}

func (h *Hub) drop(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; !ok {
		return
	}
	delete(h.clients, conn)
	conn.Close()
	h.setCount()
	h.log.Debugf("client %s detached (%d total)", conn.RemoteAddr(), len(h.clients))
}

func (h *Hub) setCount() {
	h.mu.Lock()
	h.count = len(h.clients)
	h.mu.Unlock()
}

// Close disconnects every client and stops the hub.
func (h *Hub) Close() error {
	h.closeOnce.Do(func() { close(h.done) })
	h.wg.Wait()
	return nil
}
