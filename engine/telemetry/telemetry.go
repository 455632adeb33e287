// Package telemetry streams world snapshots to websocket viewers.
package telemetry

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-grass/engine/world"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 2 * time.Second
	// queueSize bounds the snapshots held per viewer; older ones are dropped first.
	queueSize = 4
)

// Hub fans world snapshots out to connected websocket viewers.
type Hub interface {
	// Publish queues a snapshot for every viewer without blocking.
	// A viewer whose queue is full loses its oldest snapshot.
	//
	// Parameters:
	//   - s: the snapshot to send
	Publish(s world.Snapshot)

	// ServeHTTP upgrades the request to a websocket and streams snapshots until the viewer leaves.
	ServeHTTP(w http.ResponseWriter, r *http.Request)

	// Clients returns the number of connected viewers.
	Clients() int

	// Dropped returns how many queued snapshots were discarded for slow viewers.
	Dropped() uint64

	// ListenAndServe serves the hub at /ws on addr until ctx is cancelled.
	//
	// Parameters:
	//   - ctx: cancelling it shuts the server down
	//   - addr: the listen address (e.g. "localhost:8090")
	//
	// Returns:
	//   - error: error if the listener could not be opened
	ListenAndServe(ctx context.Context, addr string) error

	// Close disconnects every viewer.
	Close()
}

type client struct {
	conn *websocket.Conn
	send chan world.Snapshot
	done chan struct{}
}

type hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	dropped  atomic.Uint64
}

var _ Hub = &hub{}

// NewHub creates an empty hub.
//
// Parameters:
//   - options: functional options for the hub
//
// Returns:
//   - Hub: the hub
func NewHub(options ...HubBuilderOption) Hub {
	h := &hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

func (h *hub) Publish(s world.Snapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- s:
			continue
		default:
		}
		// full: drop the oldest and retry once
		select {
		case <-c.send:
			h.dropped.Add(1)
		default:
		}
		select {
		case c.send <- s:
		default:
		}
	}
}

func (h *hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Telemetry] websocket upgrade error: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan world.Snapshot, queueSize),
		done: make(chan struct{}),
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("[Telemetry] viewer connected from %s (%d total)", r.RemoteAddr, n)

	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop discards viewer messages and returns once the connection closes.
func (h *hub) readLoop(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *hub) writeLoop(c *client) {
	for {
		select {
		case <-c.done:
			return
		case s := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(s); err != nil {
				h.remove(c)
				return
			}
		}
	}
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()

	close(c.done)
	c.conn.Close()
	log.Printf("[Telemetry] viewer disconnected (%d remaining)", n)
}

func (h *hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *hub) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *hub) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		h.Close()
		_ = srv.Close()
	}()
	go func() {
		log.Printf("[Telemetry] serving snapshots on ws://%s/ws", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Telemetry] server stopped: %v", err)
		}
	}()
	return nil
}

func (h *hub) Close() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()
	for _, c := range clients {
		h.remove(c)
	}
}
