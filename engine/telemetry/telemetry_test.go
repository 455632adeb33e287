package telemetry

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-grass/engine/world"
	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPublishReachesViewer(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h)
	defer srv.Close()
	defer h.Close()

	conn := dial(t, srv)
	defer conn.Close()
	waitFor(t, func() bool { return h.Clients() == 1 })

	h.Publish(world.Snapshot{SimTime: 1234, Mode: "auto", Glare: 0.2, GlareVisible: true})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got world.Snapshot
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.SimTime != 1234 || got.Mode != "auto" || !got.GlareVisible {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestPublishWithoutViewersDoesNotBlock(t *testing.T) {
	h := NewHub()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			h.Publish(world.Snapshot{SimTime: float64(i)})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}

func TestPublishDropsOldestForSlowViewer(t *testing.T) {
	h := &hub{clients: make(map[*client]struct{})}
	c := &client{send: make(chan world.Snapshot, queueSize), done: make(chan struct{})}
	h.clients[c] = struct{}{}

	for i := 0; i < queueSize+3; i++ {
		h.Publish(world.Snapshot{SimTime: float64(i)})
	}
	if got := h.Dropped(); got != 3 {
		t.Errorf("dropped = %d, want 3", got)
	}
	if first := <-c.send; first.SimTime != 3 {
		t.Errorf("oldest queued = %v, want 3", first.SimTime)
	}
}

func TestViewerDisconnectIsRemoved(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dial(t, srv)
	waitFor(t, func() bool { return h.Clients() == 1 })
	conn.Close()
	waitFor(t, func() bool { return h.Clients() == 0 })
}
