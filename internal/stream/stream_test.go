package stream

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 5*time.Millisecond)
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub("test")
	ts := httptest.NewServer(hub)
	defer ts.Close()
	defer hub.Close()

	c1 := dial(t, ts)
	c2 := dial(t, ts)
	waitFor(t, func() bool { return hub.Len() == 2 })

	require.NoError(t, hub.Broadcast([]byte(`{"n":1}`)))

	for i, c := range []*websocket.Conn{c1, c2} {
		c.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := c.ReadMessage()
		require.NoError(t, err, "client %d", i)
		assert.Equal(t, `{"n":1}`, string(msg), "client %d", i)
	}

	c1.Close()
	waitFor(t, func() bool { return hub.Len() == 1 })
}

func TestHub_Close(t *testing.T) {
	hub := NewHub("test")
	ts := httptest.NewServer(hub)
	defer ts.Close()

	hub.Close()
	hub.Close()

	assert.ErrorIs(t, hub.Broadcast([]byte("x")), ErrClosed)
	_, _, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	assert.Error(t, err, "dialing a closed hub fails")
}

type recorder struct {
	mu          sync.Mutex
	messages    []string
	disconnects int
}

func (r *recorder) OnMessage(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, string(data))
}

func (r *recorder) OnDisconnect(error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disconnects++
}

func (r *recorder) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages), r.disconnects
}

func TestSubscriber_ReceivesAndReconnects(t *testing.T) {
	hub := NewHub("feed")
	ts := httptest.NewServer(hub)
	defer ts.Close()

	sub := NewSubscriber(wsURL(ts), 20*time.Millisecond)
	rec := &recorder{}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- sub.Run(ctx, rec) }()

	waitFor(t, func() bool { return hub.Len() == 1 })
	hub.Broadcast([]byte("one"))
	hub.Broadcast([]byte("two"))
	waitFor(t, func() bool { n, _ := rec.counts(); return n == 2 })

	// Dropping the server side connection triggers a disconnect and a redial.
	hub.mu.RLock()
	for conn := range hub.clients {
		conn.Close()
	}
	hub.mu.RUnlock()

	waitFor(t, func() bool { _, d := rec.counts(); return d >= 1 })

	// The stale client may still be registered for a moment; keep sending
	// until the redialed connection picks a message up.
	waitFor(t, func() bool {
		hub.Broadcast([]byte("three"))
		n, _ := rec.counts()
		return n >= 3
	})

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"one", "two", "three"}, rec.messages[:3])
}

func TestSubscriber_DialFailureReportsDisconnect(t *testing.T) {
	sub := NewSubscriber("ws://127.0.0.1:1/unreachable", 10*time.Millisecond)
	rec := &recorder{}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, sub.Run(ctx, rec), context.DeadlineExceeded)
	_, d := rec.counts()
	assert.Positive(t, d, "an unreachable source reports disconnects")
}
