package stream

import (
	"context"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// Handler receives what a Subscriber reads.
type Handler interface {
	// OnMessage is called for every text or binary message, in arrival order.
	OnMessage(data []byte)
	// OnDisconnect is called whenever the feed is unavailable: after a
	// connection ends, and after a failed dial.
	OnDisconnect(err error)
}

// Subscriber reads a websocket feed and redials after disconnects until its
// context is cancelled.
type Subscriber struct {
	URL            string
	ReconnectDelay time.Duration
	Dialer         *websocket.Dialer
}

// NewSubscriber creates a Subscriber for url.
func NewSubscriber(url string, reconnectDelay time.Duration) *Subscriber {
	return &Subscriber{
		URL:            url,
		ReconnectDelay: reconnectDelay,
		Dialer:         websocket.DefaultDialer,
	}
}

// Run connects and delivers messages to h. It returns ctx.Err() once ctx is done.
func (s *Subscriber) Run(ctx context.Context, h Handler) error {
	for {
		err := s.session(ctx, h)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		h.OnDisconnect(err)
		log.Printf("frame source %s unavailable (%v), retrying in %s", s.URL, err, s.ReconnectDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.ReconnectDelay):
		}
	}
}

// session runs one connection to completion.
func (s *Subscriber) session(ctx context.Context, h Handler) error {
	conn, _, err := s.Dialer.DialContext(ctx, s.URL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("connected to frame source %s", s.URL)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		h.OnMessage(data)
	}
}
