// Package bridge delivers maze updates from a websocket feed to the render
// loop's intake channel.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazeview/model"
)

// Parse reads one wire frame. It reports false for events other than
// model.EventMaze.
func Parse(raw []byte) (model.Payload, bool, error) {
	var env model.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return model.Payload{}, false, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Event != model.EventMaze {
		return model.Payload{}, false, nil
	}
	return env.Payload, true, nil
}

// Client reads a feed and forwards its payloads, reconnecting on failure.
type Client struct {
	URL        string
	RetryDelay time.Duration
	Dialer     *websocket.Dialer
	log        *log.Entry
}

func NewClient(url string, retry time.Duration) *Client {
	return &Client{
		URL:        url,
		RetryDelay: retry,
		Dialer:     websocket.DefaultDialer,
		log:        log.WithField("feed", url),
	}
}

// Run forwards payloads to out until ctx ends.
func (c *Client) Run(ctx context.Context, out chan<- model.Payload) error {
	for {
		err := c.session(ctx, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warnf("feed session ended: %v", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.RetryDelay):
		}
	}
}

func (c *Client) session(ctx context.Context, out chan<- model.Payload) error {
	conn, _, err := c.Dialer.DialContext(ctx, c.URL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()
	c.log.Info("feed connected")

	// unblock the reader when ctx ends
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	received := 0
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read after %d payloads: %w", received, err)
		}
		p, ok, err := Parse(raw)
		if err != nil {
			c.log.Warnf("skipping frame: %v", err)
			continue
		}
		if !ok {
			continue
		}
		select {
		case out <- p:
			received++
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
