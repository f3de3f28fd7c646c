package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazeview/model"
)

func TestParse(t *testing.T) {
	t.Run("maze and players", func(t *testing.T) {
		p, ok, err := Parse([]byte(`{"event":"maze","payload":{"maze":[2,1,0,0,1,0,1],"players":[{"x":0.5,"y":0,"color":"#fff","name":"A"}]}}`))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []int64{2, 1, 0, 0, 1, 0, 1}, p.Maze)
		assert.Equal(t, []model.Player{{X: 0.5, Y: 0, Color: "#fff", Name: "A"}}, p.Players)
	})

	t.Run("absent fields", func(t *testing.T) {
		p, ok, err := Parse([]byte(`{"event":"maze","payload":{"maze":null}}`))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Nil(t, p.Maze)
		assert.Nil(t, p.Players)
	})

	t.Run("empty player list is present", func(t *testing.T) {
		p, _, err := Parse([]byte(`{"event":"maze","payload":{"players":[]}}`))
		require.NoError(t, err)
		assert.NotNil(t, p.Players)
		assert.Empty(t, p.Players)
	})

	t.Run("other events", func(t *testing.T) {
		_, ok, err := Parse([]byte(`{"event":"chat","payload":{"maze":[1]}}`))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed", func(t *testing.T) {
		_, _, err := Parse([]byte(`{"event":`))
		assert.Error(t, err)
	})
}

func feedServer(t *testing.T, frames ...string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		// hold the connection until the client leaves
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClientForwardsMazeEvents(t *testing.T) {
	srv := feedServer(t,
		`{"event":"maze","payload":{"maze":[2,2,0,0,1,1]}}`,
		`{"event":"presence","payload":{}}`,
		`not json`,
		`{"event":"maze","payload":{"players":[{"x":1,"y":1,"color":"red","name":"B"}]}}`,
	)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out := make(chan model.Payload)
	c := NewClient(wsURL(srv), 10*time.Millisecond)
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, out) }()

	first := <-out
	assert.Equal(t, []int64{2, 2, 0, 0, 1, 1}, first.Maze)
	assert.Nil(t, first.Players)

	second := <-out
	assert.Nil(t, second.Maze)
	require.Len(t, second.Players, 1)
	assert.Equal(t, "B", second.Players[0].Name)

	cancel()
	assert.Equal(t, context.Canceled, <-done)
}

func TestClientReconnects(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"maze","payload":{"maze":[1,1,0,0,0,0]}}`))
		conn.Close()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out := make(chan model.Payload)
	c := NewClient(wsURL(srv), time.Millisecond)
	go c.Run(ctx, out)

	for i := 0; i < 3; i++ {
		select {
		case p := <-out:
			assert.Equal(t, []int64{1, 1, 0, 0, 0, 0}, p.Maze)
		case <-ctx.Done():
			t.Fatal("no payload after reconnect")
		}
	}
}
