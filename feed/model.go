package feed

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tanema/gween"
	"github.com/zucenko/mazeview/model"
)

// HubConfig sizes the generated maze and paces the bots. A non-nil Layout
// pins the maze: it is served as drawn and never regenerated.
type HubConfig struct {
	Width, Height int
	Bots          int
	Tick          time.Duration
	Step          time.Duration
	Layout        *Layout
	Seed          int64
}

// Hub owns the maze, its bots and every subscriber. All of it is touched
// only by the Run goroutine.
type Hub struct {
	State HubState

	cfg     HubConfig
	rand    *rand.Rand
	maze    model.Maze
	encoded []int64
	epoch   int
	bots    []*bot
	tweens  map[*gween.Tween]*Action

	subscribers       map[uuid.UUID]*Subscriber
	SubscribeRequests chan SubscribeRequest
	unsubscribe       chan uuid.UUID
	done              chan struct{}
	Upgrader          *websocket.Upgrader
}

type HubState int

const (
	HS_NEW HubState = iota
	HS_RUN
	HS_OVER
)

type SubscriberState int

const (
	SS_NEW SubscriberState = iota + 1
	SS_LIVE
	SS_OVER
	SS_ERR
)

type Subscriber struct {
	State SubscriberState
	Id    uuid.UUID
	Conn  *websocket.Conn
	Done  chan struct{}

	MessagesToSend chan model.Envelope

	DebugOutMessages int
	DebugDropped     int
	DebugLastPing    time.Time
	DebugPings       int
}

type SubscribeRequest struct {
	Conn *websocket.Conn
	Done chan struct{}
}

type bot struct {
	name  string
	color string
	at    Point
	x, y  float64
}
