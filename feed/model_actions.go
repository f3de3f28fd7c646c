package feed

import (
	"context"
	"encoding/json"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/mazeview/model"
)

// NewHub builds the first maze and places the bots. Nothing moves until Run.
func NewHub(cfg HubConfig) *Hub {
	if cfg.Tick <= 0 {
		cfg.Tick = 50 * time.Millisecond
	}
	if cfg.Step <= 0 {
		cfg.Step = 400 * time.Millisecond
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h := &Hub{
		State:             HS_NEW,
		cfg:               cfg,
		rand:              rand.New(rand.NewSource(seed)),
		tweens:            make(map[*gween.Tween]*Action),
		subscribers:       make(map[uuid.UUID]*Subscriber),
		SubscribeRequests: make(chan SubscribeRequest),
		unsubscribe:       make(chan uuid.UUID),
		done:              make(chan struct{}),
		Upgrader:          &websocket.Upgrader{},
	}
	if cfg.Layout != nil {
		h.setMaze(cfg.Layout.Maze)
	} else {
		h.setMaze(Generate(cfg.Width, cfg.Height, h.rand))
	}
	h.spawnBots()
	for _, b := range h.bots {
		h.walk(b)
	}
	return h
}

// HandleHttpCall upgrades the request to a websocket, hands it to the hub
// and blocks until the subscription ends.
func (h *Hub) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received from %s", r.RemoteAddr)
		select {
		case <-h.done:
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		default:
		}

		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		done := make(chan struct{})
		select {
		case h.SubscribeRequests <- SubscribeRequest{Conn: con, Done: done}:
		case <-time.After(SUBSCRIBE_TIMEOUT):
			log.Warn("SubscribeRequests TIMEOUTED")
			_ = con.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "busy"),
				time.Now().Add(WRITE_TIMEOUT))
			return
		case <-h.done:
			return
		}
		<-done
	}
}

// Run drives the bots and fans updates out until ctx ends.
func (h *Hub) Run(ctx context.Context) error {
	log.Printf("Hub.Run starting, maze %dx%d, %d bots", h.maze.Width, h.maze.Height, len(h.bots))
	ticker := time.NewTicker(h.cfg.Tick)
	defer ticker.Stop()
	defer h.shutdown()
	h.State = HS_RUN
	dt := float32(h.cfg.Tick.Seconds())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-h.SubscribeRequests:
			h.subscribe(req)
		case id := <-h.unsubscribe:
			if s, ok := h.subscribers[id]; ok {
				h.drop(s, SS_OVER)
			}
		case <-ticker.C:
			h.runTweens(dt)
			h.broadcast(h.playersEnvelope(), false)
		}
	}
}

func (h *Hub) shutdown() {
	h.State = HS_OVER
	close(h.done)
	for _, s := range h.subscribers {
		h.drop(s, SS_OVER)
	}
	log.Printf("Hub.Run ended")
}

func (h *Hub) subscribe(req SubscribeRequest) {
	s := &Subscriber{
		State:          SS_NEW,
		Id:             uuid.New(),
		Conn:           req.Conn,
		Done:           req.Done,
		MessagesToSend: make(chan model.Envelope, SEND_BUFFER),
	}
	conn := req.Conn
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(WRITE_TIMEOUT))
			s.DebugLastPing = time.Now()
			s.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	h.subscribers[s.Id] = s
	s.MessagesToSend <- h.fullEnvelope()
	s.State = SS_LIVE
	go s.LoopChannelRead(h)
	go s.LoopChannelWrite()
	log.WithField("subscriber", s.Id).Infof("subscribed, %d live", len(h.subscribers))
}

// drop forgets s and lets its writer finish.
func (h *Hub) drop(s *Subscriber, state SubscriberState) {
	delete(h.subscribers, s.Id)
	s.State = state
	close(s.MessagesToSend)
	log.WithField("subscriber", s.Id).Infof("unsubscribed %s, %d live", state.Name(), len(h.subscribers))
}

// broadcast queues env for every subscriber. A full queue drops the frame,
// unless the frame must arrive, in which case the subscriber is cut off and
// gets the whole state again when it reconnects.
func (h *Hub) broadcast(env model.Envelope, mustArrive bool) {
	for _, s := range h.subscribers {
		select {
		case s.MessagesToSend <- env:
		default:
			if mustArrive {
				log.WithField("subscriber", s.Id).Warn("queue full, disconnecting")
				h.drop(s, SS_ERR)
				_ = s.Conn.Close()
				continue
			}
			s.DebugDropped++
			log.WithField("subscriber", s.Id).Debugf("Dropping Data, queue full (%d dropped)", s.DebugDropped)
		}
	}
}

// LoopChannelRead only watches the connection; viewers have nothing to say.
func (s *Subscriber) LoopChannelRead(h *Hub) {
	for {
		if _, _, err := s.Conn.NextReader(); err != nil {
			log.WithField("subscriber", s.Id).Debugf("LoopChannelRead ended: %v", err)
			break
		}
	}
	select {
	case h.unsubscribe <- s.Id:
	case <-h.done:
	}
}

// this function only consumes. no worries about full buffer stuck
func (s *Subscriber) LoopChannelWrite() {
	defer close(s.Done)
	failed := false
	for mes := range s.MessagesToSend {
		if failed {
			continue
		}
		if err := s.write(mes); err != nil {
			log.WithField("subscriber", s.Id).Warnf("LoopChannelWrite cant write %v", err)
			failed = true
			_ = s.Conn.Close()
			continue
		}
		s.DebugOutMessages++
	}
	if !failed {
		_ = s.Conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(WRITE_TIMEOUT))
	}
}

func (s *Subscriber) write(mes model.Envelope) error {
	if err := s.Conn.SetWriteDeadline(time.Now().Add(WRITE_TIMEOUT)); err != nil {
		return err
	}
	w, err := s.Conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(w).Encode(mes); err != nil {
		return err
	}
	return w.Close()
}
