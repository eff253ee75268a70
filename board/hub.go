package board

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const pingInterval = 30 * time.Second

// TickerCreator abstracts time.Ticker so the hub loop stays deterministic
// under test.
type TickerCreator interface {
	Create(d time.Duration) <-chan time.Time
}

type tickerGen struct{}

func (tickerGen) Create(d time.Duration) <-chan time.Time {
	return time.NewTicker(d).C
}

func NewTickerGen() TickerCreator {
	return tickerGen{}
}

type envelope struct {
	from *session
	msg  clientMessage
}

type attachRequest struct {
	s    *session
	done chan struct{}
}

// Hub is the broadcast engine: a single goroutine that owns the Registry
// and every session's protocol state. Each inbound message is handled to
// completion (registry mutation plus send-task dispatch) before the next
// one, so within a room the broadcast order of draw ops equals their append
// order. Sends never block the loop; they go through each session's
// buffered outbox.
type Hub struct {
	registry *Registry
	sessions map[string]*session

	inbox    chan envelope
	attach   chan attachRequest
	detach   chan *session
	roomsReq chan chan []RoomInfo

	tickers TickerCreator
}

func NewHub(tickers TickerCreator) *Hub {
	return &Hub{
		registry: NewRegistry(),
		sessions: make(map[string]*session),
		inbox:    make(chan envelope, 1024),
		attach:   make(chan attachRequest),
		detach:   make(chan *session, 64),
		roomsReq: make(chan chan []RoomInfo, 64),
		tickers:  tickers,
	}
}

// Run is the hub actor. It closes started once the loop is receiving.
func (h *Hub) Run(started chan struct{}) {
	pingTicker := h.tickers.Create(pingInterval)

	close(started)

	for {
		select {
		case env := <-h.inbox:
			h.dispatch(h.handleMessage(env.from, env.msg))

		case req := <-h.attach:
			h.sessions[req.s.id] = req.s
			close(req.done)
			log.Info().Str("conn", req.s.id).Str("name", req.s.user.Name).Msg("user connected")

		case s := <-h.detach:
			h.handleDetach(s)

		case req := <-h.roomsReq:
			req <- h.registry.Rooms()

		case <-pingTicker:
			for _, s := range h.sessions {
				s.requestPing()
			}
		}
	}
}

// Attach hands a new connection to the hub loop and returns once the hub
// knows it. The pumps only start afterwards, so the session cannot deliver
// a message before it is attached.
func (h *Hub) Attach(s *session) {
	req := attachRequest{s: s, done: make(chan struct{})}
	h.attach <- req
	<-req.done
}

// Detach is called by a dying read pump; it runs the leave sequence and
// forgets the session.
func (h *Hub) Detach(s *session) {
	h.detach <- s
}

// RoomList answers the REST room listing from any goroutine.
func (h *Hub) RoomList(ctx context.Context) []RoomInfo {
	resp := make(chan []RoomInfo, 1)
	select {
	case h.roomsReq <- resp:
		select {
		case infos := <-resp:
			return infos
		case <-ctx.Done():
			return nil
		}
	case <-ctx.Done():
		return nil
	}
}

func (h *Hub) deliver(env envelope) {
	h.inbox <- env
}

func (h *Hub) handleDetach(s *session) {
	if _, known := h.sessions[s.id]; !known {
		return
	}
	h.dispatch(h.handleLeaveRoom(s))
	delete(h.sessions, s.id)
	close(s.outbox)
	close(s.pings)
	log.Info().Str("conn", s.id).Str("name", s.user.Name).Msg("user disconnected")
}

func (h *Hub) dispatch(tasks []sendTask) {
	for _, task := range tasks {
		if task.to == nil {
			continue
		}
		task.to.send(task.data)
	}
}
