package board

import (
	"encoding/json"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// NetworkSession is the transport a session speaks over: ordered, reliable,
// per-connection delivery. The concrete implementation wraps a gorilla
// websocket; tests substitute a mock.
type NetworkSession interface {
	Close(reason string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

// session is one connected participant. Its identity (user) and room
// membership are owned by the hub goroutine; the pumps only move bytes.
type session struct {
	id      string
	user    Participant
	room    string // "" while Connected but not in any room
	socket  NetworkSession
	outbox  chan []byte
	pings   chan struct{}
	limiter *rate.Limiter
	hub     *Hub
}

func newSession(socket NetworkSession, hub *Hub) *session {
	id := uuid.NewString()
	name, color := RandomIdentity()
	return &session{
		id: id,
		user: Participant{
			ID:    id,
			Name:  name,
			Color: color,
		},
		socket:  socket,
		outbox:  make(chan []byte, 256),
		pings:   make(chan struct{}, 1),
		limiter: rate.NewLimiter(200, 400),
		hub:     hub,
	}
}

// ReadPump decodes inbound frames and forwards them to the hub until the
// connection dies, then detaches the session. Frames beyond the rate budget
// and frames that do not parse are dropped without an error reply.
func (s *session) ReadPump() {
	defer s.hub.Detach(s)

	for {
		data, err := s.socket.Read()
		if err != nil {
			break
		}
		if !s.limiter.Allow() {
			continue
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		s.hub.deliver(envelope{from: s, msg: msg})
	}
}

func (s *session) WritePump() {
loop:
	for {
		select {
		case data, ok := <-s.outbox:
			if !ok {
				break loop
			}
			if err := s.socket.Write(data); err != nil {
				break loop
			}
		case _, ok := <-s.pings:
			if !ok {
				break loop
			}
			if err := s.socket.Ping(); err != nil {
				break loop
			}
		}
	}
	s.socket.Close("")
}

// send queues an outbound frame without blocking the hub; a session whose
// buffer is full loses the frame.
func (s *session) send(data []byte) {
	if data == nil {
		return
	}
	select {
	case s.outbox <- data:
	default:
	}
}

func (s *session) requestPing() {
	select {
	case s.pings <- struct{}{}:
	default:
	}
}
