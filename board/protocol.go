package board

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/WahpiTrex/Draw2Gather/drawing"
	"github.com/WahpiTrex/Draw2Gather/geometry"
)

// sendTask is one outbound frame addressed to one session. Handlers return
// task lists instead of writing to sockets, which keeps every protocol
// transition a plain function over registry state.
type sendTask struct {
	to   *session
	data []byte
}

// handleMessage is the per-connection state machine: each client event maps
// to one handler, and events whose precondition does not hold (for example
// draw while not in a room) are ignored rather than answered with an error.
//
// A frame can still be queued in the inbox when its connection's detach is
// serviced. Frames from forgotten sessions are dropped here: handling one
// would re-register the dead connection in the registry, and any reply
// would hit its closed outbox.
func (h *Hub) handleMessage(s *session, msg clientMessage) []sendTask {
	if _, known := h.sessions[s.id]; !known {
		return nil
	}

	switch msg.Event {
	case EventGetRooms:
		return h.handleGetRooms(s)
	case EventJoinRoom:
		return h.handleJoinRoom(s, msg.Data)
	case EventDraw:
		return h.handleDraw(s, msg.Data)
	case EventCursorMove:
		return h.handleCursorMove(s, msg.Data)
	case EventClearCanvas:
		return h.handleClearCanvas(s)
	case EventLeaveRoom:
		return h.handleLeaveRoom(s)
	default:
		log.Debug().Str("event", msg.Event).Msg("unknown client event")
		return nil
	}
}

// handleGetRooms answers from any state; no room membership required.
func (h *Hub) handleGetRooms(s *session) []sendTask {
	return []sendTask{{to: s, data: encode(EventRoomList, h.registry.Rooms())}}
}

func (h *Hub) handleJoinRoom(s *session, data json.RawMessage) []sendTask {
	var payload joinRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.RoomID == "" {
		return nil
	}

	// Never hold membership in two rooms at once.
	var tasks []sendTask
	if s.room != "" {
		tasks = h.handleLeaveRoom(s)
	}

	if payload.Name != "" {
		s.user.Name = payload.Name
	}

	snapshot := h.registry.Join(payload.RoomID, s.id, s.user)
	s.room = payload.RoomID

	// The joiner alone gets the drawing log; everyone, joiner included,
	// gets the refreshed participant list; only the existing members get
	// the join notification.
	tasks = append(tasks, sendTask{to: s, data: encode(EventLoadDrawings, snapshot.Ops)})
	userList := encode(EventUserList, snapshot.Participants)
	joined := encode(EventUserJoined, s.user)
	for _, member := range h.roomSessions(s.room) {
		tasks = append(tasks, sendTask{to: member, data: userList})
		if member != s {
			tasks = append(tasks, sendTask{to: member, data: joined})
		}
	}

	log.Info().Str("room", s.room).Str("name", s.user.Name).Msg("user joined room")
	return tasks
}

func (h *Hub) handleDraw(s *session, data json.RawMessage) []sendTask {
	if s.room == "" {
		return nil
	}

	var op drawing.Op
	if err := json.Unmarshal(data, &op); err != nil {
		return nil
	}
	if err := op.Validate(); err != nil {
		log.Debug().Err(err).Str("conn", s.id).Msg("discarding drawing op")
		return nil
	}
	if err := h.registry.Append(s.room, op); err != nil {
		return nil
	}

	// The issuer already rendered the op locally before transmitting; it
	// must not receive its own op back.
	frame := encode(EventDraw, op)
	var tasks []sendTask
	for _, member := range h.roomSessions(s.room) {
		if member != s {
			tasks = append(tasks, sendTask{to: member, data: frame})
		}
	}
	return tasks
}

func (h *Hub) handleCursorMove(s *session, data json.RawMessage) []sendTask {
	if s.room == "" {
		return nil
	}

	var cursor geometry.Point
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil
	}

	s.user.Cursor = cursor
	h.registry.UpdateCursor(s.id, cursor)

	frame := encode(EventCursorUpdate, cursorUpdatePayload{
		ID:     s.id,
		Name:   s.user.Name,
		Color:  s.user.Color,
		Cursor: cursor,
	})
	var tasks []sendTask
	for _, member := range h.roomSessions(s.room) {
		if member != s {
			tasks = append(tasks, sendTask{to: member, data: frame})
		}
	}
	return tasks
}

func (h *Hub) handleClearCanvas(s *session) []sendTask {
	if s.room == "" {
		return nil
	}
	if err := h.registry.Clear(s.room); err != nil {
		return nil
	}

	// The issuer's own view resets too, so everyone gets this one.
	frame := encode(EventCanvasCleared, nil)
	var tasks []sendTask
	for _, member := range h.roomSessions(s.room) {
		tasks = append(tasks, sendTask{to: member, data: frame})
	}
	return tasks
}

func (h *Hub) handleLeaveRoom(s *session) []sendTask {
	departure, ok := h.registry.Leave(s.id)
	if !ok {
		return nil
	}
	s.room = ""

	if len(departure.Remaining) == 0 {
		log.Info().Str("room", departure.RoomID).Msg("room deleted")
		return nil
	}

	left := encode(EventUserLeft, s.id)
	userList := encode(EventUserList, departure.Remaining)
	var tasks []sendTask
	for _, member := range h.roomSessions(departure.RoomID) {
		tasks = append(tasks, sendTask{to: member, data: left}, sendTask{to: member, data: userList})
	}
	return tasks
}

// roomSessions resolves the room's participants (in join order) to their
// live sessions.
func (h *Hub) roomSessions(roomID string) []*session {
	participants := h.registry.Participants(roomID)
	sessions := make([]*session, 0, len(participants))
	for _, p := range participants {
		if s, ok := h.sessions[p.ID]; ok {
			sessions = append(sessions, s)
		}
	}
	return sessions
}
