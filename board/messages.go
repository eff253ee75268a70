package board

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/WahpiTrex/Draw2Gather/drawing"
	"github.com/WahpiTrex/Draw2Gather/geometry"
)

// Client -> server events.
const (
	EventGetRooms    = "get-rooms"
	EventJoinRoom    = "join-room"
	EventDraw        = "draw"
	EventCursorMove  = "cursor-move"
	EventClearCanvas = "clear-canvas"
	EventLeaveRoom   = "leave-room"
)

// Server -> client events.
const (
	EventRoomList      = "room-list"
	EventLoadDrawings  = "load-drawings"
	EventUserList      = "user-list"
	EventUserJoined    = "user-joined"
	EventCursorUpdate  = "cursor-update"
	EventCanvasCleared = "canvas-cleared"
	EventUserLeft      = "user-left"
)

// clientMessage is the envelope every client frame arrives in. Data stays
// raw until the event-specific handler decodes it.
type clientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type joinRoomPayload struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name,omitempty"`
}

// cursorUpdatePayload is the presence broadcast sent to the other members
// of a room on every cursor move.
type cursorUpdatePayload struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Color  drawing.RGB    `json:"color"`
	Cursor geometry.Point `json:"cursor"`
}

type serverMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

func encode(event string, data any) []byte {
	raw, err := json.Marshal(serverMessage{Event: event, Data: data})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("encoding outbound message")
		return nil
	}
	return raw
}
