package board

import (
	"time"

	"github.com/WahpiTrex/Draw2Gather/drawing"
	"github.com/WahpiTrex/Draw2Gather/geometry"
)

// Room log memory bound: past logCap ops the log is cut back to the most
// recent logRetain. Clients that joined earlier keep their fuller history
// locally; new joiners only receive the retained tail. Accepted lossy
// behavior, not a consistency guarantee.
const (
	logCap    = 10000
	logRetain = 8000
)

// Participant is one connected user as the room sees them.
type Participant struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Color  drawing.RGB    `json:"color"`
	Cursor geometry.Point `json:"cursor"`
}

// RoomInfo is the public description of a room for the room list.
type RoomInfo struct {
	ID        string `json:"id"`
	UserCount int    `json:"userCount"`
}

// Snapshot is what a joiner gets back: the ordered participant list and a
// copy of the full drawing log at the moment of join.
type Snapshot struct {
	Participants []Participant
	Ops          []drawing.Op
}

// Departure reports the room a connection left and who remains in it.
// Remaining is empty when the room was deleted.
type Departure struct {
	RoomID    string
	Remaining []Participant
}

type room struct {
	id        string
	order     []string // connection ids in join order
	users     map[string]Participant
	log       []drawing.Op
	createdAt time.Time
}

// Registry is the single source of truth for room membership and drawing
// history. It is not safe for concurrent use: all mutations run on the hub
// goroutine, which is what gives every room one total append order.
type Registry struct {
	rooms  map[string]*room
	byConn map[string]string // connection id -> room id
	now    func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]*room),
		byConn: make(map[string]string),
		now:    time.Now,
	}
}

// Join adds the participant to the room, creating the room if absent, and
// returns the current snapshot. Re-joining a room the connection is already
// in replaces the stored participant without changing its join position.
// The caller is responsible for leaving any previous room first.
func (g *Registry) Join(roomID, connID string, p Participant) Snapshot {
	r, ok := g.rooms[roomID]
	if !ok {
		r = &room{
			id:        roomID,
			users:     make(map[string]Participant),
			createdAt: g.now(),
		}
		g.rooms[roomID] = r
	}

	if _, member := r.users[connID]; !member {
		r.order = append(r.order, connID)
	}
	r.users[connID] = p
	g.byConn[connID] = roomID

	return Snapshot{
		Participants: r.participants(),
		Ops:          append([]drawing.Op{}, r.log...),
	}
}

// Leave removes the connection from whichever room holds it and deletes the
// room when it becomes empty. ok is false if the connection was not in any
// room.
func (g *Registry) Leave(connID string) (Departure, bool) {
	roomID, ok := g.byConn[connID]
	if !ok {
		return Departure{}, false
	}
	delete(g.byConn, connID)

	r := g.rooms[roomID]
	delete(r.users, connID)
	for i, id := range r.order {
		if id == connID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	if len(r.users) == 0 {
		delete(g.rooms, roomID)
		return Departure{RoomID: roomID}, true
	}
	return Departure{RoomID: roomID, Remaining: r.participants()}, true
}

// Append adds an op to the room's log, truncating the oldest entries once
// the log outgrows its cap.
func (g *Registry) Append(roomID string, op drawing.Op) error {
	r, ok := g.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	if len(r.log) >= logCap {
		r.log = append([]drawing.Op(nil), r.log[len(r.log)-logRetain:]...)
	}
	r.log = append(r.log, op)
	return nil
}

// Clear resets the room's log to empty.
func (g *Registry) Clear(roomID string) error {
	r, ok := g.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	r.log = nil
	return nil
}

// UpdateCursor stores the participant's latest cursor position. Cursor
// state is ephemeral: it never touches the log and dies with the
// connection.
func (g *Registry) UpdateCursor(connID string, cursor geometry.Point) bool {
	roomID, ok := g.byConn[connID]
	if !ok {
		return false
	}
	r := g.rooms[roomID]
	p := r.users[connID]
	p.Cursor = cursor
	r.users[connID] = p
	return true
}

// Participants returns the room's members in join order.
func (g *Registry) Participants(roomID string) []Participant {
	r, ok := g.rooms[roomID]
	if !ok {
		return nil
	}
	return r.participants()
}

// RoomOf reports which room a connection currently occupies.
func (g *Registry) RoomOf(connID string) (string, bool) {
	roomID, ok := g.byConn[connID]
	return roomID, ok
}

// Rooms lists every room with its participant count.
func (g *Registry) Rooms() []RoomInfo {
	infos := make([]RoomInfo, 0, len(g.rooms))
	for id, r := range g.rooms {
		infos = append(infos, RoomInfo{ID: id, UserCount: len(r.users)})
	}
	return infos
}

func (r *room) participants() []Participant {
	list := make([]Participant, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.users[id])
	}
	return list
}
