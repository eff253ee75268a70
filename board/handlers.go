package board

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Non-browser clients send no Origin header; only a
				// present-but-foreign origin is refused.
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

// ConnectHandler upgrades the request and starts a session in the Connected
// state; room membership only begins with a join-room event.
func (h *Handler) ConnectHandler(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("ip", ctx.ClientIP()).Msg("ws upgrade failed")
		return
	}

	socket := NewWebsocketConnection(conn)
	s := newSession(&socket, h.hub)
	h.hub.Attach(s)
	go s.ReadPump()
	go s.WritePump()
}

// RoomListHandler is the REST mirror of the get-rooms socket event.
func (h *Handler) RoomListHandler(ctx *gin.Context) {
	infos := h.hub.RoomList(ctx.Request.Context())
	if infos == nil {
		infos = []RoomInfo{}
	}
	ctx.JSON(http.StatusOK, infos)
}
