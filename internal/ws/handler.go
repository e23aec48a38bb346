package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler upgrades requests to websocket connections on the hub. It is a
// plain http.Handler so the router can mount it through an adaptor.
type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.hub == nil {
		http.Error(w, "event stream unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("[WS] upgrade error | error=%v", err)
		return
	}

	client := NewClient(h.hub, conn)
	if !h.hub.Register(client) {
		_ = conn.Close()
		return
	}
	go client.WritePump()
	go client.ReadPump()
}
