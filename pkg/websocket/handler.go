package websocket

import (
	"github.com/gin-gonic/gin"

	"swiftaid/internal/repositories/interfaces"
	"swiftaid/pkg/logger"
)

type Handler struct {
	hub *Hub
	log *logger.Logger
}

func NewHandler(ambulanceRepo interfaces.AmbulanceRepository, log *logger.Logger) *Handler {
	hub := NewHub(ambulanceRepo, log)
	go hub.Run()

	return &Handler{
		hub: hub,
		log: log,
	}
}

// HandleWebSocket upgrades the connection and starts the pumps. No identity
// is required at upgrade time; connections announce themselves with an AUTH
// message.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (h *Handler) GetHub() *Hub {
	return h.hub
}
