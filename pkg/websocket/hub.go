package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"swiftaid/internal/repositories/interfaces"
	"swiftaid/pkg/logger"
)

// Hub owns the registry of live connections and routes inbound messages.
// All message handling happens on the single Run goroutine, so a repository
// mutation always completes before the resulting broadcast goes out, and no
// two inbound messages interleave.
type Hub struct {
	ambulanceRepo interfaces.AmbulanceRepository
	log           *logger.Logger

	mutex   sync.RWMutex
	clients []*Client

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundMessage
}

type inboundMessage struct {
	origin *Client
	data   []byte
}

func NewHub(ambulanceRepo interfaces.AmbulanceRepository, log *logger.Logger) *Hub {
	return &Hub{
		ambulanceRepo: ambulanceRepo,
		log:           log,
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		inbound:       make(chan inboundMessage, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.inbound:
			h.handleMessage(msg.origin, msg.data)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients = append(h.clients, client)
	h.log.WithField("clients", len(h.clients)).Debug("WebSocket client registered")
}

// unregisterClient removes the handle immediately; there is no grace period
// and no buffering of missed messages. Clients resynchronize via the REST
// API after reconnecting.
func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.removeClientLocked(client)
}

func (h *Hub) removeClientLocked(client *Client) {
	for i, c := range h.clients {
		if c == client {
			h.clients = append(h.clients[:i], h.clients[i+1:]...)
			close(client.send)
			h.log.WithField("clients", len(h.clients)).Debug("WebSocket client unregistered")
			return
		}
	}
}

// ClientCount reports the number of live connections.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// handleMessage dispatches one inbound frame. Malformed payloads and
// unrecognized types are dropped without closing the connection.
func (h *Hub) handleMessage(origin *Client, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		h.log.WithError(err).Debug("Dropping malformed realtime message")
		return
	}

	switch msg.Type {
	case MessageAuth:
		if msg.UserID == nil {
			return
		}
		origin.userID = *msg.UserID
		h.log.WithUserID(*msg.UserID).Debug("Connection bound to user")

	case MessageNewEmergency:
		if len(msg.Emergency) == 0 {
			return
		}
		h.broadcastExcept(origin, Message{
			Type:      MessageEmergencyAlert,
			Emergency: msg.Emergency,
		})

	case MessageStatusUpdate:
		if len(msg.Emergency) == 0 {
			return
		}
		h.broadcast(Message{
			Type:      MessageEmergencyUpdate,
			Emergency: msg.Emergency,
		})

	case MessageCancelEmergency:
		if msg.EmergencyID == nil {
			return
		}
		h.broadcast(Message{
			Type:        MessageEmergencyCancelled,
			EmergencyID: msg.EmergencyID,
		})

	case MessageAmbulanceLocation:
		h.handleAmbulanceLocation(&msg)

	default:
		h.log.WithField("message_type", msg.Type).Debug("Dropping unrecognized realtime message")
	}
}

// handleAmbulanceLocation persists the position report first, then
// rebroadcasts the canonical record. Reports for unknown units are logged
// and dropped, never surfaced to the sender.
func (h *Hub) handleAmbulanceLocation(msg *Message) {
	if msg.AmbulanceID == nil || msg.Latitude == nil || msg.Longitude == nil {
		return
	}

	ambulance, err := h.ambulanceRepo.UpdateLocation(context.Background(), *msg.AmbulanceID, *msg.Latitude, *msg.Longitude, msg.Speed)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.log.WithAmbulanceID(*msg.AmbulanceID).Debug("Location report for unknown ambulance dropped")
		} else {
			h.log.WithError(err).WithAmbulanceID(*msg.AmbulanceID).Error("Failed to update ambulance location")
		}
		return
	}

	h.broadcast(Message{
		Type:      MessageAmbulanceLocationUpdate,
		Ambulance: ambulance,
	})
}

// broadcast sends to every live connection, origin included, in registry
// order.
func (h *Hub) broadcast(message Message) {
	h.sendTo(message, nil)
}

// broadcastExcept sends to every live connection other than origin.
func (h *Hub) broadcastExcept(origin *Client, message Message) {
	h.sendTo(message, origin)
}

func (h *Hub) sendTo(message Message, exclude *Client) {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.WithError(err).Error("Failed to marshal outbound message")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	var stale []*Client
	for _, client := range h.clients {
		if client == exclude {
			continue
		}
		select {
		case client.send <- data:
		default:
			// Send buffer full: the connection is not draining, drop it.
			stale = append(stale, client)
		}
	}
	for _, client := range stale {
		h.removeClientLocked(client)
	}
}
