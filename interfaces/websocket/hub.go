// interfaces/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// Hub owns every live WebSocket connection and the userID -> connections
// registry the notification fanout resolves against. It is constructed once at
// process start, injected where needed, and torn down with its context.
type Hub struct {
	// Registered clients
	clients    map[uuid.UUID]*Client
	clientsMux sync.RWMutex

	// User connections mapping (userID -> clientIDs). This is the identity
	// directory: absence means offline.
	userConnections    map[uuid.UUID][]uuid.UUID
	userConnectionsMux sync.RWMutex

	// Message handlers
	handlers map[string]MessageHandler

	// Services. friendRequestService is set after construction because the
	// notification path loops back through the hub's adapter.
	friendRequestService service.FriendRequestService
	presenceService      service.PresenceService

	// Channels
	register   chan *Client
	unregister chan *Client
	broadcast  chan *BroadcastMessage

	startTime time.Time
}

// Client represents a single WebSocket connection of a user.
type Client struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub

	// lastPing is written by the read goroutine and read by the hub's
	// liveness sweep.
	lastPing    time.Time
	lastPingMux sync.Mutex
}

// touchPing records frame or pong activity on the connection.
func (c *Client) touchPing() {
	c.lastPingMux.Lock()
	c.lastPing = time.Now()
	c.lastPingMux.Unlock()
}

// sincePing reports how long the connection has been silent.
func (c *Client) sincePing() time.Duration {
	c.lastPingMux.Lock()
	defer c.lastPingMux.Unlock()
	return time.Since(c.lastPing)
}

// Message types
type MessageType string

const (
	// Connection management
	TypeConnect MessageType = "connect"
	TypePing    MessageType = "ping"
	TypePong    MessageType = "pong"

	// Friend request protocol (client -> server)
	TypeSendFriendRequest   MessageType = "send_friend_request"
	TypeAcceptFriendRequest MessageType = "accept_friend_request"

	// Friend request events (server -> client)
	TypeFriendRequestReceived MessageType = "friend_request_received"
	TypeFriendRequestAccepted MessageType = "friend_request_accepted"
	TypeError                 MessageType = "error"
)

// WSMessage - inbound frame.
type WSMessage struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id,omitempty"`
}

// WSResponse - outbound frame.
type WSResponse struct {
	Type      MessageType `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
	Success   bool        `json:"success"`
}

// BroadcastMessage targets every connection of the listed users.
type BroadcastMessage struct {
	Type    MessageType
	Data    interface{}
	UserIDs []uuid.UUID
}

// MessageHandler handles one inbound frame type.
type MessageHandler interface {
	Handle(ctx context.Context, client *Client, msg *WSMessage) error
}

// NewHub creates the hub. Call SetFriendRequestService before serving
// connections.
func NewHub() *Hub {
	hub := &Hub{
		clients:         make(map[uuid.UUID]*Client),
		userConnections: make(map[uuid.UUID][]uuid.UUID),
		handlers:        make(map[string]MessageHandler),
		register:        make(chan *Client),
		unregister:      make(chan *Client),
		broadcast:       make(chan *BroadcastMessage, 1000),
		startTime:       time.Now(),
	}
	hub.registerHandlers()
	return hub
}

func (h *Hub) SetFriendRequestService(friendRequestService service.FriendRequestService) {
	h.friendRequestService = friendRequestService
}

func (h *Hub) SetPresenceService(presenceService service.PresenceService) {
	h.presenceService = presenceService
}

// Run drives registration, fanout and liveness checks until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	logrus.Info("websocket hub started")
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("websocket hub shutting down")
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-ticker.C:
			h.checkAliveClients()
		}
	}
}

// registerClient adds a connection to the registry and flips the user online
// on their first connection.
func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	h.clients[client.ID] = client
	h.clientsMux.Unlock()

	h.userConnectionsMux.Lock()
	isFirstConnection := len(h.userConnections[client.UserID]) == 0
	h.userConnections[client.UserID] = append(h.userConnections[client.UserID], client.ID)
	h.userConnectionsMux.Unlock()

	metrics.WSConnectedClients.Inc()

	if isFirstConnection && h.presenceService != nil {
		if err := h.presenceService.SetUserOnline(client.UserID); err != nil {
			logrus.WithError(err).WithField("user_id", client.UserID).Warn("failed to set user online")
		}
	}

	h.sendToClient(client, WSResponse{
		Type: TypeConnect,
		Data: map[string]interface{}{
			"message":   "Connected successfully",
			"client_id": client.ID.String(),
		},
		Timestamp: time.Now(),
		Success:   true,
	})

	logrus.WithFields(logrus.Fields{
		"client_id": client.ID,
		"user_id":   client.UserID,
	}).Debug("client registered")
}

// unregisterClient removes a connection and flips the user offline when their
// last connection is gone.
func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)
		metrics.WSConnectedClients.Dec()
	}
	h.clientsMux.Unlock()

	h.userConnectionsMux.Lock()
	isLastConnection := false
	if connections, exists := h.userConnections[client.UserID]; exists {
		h.removeClientFromSlice(&connections, client.ID)
		if len(connections) == 0 {
			delete(h.userConnections, client.UserID)
			isLastConnection = true
		} else {
			h.userConnections[client.UserID] = connections
		}
	}
	h.userConnectionsMux.Unlock()

	if isLastConnection && h.presenceService != nil {
		if err := h.presenceService.SetUserOffline(client.UserID); err != nil {
			logrus.WithError(err).WithField("user_id", client.UserID).Warn("failed to set user offline")
		}
	}
}

// IsUserOnline reports whether the user has at least one live connection.
func (h *Hub) IsUserOnline(userID uuid.UUID) bool {
	h.userConnectionsMux.RLock()
	defer h.userConnectionsMux.RUnlock()

	connections, exists := h.userConnections[userID]
	return exists && len(connections) > 0
}

// checkAliveClients recycles connections that stopped answering pings. It runs
// on the hub's own goroutine, so stale clients are unregistered directly; a
// send on h.unregister here would block the only receiver of that channel.
func (h *Hub) checkAliveClients() {
	h.clientsMux.RLock()
	clientsCopy := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clientsCopy = append(clientsCopy, client)
	}
	h.clientsMux.RUnlock()

	for _, client := range clientsCopy {
		if client.sincePing() > 90*time.Second {
			logrus.WithField("client_id", client.ID).Debug("recycling silent connection")
			h.unregisterClient(client)
		}
	}
}

// GetStats returns hub statistics for the ops surface.
func (h *Hub) GetStats() map[string]interface{} {
	h.clientsMux.RLock()
	totalClients := len(h.clients)
	h.clientsMux.RUnlock()

	h.userConnectionsMux.RLock()
	totalUsers := len(h.userConnections)
	h.userConnectionsMux.RUnlock()

	return map[string]interface{}{
		"total_connections": totalClients,
		"unique_users":      totalUsers,
		"uptime":            time.Since(h.startTime).String(),
		"started_at":        h.startTime,
	}
}
