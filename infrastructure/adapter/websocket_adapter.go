// infrastructure/adapter/websocket_adapter.go
package adapter

import (
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/port"
	"github.com/saiyasanth/chatapp/interfaces/websocket"
)

// websocketAdapter exposes the hub's fanout to the application layer without
// leaking the hub's types into it.
type websocketAdapter struct {
	hub *websocket.Hub
}

func NewWebSocketAdapter(hub *websocket.Hub) port.WebSocketPort {
	return &websocketAdapter{hub: hub}
}

func (a *websocketAdapter) BroadcastToUser(userID uuid.UUID, messageType string, data interface{}) {
	a.hub.BroadcastToUser(userID, websocket.MessageType(messageType), data)
}

func (a *websocketAdapter) BroadcastFriendRequestReceived(userID uuid.UUID, payload interface{}) {
	a.hub.BroadcastToUser(userID, websocket.TypeFriendRequestReceived, payload)
}

func (a *websocketAdapter) BroadcastFriendRequestAccepted(userID uuid.UUID, payload interface{}) {
	a.hub.BroadcastToUser(userID, websocket.TypeFriendRequestAccepted, payload)
}
