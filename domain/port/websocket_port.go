// domain/port/websocket_port.go
package port

import "github.com/google/uuid"

// WebSocketPort is the fanout side of the hub as seen from the application
// layer. Every method resolves the user id against the live-connection
// registry; an offline user is a no-op, not an error.
type WebSocketPort interface {
	BroadcastToUser(userID uuid.UUID, messageType string, data interface{})

	// Friend notifications
	BroadcastFriendRequestReceived(userID uuid.UUID, payload interface{})
	BroadcastFriendRequestAccepted(userID uuid.UUID, payload interface{})
}
