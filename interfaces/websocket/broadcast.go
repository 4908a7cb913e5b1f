// interfaces/websocket/broadcast.go
package websocket

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// broadcastMessage serializes once and delivers to every connection of the
// targeted users.
func (h *Hub) broadcastMessage(msg *BroadcastMessage) {
	data, err := json.Marshal(WSResponse{
		Type:      msg.Type,
		Data:      msg.Data,
		Timestamp: time.Now(),
		Success:   true,
	})
	if err != nil {
		return
	}

	for _, userID := range msg.UserIDs {
		h.sendToUser(userID, data)
	}
}

// sendToUser resolves a user id against the connection registry and delivers
// to each live connection. An unknown user is a silent no-op - that is the
// at-most-once contract, the state change is already durable.
func (h *Hub) sendToUser(userID uuid.UUID, data []byte) {
	h.userConnectionsMux.RLock()
	clientIDs := h.userConnections[userID]
	h.userConnectionsMux.RUnlock()

	if len(clientIDs) == 0 {
		metrics.WSEventsDropped.Inc()
		return
	}

	for _, clientID := range clientIDs {
		h.clientsMux.RLock()
		client, ok := h.clients[clientID]
		h.clientsMux.RUnlock()

		if ok {
			select {
			case client.Send <- data:
				metrics.WSEventsDelivered.Inc()
			default:
				// Client's send buffer is full, recycle the connection.
				go func() {
					h.unregister <- client
				}()
			}
		}
	}
}

// sendToClient delivers a response to one specific connection.
func (h *Hub) sendToClient(client *Client, response WSResponse) {
	// The send channel may already be closed by unregisterClient.
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("client_id", client.ID).Debugf("recovered sending to closed client: %v", r)
		}
	}()

	data, err := json.Marshal(response)
	if err != nil {
		return
	}

	h.clientsMux.RLock()
	_, exists := h.clients[client.ID]
	h.clientsMux.RUnlock()
	if !exists {
		return
	}

	select {
	case client.Send <- data:
	default:
		logrus.WithField("client_id", client.ID).Warn("send buffer full, recycling connection")
		go func() {
			h.unregister <- client
		}()
	}
}

// removeClientFromSlice removes a client ID from a slice in place.
func (h *Hub) removeClientFromSlice(slice *[]uuid.UUID, clientID uuid.UUID) {
	for i, id := range *slice {
		if id == clientID {
			*slice = append((*slice)[:i], (*slice)[i+1:]...)
			break
		}
	}
}

// NotifyBroadcast queues a message for fanout. A full queue drops the message
// rather than blocking the caller.
func (h *Hub) NotifyBroadcast(msg *BroadcastMessage) {
	if h == nil || msg == nil {
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		logrus.WithField("type", msg.Type).Warn("broadcast channel full, dropping message")
	}
}

// BroadcastToUsers delivers an event to every listed user.
func (h *Hub) BroadcastToUsers(userIDs []uuid.UUID, msgType MessageType, data interface{}) {
	h.NotifyBroadcast(&BroadcastMessage{
		Type:    msgType,
		Data:    data,
		UserIDs: userIDs,
	})
}

// BroadcastToUser delivers an event to a single user.
func (h *Hub) BroadcastToUser(userID uuid.UUID, msgType MessageType, data interface{}) {
	h.NotifyBroadcast(&BroadcastMessage{
		Type:    msgType,
		Data:    data,
		UserIDs: []uuid.UUID{userID},
	})
}
