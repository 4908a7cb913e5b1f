// domain/dto/friend_request_dto.go
package dto

// Severity levels carried by event payloads.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// ============ WebSocket payloads ============

// SendFriendRequestData - inbound payload of a send_friend_request frame. The
// sender id travels in the payload, mirroring the wire contract.
type SendFriendRequestData struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AcceptFriendRequestData - inbound payload of an accept_friend_request frame.
type AcceptFriendRequestData struct {
	RequestID string `json:"requestId"`
}

// SendAck - the acknowledgement for send_friend_request.
type SendAck struct {
	IsSent  bool   `json:"isSent"`
	Message string `json:"message,omitempty"`
}

// EventPayload - shape of friend_request_received, friend_request_accepted and
// error events.
type EventPayload struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ============ REST DTOs ============

// FriendRequestData - a pending request as returned by the REST surface.
type FriendRequestData struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Sender      string `json:"sender_username,omitempty"`
	Recipient   string `json:"recipient_username,omitempty"`
	CreatedAt   string `json:"created_at"`
}
