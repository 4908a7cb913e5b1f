// interfaces/websocket/handlers.go
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/dto"
	"github.com/saiyasanth/chatapp/domain/service"
	"github.com/saiyasanth/chatapp/pkg/metrics"
)

// registerHandlers wires the protocol frame types to their handlers.
func (h *Hub) registerHandlers() {
	h.handlers[string(TypeSendFriendRequest)] = &SendFriendRequestHandler{hub: h}
	h.handlers[string(TypeAcceptFriendRequest)] = &AcceptFriendRequestHandler{hub: h}
	h.handlers[string(TypePing)] = &PingHandler{hub: h}
}

// SendFriendRequestHandler handles send_friend_request frames. The answer is
// always an acknowledgement frame carrying the inbound request_id - protocol
// errors are reported in the ack, never as an error event.
type SendFriendRequestHandler struct {
	hub *Hub
}

func (h *SendFriendRequestHandler) Handle(ctx context.Context, client *Client, msg *WSMessage) error {
	ack := func(payload dto.SendAck) {
		h.hub.sendToClient(client, WSResponse{
			Type:      TypeSendFriendRequest,
			Data:      payload,
			Timestamp: time.Now(),
			RequestID: msg.RequestID,
			Success:   payload.IsSent,
		})
	}

	var data dto.SendFriendRequestData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		ack(dto.SendAck{IsSent: false, Message: "invalid request payload"})
		return nil
	}

	fromID, err := uuid.Parse(data.From)
	if err != nil {
		ack(dto.SendAck{IsSent: false, Message: "User not found"})
		return nil
	}
	toID, err := uuid.Parse(data.To)
	if err != nil {
		ack(dto.SendAck{IsSent: false, Message: "User not found"})
		return nil
	}

	if h.hub.friendRequestService == nil {
		ack(dto.SendAck{IsSent: false, Message: "Failed to send friend request"})
		return errors.New("friend request service unavailable")
	}

	if _, err := h.hub.friendRequestService.SendRequest(fromID, toID); err != nil {
		metrics.FriendRequestOps.WithLabelValues("send", "error").Inc()
		ack(dto.SendAck{IsSent: false, Message: sendFailureMessage(err)})
		return nil
	}

	metrics.FriendRequestOps.WithLabelValues("send", "ok").Inc()
	ack(dto.SendAck{IsSent: true})
	return nil
}

func sendFailureMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, service.ErrSelfRequest):
		return "Cannot send a friend request to yourself"
	case errors.Is(err, service.ErrAlreadyFriends):
		return "You are already friends"
	case errors.Is(err, service.ErrRequestAlreadyExists):
		return "Friend request already exists"
	default:
		return "Failed to send friend request"
	}
}

// AcceptFriendRequestHandler handles accept_friend_request frames. There is no
// direct acknowledgement: success surfaces as friend_request_accepted events
// to both participants, failure as a single error event on the initiating
// connection. The asymmetry with send_friend_request is part of the protocol.
type AcceptFriendRequestHandler struct {
	hub *Hub
}

func (h *AcceptFriendRequestHandler) Handle(ctx context.Context, client *Client, msg *WSMessage) error {
	fail := func(message string) {
		h.hub.sendToClient(client, WSResponse{
			Type:      TypeError,
			Data:      dto.EventPayload{Severity: dto.SeverityError, Message: message},
			Timestamp: time.Now(),
			RequestID: msg.RequestID,
		})
	}

	var data dto.AcceptFriendRequestData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		fail("invalid request payload")
		return nil
	}

	requestID, err := uuid.Parse(data.RequestID)
	if err != nil {
		fail("Friend request not found")
		return nil
	}

	if h.hub.friendRequestService == nil {
		fail("Failed to accept friend request")
		return errors.New("friend request service unavailable")
	}

	if _, err := h.hub.friendRequestService.AcceptRequest(requestID); err != nil {
		metrics.FriendRequestOps.WithLabelValues("accept", "error").Inc()
		fail(acceptFailureMessage(err))
		return nil
	}

	metrics.FriendRequestOps.WithLabelValues("accept", "ok").Inc()
	return nil
}

func acceptFailureMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		return "Friend request not found"
	case errors.Is(err, service.ErrUserNotFound):
		return "Sender or recipient not found"
	default:
		return "Failed to accept friend request"
	}
}

// PingHandler answers keepalive frames.
type PingHandler struct {
	hub *Hub
}

func (h *PingHandler) Handle(ctx context.Context, client *Client, msg *WSMessage) error {
	client.touchPing()
	h.hub.sendToClient(client, WSResponse{
		Type:      TypePong,
		Timestamp: time.Now(),
		RequestID: msg.RequestID,
		Success:   true,
	})
	return nil
}
