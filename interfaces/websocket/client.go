// interfaces/websocket/client.go
package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/saiyasanth/chatapp/domain/dto"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 256
)

// RegisterWebSocketRoutes mounts the upgrade endpoint. The auth middleware
// runs before the upgrade so client.UserID is always populated.
func RegisterWebSocketRoutes(app *fiber.App, hub *Hub, authMiddleware fiber.Handler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", authMiddleware, websocket.New(func(conn *websocket.Conn) {
		hub.ServeConnection(conn)
	}))
}

// ServeConnection runs a connection until it drops: registers the client,
// starts the write pump and reads frames on the calling goroutine.
func (h *Hub) ServeConnection(conn *websocket.Conn) {
	userID, ok := conn.Locals("user_id").(uuid.UUID)
	if !ok {
		logrus.Warn("websocket connection without user identity, closing")
		_ = conn.Close()
		return
	}

	client := &Client{
		ID:     uuid.New(),
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, sendBufferSize),
		Hub:    h,
	}
	client.touchPing()

	h.register <- client

	go client.writePump()
	client.readPump()
}

// readPump reads frames and dispatches them to the registered handlers.
// Handler errors are protocol-level and answered on this connection only;
// they never tear the connection down.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.touchPing()
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).WithField("client_id", c.ID).Debug("unexpected close")
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.Hub.sendToClient(c, WSResponse{
				Type:      TypeError,
				Data:      dto.EventPayload{Severity: dto.SeverityError, Message: "malformed message"},
				Timestamp: time.Now(),
			})
			continue
		}

		handler, ok := c.Hub.handlers[string(msg.Type)]
		if !ok {
			c.Hub.sendToClient(c, WSResponse{
				Type:      TypeError,
				Data:      dto.EventPayload{Severity: dto.SeverityError, Message: "unknown message type"},
				Timestamp: time.Now(),
			})
			continue
		}

		if err := handler.Handle(context.Background(), c, &msg); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"client_id": c.ID,
				"type":      msg.Type,
			}).Warn("handler error")
		}
	}
}

// writePump drains the send channel onto the wire and keeps the connection
// alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
