// internals/features/chat/controller/chat_ws_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	helper "grofast_backend/internals/helpers"
)

const (
	wsWriteWait = 10 * time.Second
	wsPongWait  = 60 * time.Second
	wsPingEvery = 30 * time.Second
)

// WsUpgrade gates the handshake: only real websocket upgrade requests
// with a valid channel id get through to the stream handler.
func (h *ChatController) WsUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return helper.JsonError(c, fiber.StatusUpgradeRequired, "Websocket upgrade required")
	}
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid channel id")
	}
	c.Locals("ws_channel_id", channelID)
	return c.Next()
}

// WsStream subscribes the connection to its channel's event feed. Writes
// flow hub -> socket only; sends still go through the HTTP endpoint so
// every message is persisted before fan-out.
func (h *ChatController) WsStream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		channelID, ok := conn.Locals("ws_channel_id").(uuid.UUID)
		if !ok {
			conn.Close()
			return
		}

		client := h.Hub.Subscribe(channelID)
		defer h.Hub.Unsubscribe(channelID, client)

		done := make(chan struct{})

		// Reader: only pongs and close frames are expected from the client.
		go func() {
			defer close(done)
			conn.SetReadDeadline(time.Now().Add(wsPongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(wsPongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(wsPingEvery)
		defer ping.Stop()

		for {
			select {
			case ev, open := <-client.Send:
				if !open {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("[CHAT] ws write failed: %v", err)
					return
				}
			case <-ping.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	})
}
