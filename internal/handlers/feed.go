package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/axialhq/axial-data-api/internal/stream"
)

// sendBuffer is how many undelivered items a feed subscriber may fall
// behind before the hub drops it.
const sendBuffer = 16

// FeedUpgrade gates the feed route: plain HTTP requests get 426 Upgrade
// Required, websocket handshakes continue to the Feed handler.
func FeedUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// Feed returns the handler for GET /ws/feed?source=S. The connection
// receives every newly persisted Content Item for the requested source as a
// JSON message; omitting source subscribes to all sources. The client is
// not expected to send anything; its read side is drained only to notice
// when the peer goes away.
func Feed(hub *stream.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &stream.Client{
			Source: conn.Query("source"),
			Send:   make(chan []byte, sendBuffer),
		}
		hub.Register(client)

		// Reader goroutine: ReadMessage blocks until the peer sends
		// something or disconnects. On disconnect, unregistering makes the
		// hub close client.Send, which ends the write loop below.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					hub.Unregister(client)
					return
				}
			}
		}()

		for data := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				hub.Unregister(client)
				break
			}
		}
		// Closing the socket unblocks the reader goroutine if it is still
		// running (e.g. when the hub dropped us for being too slow).
		_ = conn.Close()
	})
}
