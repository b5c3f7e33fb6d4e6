package handler

import (
	"context"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

var (
	clients = make(map[*websocket.Conn]struct{})
	mu      sync.Mutex
)

// ConnectedClients reports how many admin dashboards follow the operation feed.
func ConnectedClients() int {
	mu.Lock()
	defer mu.Unlock()
	return len(clients)
}

// RequireUpgrade rejects plain HTTP requests on websocket routes.
func RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// OperationFeed streams finished bulk operations to a connected admin dashboard.
func (h *Handler) OperationFeed(c *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())

	defer func() {
		cancel()
		mu.Lock()
		delete(clients, c)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	clients[c] = struct{}{}
	mu.Unlock()

	if h.Feed == nil {
		return
	}
	pubsub := h.Feed.Subscribe(ctx)
	defer pubsub.Close()

	// The dashboard never sends anything; a failed read means it went away.
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Printf("Operation feed write failed: %v", err)
				return
			}
		}
	}
}
