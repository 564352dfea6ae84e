// Package socket streams verdict events to websocket clients.
package socket

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type Handler interface {
	Connect(c echo.Context) error
	CurrentConnectionCount() int64
}

type handler struct {
	rdb         *redis.Client
	connections atomic.Int64
}

func NewHandler(rdb *redis.Client) Handler {
	return &handler{rdb: rdb}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect upgrades the connection and relays verdict events for the
// requested identities until the client goes away.
func (h *handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("failed to upgrade WebSocket", slog.String("error", err.Error()), slog.String("module", "socket"))
		return err
	}
	defer ws.Close()

	h.connections.Add(1)
	defer h.connections.Add(-1)

	ctx := c.Request().Context()

	pubsub := h.rdb.Subscribe(ctx)
	defer pubsub.Close()

	go func() {
		for {
			msg, err := pubsub.ReceiveMessage(ctx)
			if err != nil {
				return
			}

			err = ws.WriteMessage(websocket.TextMessage, []byte(msg.Payload))
			if err != nil {
				slog.Error("failed to write verdict event", slog.String("error", err.Error()), slog.String("module", "socket"))
				return
			}
		}
	}()

	for {
		var req ChannelRequest
		err := ws.ReadJSON(&req)
		if err != nil {
			break
		}

		pubsub.Unsubscribe(ctx)

		channels := make([]string, 0, len(req.Identities))
		for _, identity := range req.Identities {
			channels = append(channels, "verdict:"+identity)
		}
		if len(channels) > 0 {
			pubsub.Subscribe(ctx, channels...)
		}
	}

	return nil
}

func (h *handler) CurrentConnectionCount() int64 {
	return h.connections.Load()
}
