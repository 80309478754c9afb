package socket

import (
	"intown_server/models"

	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

// NewSocketServer initializes a Socket.IO server. Clients emit "join" to
// subscribe to swipe events.
func NewSocketServer(logger *zap.Logger) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		logger.Debug("Socket connected", zap.String("id", c.ID()))
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn) {
		c.Join(models.SwipeRoom)
		logger.Debug("Socket joined swipe room", zap.String("id", c.ID()))
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		logger.Warn("Socket error", zap.Error(err))
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		logger.Debug("Socket disconnected", zap.String("id", c.ID()), zap.String("reason", reason))
	})

	return server
}

// Broadcaster pushes every recorded swipe to the swipe room
type Broadcaster struct {
	Server *socketio.Server
}

func (b *Broadcaster) SwipeRecorded(record models.SwipeRecord) {
	b.Server.BroadcastToRoom("/", models.SwipeRoom, models.SwipeEvent, record)
}
