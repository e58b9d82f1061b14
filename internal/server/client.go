package server

import (
	"net/http"
	"time"

	"fluffy-fiesta/pkg/api"
	"fluffy-fiesta/pkg/logger"
	"fluffy-fiesta/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между websocket и движком. Одна сессия на соединение.
type Client struct {
	server    *Server
	Conn      *websocket.Conn
	SessionID string
	Send      chan api.ServerResponse
	log       *logrus.Entry
}

// NewClient регистрирует сессию и ставит в очередь приветствие.
func NewClient(s *Server, conn *websocket.Conn) *Client {
	id := utils.GenerateID()
	c := &Client{
		server:    s,
		Conn:      conn,
		SessionID: id,
		Send:      s.Hub.Register(id),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "client",
			"session":   id,
		}),
	}

	snap := s.Runner.Latest()
	s.Hub.SendTo(id, api.ServerResponse{
		Type:      api.MsgWelcome,
		SessionID: id,
		Map:       s.Runner.MapView(),
		Snapshot:  &snap,
	})
	c.log.Info("Client connected")
	return c
}

// readPump читает команды клиента
func (c *Client) readPump() {
	defer func() {
		c.server.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS error")
			}
			return
		}
		c.handle(cmd)
	}
}

func (c *Client) handle(cmd api.ClientCommand) {
	res, err := c.server.Dispatcher.Dispatch(c.SessionID, cmd)
	if err != nil {
		c.log.WithError(err).WithField("action", cmd.Action).Debug("Command rejected")
		c.server.Hub.SendTo(c.SessionID, api.ServerResponse{Type: api.MsgError, Error: err.Error()})
		return
	}
	if res.Msg != "" {
		c.server.Hub.SendTo(c.SessionID, api.ServerResponse{Type: api.MsgInfo, Message: res.Msg})
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
