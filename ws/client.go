package ws

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var (
	pongWait = 10 * time.Second

	pingInterval = (pongWait * 8) / 10
)

const maxMessageSize = 4096

// Client is one websocket connection. SocketID is the opaque identity the
// game registry knows it by; it is minted server-side and stable for the
// connection's lifetime.
type Client struct {
	SocketID   string
	manager    *Manager
	connection *websocket.Conn
	egress     chan Event
	readErr    chan error
	writeErr   chan error
	err        chan error
}

func NewClient(conn *websocket.Conn, m *Manager) *Client {
	return &Client{
		SocketID:   uuid.NewString(),
		connection: conn,
		egress:     make(chan Event, 32),
		readErr:    make(chan error, 1), // readMessages listens here for errors that should end the goroutine
		writeErr:   make(chan error, 1), // writeMessages listens here for errors that should end the goroutine
		err:        make(chan error, 1), // listenForErrors tears the client down on the first error
		manager:    m,
	}
}

// Pushing an error from either pump ends the other pump and wakes
// listenForErrors, which removes the client and disconnects it from any
// rooms it joined.

func (c *Client) readError(err error) {
	c.writeErr <- err
	c.err <- err
}

func (c *Client) writeError(err error) {
	c.readErr <- err
	c.err <- err
}

func (c *Client) readMessages() {
	c.connection.SetReadLimit(maxMessageSize)

	if err := c.connection.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.readError(err)
		return
	}

	c.connection.SetPongHandler(c.pongHandler)

	for {
		select {
		case <-c.readErr:
			return
		default:
			_, payload, err := c.connection.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
					log.Warn().Err(err).Str("socket", c.SocketID).Msg("unexpected closure of socket connection")
				}
				c.readError(err)
				return
			}

			var evt Event

			if err := json.Unmarshal(payload, &evt); err != nil {
				c.pushError("Cannot unmarshal json payload")
				continue
			}

			if err := c.manager.routeEvents(evt, c); err != nil {
				c.pushError(err.Error())
			}
		}
	}
}

func (c *Client) writeMessages() {
	ticker := time.NewTicker(pingInterval)

	defer func() {
		ticker.Stop()
	}()

	for {
		select {
		case event, ok := <-c.egress:
			if !ok {
				if err := c.connection.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					log.Debug().Err(err).Msg("connection closed")
				}

				c.writeError(fmt.Errorf("egress channel closed for socket %v", c.SocketID))
				return
			}

			message, err := json.Marshal(event)
			if err != nil {
				log.Error().Err(err).Str("socket", c.SocketID).Msgf("cannot marshal event %v", event.Type)
				continue
			}

			if err := c.connection.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Warn().Err(err).Str("socket", c.SocketID).Msg("write error")
			}
		case <-ticker.C:
			if err := c.connection.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				c.writeError(err)
				return
			}
		case err := <-c.writeErr:
			log.Debug().Err(err).Str("socket", c.SocketID).Msg("write pump exiting")
			return
		}
	}
}

// Listens for the first pump error, then removes the client from every
// room and from the manager. Registry removal runs first so remaining
// members see player-left before the connection disappears.
func (c *Client) listenForErrors() {
	<-c.err
	c.manager.registry.Disconnect(c.SocketID)
	c.manager.removeClient(c)
}

func (c *Client) pongHandler(pongMsg string) error {
	return c.connection.SetReadDeadline(time.Now().Add(pongWait))
}

// pushError queues a room-error event for this connection without
// blocking the read pump.
func (c *Client) pushError(message string) {
	errEvent, err := NewErrorEvent(message)
	if err != nil {
		log.Error().Err(err).Msg("cannot build error event")
		return
	}

	select {
	case c.egress <- errEvent:
	default:
		log.Warn().Str("socket", c.SocketID).Msg("egress full, dropping error event")
	}
}
