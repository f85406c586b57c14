package ws

import (
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/bingorace/bingo-server/game"
)

// Manager owns every live websocket client and the transport-side room
// grouping. It implements game.Gateway, so all registry outcomes flow
// back out through it: to one connection or to a room's membership.
type Manager struct {
	registry *game.Registry
	validate *validator.Validate
	clients  map[string]*Client
	rooms    map[string][]*Client
	handlers map[string]EventHandler
	upgrader websocket.Upgrader
	sync.RWMutex
}

func NewManager(allowedOrigins []string, roomTimeout time.Duration, rng *rand.Rand) *Manager {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	m := &Manager{
		clients:  make(map[string]*Client),
		rooms:    make(map[string][]*Client),
		handlers: make(map[string]EventHandler),
		validate: validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// same-origin clients (no Origin header) and configured dev origins
				origin := r.Header.Get("Origin")
				return origin == "" || origins[origin]
			},
		},
	}

	m.registry = game.NewRegistry(m, roomTimeout, rng)
	m.setupEventHandlers()
	return m
}

// Registry exposes the room registry for the HTTP handlers.
func (m *Manager) Registry() *game.Registry {
	return m.registry
}

func (m *Manager) setupEventHandlers() {
	m.handlers[CreateRoomEventMessage] = CreateRoomHandler
	m.handlers[JoinRoomEventMessage] = JoinRoomHandler
	m.handlers[StartGameEventMessage] = StartGameHandler
	m.handlers[UpdateCellEventMessage] = UpdateCellHandler
	m.handlers[ChatMessageEventMessage] = ChatMessageHandler
}

func (m *Manager) routeEvents(e Event, c *Client) error {
	if handler, ok := m.handlers[e.Type]; ok {
		if err := handler(e, c); err != nil {
			return err
		}
		return nil
	}
	return errors.New("cannot handle this event")
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.SocketID] = client
}

func (m *Manager) removeClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.clients[client.SocketID]; ok {
		client.connection.Close()
		delete(m.clients, client.SocketID)
	}

	log.Debug().Str("socket", client.SocketID).Int("clients", len(m.clients)).Msg("client removed")
}

// ServeWS upgrades the request and starts the client's pumps. There is no
// authentication; the minted socket id is the client's whole identity.
func (m *Manager) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := NewClient(conn, m)
	m.addClient(client)

	log.Debug().Str("socket", client.SocketID).Msg("new client")

	go client.readMessages()
	go client.writeMessages()
	go client.listenForErrors()
}

// Join adds the connection to a room's broadcast group. Part of
// game.Gateway; called by the registry once membership is authoritative.
func (m *Manager) Join(roomID, connID string) {
	m.Lock()
	defer m.Unlock()

	client, ok := m.clients[connID]
	if !ok {
		return
	}

	if !slices.Contains(m.rooms[roomID], client) {
		m.rooms[roomID] = append(m.rooms[roomID], client)
	}
}

// Leave removes the connection from a room's broadcast group, pruning the
// group when it empties.
func (m *Manager) Leave(roomID, connID string) {
	m.Lock()
	defer m.Unlock()

	room := m.rooms[roomID]

	index := slices.IndexFunc(room, func(c *Client) bool { return c.SocketID == connID })
	if index < 0 {
		return
	}

	m.rooms[roomID] = append(room[:index], room[index+1:]...)

	if len(m.rooms[roomID]) == 0 {
		delete(m.rooms, roomID)
	}
}

// ToConn delivers an event to a single connection.
func (m *Manager) ToConn(connID, event string, payload any) {
	m.RLock()
	client, ok := m.clients[connID]
	m.RUnlock()

	if !ok {
		return
	}

	m.push(client, event, payload)
}

// ToRoom delivers an event to every connection in a room's broadcast
// group.
func (m *Manager) ToRoom(roomID, event string, payload any) {
	m.RLock()
	members := slices.Clone(m.rooms[roomID])
	m.RUnlock()

	for _, client := range members {
		m.push(client, event, payload)
	}
}

func (m *Manager) push(client *Client, event string, payload any) {
	evt, err := NewEvent(event, payload)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("cannot marshal outbound event")
		return
	}

	select {
	case client.egress <- evt:
	default:
		// a stalled client must not block the event loop
		log.Warn().Str("socket", client.SocketID).Str("event", event).Msg("egress full, dropping event")
	}
}
