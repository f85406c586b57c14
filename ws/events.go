package ws

import (
	"encoding/json"

	"github.com/bingorace/bingo-server/game"
)

// Event is the envelope for every message on a websocket connection:
// a type naming the event and a raw payload decoded per handler.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type EventHandler = func(e Event, c *Client) error

// Inbound event names.
const (
	CreateRoomEventMessage  = "create-room"
	JoinRoomEventMessage    = "join-room"
	StartGameEventMessage   = "start-game"
	UpdateCellEventMessage  = "update-cell"
	ChatMessageEventMessage = "chat-message"
)

type CreateRoomPayload struct {
	RoomID   string   `json:"roomId" validate:"required"`
	Username string   `json:"username" validate:"required"`
	Size     int      `json:"size"`
	GoalList []string `json:"goalList"`
}

type JoinRoomPayload struct {
	RoomID   string `json:"roomId" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type StartGamePayload struct {
	RoomID string `json:"roomId" validate:"required"`
}

type UpdateCellPayload struct {
	RoomID string `json:"roomId" validate:"required"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type ChatMessagePayload struct {
	RoomID  string `json:"roomId" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// NewEvent marshals a payload into an event envelope.
func NewEvent(evtType string, payload any) (Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}

	return Event{Type: evtType, Payload: b}, nil
}

// NewErrorEvent builds a room-error event carrying a bare message string,
// addressed to the connection whose request was rejected.
func NewErrorEvent(message string) (Event, error) {
	return NewEvent(game.EventRoomError, message)
}
