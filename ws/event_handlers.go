package ws

import (
	"encoding/json"

	"github.com/bingorace/bingo-server/game"
)

// Each handler unmarshals and validates its payload, then delegates to
// the registry with the requesting connection's socket id made explicit.
// A returned error is delivered to the requester as a room-error event;
// nil covers both success and the intentionally silent no-ops.

func CreateRoomHandler(e Event, c *Client) error {
	var payload CreateRoomPayload

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return err
	}

	if err := c.manager.validate.Struct(payload); err != nil {
		return err
	}

	// structural re-check at the trust boundary; the registry only
	// re-validates length against the board size
	if err := game.ValidateGoalList(payload.GoalList); err != nil {
		return err
	}

	return c.manager.registry.CreateRoom(c.SocketID, payload.RoomID, payload.Username, payload.Size, payload.GoalList)
}

func JoinRoomHandler(e Event, c *Client) error {
	var payload JoinRoomPayload

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return err
	}

	if err := c.manager.validate.Struct(payload); err != nil {
		return err
	}

	return c.manager.registry.JoinRoom(c.SocketID, payload.RoomID, payload.Username)
}

func StartGameHandler(e Event, c *Client) error {
	var payload StartGamePayload

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return err
	}

	if err := c.manager.validate.Struct(payload); err != nil {
		return err
	}

	c.manager.registry.StartGame(c.SocketID, payload.RoomID)
	return nil
}

func UpdateCellHandler(e Event, c *Client) error {
	var payload UpdateCellPayload

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return err
	}

	if err := c.manager.validate.Struct(payload); err != nil {
		return err
	}

	c.manager.registry.UpdateCell(c.SocketID, payload.RoomID, payload.Row, payload.Col)
	return nil
}

func ChatMessageHandler(e Event, c *Client) error {
	var payload ChatMessagePayload

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return err
	}

	if err := c.manager.validate.Struct(payload); err != nil {
		return err
	}

	c.manager.registry.ChatMessage(c.SocketID, payload.RoomID, payload.Message)
	return nil
}
