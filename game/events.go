package game

// Outbound event names emitted through the Gateway.
const (
	EventRoomError     = "room-error"
	EventRoomCreated   = "room-created"
	EventInit          = "init"
	EventPlayerJoined  = "player-joined"
	EventPlayerLeft    = "player-left"
	EventGameStart     = "game-start"
	EventCellUpdated   = "cell-updated"
	EventScoresUpdated = "scores-updated"
	EventChatMessage   = "chat-message"
	EventRoomTimeout   = "room-timeout"
)

type RoomCreatedPayload struct {
	RoomID  string    `json:"roomId"`
	Board   Board     `json:"board"`
	Size    int       `json:"size"`
	Players []*Player `json:"players"`
}

type InitPayload struct {
	RoomID      string    `json:"roomId"`
	Board       Board     `json:"board"`
	Size        int       `json:"size"`
	Players     []*Player `json:"players"`
	GameStarted bool      `json:"gameStarted"`
}

type GameStartPayload struct {
	Board Board `json:"board"`
	Size  int   `json:"size"`
	// StartTime is Unix milliseconds, used by clients for the stopwatch.
	StartTime int64 `json:"startTime"`
}

type CellUpdatedPayload struct {
	Row   int       `json:"row"`
	Col   int       `json:"col"`
	State CellState `json:"state"`
	Color string    `json:"color"`
	// UserID is the owning connection id, empty when the cell is unclaimed.
	UserID string `json:"userId"`
}

type ScoresUpdatedPayload struct {
	Players []*Player `json:"players"`
}

type ChatMessagePayload struct {
	Username string `json:"username"`
	Message  string `json:"message"`
	Color    string `json:"color"`
}
