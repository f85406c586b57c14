package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const timeoutMessage = "Room closed due to inactivity"

// Gateway delivers outbound events to connections. Join and Leave maintain
// the transport-side room grouping used by ToRoom. Implemented by the
// websocket manager; tests substitute a recording fake.
type Gateway interface {
	Join(roomID, connID string)
	Leave(roomID, connID string)
	ToConn(connID, event string, payload any)
	ToRoom(roomID, event string, payload any)
}

// Registry owns every room and is the only code allowed to mutate them.
// A single mutex serializes all operations, including idle-timer firing,
// so no two events ever interleave mid-mutation: a cell claim observes
// the cell's current owner with no race window, and a stale timer firing
// after its room was deleted is a no-op.
type Registry struct {
	mu       sync.Mutex
	rooms    map[string]*Room
	timers   map[string]*time.Timer
	timerGen map[string]uint64
	gateway  Gateway
	rng      *rand.Rand
	timeout  time.Duration
}

func NewRegistry(gateway Gateway, timeout time.Duration, rng *rand.Rand) *Registry {
	return &Registry{
		rooms:    make(map[string]*Room),
		timers:   make(map[string]*time.Timer),
		timerGen: make(map[string]uint64),
		gateway:  gateway,
		rng:      rng,
		timeout:  timeout,
	}
}

// CreateRoom allocates a new room with the requester as its creator and
// sole player, generates a preview board and arms the idle timer. The
// returned error, if any, is user-facing; nothing is mutated on failure.
func (reg *Registry) CreateRoom(connID, roomID, username string, size int, goals []string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.rooms[roomID]; ok {
		return ErrRoomExists
	}

	board, err := GenerateBoard(size, goals, reg.rng)
	if err != nil {
		return err
	}

	player := &Player{
		ID:        connID,
		Username:  username,
		Color:     NextColor(nil, reg.rng),
		IsCreator: true,
	}

	room := &Room{
		ID:        roomID,
		Size:      size,
		Board:     board,
		GoalList:  append([]string(nil), goals...),
		Players:   []*Player{player},
		CreatorID: connID,
	}

	reg.rooms[roomID] = room
	reg.gateway.Join(roomID, connID)

	reg.gateway.ToConn(connID, EventRoomCreated, RoomCreatedPayload{
		RoomID:  roomID,
		Board:   room.Board,
		Size:    size,
		Players: room.Players,
	})

	reg.rearmTimerLocked(roomID)
	log.Info().Str("room", roomID).Str("creator", connID).Msg("room created")
	return nil
}

// JoinRoom appends the requester to a room that has not started yet,
// broadcasts the updated player list and replies to the joiner alone with
// the full room snapshot.
func (reg *Registry) JoinRoom(connID, roomID, username string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	if room.GameStarted {
		return ErrGameInProgress
	}

	player := &Player{
		ID:       connID,
		Username: username,
		Color:    NextColor(room.Players, reg.rng),
	}

	room.Players = append(room.Players, player)
	reg.gateway.Join(roomID, connID)

	reg.gateway.ToRoom(roomID, EventPlayerJoined, room.Players)
	reg.gateway.ToConn(connID, EventInit, InitPayload{
		RoomID:      roomID,
		Board:       room.Board,
		Size:        room.Size,
		Players:     room.Players,
		GameStarted: room.GameStarted,
	})

	reg.rearmTimerLocked(roomID)
	return nil
}

// StartGame regenerates the board from the room's stored goal list, marks
// the game started and broadcasts the fresh board with the start time.
// Only the room's creator may start; anyone else is silently ignored.
// Starting an already started room is the restart path: it resets every
// cell by generating a new layout.
func (reg *Registry) StartGame(connID, roomID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok || room.CreatorID != connID {
		return
	}

	board, err := GenerateBoard(room.Size, room.GoalList, reg.rng)
	if err != nil {
		// the goal list was validated against the size at creation
		log.Error().Err(err).Str("room", roomID).Msg("board regeneration failed")
		return
	}

	room.GameStarted = true
	room.Winner = ""
	room.Board = board

	reg.gateway.ToRoom(roomID, EventGameStart, GameStartPayload{
		Board:     room.Board,
		Size:      room.Size,
		StartTime: time.Now().UnixMilli(),
	})

	log.Info().Str("room", roomID).Msg("game started")
}

// UpdateCell applies the claim toggle for the requester: an unclaimed cell
// becomes theirs, a cell they own is released, a cell owned by anyone else
// is left untouched (first claimant wins, no stealing). The cell's current
// state and recomputed scores are broadcast either way. Unknown rooms,
// rooms not yet started, non-members and out-of-bounds coordinates are
// silent no-ops.
func (reg *Registry) UpdateCell(connID, roomID string, row, col int) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok || !room.GameStarted {
		return
	}

	player := room.player(connID)
	if player == nil {
		return
	}

	if row < 0 || row >= room.Size || col < 0 || col >= room.Size {
		return
	}

	cell := &room.Board[row][col]

	switch {
	case cell.State == CellMarked && cell.OwnerID == connID:
		cell.State, cell.OwnerID, cell.Color = CellEmpty, "", ""
	case cell.State == CellEmpty:
		cell.State, cell.OwnerID, cell.Color = CellMarked, connID, player.Color
	}

	reg.gateway.ToRoom(roomID, EventCellUpdated, CellUpdatedPayload{
		Row:    row,
		Col:    col,
		State:  cell.State,
		Color:  cell.Color,
		UserID: cell.OwnerID,
	})

	reg.updateScoresLocked(room)
	reg.rearmTimerLocked(roomID)
}

// ChatMessage relays a message to the sender's room verbatim, stamped with
// the sender's username and color. No-op if the room or sender is unknown.
func (reg *Registry) ChatMessage(connID, roomID, message string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return
	}

	sender := room.player(connID)
	if sender == nil {
		return
	}

	reg.gateway.ToRoom(roomID, EventChatMessage, ChatMessagePayload{
		Username: sender.Username,
		Message:  message,
		Color:    sender.Color,
	})
}

// Disconnect removes the connection from every room it is a member of,
// broadcasting the shrunken player list to whoever remains. A room left
// empty is deleted and its idle timer canceled. The creator flag is never
// reassigned to a remaining player.
func (reg *Registry) Disconnect(connID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for roomID, room := range reg.rooms {
		before := len(room.Players)
		room.Players = lo.Filter(room.Players, func(p *Player, _ int) bool {
			return p.ID != connID
		})

		if len(room.Players) == before {
			continue
		}

		reg.gateway.Leave(roomID, connID)
		reg.gateway.ToRoom(roomID, EventPlayerLeft, room.Players)

		if len(room.Players) == 0 {
			reg.deleteRoomLocked(roomID)
			log.Info().Str("room", roomID).Msg("room emptied and deleted")
		}
	}
}

// RoomStatus reports whether a room exists and whether its game has
// started. Used by the HTTP pre-join probe.
func (reg *Registry) RoomStatus(roomID string) (exists, gameStarted bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return false, false
	}
	return true, room.GameStarted
}

// updateScoresLocked recounts every player's owned cells across the whole
// board and broadcasts the updated player list to the room.
func (reg *Registry) updateScoresLocked(room *Room) {
	counts := make(map[string]int, len(room.Players))

	for _, row := range room.Board {
		for _, cell := range row {
			if cell.State == CellMarked && cell.OwnerID != "" {
				counts[cell.OwnerID]++
			}
		}
	}

	for _, p := range room.Players {
		p.Score = counts[p.ID]
	}

	reg.gateway.ToRoom(room.ID, EventScoresUpdated, ScoresUpdatedPayload{Players: room.Players})
}

// rearmTimerLocked cancels any pending idle timer for the room and
// schedules a fresh one. Called on every room-mutating event. The
// generation counter invalidates a timer that already fired and is
// waiting on the lock while we rearm.
func (reg *Registry) rearmTimerLocked(roomID string) {
	if t, ok := reg.timers[roomID]; ok {
		t.Stop()
	}

	reg.timerGen[roomID]++
	gen := reg.timerGen[roomID]

	reg.timers[roomID] = time.AfterFunc(reg.timeout, func() {
		reg.expireRoom(roomID, gen)
	})
}

// expireRoom is the idle timer callback. It takes the registry lock, so it
// is serialized against regular operations; if the room was already
// deleted or the timer was rearmed in the meantime, the stale firing does
// nothing.
func (reg *Registry) expireRoom(roomID string, gen uint64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.rooms[roomID]; !ok {
		return
	}

	if reg.timerGen[roomID] != gen {
		return
	}

	reg.gateway.ToRoom(roomID, EventRoomTimeout, timeoutMessage)
	reg.deleteRoomLocked(roomID)
	log.Info().Str("room", roomID).Msg("room timed out")
}

// deleteRoomLocked removes the room and cancels its timer. The timer is
// always stopped before the room entry goes away so no live timer can
// outlast its room.
func (reg *Registry) deleteRoomLocked(roomID string) {
	if t, ok := reg.timers[roomID]; ok {
		t.Stop()
		delete(reg.timers, roomID)
		delete(reg.timerGen, roomID)
	}

	if room, ok := reg.rooms[roomID]; ok {
		for _, p := range room.Players {
			reg.gateway.Leave(roomID, p.ID)
		}
	}

	delete(reg.rooms, roomID)
}
