package game

type CellState string

const (
	CellEmpty  CellState = ""
	CellMarked CellState = "X"
)

// Cell is one claimable square of a board. Value is fixed once the board
// is generated; State, OwnerID and Color change together: a marked cell
// always has an owner and that owner's color, an empty cell has neither.
type Cell struct {
	Value   string    `json:"value"`
	State   CellState `json:"state"`
	OwnerID string    `json:"ownerId"`
	Color   string    `json:"color"`
}

// Board is a square grid of cells, indexed [row][col].
type Board [][]Cell

type Player struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Color     string `json:"color"`
	Score     int    `json:"score"`
	IsCreator bool   `json:"isCreator"`
}

// Room is one game session. Players are kept in join order. GoalList is
// retained verbatim so restarts can regenerate the board from it.
// The creator role is never reassigned; if the creator leaves, the room
// can no longer be started.
type Room struct {
	ID          string
	Size        int
	Board       Board
	GoalList    []string
	Players     []*Player
	GameStarted bool
	Winner      string
	CreatorID   string
}

func (r *Room) player(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
