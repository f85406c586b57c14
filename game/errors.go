package game

import (
	"errors"
	"fmt"
)

// User-facing rejections. Each one is reported back to the requesting
// connection only and leaves room state untouched.
var (
	ErrRoomExists      = errors.New("Room already exists")
	ErrRoomNotFound    = errors.New("Room does not exist")
	ErrGameInProgress  = errors.New("Game in progress")
	ErrInvalidSize     = errors.New("Board size must be at least 2")
	ErrInvalidGoalList = errors.New("Goal list entries must be non-empty and unique")
)

// InsufficientGoalsError reports a goal list too short for the requested
// board size. Required is size squared.
type InsufficientGoalsError struct {
	Required int
}

func (e *InsufficientGoalsError) Error() string {
	return fmt.Sprintf("Need at least %d goals in the list", e.Required)
}
