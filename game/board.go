package game

import "math/rand"

// MinBoardSize is the smallest playable square dimension.
const MinBoardSize = 2

// GenerateBoard samples size*size distinct goals from the list in random
// order and lays them out row-major into a fresh board of unclaimed cells.
// The sample is an unbiased Fisher-Yates permutation of the whole list,
// truncated to the board, so every goal is equally likely to appear in any
// position. Pure with respect to the supplied random source.
func GenerateBoard(size int, goals []string, rng *rand.Rand) (Board, error) {
	if size < MinBoardSize {
		return nil, ErrInvalidSize
	}

	if len(goals) < size*size {
		return nil, &InsufficientGoalsError{Required: size * size}
	}

	picked := make([]string, len(goals))
	copy(picked, goals)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	board := make(Board, size)
	for r := range board {
		board[r] = make([]Cell, size)
		for c := range board[r] {
			board[r][c] = Cell{Value: picked[r*size+c]}
		}
	}

	return board, nil
}
