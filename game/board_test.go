package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testGoals(n int) []string {
	goals := make([]string, n)
	for i := range goals {
		goals[i] = string(rune('a' + i))
	}
	return goals
}

func TestGenerateBoard(t *testing.T) {
	t.Run("lays out size squared distinct goals", func(t *testing.T) {
		goals := testGoals(10)
		board, err := GenerateBoard(3, goals, rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		require.Len(t, board, 3)

		seen := map[string]bool{}
		for _, row := range board {
			require.Len(t, row, 3)
			for _, cell := range row {
				require.Contains(t, goals, cell.Value)
				require.False(t, seen[cell.Value], "goal %q appears twice", cell.Value)
				seen[cell.Value] = true
			}
		}
		require.Len(t, seen, 9)
	})

	t.Run("cells start unclaimed", func(t *testing.T) {
		board, err := GenerateBoard(2, testGoals(4), rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		for _, row := range board {
			for _, cell := range row {
				require.Equal(t, CellEmpty, cell.State)
				require.Empty(t, cell.OwnerID)
				require.Empty(t, cell.Color)
			}
		}
	})

	t.Run("rejects size below minimum", func(t *testing.T) {
		_, err := GenerateBoard(1, testGoals(4), rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("rejects goal list shorter than the board", func(t *testing.T) {
		_, err := GenerateBoard(3, testGoals(8), rand.New(rand.NewSource(1)))

		var insufficient *InsufficientGoalsError
		require.ErrorAs(t, err, &insufficient)
		require.Equal(t, 9, insufficient.Required)
		require.Equal(t, "Need at least 9 goals in the list", err.Error())
	})

	t.Run("deterministic for a fixed source", func(t *testing.T) {
		goals := testGoals(12)

		first, err := GenerateBoard(3, goals, rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		second, err := GenerateBoard(3, goals, rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("does not mutate the goal list", func(t *testing.T) {
		goals := []string{"a", "b", "c", "d"}
		_, err := GenerateBoard(2, goals, rand.New(rand.NewSource(7)))

		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c", "d"}, goals)
	})
}
