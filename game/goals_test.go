package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateGoalList(t *testing.T) {
	t.Run("accepts distinct non-empty labels", func(t *testing.T) {
		require.NoError(t, ValidateGoalList([]string{"find a sword", "tame a wolf", "reach level 10"}))
	})

	t.Run("rejects empty list", func(t *testing.T) {
		require.ErrorIs(t, ValidateGoalList(nil), ErrInvalidGoalList)
		require.ErrorIs(t, ValidateGoalList([]string{}), ErrInvalidGoalList)
	})

	t.Run("rejects empty labels", func(t *testing.T) {
		require.ErrorIs(t, ValidateGoalList([]string{"a", "", "c"}), ErrInvalidGoalList)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		require.ErrorIs(t, ValidateGoalList([]string{"a", "b", "a"}), ErrInvalidGoalList)
	})
}
