package game

import "github.com/samber/lo"

// ValidateGoalList checks the structural shape of a user-supplied goal
// list: at least one entry, no empty labels, no duplicates. Length against
// a board size is checked separately by GenerateBoard. Pure function.
func ValidateGoalList(goals []string) error {
	if len(goals) == 0 {
		return ErrInvalidGoalList
	}

	if lo.SomeBy(goals, func(g string) bool { return g == "" }) {
		return ErrInvalidGoalList
	}

	if len(lo.FindDuplicates(goals)) > 0 {
		return ErrInvalidGoalList
	}

	return nil
}
