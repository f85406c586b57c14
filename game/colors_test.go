package game

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextColor(t *testing.T) {
	hexColor := regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	t.Run("allocates distinct palette colors while available", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		var players []*Player

		for i := 0; i < len(palette); i++ {
			color := NextColor(players, rng)
			require.Contains(t, palette, color)

			for _, p := range players {
				require.NotEqual(t, p.Color, color)
			}

			players = append(players, &Player{ID: "p", Color: color})
		}
	})

	t.Run("falls back to random hex once palette is exhausted", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		players := make([]*Player, len(palette))
		for i, c := range palette {
			players[i] = &Player{Color: c}
		}

		color := NextColor(players, rng)
		require.NotContains(t, palette, color)
		require.Regexp(t, hexColor, color)
	})
}
