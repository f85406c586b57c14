package game

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
)

var palette = []string{
	"#FF61E6", // neon pink
	"#00FFBB", // cyber mint
	"#84FF3C", // electric lime
	"#FFB938", // cosmic orange
	"#FF4D8C", // hot coral
	"#41CAFF", // bright sky blue
	"#B275FF", // bright purple
	"#FFE668", // warm yellow
}

// NextColor picks a color not used by any of the given players, choosing
// randomly among the free palette entries. Once the palette is exhausted
// it falls back to a random hex color. Recomputed on every join since
// membership changes over a room's life.
func NextColor(players []*Player, rng *rand.Rand) string {
	used := lo.Map(players, func(p *Player, _ int) string { return p.Color })

	free := lo.Filter(palette, func(c string, _ int) bool {
		return !lo.Contains(used, c)
	})

	if len(free) > 0 {
		return free[rng.Intn(len(free))]
	}

	return fmt.Sprintf("#%06x", rng.Intn(0x1000000))
}
