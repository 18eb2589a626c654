package systems

import (
	cfg "github.com/automoto/coyote-run/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// DeltaTime is the game time covered by one update, in seconds. The debug
// time scale stretches it; a non-positive scale freezes game time.
func DeltaTime() float64 {
	return scaledDelta(ebiten.TPS(), cfg.Debug.TimeScale)
}

func scaledDelta(tps int, scale float64) float64 {
	if tps <= 0 || scale <= 0 {
		return 0
	}
	return scale / float64(tps)
}
