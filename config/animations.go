package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
}

// PlayerAnimations holds the frame clips for the procedurally drawn player.
// Frames index body poses rather than sprite sheet cells.
var PlayerAnimations = map[StateID]AnimationDef{
	Idle:    {First: 0, Last: 1, Step: 1, Speed: 30},
	Running: {First: 0, Last: 3, Step: 1, Speed: 6},
	Jumping: {First: 0, Last: 0, Step: 1, Speed: 0},
	Falling: {First: 0, Last: 0, Step: 1, Speed: 0},
	Dying:   {First: 0, Last: 0, Step: 1, Speed: 0},
}

// DyingTween is the length of the shrink-and-fade played on death, in seconds.
const DyingTween float32 = 0.6
