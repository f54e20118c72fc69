package systems

import (
	cfg "github.com/automoto/fling/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls applies keyboard and gamepad shortcuts.
// Must run AFTER UpdateInput.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if JustPressed(input, cfg.ActionDebug) {
		ToggleDebug(ecs)
	}
	if JustPressed(input, cfg.ActionFullscreen) {
		ToggleFullscreen(ecs)
	}
	if JustPressed(input, cfg.ActionMute) {
		ToggleMute(ecs)
	}
	if JustPressed(input, cfg.ActionTogglePlayback) {
		TogglePlayback(ecs)
	}
	if JustPressed(input, cfg.ActionTogglePreserve) {
		TogglePreservePlayback(ecs)
	}
	if JustPressed(input, cfg.ActionRespawn) {
		RespawnBall(ecs)
	}

	for a := cfg.ActionContent1; a <= cfg.ActionContent9; a++ {
		if !JustPressed(input, a) {
			continue
		}
		if slot, ok := a.ContentSlot(); ok {
			SelectContent(ecs, slot)
		}
	}
}
