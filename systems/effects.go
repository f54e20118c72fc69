package systems

import (
	"github.com/automoto/fling/components"
	"github.com/automoto/fling/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, squash/stretch)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateSquashStretchEffects(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateSquashStretchEffects advances the scale tweens and removes finished ones
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	dt := float32(tickDuration())

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		x, doneX := ss.TweenX.Update(dt)
		y, doneY := ss.TweenY.Update(dt)
		ss.ScaleX, ss.ScaleY = float64(x), float64(y)

		if doneX && doneY {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

// TriggerSquashStretch deforms an entity and lets it spring back to 1.0
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	d := config.SquashStretch.Duration
	data := components.SquashStretchData{
		ScaleX: scaleX,
		ScaleY: scaleY,
		TweenX: gween.New(float32(scaleX), 1, d, ease.OutElastic),
		TweenY: gween.New(float32(scaleY), 1, d, ease.OutElastic),
	}
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, data)
}

// TriggerFlash lights up an entity's border for the given number of frames
func TriggerFlash(entry *donburi.Entry, frames int) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(entry, components.FlashData{Duration: frames, R: 1, G: 1, B: 1})
}

// SquashScale returns the current deformation of an entity, (1, 1) when none.
func SquashScale(entry *donburi.Entry) (float64, float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return 1, 1
	}
	ss := components.SquashStretch.Get(entry)
	return ss.ScaleX, ss.ScaleY
}
