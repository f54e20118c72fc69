package systems

import (
	"context"

	"github.com/automoto/fling/components"
	"github.com/automoto/fling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContent advances the ball's play-head and uploads newly installed frames.
func UpdateContent(ecs *ecs.ECS) {
	dt := tickDuration()
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Content.Get(e)
		c.Controller.Tick(dt)
		syncFrames(c)
	})
}

// syncFrames replaces the GPU images when the controller has installed a new generation.
func syncFrames(c *components.ContentData) {
	cur := c.Controller.Current()
	if cur == nil || cur.Token == c.Generation {
		return
	}

	for _, img := range c.Frames {
		img.Deallocate()
	}
	c.Frames = make([]*ebiten.Image, len(cur.Visual.Frames))
	for i, f := range cur.Visual.Frames {
		c.Frames[i] = ebiten.NewImageFromImage(f)
	}
	c.Generation = cur.Token
	c.Shown = 0
}

// CurrentFrame returns the uploaded image under the play-head, nil before the first load.
// While a newer generation waits for upload the last shown frame is kept.
func CurrentFrame(c *components.ContentData) *ebiten.Image {
	if len(c.Frames) == 0 {
		return nil
	}
	if i, ok := c.Controller.FrameIndex(c.Generation); ok {
		c.Shown = i
	}
	return c.Frames[min(c.Shown, len(c.Frames)-1)]
}

// SelectContent requests catalogue entry index for the ball. The switch runs in
// the background; a later selection supersedes one still loading.
func SelectContent(ecs *ecs.ECS, index int) bool {
	entry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return false
	}
	c := components.Content.Get(entry)
	if index < 0 || index >= len(c.Catalogue) {
		return false
	}
	c.Selected = index
	c.Controller.SwitchAsync(context.Background(), c.Catalogue[index].Path, c.PreservePlayback)
	SaveCurrentSettings(ecs)
	return true
}

// LoadContentPath starts loading path for the ball with a fresh play-head.
func LoadContentPath(ecs *ecs.ECS, path string) {
	entry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	c := components.Content.Get(entry)
	c.Selected = -1
	for i, item := range c.Catalogue {
		if item.Path == path {
			c.Selected = i
			break
		}
	}
	c.Controller.LoadAsync(context.Background(), path)
}

// TogglePlayback pauses or resumes animated ball content.
func TogglePlayback(ecs *ecs.ECS) {
	if entry, ok := tags.Ball.First(ecs.World); ok {
		components.Content.Get(entry).Controller.TogglePlayback()
	}
}

// TogglePreservePlayback flips whether switches keep the play-head.
func TogglePreservePlayback(ecs *ecs.ECS) {
	if entry, ok := tags.Ball.First(ecs.World); ok {
		c := components.Content.Get(entry)
		c.PreservePlayback = !c.PreservePlayback
		SaveCurrentSettings(ecs)
	}
}

// ReleaseContent cancels outstanding loads and frees uploaded frames.
func ReleaseContent(ecs *ecs.ECS) {
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Content.Get(e)
		c.Controller.Wait()
		for _, img := range c.Frames {
			img.Deallocate()
		}
		c.Frames = nil
		c.Generation = 0
		c.Shown = 0
	})
}
