package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical application action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionTogglePlayback
	ActionTogglePreserve
	ActionRespawn
	ActionFullscreen
	ActionMute
	ActionDebug
	ActionContent1
	ActionContent2
	ActionContent3
	ActionContent4
	ActionContent5
	ActionContent6
	ActionContent7
	ActionContent8
	ActionContent9
	ActionCount // Must be last - used for array sizing
)

// ContentSlot returns the zero-based catalogue index bound to a content action.
func (a ActionID) ContentSlot() (int, bool) {
	if a < ActionContent1 || a > ActionContent9 {
		return 0, false
	}
	return int(a - ActionContent1), true
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionTogglePlayback: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionTogglePreserve: {
				Keys: []ebiten.Key{ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionRespawn: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyF11},
			},
			ActionMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionContent1: {Keys: []ebiten.Key{ebiten.KeyDigit1}},
			ActionContent2: {Keys: []ebiten.Key{ebiten.KeyDigit2}},
			ActionContent3: {Keys: []ebiten.Key{ebiten.KeyDigit3}},
			ActionContent4: {Keys: []ebiten.Key{ebiten.KeyDigit4}},
			ActionContent5: {Keys: []ebiten.Key{ebiten.KeyDigit5}},
			ActionContent6: {Keys: []ebiten.Key{ebiten.KeyDigit6}},
			ActionContent7: {Keys: []ebiten.Key{ebiten.KeyDigit7}},
			ActionContent8: {Keys: []ebiten.Key{ebiten.KeyDigit8}},
			ActionContent9: {Keys: []ebiten.Key{ebiten.KeyDigit9}},
		},
	}
}
