package scenes

import (
	"math"

	"github.com/automoto/cosmic-survivor/components"
	"github.com/automoto/cosmic-survivor/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionShoot
	ActionUpgrade
	ActionCycleUpgrade
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

const analogDeadzone = 0.25

var bindings = map[ActionID]InputBinding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionShoot: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// Right trigger
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	ActionUpgrade: {
		Keys: []ebiten.Key{ebiten.KeyU},
		// Y / Triangle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	ActionCycleUpgrade: {
		Keys:                   []ebiten.Key{ebiten.KeyTab},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	ActionMenuUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionMenuDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionMenuSelect: {
		Keys: []ebiten.Key{ebiten.KeyEnter},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Input keeps this frame's and last frame's action state so presses can be
// edge-detected.
type Input struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
	Stick    components.Vector // left analog stick past the deadzone
	Aim      components.Vector
	HasAim   bool
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll swaps buffers and samples keyboard, mouse and gamepads.
func (in *Input) Poll() {
	in.Previous = in.Current
	in.Current = [ActionCount]bool{}
	in.Stick = components.Vector{}
	in.HasAim = false

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Current[ActionShoot] = true
	}
	mx, my := ebiten.CursorPosition()
	in.Aim = components.Vector{X: float64(mx), Y: float64(my)}
	in.HasAim = true

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(x, y) > analogDeadzone {
			in.Stick = components.Vector{X: x, Y: y}
		}
		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > analogDeadzone {
			// A right stick aims relative to the ship; the frame builder
			// resolves it once the ship position is known.
			in.Aim = components.Vector{X: rx, Y: ry}
			in.HasAim = false
			in.Current[ActionShoot] = true
		}
	}
}

// Pressed reports whether the action is held.
func (in *Input) Pressed(a ActionID) bool {
	return in.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (in *Input) JustPressed(a ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// Frame converts the polled state into simulation input. ship is the local
// ship's position, used to resolve stick aiming.
func (in *Input) Frame(ship components.Vector, fps float64) systems.FrameInput {
	move := in.Stick
	if in.Pressed(ActionMoveLeft) {
		move.X = -1
	}
	if in.Pressed(ActionMoveRight) {
		move.X = 1
	}
	if in.Pressed(ActionMoveUp) {
		move.Y = -1
	}
	if in.Pressed(ActionMoveDown) {
		move.Y = 1
	}

	aim := in.Aim
	if !in.HasAim {
		aim = components.Vector{X: ship.X + in.Aim.X*100, Y: ship.Y + in.Aim.Y*100}
	}

	return systems.FrameInput{
		Move:   move,
		Aim:    aim,
		HasAim: true,
		Shoot:  in.Pressed(ActionShoot),
		FPS:    fps,
	}
}
