package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/polarities/movement"
)

const stickDeadzone = 0.2

// keyboardInput reads held keys and the first gamepad. Edge detection is
// left to the input system.
type keyboardInput struct{}

func newKeyboardInput() *keyboardInput { return &keyboardInput{} }

func (k *keyboardInput) Sample() movement.RawInput {
	var raw movement.RawInput

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		raw.Horizontal -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		raw.Horizontal += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		raw.Vertical += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		raw.Vertical -= 1
	}
	raw.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	raw.Sprint = ebiten.IsKeyPressed(ebiten.KeyShift)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		id := ids[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			raw.Horizontal = x
		}
		// Stick up is negative.
		y := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(y) > stickDeadzone {
			raw.Vertical = y
		}
		raw.Jump = raw.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		raw.Sprint = raw.Sprint || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return raw
}
