package editor

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/input"
)

// Sampler reads raylib's device state into an input snapshot once per
// frame. The mapping is Unity-like: right button looks and flies,
// middle button or Ctrl+right pans, Alt+left orbits, Shift sprints and
// extends clicks, F frames, Alt+1..6 snaps to the axis views.
type Sampler struct{}

func NewSampler() *Sampler {
	return &Sampler{}
}

var buttonMap = [input.ButtonCount]rl.MouseButton{
	input.ButtonPrimary:   rl.MouseLeftButton,
	input.ButtonSecondary: rl.MouseRightButton,
	input.ButtonMiddle:    rl.MouseMiddleButton,
}

// keyMap lists the physical keys behind each logical key. Modifiers
// share physical keys on purpose: Shift is sprint while flying and
// additive on clicks, Alt is the orbit modifier and the axis-view
// prefix.
var keyMap = [input.KeyCount][]int32{
	input.KeyForward:    {rl.KeyW},
	input.KeyBack:       {rl.KeyS},
	input.KeyLeft:       {rl.KeyA},
	input.KeyRight:      {rl.KeyD},
	input.KeyUp:         {rl.KeyE},
	input.KeyDown:       {rl.KeyQ},
	input.KeySprint:     {rl.KeyLeftShift, rl.KeyRightShift},
	input.KeyOrbit:      {rl.KeyLeftAlt, rl.KeyRightAlt},
	input.KeyPan:        {rl.KeyLeftControl, rl.KeyRightControl},
	input.KeyAdditive:   {rl.KeyLeftShift, rl.KeyRightShift},
	input.KeyFrame:      {rl.KeyF},
	input.KeyAxes:       {rl.KeyLeftAlt, rl.KeyRightAlt},
	input.KeyAxisFront:  {rl.KeyOne},
	input.KeyAxisBack:   {rl.KeyTwo},
	input.KeyAxisRight:  {rl.KeyThree},
	input.KeyAxisLeft:   {rl.KeyFour},
	input.KeyAxisTop:    {rl.KeyFive},
	input.KeyAxisBottom: {rl.KeySix},
}

// Sample reads the current device state. The wheel sign is flipped so
// wheel-up zooms in through the multiplicative zoom formula.
func (s *Sampler) Sample() input.Snapshot {
	var snap input.Snapshot

	for b, code := range buttonMap {
		snap.Buttons[b] = rl.IsMouseButtonDown(code)
	}

	for k, codes := range keyMap {
		for _, code := range codes {
			if rl.IsKeyDown(code) {
				snap.Held[k] = true
			}
			if rl.IsKeyPressed(code) {
				snap.Pressed[k] = true
			}
		}
	}

	pos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	snap.Pointer = mgl32.Vec2{pos.X, pos.Y}
	snap.PointerDelta = mgl32.Vec2{delta.X, delta.Y}
	snap.Scroll = -rl.GetMouseWheelMove()

	return snap
}
