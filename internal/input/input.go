// Package input defines the device-independent input model for the
// viewport. A Sampler reads the device once per simulation tick and
// produces a Snapshot; snapshots are value types, so the state a consumer
// sees cannot change mid-tick, and press edges never leak into later ticks.
package input

import "github.com/go-gl/mathgl/mgl32"

// Button identifies an abstract pointer button.
type Button uint8

const (
	// ButtonPrimary selects and drags gizmo handles.
	ButtonPrimary Button = iota
	// ButtonSecondary drives look, fly and modifier-pan.
	ButtonSecondary
	// ButtonMiddle pans.
	ButtonMiddle

	ButtonCount
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Key identifies an abstract navigation key.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySprint
	// KeyOrbit is the orbit modifier, held together with the primary button.
	KeyOrbit
	// KeyPan is the pan modifier, held together with the secondary button.
	KeyPan
	// KeyAdditive is the multi-select modifier for clicks.
	KeyAdditive
	// KeyFrame frames the current selection.
	KeyFrame
	// KeyAxes is the axis-align modifier, combined with one axis key below.
	KeyAxes
	KeyAxisFront
	KeyAxisBack
	KeyAxisRight
	KeyAxisLeft
	KeyAxisTop
	KeyAxisBottom

	KeyCount
)

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBack:
		return "back"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeySprint:
		return "sprint"
	case KeyOrbit:
		return "orbit"
	case KeyPan:
		return "pan"
	case KeyAdditive:
		return "additive"
	case KeyFrame:
		return "frame"
	case KeyAxes:
		return "axes"
	case KeyAxisFront:
		return "axis-front"
	case KeyAxisBack:
		return "axis-back"
	case KeyAxisRight:
		return "axis-right"
	case KeyAxisLeft:
		return "axis-left"
	case KeyAxisTop:
		return "axis-top"
	case KeyAxisBottom:
		return "axis-bottom"
	default:
		return "unknown"
	}
}

// Snapshot is one tick's input state. Treated as read-only after sampling;
// pass it by value.
type Snapshot struct {
	Buttons [ButtonCount]bool
	Held    [KeyCount]bool
	Pressed [KeyCount]bool

	Pointer      mgl32.Vec2
	PointerDelta mgl32.Vec2
	Scroll       float32
}

func (s Snapshot) IsButtonHeld(b Button) bool {
	return s.Buttons[b]
}

func (s Snapshot) IsKeyHeld(k Key) bool {
	return s.Held[k]
}

// WasKeyPressed reports a press edge that happened during this tick.
func (s Snapshot) WasKeyPressed(k Key) bool {
	return s.Pressed[k]
}

func (s Snapshot) PointerPosition() mgl32.Vec2 {
	return s.Pointer
}

func (s Snapshot) PointerDeltaSinceLastTick() mgl32.Vec2 {
	return s.PointerDelta
}

func (s Snapshot) ScrollDelta() float32 {
	return s.Scroll
}

// AnyMovementHeld reports whether any fly translation key is down.
func (s Snapshot) AnyMovementHeld() bool {
	return s.Held[KeyForward] || s.Held[KeyBack] ||
		s.Held[KeyLeft] || s.Held[KeyRight] ||
		s.Held[KeyUp] || s.Held[KeyDown]
}

// Sampler reads the device state once per tick.
type Sampler interface {
	Sample() Snapshot
}
