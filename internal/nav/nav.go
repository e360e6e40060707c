// Package nav turns per-tick input snapshots into camera motion. Exactly
// one continuous mode (pan, orbit, fly, look) runs per tick; zoom and the
// single-shot commands (frame-selection, axis-align) are evaluated every
// tick on top of it. Discrete jumps go through the transition animator
// instead of snapping.
package nav

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/camera"
	"sceneview/internal/input"
	"sceneview/internal/transition"
)

// Mode is the single continuous behavior chosen for one tick. It is
// recomputed from the snapshot each tick rather than tracked as separate
// flags, so two modes can never be active at once.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModePan
	ModeOrbit
	ModeFly
	ModeLook
)

func (m Mode) String() string {
	switch m {
	case ModePan:
		return "pan"
	case ModeOrbit:
		return "orbit"
	case ModeFly:
		return "fly"
	case ModeLook:
		return "look"
	default:
		return "idle"
	}
}

// Config scales raw input into motion. Plain numbers, no behavior.
type Config struct {
	PanSensitivity   float32
	OrbitSensitivity float32 // radians per pixel, shared by orbit and look
	ZoomSensitivity  float32
	MinDistance      float32
	MaxDistance      float32
	FlySpeed         float32 // units per second
	SprintMultiplier float32
	FrameMinDistance float32
	TransitionTime   float32 // seconds
	PitchEpsilon     float32 // radians kept clear of +-pi/2
	InvertLook       bool
}

func DefaultConfig() Config {
	return Config{
		PanSensitivity:   0.01,
		OrbitSensitivity: 0.005,
		ZoomSensitivity:  0.1,
		MinDistance:      0.2,
		MaxDistance:      400,
		FlySpeed:         10,
		SprintMultiplier: 3,
		FrameMinDistance: 3,
		TransitionTime:   0.3,
		PitchEpsilon:     0.01,
	}
}

// FrameSource supplies the world point the frame command centers on.
type FrameSource interface {
	Center() (mgl32.Vec3, bool)
}

// Classify picks the tick's continuous mode. First match wins: pan, orbit,
// fly, look, idle.
func Classify(snap input.Snapshot) Mode {
	switch {
	case snap.IsButtonHeld(input.ButtonMiddle),
		snap.IsButtonHeld(input.ButtonSecondary) && snap.IsKeyHeld(input.KeyPan):
		return ModePan
	case snap.IsButtonHeld(input.ButtonPrimary) && snap.IsKeyHeld(input.KeyOrbit):
		return ModeOrbit
	case snap.IsButtonHeld(input.ButtonSecondary) && snap.AnyMovementHeld():
		return ModeFly
	case snap.IsButtonHeld(input.ButtonSecondary):
		return ModeLook
	default:
		return ModeIdle
	}
}

// Dispatcher owns the tick-by-tick mutation of one camera pose. All
// collaborators arrive at construction; there is no global lookup.
type Dispatcher struct {
	pose  *camera.Pose
	anim  *transition.Animator
	frame FrameSource
	cfg   Config

	mode Mode
}

func NewDispatcher(pose *camera.Pose, anim *transition.Animator, frame FrameSource, cfg Config) *Dispatcher {
	pose.PitchMargin = cfg.PitchEpsilon
	return &Dispatcher{pose: pose, anim: anim, frame: frame, cfg: cfg}
}

// Update runs one simulation tick and returns the mode that executed.
// While a transition is animating the continuous modes and zoom are
// suppressed; the single-shot commands still fire and restart the
// animation from the pose displayed at that instant.
func (d *Dispatcher) Update(snap input.Snapshot, dt float32) Mode {
	d.mode = ModeIdle

	if !d.anim.Active() {
		d.mode = Classify(snap)
		switch d.mode {
		case ModePan:
			d.pan(snap)
		case ModeOrbit:
			d.orbit(snap)
		case ModeFly:
			d.fly(snap, dt)
		case ModeLook:
			d.look(snap)
		}

		if snap.ScrollDelta() != 0 {
			d.zoom(snap.ScrollDelta())
		}
	}

	if snap.WasKeyPressed(input.KeyFrame) {
		d.FrameSelection()
	}
	if snap.IsKeyHeld(input.KeyAxes) {
		d.axisAlign(snap)
	}

	return d.mode
}

// Mode is the mode executed by the last Update.
func (d *Dispatcher) Mode() Mode {
	return d.mode
}

func (d *Dispatcher) Config() Config {
	return d.cfg
}

func (d *Dispatcher) SetConfig(cfg Config) {
	d.cfg = cfg
	d.pose.PitchMargin = cfg.PitchEpsilon
}

func (d *Dispatcher) Pose() *camera.Pose {
	return d.pose
}

// pan moves position and target together along the camera's right/up
// plane. The displacement scales with distance so the apparent on-screen
// speed stays constant however far out the camera sits.
func (d *Dispatcher) pan(snap input.Snapshot) {
	delta := snap.PointerDeltaSinceLastTick()
	if delta.X() == 0 && delta.Y() == 0 {
		return
	}

	scale := d.cfg.PanSensitivity * d.pose.Distance
	shift := d.pose.Right().Mul(-delta.X() * scale).
		Add(d.pose.Up().Mul(delta.Y() * scale))
	d.pose.SetFromCartesian(d.pose.Position.Add(shift), d.pose.Target.Add(shift))
}

// orbit swings the camera around a fixed target.
func (d *Dispatcher) orbit(snap input.Snapshot) {
	delta := snap.PointerDeltaSinceLastTick()
	yaw := d.pose.Yaw + delta.X()*d.cfg.OrbitSensitivity
	pitch := d.pose.Pitch - delta.Y()*d.cfg.OrbitSensitivity
	d.pose.SetFromSpherical(yaw, pitch, d.pose.Distance, d.pose.Target)
}

// look turns the view in place, first-person style: position holds, the
// target swings to the far side of the updated angles.
func (d *Dispatcher) look(snap input.Snapshot) {
	yaw, pitch := d.lookAngles(snap)
	d.setLook(yaw, pitch)
}

// fly is look plus translation along the camera forward/right axes and
// world up, driven by the held movement keys.
func (d *Dispatcher) fly(snap input.Snapshot, dt float32) {
	yaw, pitch := d.lookAngles(snap)
	d.setLook(yaw, pitch)

	speed := d.cfg.FlySpeed
	if snap.IsKeyHeld(input.KeySprint) {
		speed *= d.cfg.SprintMultiplier
	}

	forward := d.pose.Forward()
	right := d.pose.Right()
	up := mgl32.Vec3{0, 1, 0}

	var move mgl32.Vec3
	if snap.IsKeyHeld(input.KeyForward) {
		move = move.Add(forward)
	}
	if snap.IsKeyHeld(input.KeyBack) {
		move = move.Sub(forward)
	}
	if snap.IsKeyHeld(input.KeyRight) {
		move = move.Add(right)
	}
	if snap.IsKeyHeld(input.KeyLeft) {
		move = move.Sub(right)
	}
	if snap.IsKeyHeld(input.KeyUp) {
		move = move.Add(up)
	}
	if snap.IsKeyHeld(input.KeyDown) {
		move = move.Sub(up)
	}

	// Normalize so diagonals are no faster than straight moves.
	if move.Len() > 0 {
		move = move.Normalize().Mul(speed * dt)
		d.pose.SetFromCartesian(d.pose.Position.Add(move), d.pose.Target.Add(move))
	}
}

// zoom scales the distance multiplicatively and re-derives the position.
// Target and angles are untouched.
func (d *Dispatcher) zoom(scroll float32) {
	dist := d.pose.Distance * (1 + scroll*d.cfg.ZoomSensitivity)
	if dist < d.cfg.MinDistance {
		dist = d.cfg.MinDistance
	}
	if dist > d.cfg.MaxDistance {
		dist = d.cfg.MaxDistance
	}
	d.pose.SetFromSpherical(d.pose.Yaw, d.pose.Pitch, dist, d.pose.Target)
}

// lookAngles applies the first-person drag signs: the view turns with the
// pointer rather than the camera orbiting with it.
func (d *Dispatcher) lookAngles(snap input.Snapshot) (yaw, pitch float32) {
	delta := snap.PointerDeltaSinceLastTick()
	yaw = d.pose.Yaw - delta.X()*d.cfg.OrbitSensitivity

	vertical := delta.Y()
	if d.cfg.InvertLook {
		vertical = -vertical
	}
	pitch = d.pose.Pitch + vertical*d.cfg.OrbitSensitivity
	return yaw, pitch
}

func (d *Dispatcher) setLook(yaw, pitch float32) {
	limit := d.pose.PitchLimit()
	if pitch > limit {
		pitch = limit
	}
	if pitch < -limit {
		pitch = -limit
	}

	position := d.pose.Position
	target := position.Sub(camera.Direction(yaw, pitch).Mul(d.pose.Distance))
	d.pose.SetFromCartesian(position, target)
}

// FrameSelection retargets the camera on the selection center (world
// origin when nothing is selected), keeps the viewing direction, and moves
// there as a transition.
func (d *Dispatcher) FrameSelection() {
	var center mgl32.Vec3
	if d.frame != nil {
		if c, ok := d.frame.Center(); ok {
			center = c
		}
	}

	dist := d.pose.Distance
	if dist < d.cfg.FrameMinDistance {
		dist = d.cfg.FrameMinDistance
	}

	end := center.Add(camera.Direction(d.pose.Yaw, d.pose.Pitch).Mul(dist))
	d.startTransition(end, center)
}

// AlignToAxis moves the camera onto one of the six cardinal view
// directions around the current target, as a transition. Top and bottom
// land at the pitch limit rather than the exact pole.
func (d *Dispatcher) AlignToAxis(key input.Key) {
	yaw, pitch, ok := d.axisAngles(key)
	if !ok {
		return
	}
	end := d.pose.Target.Add(camera.Direction(yaw, pitch).Mul(d.pose.Distance))
	d.startTransition(end, d.pose.Target)
}

func (d *Dispatcher) axisAlign(snap input.Snapshot) {
	for _, k := range []input.Key{
		input.KeyAxisFront, input.KeyAxisBack,
		input.KeyAxisRight, input.KeyAxisLeft,
		input.KeyAxisTop, input.KeyAxisBottom,
	} {
		if snap.WasKeyPressed(k) {
			d.AlignToAxis(k)
			return
		}
	}
}

func (d *Dispatcher) axisAngles(key input.Key) (yaw, pitch float32, ok bool) {
	limit := d.pose.PitchLimit()
	switch key {
	case input.KeyAxisFront:
		return 0, 0, true
	case input.KeyAxisBack:
		return math.Pi, 0, true
	case input.KeyAxisRight:
		return math.Pi / 2, 0, true
	case input.KeyAxisLeft:
		return -math.Pi / 2, 0, true
	case input.KeyAxisTop:
		// Keep the current yaw so the top view has a stable heading.
		return d.pose.Yaw, limit, true
	case input.KeyAxisBottom:
		return d.pose.Yaw, -limit, true
	}
	return 0, 0, false
}

func (d *Dispatcher) startTransition(endPos, endTarget mgl32.Vec3) {
	fromPos := d.pose.Position
	fromRot := d.pose.Orientation()
	if d.anim.Active() {
		fromPos, fromRot = d.anim.Current()
	}
	d.anim.Start(fromPos, fromRot, endPos, endTarget, d.cfg.TransitionTime)
}
