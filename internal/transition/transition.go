// Package transition animates discrete camera jumps (frame-selection,
// axis-align) instead of snapping. The animator owns the displayed pose
// while it runs; navigation leaves the camera model alone until the end
// pose has been applied exactly.
package transition

import (
	"github.com/gen2brain/raylib-go/easings"
	"github.com/go-gl/mathgl/mgl32"
)

// State names the animator's two states.
type State uint8

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Animator interpolates position linearly and orientation along the
// shorter quaternion arc, both driven by an ease-in-out cubic progress
// curve. Starting while a run is active replaces it; the new run begins at
// the pose displayed at that instant.
type Animator struct {
	state State

	startPos mgl32.Vec3
	endPos   mgl32.Vec3
	startRot mgl32.Quat
	endRot   mgl32.Quat

	// endTarget is kept so the caller can resync spherical angles from the
	// final Cartesian pose once the run completes.
	endTarget mgl32.Vec3

	elapsed  float32
	duration float32

	curPos mgl32.Vec3
	curRot mgl32.Quat
}

// Start captures the displayed pose as the run's origin and animates
// toward endPos looking at endTarget over duration seconds.
func (a *Animator) Start(fromPos mgl32.Vec3, fromRot mgl32.Quat, endPos, endTarget mgl32.Vec3, duration float32) {
	if duration < 1e-4 {
		duration = 1e-4
	}

	endRot := mgl32.QuatLookAtV(endPos, endTarget, mgl32.Vec3{0, 1, 0})
	// The double cover makes -q the same rotation as q; flip the end so
	// slerp takes the shorter arc.
	if fromRot.Dot(endRot) < 0 {
		endRot = endRot.Scale(-1)
	}

	a.state = Animating
	a.startPos = fromPos
	a.startRot = fromRot
	a.endPos = endPos
	a.endRot = endRot
	a.endTarget = endTarget
	a.elapsed = 0
	a.duration = duration
	a.curPos = fromPos
	a.curRot = fromRot
}

// Advance moves the run forward by dt and returns the pose to display this
// tick. done is true exactly once, on the tick the run completes; that
// tick's pose is the end pose with no interpolation error.
func (a *Animator) Advance(dt float32) (pos mgl32.Vec3, rot mgl32.Quat, done bool) {
	if a.state != Animating {
		return a.curPos, a.curRot, false
	}

	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.state = Idle
		a.curPos = a.endPos
		a.curRot = a.endRot
		return a.endPos, a.endRot, true
	}

	eased := easings.CubicInOut(a.elapsed, 0, 1, a.duration)
	a.curPos = a.startPos.Add(a.endPos.Sub(a.startPos).Mul(eased))
	a.curRot = mgl32.QuatSlerp(a.startRot, a.endRot, eased)
	return a.curPos, a.curRot, false
}

func (a *Animator) State() State {
	return a.state
}

func (a *Animator) Active() bool {
	return a.state == Animating
}

// Current is the last displayed pose. Used to restart a run from where the
// camera visibly is when a new command interrupts.
func (a *Animator) Current() (mgl32.Vec3, mgl32.Quat) {
	return a.curPos, a.curRot
}

func (a *Animator) EndPosition() mgl32.Vec3 {
	return a.endPos
}

func (a *Animator) EndTarget() mgl32.Vec3 {
	return a.endTarget
}
