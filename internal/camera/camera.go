// Package camera holds the spherical camera model used by the viewport.
// A Pose tracks position and look-target in Cartesian space together with
// the derived spherical coordinates (yaw, pitch, distance) around the
// target. One conversion convention is used everywhere:
//
//	position = target + distance * (cosP*sinY, sinP, cosP*cosY)
//	yaw      = atan2(dx, dz)
//	pitch    = asin(dy / distance)
//
// with (dx, dy, dz) = position - target.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MinDistance is the floor for the camera-to-target distance. Keeps the
// asin division and the direction normalization away from zero.
const MinDistance = 1e-3

// DefaultPitchMargin keeps pitch off the +-pi/2 poles where the look-at
// basis degenerates (gimbal lock).
const DefaultPitchMargin = 0.01

type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32 // radians
	Pitch    float32 // radians

	// PitchMargin narrows the pitch clamp range to (-pi/2+m, pi/2-m).
	// Zero means DefaultPitchMargin.
	PitchMargin float32
}

func New(position, target mgl32.Vec3) *Pose {
	p := &Pose{}
	p.SetFromCartesian(position, target)
	return p
}

// SetFromCartesian adopts the given position/target pair and rederives
// distance, yaw and pitch from it. A pair closer than MinDistance is pushed
// apart along +Z so the angles stay defined.
func (p *Pose) SetFromCartesian(position, target mgl32.Vec3) {
	d := position.Sub(target)
	dist := d.Len()
	if dist < MinDistance {
		dist = MinDistance
		d = mgl32.Vec3{0, 0, dist}
		position = target.Add(d)
	}

	p.Position = position
	p.Target = target
	p.Distance = dist
	p.Yaw = float32(math.Atan2(float64(d.X()), float64(d.Z())))

	// Guard the asin domain against float error on near-vertical pairs.
	ratio := d.Y() / dist
	if ratio > 1 {
		ratio = 1
	}
	if ratio < -1 {
		ratio = -1
	}
	p.Pitch = float32(math.Asin(float64(ratio)))
}

// SetFromSpherical adopts the given angles, distance and target and
// recomputes the Cartesian position. Pitch is clamped to the margin range,
// distance to MinDistance.
func (p *Pose) SetFromSpherical(yaw, pitch, distance float32, target mgl32.Vec3) {
	limit := p.pitchLimit()
	if pitch > limit {
		pitch = limit
	}
	if pitch < -limit {
		pitch = -limit
	}
	if distance < MinDistance {
		distance = MinDistance
	}

	p.Yaw = yaw
	p.Pitch = pitch
	p.Distance = distance
	p.Target = target
	p.Position = target.Add(Direction(yaw, pitch).Mul(distance))
}

// PitchLimit reports the largest magnitude pitch the pose accepts.
func (p *Pose) PitchLimit() float32 {
	return p.pitchLimit()
}

func (p *Pose) pitchLimit() float32 {
	margin := p.PitchMargin
	if margin <= 0 {
		margin = DefaultPitchMargin
	}
	return float32(math.Pi/2) - margin
}

// Direction returns the unit vector pointing from the target toward a
// camera at the given spherical angles.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	cy := float32(math.Cos(float64(yaw)))
	sy := float32(math.Sin(float64(yaw)))
	cp := float32(math.Cos(float64(pitch)))
	sp := float32(math.Sin(float64(pitch)))
	return mgl32.Vec3{cp * sy, sp, cp * cy}
}

// Forward is the unit view direction, from position toward target.
func (p *Pose) Forward() mgl32.Vec3 {
	return Direction(p.Yaw, p.Pitch).Mul(-1)
}

// Right is the camera-local right axis on the world-up reference. The pitch
// clamp keeps Forward off the vertical so the cross product stays valid.
func (p *Pose) Right() mgl32.Vec3 {
	return p.Forward().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// Up is the camera-local up axis.
func (p *Pose) Up() mgl32.Vec3 {
	return p.Right().Cross(p.Forward())
}

// Orientation is the pose's rotation as a quaternion, -Z forward base.
func (p *Pose) Orientation() mgl32.Quat {
	return mgl32.QuatLookAtV(p.Position, p.Target, mgl32.Vec3{0, 1, 0})
}
