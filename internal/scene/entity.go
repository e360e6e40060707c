package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Entity is a logical object in the scene hierarchy. Entities form a
// parent/child tree and may own a render node tree (see Node) that
// carries their visual representation.
type Entity struct {
	UID      uint64
	Name     string
	Tags     []string
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in degrees, applied X then Y then Z
	Scale    mgl32.Vec3
	Active   bool

	Parent   *Entity
	Children []*Entity

	render *Node
}

var nextUID uint64

// NewEntity creates an entity with a fresh UID and identity transform.
func NewEntity(name string) *Entity {
	nextUID++
	return &Entity{
		UID:    nextUID,
		Name:   name,
		Scale:  mgl32.Vec3{1, 1, 1},
		Active: true,
	}
}

// AddChild parents child under e. A child already parented elsewhere is
// detached from its old parent first.
func (e *Entity) AddChild(child *Entity) {
	if child == nil || child == e {
		return
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = e
	e.Children = append(e.Children, child)
}

// RemoveChild detaches child from e. The child keeps its local transform,
// so it may jump in world space.
func (e *Entity) RemoveChild(child *Entity) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// HasTag reports whether the entity carries the given tag.
func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Render returns the entity's top-level render node, nil for logic-only
// entities.
func (e *Entity) Render() *Node {
	return e.render
}

// WorldPosition returns the entity's position in world space, walking up
// the parent chain. The local position is scaled by the parent's world
// scale, rotated by the parent's world rotation (X then Y then Z), then
// offset by the parent's world position.
func (e *Entity) WorldPosition() mgl32.Vec3 {
	if e.Parent == nil {
		return e.Position
	}

	ps := e.Parent.WorldScale()
	scaled := mgl32.Vec3{
		e.Position.X() * ps.X(),
		e.Position.Y() * ps.Y(),
		e.Position.Z() * ps.Z(),
	}

	pr := e.Parent.WorldRotation()
	rot := mgl32.Rotate3DZ(mgl32.DegToRad(pr.Z())).
		Mul3(mgl32.Rotate3DY(mgl32.DegToRad(pr.Y()))).
		Mul3(mgl32.Rotate3DX(mgl32.DegToRad(pr.X())))

	return e.Parent.WorldPosition().Add(rot.Mul3x1(scaled))
}

// WorldRotation returns the accumulated Euler rotation in degrees.
func (e *Entity) WorldRotation() mgl32.Vec3 {
	if e.Parent == nil {
		return e.Rotation
	}
	return e.Parent.WorldRotation().Add(e.Rotation)
}

// WorldScale returns the componentwise product of scales up the chain.
func (e *Entity) WorldScale() mgl32.Vec3 {
	if e.Parent == nil {
		return e.Scale
	}
	ps := e.Parent.WorldScale()
	return mgl32.Vec3{
		ps.X() * e.Scale.X(),
		ps.Y() * e.Scale.Y(),
		ps.Z() * e.Scale.Z(),
	}
}
