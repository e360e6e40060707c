// Package scene holds the editor's scene model: a tree of logical
// entities, the render node trees they own, and the reverse index that
// maps any render node back to its owning entity. All geometry is plain
// mgl32 math so the model stays independent of the window layer.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the root container. Entities holds the top-level entities;
// nested entities hang off their parent's Children.
type Scene struct {
	Name     string
	Entities []*Entity

	owner map[*Node]*Entity
	byUID map[uint64]*Entity
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		owner: make(map[*Node]*Entity),
		byUID: make(map[uint64]*Entity),
	}
}

// AddEntity adds a top-level entity and indexes its whole subtree.
func (s *Scene) AddEntity(e *Entity) {
	if e == nil {
		return
	}
	s.Entities = append(s.Entities, e)
	s.index(e)
}

// RemoveEntity removes an entity (top-level or nested) and drops the
// index entries for its subtree.
func (s *Scene) RemoveEntity(e *Entity) {
	if e == nil {
		return
	}
	if e.Parent != nil {
		e.Parent.RemoveChild(e)
	} else {
		for i, root := range s.Entities {
			if root == e {
				s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
				break
			}
		}
	}
	s.unindex(e)
}

func (s *Scene) index(e *Entity) {
	s.byUID[e.UID] = e
	if e.render != nil {
		s.owner[e.render] = e
	}
	for _, c := range e.Children {
		s.index(c)
	}
}

func (s *Scene) unindex(e *Entity) {
	delete(s.byUID, e.UID)
	if e.render != nil {
		delete(s.owner, e.render)
	}
	for _, c := range e.Children {
		s.unindex(c)
	}
}

// AttachRender gives e the render tree rooted at n and records the
// ownership so picks on any node of the tree resolve back to e.
// Any previously attached tree is released first.
func (s *Scene) AttachRender(e *Entity, n *Node) {
	if e == nil {
		return
	}
	if e.render != nil {
		delete(s.owner, e.render)
	}
	e.render = n
	if n != nil {
		s.owner[n] = e
	}
}

// FindByUID returns the entity with the given UID, nil if absent.
func (s *Scene) FindByUID(uid uint64) *Entity {
	return s.byUID[uid]
}

// FindByName returns the first entity with the given name, depth-first.
func (s *Scene) FindByName(name string) *Entity {
	var found *Entity
	s.walk(func(e *Entity) bool {
		if e.Name == name {
			found = e
			return false
		}
		return true
	})
	return found
}

// EntityOwning resolves a render node, at any depth, to its owning
// entity. Returns nil for nodes not attached to the scene.
func (s *Scene) EntityOwning(n *Node) *Entity {
	if n == nil {
		return nil
	}
	return s.owner[n.Top()]
}

// Renderables collects every visible node with geometry, in scene order.
// Invisible nodes hide their subtree, and inactive entities contribute
// nothing.
func (s *Scene) Renderables() []*Node {
	var out []*Node
	s.walk(func(e *Entity) bool {
		if !e.Active {
			return false
		}
		if e.render != nil {
			collectNodes(e.render, &out)
		}
		return true
	})
	return out
}

func collectNodes(n *Node, out *[]*Node) {
	if !n.Visible {
		return
	}
	if n.Shape != ShapeNone {
		*out = append(*out, n)
	}
	for _, c := range n.Children {
		collectNodes(c, out)
	}
}

// walk visits entities depth-first. Returning false from visit skips
// the entity's children.
func (s *Scene) walk(visit func(*Entity) bool) {
	var rec func(*Entity)
	rec = func(e *Entity) {
		if !visit(e) {
			return
		}
		for _, c := range e.Children {
			rec(c)
		}
	}
	for _, root := range s.Entities {
		rec(root)
	}
}

// NodeWorldCenter returns a node's center in world space: the owning
// entity's world position plus the node's accumulated local offset.
func (s *Scene) NodeWorldCenter(n *Node) mgl32.Vec3 {
	off := n.LocalOffset()
	if e := s.owner[n.Top()]; e != nil {
		return e.WorldPosition().Add(off)
	}
	return off
}

// NodeWorldSize returns a box node's extents scaled by the owning
// entity's world scale. Sphere radii are not scaled.
func (s *Scene) NodeWorldSize(n *Node) mgl32.Vec3 {
	if e := s.owner[n.Top()]; e != nil {
		ws := e.WorldScale()
		return mgl32.Vec3{
			n.Size.X() * ws.X(),
			n.Size.Y() * ws.Y(),
			n.Size.Z() * ws.Z(),
		}
	}
	return n.Size
}
