package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Shape selects the primitive a render node draws and picks against.
type Shape uint8

const (
	ShapeNone Shape = iota // grouping node, no geometry
	ShapeBox
	ShapeSphere
)

// Color is an RGBA color. Values mirror the raylib palette so scene
// files stay readable by name (see colorByName).
type Color struct {
	R, G, B, A uint8
}

// Node is a render-tree node. The top node of a tree is registered with
// the scene and owned by exactly one entity; child nodes describe
// composite visuals and resolve to the same owner when picked.
//
// Selectable distinguishes pickable geometry from decoration such as
// the ground grid. A ray that only hits non-selectable nodes reports
// an ignored pick instead of a miss.
type Node struct {
	Name       string
	Offset     mgl32.Vec3 // local offset from the parent node, or from the owner entity for a top node
	Shape      Shape
	Size       mgl32.Vec3 // full box extents, ShapeBox only
	Radius     float32    // ShapeSphere only
	Color      Color
	Selectable bool
	Visible    bool

	Parent   *Node
	Children []*Node
}

// NewNode creates a visible, selectable node.
func NewNode(name string, shape Shape) *Node {
	return &Node{
		Name:       name,
		Shape:      shape,
		Selectable: true,
		Visible:    true,
	}
}

// NewBox creates a box node with the given full extents.
func NewBox(name string, size mgl32.Vec3, color Color) *Node {
	n := NewNode(name, ShapeBox)
	n.Size = size
	n.Color = color
	return n
}

// NewSphere creates a sphere node with the given radius.
func NewSphere(name string, radius float32, color Color) *Node {
	n := NewNode(name, ShapeSphere)
	n.Radius = radius
	n.Color = color
	return n
}

// AddChild parents child under n.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// RemoveChild detaches child from n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Top walks up the parent chain and returns the tree's top node.
func (n *Node) Top() *Node {
	top := n
	for top.Parent != nil {
		top = top.Parent
	}
	return top
}

// LocalOffset returns the node's offset accumulated up to the top node,
// i.e. its position relative to the owning entity.
func (n *Node) LocalOffset() mgl32.Vec3 {
	off := n.Offset
	for p := n.Parent; p != nil; p = p.Parent {
		off = off.Add(p.Offset)
	}
	return off
}
