// Package pick turns viewport clicks into scene hits. A pixel becomes a
// world-space ray through the inverse view-projection, the ray is tested
// against every renderable node, and the nearest selectable hit wins.
// Decoration nodes never win a pick but still distinguish an ignored
// click from a miss into empty space.
package pick

import (
	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/scene"
)

// MaxDistance bounds how far a pick ray reaches.
const MaxDistance = 1000.0

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Kind classifies a pick outcome.
type Kind uint8

const (
	// Miss means the ray hit nothing at all. Callers usually clear the
	// selection on a miss.
	Miss Kind = iota
	// Ignored means the ray only hit decoration, such as the grid.
	// Callers leave the selection alone.
	Ignored
	// Picked means the ray hit selectable geometry.
	Picked
)

func (k Kind) String() string {
	switch k {
	case Miss:
		return "miss"
	case Ignored:
		return "ignored"
	case Picked:
		return "picked"
	}
	return "unknown"
}

// Hit describes the nearest selectable intersection.
type Hit struct {
	Node     *scene.Node
	Entity   *scene.Entity
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// Result is the outcome of a pick. Hit is only meaningful when Kind is
// Picked.
type Result struct {
	Kind Kind
	Hit  Hit
}

// BuildRay converts a pixel position into a world-space ray. The pixel
// maps to normalized device coordinates with Y flipped so screen-up is
// positive, then the near and far plane points are unprojected through
// the inverse view-projection. Returns false for a degenerate viewport
// or a non-invertible matrix.
func BuildRay(px, py, width, height float32, view, proj mgl32.Mat4) (Ray, bool) {
	if width <= 0 || height <= 0 {
		return Ray{}, false
	}

	nx := 2*px/width - 1
	ny := 1 - 2*py/height

	inv := proj.Mul4(view).Inv()
	if inv == (mgl32.Mat4{}) {
		return Ray{}, false
	}

	near := inv.Mul4x1(mgl32.Vec4{nx, ny, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{nx, ny, 1, 1})
	if near.W() == 0 || far.W() == 0 {
		return Ray{}, false
	}

	p0 := near.Vec3().Mul(1 / near.W())
	p1 := far.Vec3().Mul(1 / far.W())

	dir := p1.Sub(p0)
	if dir.Len() == 0 {
		return Ray{}, false
	}

	return Ray{Origin: p0, Direction: dir.Normalize()}, true
}

// Resolver picks against a scene.
type Resolver struct {
	scene *scene.Scene
}

func NewResolver(s *scene.Scene) *Resolver {
	return &Resolver{scene: s}
}

// PickAt builds a ray for the pixel and resolves it. A ray that cannot
// be built counts as a miss.
func (r *Resolver) PickAt(px, py, width, height float32, view, proj mgl32.Mat4) Result {
	ray, ok := BuildRay(px, py, width, height, view, proj)
	if !ok {
		return Result{Kind: Miss}
	}
	return r.Pick(ray)
}

// Pick tests the ray against every renderable node and returns the
// nearest selectable hit. Decoration nodes are skipped, not occluding:
// a selectable hit behind the grid still wins. Ties at identical
// distance keep the earlier node in scene order.
func (r *Resolver) Pick(ray Ray) Result {
	var closest Hit
	closest.Distance = MaxDistance
	found := false
	decorated := false

	for _, n := range r.scene.Renderables() {
		hit, ok := r.intersectNode(ray, n)
		if !ok {
			continue
		}
		if !n.Selectable {
			decorated = true
			continue
		}
		if hit.Distance < closest.Distance {
			closest = hit
			closest.Node = n
			closest.Entity = r.scene.EntityOwning(n)
			found = true
		}
	}

	if found {
		return Result{Kind: Picked, Hit: closest}
	}
	if decorated {
		return Result{Kind: Ignored}
	}
	return Result{Kind: Miss}
}

func (r *Resolver) intersectNode(ray Ray, n *scene.Node) (Hit, bool) {
	center := r.scene.NodeWorldCenter(n)
	switch n.Shape {
	case scene.ShapeBox:
		return raycastBox(ray.Origin, ray.Direction, center, r.scene.NodeWorldSize(n), MaxDistance)
	case scene.ShapeSphere:
		return raycastSphere(ray.Origin, ray.Direction, center, n.Radius, MaxDistance)
	}
	return Hit{}, false
}
