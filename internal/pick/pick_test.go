package pick

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/scene"
)

func addBox(s *scene.Scene, name string, pos, size mgl32.Vec3, selectable bool) *scene.Entity {
	e := scene.NewEntity(name)
	e.Position = pos
	n := scene.NewBox(name, size, scene.Color{})
	n.Selectable = selectable
	s.AttachRender(e, n)
	s.AddEntity(e)
	return e
}

func addSphere(s *scene.Scene, name string, pos mgl32.Vec3, radius float32) *scene.Entity {
	e := scene.NewEntity(name)
	e.Position = pos
	s.AttachRender(e, scene.NewSphere(name, radius, scene.Color{}))
	s.AddEntity(e)
	return e
}

func TestPickSkipsDecorationInFront(t *testing.T) {
	s := scene.NewScene("test")
	addBox(s, "grid", mgl32.Vec3{0, 0, 1}, mgl32.Vec3{100, 0.01, 100}, false)
	cube := addBox(s, "cube", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{2, 2, 2}, true)

	r := NewResolver(s)
	res := r.Pick(Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}})

	if res.Kind != Picked {
		t.Fatalf("Expected Picked, got %v", res.Kind)
	}
	if res.Hit.Entity != cube {
		t.Errorf("Expected the cube behind the grid, got %v", res.Hit.Entity)
	}
	if math.Abs(float64(res.Hit.Distance-4)) > 1e-4 {
		t.Errorf("Expected hit on the near face at distance 4, got %v", res.Hit.Distance)
	}
}

func TestPickNearestWins(t *testing.T) {
	s := scene.NewScene("test")
	far := addBox(s, "far", mgl32.Vec3{0, 0, 8}, mgl32.Vec3{2, 2, 2}, true)
	near := addBox(s, "near", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{2, 2, 2}, true)

	r := NewResolver(s)
	res := r.Pick(Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}})

	if res.Kind != Picked || res.Hit.Entity != near {
		t.Errorf("Expected the near cube, got %v", res.Hit.Entity)
	}
	_ = far
}

func TestMissAndIgnoredAreDistinct(t *testing.T) {
	s := scene.NewScene("test")
	addBox(s, "grid", mgl32.Vec3{0, -1, 0}, mgl32.Vec3{100, 0.01, 100}, false)

	r := NewResolver(s)

	onlyGrid := r.Pick(Ray{Origin: mgl32.Vec3{0, 1, 0}, Direction: mgl32.Vec3{0, -1, 0}})
	if onlyGrid.Kind != Ignored {
		t.Errorf("Expected Ignored when only decoration is hit, got %v", onlyGrid.Kind)
	}

	sky := r.Pick(Ray{Origin: mgl32.Vec3{0, 1, 0}, Direction: mgl32.Vec3{0, 1, 0}})
	if sky.Kind != Miss {
		t.Errorf("Expected Miss into empty space, got %v", sky.Kind)
	}
}

func TestNestedNodeResolvesToOwningEntity(t *testing.T) {
	s := scene.NewScene("test")
	lamp := scene.NewEntity("lamp")
	lamp.Position = mgl32.Vec3{0, 0, 5}

	base := scene.NewBox("base", mgl32.Vec3{1, 0.2, 1}, scene.Color{})
	bulb := scene.NewSphere("bulb", 0.3, scene.Color{})
	bulb.Offset = mgl32.Vec3{0, 2, 0}
	base.AddChild(bulb)
	s.AttachRender(lamp, base)
	s.AddEntity(lamp)

	r := NewResolver(s)
	res := r.Pick(Ray{Origin: mgl32.Vec3{0, 2, 0}, Direction: mgl32.Vec3{0, 0, 1}})

	if res.Kind != Picked {
		t.Fatalf("Expected Picked on the bulb, got %v", res.Kind)
	}
	if res.Hit.Node != bulb {
		t.Errorf("Expected the bulb node, got %v", res.Hit.Node.Name)
	}
	if res.Hit.Entity != lamp {
		t.Errorf("Expected the owning lamp entity, got %v", res.Hit.Entity)
	}
}

func TestSpherePickAndNormal(t *testing.T) {
	s := scene.NewScene("test")
	addSphere(s, "ball", mgl32.Vec3{0, 0, 5}, 1)

	r := NewResolver(s)
	res := r.Pick(Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}})

	if res.Kind != Picked {
		t.Fatalf("Expected Picked, got %v", res.Kind)
	}
	if math.Abs(float64(res.Hit.Distance-4)) > 1e-4 {
		t.Errorf("Expected entry at distance 4, got %v", res.Hit.Distance)
	}
	if res.Hit.Normal.Sub(mgl32.Vec3{0, 0, -1}).Len() > 1e-4 {
		t.Errorf("Expected the normal to face the ray origin, got %v", res.Hit.Normal)
	}

	miss := r.Pick(Ray{Origin: mgl32.Vec3{0, 2.5, 0}, Direction: mgl32.Vec3{0, 0, 1}})
	if miss.Kind != Miss {
		t.Errorf("Expected a grazing-offset ray to miss, got %v", miss.Kind)
	}
}

func TestBoxFaceNormal(t *testing.T) {
	s := scene.NewScene("test")
	addBox(s, "cube", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}, true)

	r := NewResolver(s)
	res := r.Pick(Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}})

	if res.Kind != Picked {
		t.Fatalf("Expected Picked, got %v", res.Kind)
	}
	if res.Hit.Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected +Z face normal, got %v", res.Hit.Normal)
	}
}

func TestBuildRayCenterAndFlip(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)

	center, ok := BuildRay(640, 360, 1280, 720, view, proj)
	if !ok {
		t.Fatal("Expected a valid ray")
	}
	if center.Direction.Sub(mgl32.Vec3{0, 0, -1}).Len() > 1e-4 {
		t.Errorf("Expected the center pixel to look straight at the target, got %v", center.Direction)
	}
	if center.Origin.Sub(mgl32.Vec3{0, 0, 10}).Len() > 0.2 {
		t.Errorf("Expected the ray to start at the camera, got %v", center.Origin)
	}

	// Pixels above the screen center must point upward after the Y flip.
	upper, ok := BuildRay(640, 100, 1280, 720, view, proj)
	if !ok {
		t.Fatal("Expected a valid ray")
	}
	if upper.Direction.Y() <= 0 {
		t.Errorf("Expected an upward ray for an upper pixel, got %v", upper.Direction)
	}
}

func TestBuildRayRejectsDegenerateInput(t *testing.T) {
	view := mgl32.Ident4()

	if _, ok := BuildRay(10, 10, 0, 0, view, mgl32.Ident4()); ok {
		t.Errorf("Expected failure for a zero-sized viewport")
	}
	if _, ok := BuildRay(10, 10, 1280, 720, view, mgl32.Mat4{}); ok {
		t.Errorf("Expected failure for a singular matrix")
	}
}

func TestPickAtThroughCameraMatrices(t *testing.T) {
	s := scene.NewScene("test")
	cube := addBox(s, "cube", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}, true)

	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)

	r := NewResolver(s)
	res := r.PickAt(640, 360, 1280, 720, view, proj)
	if res.Kind != Picked || res.Hit.Entity != cube {
		t.Errorf("Expected a center click to pick the cube, got %v", res.Kind)
	}

	miss := r.PickAt(640, 360, 1280, 720, view, mgl32.Mat4{})
	if miss.Kind != Miss {
		t.Errorf("Expected a degenerate projection to report a miss, got %v", miss.Kind)
	}
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Miss, "miss"},
		{Ignored, "ignored"},
		{Picked, "picked"},
	}
	for _, c := range cases {
		if c.kind.String() != c.want {
			t.Errorf("Expected %q, got %q", c.want, c.kind.String())
		}
	}
}
