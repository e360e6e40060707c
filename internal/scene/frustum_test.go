package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testFrustum() Frustum {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	return ExtractFrustum(proj.Mul4(view))
}

func TestFrustumContainsSphere(t *testing.T) {
	f := testFrustum()

	if !f.ContainsSphere(mgl32.Vec3{0, 0, 0}, 1) {
		t.Errorf("Expected a sphere at the look target to be visible")
	}
	if f.ContainsSphere(mgl32.Vec3{0, 0, 200}, 1) {
		t.Errorf("Expected a sphere behind the camera to be culled")
	}
	if f.ContainsSphere(mgl32.Vec3{-100, 0, 0}, 1) {
		t.Errorf("Expected a sphere far off to the left to be culled")
	}
	// Center outside but radius reaching in
	if !f.ContainsSphere(mgl32.Vec3{-100, 0, 0}, 95) {
		t.Errorf("Expected a huge sphere overlapping the frustum to be visible")
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	if !f.ContainsPoint(mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected the look target to be inside")
	}
	if !f.ContainsPoint(mgl32.Vec3{0, 0, 9}) {
		t.Errorf("Expected a point just past the near plane to be inside")
	}
	if f.ContainsPoint(mgl32.Vec3{0, 0, 11}) {
		t.Errorf("Expected a point behind the camera to be outside")
	}
	if f.ContainsPoint(mgl32.Vec3{0, 50, 0}) {
		t.Errorf("Expected a point far above the view cone to be outside")
	}
}
