package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane in 3D space (ax + by + cz + d = 0)
type plane struct {
	normal   mgl32.Vec3
	distance float32
}

// ExtractFrustum extracts frustum planes from a combined
// projection*view matrix using the Gribb/Hartmann method.
func ExtractFrustum(vp mgl32.Mat4) Frustum {
	var f Frustum

	// Left plane: row4 + row1
	f.planes[0] = normalizePlane(plane{
		normal:   mgl32.Vec3{vp[3] + vp[0], vp[7] + vp[4], vp[11] + vp[8]},
		distance: vp[15] + vp[12],
	})

	// Right plane: row4 - row1
	f.planes[1] = normalizePlane(plane{
		normal:   mgl32.Vec3{vp[3] - vp[0], vp[7] - vp[4], vp[11] - vp[8]},
		distance: vp[15] - vp[12],
	})

	// Bottom plane: row4 + row2
	f.planes[2] = normalizePlane(plane{
		normal:   mgl32.Vec3{vp[3] + vp[1], vp[7] + vp[5], vp[11] + vp[9]},
		distance: vp[15] + vp[13],
	})

	// Top plane: row4 - row2
	f.planes[3] = normalizePlane(plane{
		normal:   mgl32.Vec3{vp[3] - vp[1], vp[7] - vp[5], vp[11] - vp[9]},
		distance: vp[15] - vp[13],
	})

	// Near plane: row4 + row3
	f.planes[4] = normalizePlane(plane{
		normal:   mgl32.Vec3{vp[3] + vp[2], vp[7] + vp[6], vp[11] + vp[10]},
		distance: vp[15] + vp[14],
	})

	// Far plane: row4 - row3
	f.planes[5] = normalizePlane(plane{
		normal:   mgl32.Vec3{vp[3] - vp[2], vp[7] - vp[6], vp[11] - vp[10]},
		distance: vp[15] - vp[14],
	})

	return f
}

func normalizePlane(p plane) plane {
	length := p.normal.Len()
	if length == 0 {
		return p
	}
	return plane{
		normal:   p.normal.Mul(1.0 / length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum.
// Returns true if the sphere should be rendered.
func (f *Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for i := 0; i < 6; i++ {
		// Distance from center to plane
		dist := f.planes[i].normal.Dot(center) + f.planes[i].distance
		// If sphere is completely behind any plane, it's outside
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f *Frustum) ContainsPoint(point mgl32.Vec3) bool {
	for i := 0; i < 6; i++ {
		dist := f.planes[i].normal.Dot(point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}
