package pick

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// raycastBox intersects a ray with a world-axis-aligned box using the
// slab method. size is the full extents; absolute values handle negative
// scales.
func raycastBox(origin, direction, center, size mgl32.Vec3, maxDistance float32) (Hit, bool) {
	half := mgl32.Vec3{abs(size.X()) / 2, abs(size.Y()) / 2, abs(size.Z()) / 2}
	min := center.Sub(half)
	max := center.Add(half)

	var tmin, tmax float32

	// X slab
	if direction.X() != 0 {
		t1 := (min.X() - origin.X()) / direction.X()
		t2 := (max.X() - origin.X()) / direction.X()
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X() < min.X() || origin.X() > max.X() {
		return Hit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y() != 0 {
		t1 := (min.Y() - origin.Y()) / direction.Y()
		t2 := (max.Y() - origin.Y()) / direction.Y()
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y() < min.Y() || origin.Y() > max.Y() {
		return Hit{}, false
	}

	if tmin > tmax {
		return Hit{}, false
	}

	// Z slab
	if direction.Z() != 0 {
		t1 := (min.Z() - origin.Z()) / direction.Z()
		t2 := (max.Z() - origin.Z()) / direction.Z()
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z() < min.Z() || origin.Z() > max.Z() {
		return Hit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := origin.Add(direction.Mul(t))

	// Normal from whichever face the hit point lies on
	var normal mgl32.Vec3
	epsilon := float32(0.001)
	if abs(point.X()-min.X()) < epsilon {
		normal = mgl32.Vec3{-1, 0, 0}
	} else if abs(point.X()-max.X()) < epsilon {
		normal = mgl32.Vec3{1, 0, 0}
	} else if abs(point.Y()-min.Y()) < epsilon {
		normal = mgl32.Vec3{0, -1, 0}
	} else if abs(point.Y()-max.Y()) < epsilon {
		normal = mgl32.Vec3{0, 1, 0}
	} else if abs(point.Z()-min.Z()) < epsilon {
		normal = mgl32.Vec3{0, 0, -1}
	} else {
		normal = mgl32.Vec3{0, 0, 1}
	}

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

// raycastSphere intersects a ray with a sphere by solving the quadratic
// for the entry and exit points.
func raycastSphere(origin, direction, center mgl32.Vec3, radius, maxDistance float32) (Hit, bool) {
	oc := origin.Sub(center)
	a := direction.Dot(direction)
	b := 2.0 * oc.Dot(direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := origin.Add(direction.Mul(t))
	normal := point.Sub(center).Normalize()

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
