package editor

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/pick"
	"sceneview/internal/scene"
)

const (
	gizmoLength    float32 = 2.0
	gizmoTipSize   float32 = 0.2
	gizmoHitDist   float32 = 0.3
	gizmoThickness float32 = 0.06
)

var gizmoAxes = [3]mgl32.Vec3{
	{1, 0, 0}, // X - red
	{0, 1, 0}, // Y - green
	{0, 0, 1}, // Z - blue
}

var gizmoColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// pickGizmoAxis returns the index of the gizmo axis closest to the
// mouse ray, or -1.
func (a *App) pickGizmoAxis(ray pick.Ray, center mgl32.Vec3) int {
	bestDist := float32(999.0)
	bestAxis := -1

	for i, axis := range gizmoAxes {
		_, t2, dist := closestPointBetweenRays(ray.Origin, ray.Direction, center, axis)
		if t2 > 0 && t2 < gizmoLength && dist < gizmoHitDist {
			if dist < bestDist {
				bestDist = dist
				bestAxis = i
			}
		}
	}
	return bestAxis
}

func (a *App) startDrag(axisIdx int, ray pick.Ray, target *scene.Entity) {
	axis := gizmoAxes[axisIdx]
	worldPos := target.WorldPosition()

	// Build a drag plane that contains the axis and faces the camera.
	// Looking straight down the axis leaves no plane to drag on.
	camPos, _ := a.displayPose()
	viewDir := worldPos.Sub(camPos).Normalize()
	cross1 := viewDir.Cross(axis)
	if cross1.Len() < 1e-6 {
		return
	}
	planeNormal := axis.Cross(cross1).Normalize()

	pt, ok := rayPlaneIntersect(ray.Origin, ray.Direction, worldPos, planeNormal)
	if !ok {
		return
	}

	a.dragging = true
	a.dragAxisIdx = axisIdx
	a.dragAxis = axis
	a.dragTarget = target
	a.dragInitPos = target.Position
	a.dragInitWorldPos = worldPos
	a.dragPlaneNormal = planeNormal
	a.dragStart = pt.Sub(worldPos).Dot(axis)
}

func (a *App) updateDrag(ray pick.Ray) {
	if a.dragTarget == nil {
		a.dragging = false
		return
	}

	pt, ok := rayPlaneIntersect(ray.Origin, ray.Direction, a.dragInitWorldPos, a.dragPlaneNormal)
	if !ok {
		return
	}

	currentT := pt.Sub(a.dragInitWorldPos).Dot(a.dragAxis)
	delta := currentT - a.dragStart
	worldDelta := a.dragAxis.Mul(delta)

	// Convert to local space if the entity has a parent.
	if parent := a.dragTarget.Parent; parent != nil {
		pr := parent.WorldRotation()
		inv := mgl32.Rotate3DX(mgl32.DegToRad(-pr.X())).
			Mul3(mgl32.Rotate3DY(mgl32.DegToRad(-pr.Y()))).
			Mul3(mgl32.Rotate3DZ(mgl32.DegToRad(-pr.Z())))
		localDelta := inv.Mul3x1(worldDelta)

		ps := parent.WorldScale()
		localDelta = mgl32.Vec3{
			localDelta.X() / ps.X(),
			localDelta.Y() / ps.Y(),
			localDelta.Z() / ps.Z(),
		}
		a.dragTarget.Position = a.dragInitPos.Add(localDelta)
	} else {
		a.dragTarget.Position = a.dragInitPos.Add(worldDelta)
	}
}

// drawGizmo draws the translate arrows over the active selection. Call
// inside BeginMode3D/EndMode3D.
func (a *App) drawGizmo() {
	active := a.sel.Active()
	if active == nil {
		return
	}

	// Disable depth testing so the gizmo always draws on top
	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()

	center := active.WorldPosition()
	for i, axis := range gizmoAxes {
		color := gizmoColors[i]
		if a.dragging && a.dragAxisIdx == i {
			color = rl.Yellow
		} else if !a.dragging && a.hoveredAxis == i {
			color = rl.Yellow
		}

		end := center.Add(axis.Mul(gizmoLength))
		rl.DrawCylinderEx(rlVec(center), rlVec(end), gizmoThickness, gizmoThickness, 8, color)
		tip := rl.Vector3{X: gizmoTipSize, Y: gizmoTipSize, Z: gizmoTipSize}
		rl.DrawCubeV(rlVec(end), tip, color)
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

// --- math helpers ---

// closestPointBetweenRays finds the closest approach between two rays.
// Returns (t1, t2, distance) where t1/t2 are parameters along each ray.
func closestPointBetweenRays(a, u, b, v mgl32.Vec3) (t1, t2, dist float32) {
	w := a.Sub(b)
	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	uw := u.Dot(w)
	vw := v.Dot(w)

	denom := uu*vv - uv*uv
	if denom < 1e-6 {
		return 0, 0, 999
	}

	t1 = (uv*vw - vv*uw) / denom
	t2 = (uu*vw - uv*uw) / denom

	p1 := a.Add(u.Mul(t1))
	p2 := b.Add(v.Mul(t2))
	dist = p1.Sub(p2).Len()
	return
}

// rayPlaneIntersect returns where a ray hits a plane (defined by point
// + normal).
func rayPlaneIntersect(rayOrigin, rayDir, planePoint, planeNormal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := rayDir.Dot(planeNormal)
	if math.IsNaN(float64(denom)) || math.Abs(float64(denom)) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := planePoint.Sub(rayOrigin).Dot(planeNormal) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return rayOrigin.Add(rayDir.Mul(t)), true
}
