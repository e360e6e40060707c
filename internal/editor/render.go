package editor

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/scene"
)

// drawScene draws the grid and every renderable node, with frustum
// culling when enabled. Internal entities such as the grid's pick plane
// are drawn as grid lines instead of solid geometry.
func (a *App) drawScene() {
	if a.showGrid {
		rl.DrawGrid(60, 1.0)
	}

	var frustum scene.Frustum
	if a.culling {
		view, proj := a.viewProj()
		frustum = scene.ExtractFrustum(proj.Mul4(view))
	}
	a.culled = 0

	for _, n := range a.scene.Renderables() {
		owner := a.scene.EntityOwning(n)
		if owner != nil && owner.HasTag(scene.TagInternal) {
			continue
		}

		center := a.scene.NodeWorldCenter(n)
		if a.culling && !frustum.ContainsSphere(center, a.nodeRadius(n)) {
			a.culled++
			continue
		}

		selected := owner != nil && a.sel.IsSelected(owner)
		a.drawNode(n, center, selected)
	}
}

func (a *App) drawNode(n *scene.Node, center mgl32.Vec3, selected bool) {
	pos := rlVec(center)
	color := rlColor(n.Color)

	switch n.Shape {
	case scene.ShapeBox:
		size := rlVec(a.scene.NodeWorldSize(n))
		rl.DrawCubeV(pos, size, color)
		rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.35))
		if selected {
			rl.DrawCubeWiresV(pos, size, rl.Yellow)
		}
	case scene.ShapeSphere:
		rl.DrawSphere(pos, n.Radius, color)
		if selected {
			rl.DrawSphereWires(pos, n.Radius, 8, 8, rl.Yellow)
		}
	}
}

// nodeRadius is the bounding sphere used for culling.
func (a *App) nodeRadius(n *scene.Node) float32 {
	if n.Shape == scene.ShapeSphere {
		return n.Radius
	}
	return a.scene.NodeWorldSize(n).Len() / 2
}

func (a *App) drawHUD() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	// Top bar
	rl.DrawRectangle(0, 0, screenW, topBarHeight, colorBgDark)
	rl.DrawRectangle(0, topBarHeight-1, screenW, 1, colorBorder)

	rl.DrawText(windowTitle, 12, 7, 22, colorAccent)

	modeText := a.mode.String()
	if a.anim.Active() {
		modeText = "transition"
	}
	rl.DrawText(fmt.Sprintf("Mode: %s", modeText), 160, 9, 18, colorTextSecondary)

	selText := "Nothing selected"
	if active := a.sel.Active(); active != nil {
		selText = active.Name
		if a.sel.Count() > 1 {
			selText = fmt.Sprintf("%s +%d", active.Name, a.sel.Count()-1)
		}
	}
	rl.DrawText(selText, 300, 9, 18, colorTextMuted)

	helpText := "RMB: fly  MMB: pan  Alt+LMB: orbit  F: frame  Alt+1-6: views  Tab: settings"
	rl.DrawText(helpText, 470, 9, 18, colorTextMuted)

	rl.DrawText(fmt.Sprintf("Dist: %.1f", a.pose.Distance), screenW-230, 9, 18, colorTextMuted)
	rl.DrawText(fmt.Sprintf("Speed: %.0f", a.speed), screenW-120, 9, 18, colorTextMuted)

	// Status message flash (below top bar)
	if a.statusMsg != "" && rl.GetTime()-a.statusTime < 2.0 {
		color := rl.NewColor(100, 220, 100, 255)
		if strings.Contains(a.statusMsg, "failed") {
			color = rl.NewColor(255, 120, 120, 255)
		}
		rl.DrawText(a.statusMsg, screenW/2-50, topBarHeight+8, 16, color)
	}

	if a.culling {
		rl.DrawText(fmt.Sprintf("Culled: %d", a.culled), 10, screenH-44, 16, colorTextMuted)
	}
	rl.DrawFPS(10, screenH-24)
}
