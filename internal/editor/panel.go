package editor

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Theme colors - dark with a slight blue tint
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder = rl.NewColor(255, 255, 255, 13)
)

// initRayguiStyle sets up the dark theme for the settings panel.
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawPanel draws the settings panel on the right edge. Slider writes
// go straight into the dispatcher config each frame.
func (a *App) drawPanel() {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	x := screenW - panelWidth

	rl.DrawRectangle(int32(x), topBarHeight, panelWidth, int32(screenH)-topBarHeight, colorBgPanel)
	rl.DrawRectangle(int32(x), topBarHeight, 1, int32(screenH)-topBarHeight, colorBorder)

	pad := x + 14
	w := float32(panelWidth - 28)
	y := float32(topBarHeight + 14)

	rl.DrawText("View Settings", int32(pad), int32(y), 18, colorAccentLight)
	y += 34

	cfg := a.dispatcher.Config()

	rl.DrawText("Pan sensitivity", int32(pad), int32(y), 14, colorTextMuted)
	y += 20
	cfg.PanSensitivity = gui.Slider(rl.Rectangle{X: pad, Y: y, Width: w, Height: 18},
		"", fmt.Sprintf("%.3f", cfg.PanSensitivity), cfg.PanSensitivity, 0.001, 0.05)
	y += 30

	rl.DrawText("Orbit sensitivity", int32(pad), int32(y), 14, colorTextMuted)
	y += 20
	cfg.OrbitSensitivity = gui.Slider(rl.Rectangle{X: pad, Y: y, Width: w, Height: 18},
		"", fmt.Sprintf("%.3f", cfg.OrbitSensitivity), cfg.OrbitSensitivity, 0.001, 0.02)
	y += 30

	rl.DrawText("Zoom sensitivity", int32(pad), int32(y), 14, colorTextMuted)
	y += 20
	cfg.ZoomSensitivity = gui.Slider(rl.Rectangle{X: pad, Y: y, Width: w, Height: 18},
		"", fmt.Sprintf("%.2f", cfg.ZoomSensitivity), cfg.ZoomSensitivity, 0.01, 0.5)
	y += 30

	rl.DrawText("Fly speed", int32(pad), int32(y), 14, colorTextMuted)
	y += 20
	a.targetSpeed = float64(gui.Slider(rl.Rectangle{X: pad, Y: y, Width: w, Height: 18},
		"", fmt.Sprintf("%.0f", a.targetSpeed), float32(a.targetSpeed), 1, 100))
	y += 36

	cfg.InvertLook = gui.CheckBox(rl.Rectangle{X: pad, Y: y, Width: 16, Height: 16},
		"Invert look", cfg.InvertLook)
	y += 28

	a.culling = gui.CheckBox(rl.Rectangle{X: pad, Y: y, Width: 16, Height: 16},
		"Frustum culling", a.culling)
	y += 28

	a.showGrid = gui.CheckBox(rl.Rectangle{X: pad, Y: y, Width: 16, Height: 16},
		"Show grid", a.showGrid)
	y += 36

	if gui.Button(rl.Rectangle{X: pad, Y: y, Width: w, Height: 26}, "Reset view") {
		a.resetView()
	}
	y += 34

	if gui.Button(rl.Rectangle{X: pad, Y: y, Width: w, Height: 26}, "Save scene") {
		if err := a.scene.Save(a.scenePath); err != nil {
			a.flash(fmt.Sprintf("Save failed: %v", err))
		} else {
			a.flash("Scene saved!")
		}
	}

	a.dispatcher.SetConfig(cfg)
}

// resetView puts the camera back at the default home pose.
func (a *App) resetView() {
	a.pose.SetFromCartesian(mgl32.Vec3{8, 6, 8}, mgl32.Vec3{0, 0, 0})
	a.flash("View reset")
}
