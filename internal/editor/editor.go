// Package editor is the raylib shell around the viewport controller:
// it owns the window, samples input into snapshots, runs the navigation
// dispatcher and transition animator, resolves picks into the selection,
// and draws the scene with the gizmo and settings panel on top.
package editor

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/camera"
	"sceneview/internal/input"
	"sceneview/internal/nav"
	"sceneview/internal/pick"
	"sceneview/internal/scene"
	"sceneview/internal/selection"
	"sceneview/internal/transition"
)

const (
	windowTitle   = "Scene View"
	defaultWidth  = 1280
	defaultHeight = 720
	topBarHeight  = 36
	panelWidth    = 260
	cameraFovy    = 45.0
	cameraNear    = 0.1
	cameraFar     = 1000.0
)

// Options configures the editor at startup.
type Options struct {
	ScenePath string
	FPS       int
	FreshView bool // ignore saved view preferences
}

type App struct {
	scene      *scene.Scene
	pose       *camera.Pose
	anim       *transition.Animator
	dispatcher *nav.Dispatcher
	resolver   *pick.Resolver
	sel        *selection.Selection
	sampler    *Sampler

	scenePath string
	fps       int
	freshView bool

	mode    nav.Mode
	navHeld bool

	// Fly speed spring: the wheel moves the target, the spring eases the
	// effective speed toward it.
	speedSpring harmonica.Spring
	speed       float64
	speedVel    float64
	targetSpeed float64

	// View toggles
	showPanel bool
	showGrid  bool
	culling   bool
	culled    int

	// Gizmo state
	dragging         bool
	dragAxisIdx      int
	dragAxis         mgl32.Vec3
	dragPlaneNormal  mgl32.Vec3
	dragStart        float32
	dragInitPos      mgl32.Vec3 // local position
	dragInitWorldPos mgl32.Vec3 // world position (for drag plane math)
	dragTarget       *scene.Entity
	hoveredAxis      int // -1 = none, 0=X, 1=Y, 2=Z

	// Status feedback
	statusMsg  string
	statusTime float64
}

func New(opts Options) *App {
	s, err := scene.Load(opts.ScenePath)
	if err != nil {
		fmt.Printf("Warning: could not load scene: %v\n", err)
		s = DefaultScene()
	}
	ensureGrid(s)

	fps := opts.FPS
	if fps <= 0 {
		fps = 120
	}

	pose := camera.New(mgl32.Vec3{8, 6, 8}, mgl32.Vec3{0, 0, 0})
	anim := &transition.Animator{}
	sel := selection.NewSelection()
	cfg := nav.DefaultConfig()

	a := &App{
		scene:       s,
		pose:        pose,
		anim:        anim,
		dispatcher:  nav.NewDispatcher(pose, anim, sel, cfg),
		resolver:    pick.NewResolver(s),
		sel:         sel,
		sampler:     NewSampler(),
		scenePath:   opts.ScenePath,
		fps:         fps,
		freshView:   opts.FreshView,
		hoveredAxis: -1,
		showGrid:    true,
		culling:     true,
		speedSpring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		speed:       float64(cfg.FlySpeed),
		targetSpeed: float64(cfg.FlySpeed),
	}

	a.sel.Changed.AddListener(func(c selection.Change) {
		switch {
		case c.Active != nil && c.Count > 1:
			a.flash(fmt.Sprintf("Selected %s (%d total)", c.Active.Name, c.Count))
		case c.Active != nil:
			a.flash(fmt.Sprintf("Selected %s", c.Active.Name))
		default:
			a.flash("Selection cleared")
		}
	})

	return a
}

func (a *App) Run() error {
	var prefs *ViewPrefs
	if !a.freshView {
		prefs = LoadViewPrefs()
	}

	width, height := int32(defaultWidth), int32(defaultHeight)
	if prefs != nil && prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		width = int32(prefs.WindowWidth)
		height = int32(prefs.WindowHeight)
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(width, height, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(a.fps))
	initRayguiStyle()

	a.ApplyPrefs(prefs)

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}

	a.SavePrefs()
	return nil
}

func (a *App) Update() {
	dt := rl.GetFrameTime()

	snap := a.sampler.Sample()

	// The UI owns clicks and scrolls while the pointer is over a panel,
	// unless a viewport drag is already in progress.
	if a.mouseInPanel() && !a.navHeld {
		snap.Buttons = [input.ButtonCount]bool{}
		snap.Scroll = 0
	}
	a.navHeld = snap.IsButtonHeld(input.ButtonPrimary) ||
		snap.IsButtonHeld(input.ButtonSecondary) ||
		snap.IsButtonHeld(input.ButtonMiddle)

	// Wheel while holding the look button adjusts fly speed instead of
	// zooming.
	if snap.IsButtonHeld(input.ButtonSecondary) && snap.ScrollDelta() != 0 {
		a.targetSpeed += float64(-snap.ScrollDelta()) * 2.0
		if a.targetSpeed < 1.0 {
			a.targetSpeed = 1.0
		}
		if a.targetSpeed > 100.0 {
			a.targetSpeed = 100.0
		}
		snap.Scroll = 0
	}
	a.speed, a.speedVel = a.speedSpring.Update(a.speed, a.speedVel, a.targetSpeed)
	cfg := a.dispatcher.Config()
	cfg.FlySpeed = float32(a.speed)
	a.dispatcher.SetConfig(cfg)

	a.mode = a.dispatcher.Update(snap, dt)

	if a.anim.Active() {
		if _, _, done := a.anim.Advance(dt); done {
			a.pose.SetFromCartesian(a.anim.EndPosition(), a.anim.EndTarget())
		}
	}

	// Ctrl+S: save scene
	if (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)) && rl.IsKeyPressed(rl.KeyS) {
		if err := a.scene.Save(a.scenePath); err != nil {
			a.flash(fmt.Sprintf("Save failed: %v", err))
		} else {
			a.flash("Scene saved!")
		}
	}

	// Tab: toggle settings panel
	if rl.IsKeyPressed(rl.KeyTab) {
		a.showPanel = !a.showPanel
	}

	view, proj := a.viewProj()
	mouse := rl.GetMousePosition()
	ray, rayOK := pick.BuildRay(mouse.X, mouse.Y,
		float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()), view, proj)

	// Handle active gizmo drag
	if a.dragging {
		if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
			a.dragging = false
			a.dragTarget = nil
		} else if rayOK {
			a.updateDrag(ray)
		}
		return
	}

	// Update hovered axis for visual feedback
	a.hoveredAxis = -1
	if active := a.sel.Active(); active != nil && rayOK && !a.mouseInPanel() {
		a.hoveredAxis = a.pickGizmoAxis(ray, active.WorldPosition())
	}

	// Left-click: gizmo grab first, then scene pick. The orbit modifier
	// reserves the primary button for camera control.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !a.mouseInPanel() &&
		rayOK && !snap.IsKeyHeld(input.KeyOrbit) {
		if active := a.sel.Active(); active != nil {
			if axis := a.pickGizmoAxis(ray, active.WorldPosition()); axis >= 0 {
				a.startDrag(axis, ray, active)
				return
			}
		}
		res := a.resolver.Pick(ray)
		a.sel.Apply(res, snap.IsKeyHeld(input.KeyAdditive))
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(a.raylibCamera())
	a.drawScene()
	a.drawGizmo()
	rl.EndMode3D()

	a.drawHUD()
	if a.showPanel {
		a.drawPanel()
	}

	rl.EndDrawing()
}

// displayPose is the pose the viewport shows this frame: the animator's
// current blend while a transition runs, the committed pose otherwise.
func (a *App) displayPose() (pos, target mgl32.Vec3) {
	if a.anim.Active() {
		p, r := a.anim.Current()
		dir := r.Rotate(mgl32.Vec3{0, 0, -1})
		return p, p.Add(dir.Mul(a.pose.Distance))
	}
	return a.pose.Position, a.pose.Target
}

func (a *App) raylibCamera() rl.Camera3D {
	pos, target := a.displayPose()
	return rl.Camera3D{
		Position:   rlVec(pos),
		Target:     rlVec(target),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       cameraFovy,
		Projection: rl.CameraPerspective,
	}
}

// viewProj builds the matrices picking and culling share with the
// rendered view.
func (a *App) viewProj() (view, proj mgl32.Mat4) {
	pos, target := a.displayPose()
	view = mgl32.LookAtV(pos, target, mgl32.Vec3{0, 1, 0})
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	proj = mgl32.Perspective(mgl32.DegToRad(cameraFovy), aspect, cameraNear, cameraFar)
	return
}

// mouseInPanel returns true if the mouse is over the top bar or the
// settings panel.
func (a *App) mouseInPanel() bool {
	m := rl.GetMousePosition()
	if m.Y <= topBarHeight {
		return true
	}
	if a.showPanel && m.X >= float32(rl.GetScreenWidth()-panelWidth) {
		return true
	}
	return false
}

func (a *App) flash(msg string) {
	a.statusMsg = msg
	a.statusTime = rl.GetTime()
}

func rlVec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func rlColor(c scene.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
