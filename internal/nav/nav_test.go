package nav

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/camera"
	"sceneview/internal/input"
	"sceneview/internal/transition"
)

type stubFrame struct {
	center mgl32.Vec3
	ok     bool
}

func (s stubFrame) Center() (mgl32.Vec3, bool) { return s.center, s.ok }

func testDispatcher(frame FrameSource) (*Dispatcher, *camera.Pose, *transition.Animator) {
	pose := camera.New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})
	anim := &transition.Animator{}
	d := NewDispatcher(pose, anim, frame, DefaultConfig())
	return d, pose, anim
}

// finish drains an active transition and applies the end pose the way the
// editor loop does.
func finish(pose *camera.Pose, anim *transition.Animator) {
	for i := 0; i < 1000 && anim.Active(); i++ {
		if _, _, done := anim.Advance(0.05); done {
			pose.SetFromCartesian(anim.EndPosition(), anim.EndTarget())
		}
	}
}

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	return near(a.X(), b.X(), tol) && near(a.Y(), b.Y(), tol) && near(a.Z(), b.Z(), tol)
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name    string
		build   func() input.Snapshot
		expects Mode
	}{
		{"everything held pans first", func() input.Snapshot {
			var s input.Snapshot
			s.Buttons[input.ButtonMiddle] = true
			s.Buttons[input.ButtonSecondary] = true
			s.Buttons[input.ButtonPrimary] = true
			s.Held[input.KeyOrbit] = true
			s.Held[input.KeyForward] = true
			return s
		}, ModePan},
		{"pan modifier with secondary", func() input.Snapshot {
			var s input.Snapshot
			s.Buttons[input.ButtonSecondary] = true
			s.Held[input.KeyPan] = true
			s.Held[input.KeyForward] = true
			return s
		}, ModePan},
		{"orbit beats fly and look", func() input.Snapshot {
			var s input.Snapshot
			s.Buttons[input.ButtonPrimary] = true
			s.Buttons[input.ButtonSecondary] = true
			s.Held[input.KeyOrbit] = true
			s.Held[input.KeyForward] = true
			return s
		}, ModeOrbit},
		{"secondary with movement flies", func() input.Snapshot {
			var s input.Snapshot
			s.Buttons[input.ButtonSecondary] = true
			s.Held[input.KeyBack] = true
			return s
		}, ModeFly},
		{"secondary alone looks", func() input.Snapshot {
			var s input.Snapshot
			s.Buttons[input.ButtonSecondary] = true
			return s
		}, ModeLook},
		{"primary alone is idle", func() input.Snapshot {
			var s input.Snapshot
			s.Buttons[input.ButtonPrimary] = true
			return s
		}, ModeIdle},
		{"empty snapshot is idle", func() input.Snapshot {
			return input.Snapshot{}
		}, ModeIdle},
	}

	for _, tt := range tests {
		if got := Classify(tt.build()); got != tt.expects {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.expects, got)
		}
	}
}

func TestPanScenario(t *testing.T) {
	d, pose, _ := testDispatcher(nil)

	var snap input.Snapshot
	snap.Buttons[input.ButtonMiddle] = true
	snap.PointerDelta = mgl32.Vec2{10, 0}

	mode := d.Update(snap, 0.016)
	if mode != ModePan {
		t.Fatalf("Expected pan mode, got %s", mode)
	}

	// delta 10 * sensitivity 0.01 * distance 10 along -right.
	if !near(pose.Target.X(), -1.0, 1e-4) {
		t.Errorf("Expected target.x -1.0, got %f", pose.Target.X())
	}
	if !near(pose.Position.X(), -1.0, 1e-4) {
		t.Errorf("Expected position.x -1.0, got %f", pose.Position.X())
	}
}

func TestPanPreservesDistanceAndDirection(t *testing.T) {
	d, pose, _ := testDispatcher(nil)
	pose.SetFromSpherical(0.7, 0.4, 12, mgl32.Vec3{1, 2, 3})
	before := pose.Position.Sub(pose.Target).Normalize()

	var snap input.Snapshot
	snap.Buttons[input.ButtonMiddle] = true
	snap.PointerDelta = mgl32.Vec2{37, -12}
	d.Update(snap, 0.016)

	if !near(pose.Distance, 12, 1e-3) {
		t.Errorf("Pan changed distance: expected 12, got %f", pose.Distance)
	}
	after := pose.Position.Sub(pose.Target).Normalize()
	if !vecNear(before, after, 1e-4) {
		t.Errorf("Pan changed view direction: %v -> %v", before, after)
	}
}

func TestOrbitQuarterTurn(t *testing.T) {
	d, pose, _ := testDispatcher(nil)
	cfg := d.Config()
	cfg.OrbitSensitivity = float32(math.Pi / 4 / 100)
	d.SetConfig(cfg)

	var snap input.Snapshot
	snap.Buttons[input.ButtonPrimary] = true
	snap.Held[input.KeyOrbit] = true
	snap.PointerDelta = mgl32.Vec2{100, 0}
	d.Update(snap, 0.016)

	want := mgl32.Vec3{10 * float32(math.Sin(math.Pi/4)), 0, 10 * float32(math.Cos(math.Pi/4))}
	if !vecNear(pose.Position, want, 1e-3) {
		t.Errorf("Expected position %v on the orbit sphere, got %v", want, pose.Position)
	}
	if pose.Target != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Orbit moved the target: %v", pose.Target)
	}
	if !near(pose.Distance, 10, 1e-3) {
		t.Errorf("Orbit changed distance: %f", pose.Distance)
	}
}

func TestOrbitPitchClampUnderExtremeDrag(t *testing.T) {
	d, pose, _ := testDispatcher(nil)
	limit := pose.PitchLimit()

	var snap input.Snapshot
	snap.Buttons[input.ButtonPrimary] = true
	snap.Held[input.KeyOrbit] = true
	snap.PointerDelta = mgl32.Vec2{0, -10000}

	for i := 0; i < 50; i++ {
		d.Update(snap, 0.016)
	}
	if pose.Pitch > limit || math.IsNaN(float64(pose.Pitch)) {
		t.Errorf("Pitch should stay within (-%f, %f), got %f", limit, limit, pose.Pitch)
	}

	snap.PointerDelta = mgl32.Vec2{0, 10000}
	for i := 0; i < 50; i++ {
		d.Update(snap, 0.016)
	}
	if pose.Pitch < -limit || math.IsNaN(float64(pose.Pitch)) {
		t.Errorf("Pitch should stay within (-%f, %f), got %f", limit, limit, pose.Pitch)
	}
}

func TestLookHoldsPosition(t *testing.T) {
	d, pose, _ := testDispatcher(nil)
	start := pose.Position
	startTarget := pose.Target

	var snap input.Snapshot
	snap.Buttons[input.ButtonSecondary] = true
	snap.PointerDelta = mgl32.Vec2{50, 30}
	d.Update(snap, 0.016)

	if pose.Position != start {
		t.Errorf("Look moved the position: %v -> %v", start, pose.Position)
	}
	if pose.Target == startTarget {
		t.Error("Look should swing the target")
	}
	if !near(pose.Distance, 10, 1e-3) {
		t.Errorf("Look changed distance: %f", pose.Distance)
	}
}

func TestFlyTranslatesAlongView(t *testing.T) {
	d, pose, _ := testDispatcher(nil)

	var snap input.Snapshot
	snap.Buttons[input.ButtonSecondary] = true
	snap.Held[input.KeyForward] = true

	mode := d.Update(snap, 0.5)
	if mode != ModeFly {
		t.Fatalf("Expected fly mode, got %s", mode)
	}

	// Forward is -Z here; speed 10 for 0.5s moves 5 units.
	if !vecNear(pose.Position, mgl32.Vec3{0, 0, 5}, 1e-3) {
		t.Errorf("Expected position (0,0,5), got %v", pose.Position)
	}
	if !vecNear(pose.Target, mgl32.Vec3{0, 0, -5}, 1e-3) {
		t.Errorf("Expected target to translate with the camera, got %v", pose.Target)
	}
	if !near(pose.Distance, 10, 1e-3) {
		t.Errorf("Fly changed distance: %f", pose.Distance)
	}
}

func TestFlySprintMultiplies(t *testing.T) {
	d, pose, _ := testDispatcher(nil)

	var snap input.Snapshot
	snap.Buttons[input.ButtonSecondary] = true
	snap.Held[input.KeyForward] = true
	snap.Held[input.KeySprint] = true
	d.Update(snap, 0.5)

	// 10 * 3 * 0.5 = 15 units forward.
	if !near(pose.Position.Z(), -5, 1e-3) {
		t.Errorf("Expected sprint to reach z=-5, got %f", pose.Position.Z())
	}
}

func TestFlyDiagonalIsNormalized(t *testing.T) {
	d, pose, _ := testDispatcher(nil)
	start := pose.Position

	var snap input.Snapshot
	snap.Buttons[input.ButtonSecondary] = true
	snap.Held[input.KeyForward] = true
	snap.Held[input.KeyRight] = true
	d.Update(snap, 0.5)

	moved := pose.Position.Sub(start).Len()
	if !near(moved, 5, 1e-3) {
		t.Errorf("Diagonal move should cover speed*dt = 5 units, got %f", moved)
	}
}

func TestZoomClampsAtBounds(t *testing.T) {
	d, pose, _ := testDispatcher(nil)
	cfg := d.Config()
	cfg.MinDistance = 2
	cfg.MaxDistance = 50
	d.SetConfig(cfg)

	targetBefore := pose.Target

	var snap input.Snapshot
	snap.Scroll = -1 // zoom in
	for i := 0; i < 60; i++ {
		d.Update(snap, 0.016)
		if pose.Target != targetBefore {
			t.Fatal("Zoom must leave the target bit-for-bit unchanged")
		}
	}
	if pose.Distance != 2 {
		t.Errorf("Expected exact clamp at MinDistance 2, got %f", pose.Distance)
	}

	snap.Scroll = 1 // zoom out
	for i := 0; i < 80; i++ {
		d.Update(snap, 0.016)
	}
	if pose.Distance != 50 {
		t.Errorf("Expected exact clamp at MaxDistance 50, got %f", pose.Distance)
	}
	if pose.Target != targetBefore {
		t.Error("Zoom must leave the target bit-for-bit unchanged")
	}
}

func TestZoomKeepsAngles(t *testing.T) {
	d, pose, _ := testDispatcher(nil)
	pose.SetFromSpherical(0.9, -0.3, 10, mgl32.Vec3{2, 1, 0})
	yaw, pitch := pose.Yaw, pose.Pitch

	var snap input.Snapshot
	snap.Scroll = 1
	d.Update(snap, 0.016)

	if pose.Yaw != yaw || pose.Pitch != pitch {
		t.Errorf("Zoom changed angles: (%f,%f) -> (%f,%f)", yaw, pitch, pose.Yaw, pose.Pitch)
	}
}

func TestFrameSelectionAnimatesToCenter(t *testing.T) {
	d, pose, anim := testDispatcher(stubFrame{center: mgl32.Vec3{5, 0, 0}, ok: true})

	var snap input.Snapshot
	snap.Pressed[input.KeyFrame] = true
	d.Update(snap, 0.016)

	if !anim.Active() {
		t.Fatal("Frame command should start a transition, not snap")
	}
	finish(pose, anim)

	if !vecNear(pose.Target, mgl32.Vec3{5, 0, 0}, 1e-3) {
		t.Errorf("Expected target at selection center, got %v", pose.Target)
	}
	// Distance 10 kept, direction kept (+Z of the target).
	if !vecNear(pose.Position, mgl32.Vec3{5, 0, 10}, 1e-3) {
		t.Errorf("Expected position (5,0,10), got %v", pose.Position)
	}
	if !near(pose.Distance, 10, 1e-3) {
		t.Errorf("Expected distance 10 after framing, got %f", pose.Distance)
	}
}

func TestFrameWithoutSelectionUsesOrigin(t *testing.T) {
	d, pose, anim := testDispatcher(stubFrame{ok: false})
	pose.SetFromCartesian(mgl32.Vec3{3, 3, 13}, mgl32.Vec3{3, 3, 3})

	d.FrameSelection()
	finish(pose, anim)

	if !vecNear(pose.Target, mgl32.Vec3{0, 0, 0}, 1e-3) {
		t.Errorf("Expected origin target with no selection, got %v", pose.Target)
	}
}

func TestFrameRespectsMinimumDistance(t *testing.T) {
	d, pose, anim := testDispatcher(stubFrame{center: mgl32.Vec3{}, ok: true})
	pose.SetFromSpherical(0, 0, 1, mgl32.Vec3{})

	d.FrameSelection()
	finish(pose, anim)

	if !near(pose.Distance, d.Config().FrameMinDistance, 1e-3) {
		t.Errorf("Expected the frame floor %f, got %f", d.Config().FrameMinDistance, pose.Distance)
	}
}

func TestAxisAlignLandsOnCardinal(t *testing.T) {
	d, pose, anim := testDispatcher(nil)

	var snap input.Snapshot
	snap.Held[input.KeyAxes] = true
	snap.Pressed[input.KeyAxisRight] = true
	d.Update(snap, 0.016)

	if !anim.Active() {
		t.Fatal("Axis-align should run as a transition")
	}
	finish(pose, anim)

	if !vecNear(pose.Position, mgl32.Vec3{10, 0, 0}, 1e-2) {
		t.Errorf("Expected position on +X at distance 10, got %v", pose.Position)
	}
	if !vecNear(pose.Target, mgl32.Vec3{0, 0, 0}, 1e-3) {
		t.Errorf("Axis-align moved the target: %v", pose.Target)
	}
}

func TestAxisAlignTopStaysOffPole(t *testing.T) {
	d, pose, anim := testDispatcher(nil)
	limit := pose.PitchLimit()

	d.AlignToAxis(input.KeyAxisTop)
	finish(pose, anim)

	if !near(pose.Pitch, limit, 1e-3) {
		t.Errorf("Top view should sit at the pitch limit %f, got %f", limit, pose.Pitch)
	}
	if float64(pose.Pitch) >= math.Pi/2 {
		t.Errorf("Pitch reached the pole: %f", pose.Pitch)
	}
}

func TestContinuousModesSuppressedWhileAnimating(t *testing.T) {
	d, pose, anim := testDispatcher(stubFrame{center: mgl32.Vec3{5, 0, 0}, ok: true})

	d.FrameSelection()
	if !anim.Active() {
		t.Fatal("Expected an active transition")
	}

	posBefore := pose.Position
	distBefore := pose.Distance

	var snap input.Snapshot
	snap.Buttons[input.ButtonSecondary] = true
	snap.PointerDelta = mgl32.Vec2{100, 100}
	snap.Scroll = -1

	mode := d.Update(snap, 0.016)
	if mode != ModeIdle {
		t.Errorf("Expected idle while animating, got %s", mode)
	}
	if pose.Position != posBefore {
		t.Error("Navigation should not move the pose while a transition runs")
	}
	if pose.Distance != distBefore {
		t.Error("Zoom should be suppressed while a transition runs")
	}
}

func TestNewCommandInterruptsFromDisplayedPose(t *testing.T) {
	d, pose, anim := testDispatcher(stubFrame{center: mgl32.Vec3{20, 0, 0}, ok: true})

	d.FrameSelection()
	anim.Advance(0.1)
	midPos, _ := anim.Current()

	d.AlignToAxis(input.KeyAxisFront)
	if !anim.Active() {
		t.Fatal("Interrupting command should keep the animator running")
	}

	pos, _, _ := anim.Advance(1e-6)
	if pos.Sub(midPos).Len() > 0.05 {
		t.Errorf("Restart should pick up near the displayed pose %v, got %v", midPos, pos)
	}

	finish(pose, anim)
	if !vecNear(pose.Position, mgl32.Vec3{0, 0, 10}, 1e-2) {
		t.Errorf("Expected the interrupting front view at (0,0,10), got %v", pose.Position)
	}
}

func TestModeStrings(t *testing.T) {
	tests := []struct {
		mode Mode
		name string
	}{
		{ModeIdle, "idle"},
		{ModePan, "pan"},
		{ModeOrbit, "orbit"},
		{ModeFly, "fly"},
		{ModeLook, "look"},
	}
	for _, tt := range tests {
		if tt.mode.String() != tt.name {
			t.Errorf("Expected '%s', got '%s'", tt.name, tt.mode.String())
		}
	}
}
