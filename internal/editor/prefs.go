package editor

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewPrefs holds the view state saved between sessions.
type ViewPrefs struct {
	WindowWidth  int `json:"windowWidth"`
	WindowHeight int `json:"windowHeight"`

	CameraTarget   [3]float32 `json:"cameraTarget"`
	CameraYaw      float32    `json:"cameraYaw"`
	CameraPitch    float32    `json:"cameraPitch"`
	CameraDistance float32    `json:"cameraDistance"`

	PanSensitivity   float32 `json:"panSensitivity,omitempty"`
	OrbitSensitivity float32 `json:"orbitSensitivity,omitempty"`
	ZoomSensitivity  float32 `json:"zoomSensitivity,omitempty"`
	FlySpeed         float32 `json:"flySpeed,omitempty"`
	InvertLook       bool    `json:"invertLook,omitempty"`

	ShowPanel bool `json:"showPanel,omitempty"`
	ShowGrid  bool `json:"showGrid"`
	Culling   bool `json:"culling"`
}

const viewPrefsFile = ".sceneview_prefs.json"

// LoadViewPrefs loads view preferences from disk. Returns nil when the
// file is absent or unreadable.
func LoadViewPrefs() *ViewPrefs {
	data, err := os.ReadFile(viewPrefsFile)
	if err != nil {
		return nil
	}

	var prefs ViewPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		fmt.Printf("Failed to parse view prefs: %v\n", err)
		return nil
	}

	return &prefs
}

// SavePrefs writes the current view state to disk.
func (a *App) SavePrefs() {
	cfg := a.dispatcher.Config()
	prefs := ViewPrefs{
		WindowWidth:      rl.GetScreenWidth(),
		WindowHeight:     rl.GetScreenHeight(),
		CameraTarget:     [3]float32{a.pose.Target.X(), a.pose.Target.Y(), a.pose.Target.Z()},
		CameraYaw:        a.pose.Yaw,
		CameraPitch:      a.pose.Pitch,
		CameraDistance:   a.pose.Distance,
		PanSensitivity:   cfg.PanSensitivity,
		OrbitSensitivity: cfg.OrbitSensitivity,
		ZoomSensitivity:  cfg.ZoomSensitivity,
		FlySpeed:         float32(a.targetSpeed),
		InvertLook:       cfg.InvertLook,
		ShowPanel:        a.showPanel,
		ShowGrid:         a.showGrid,
		Culling:          a.culling,
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal view prefs: %v\n", err)
		return
	}

	if err := os.WriteFile(viewPrefsFile, data, 0644); err != nil {
		fmt.Printf("Failed to save view prefs: %v\n", err)
	}
}

// ApplyPrefs applies loaded preferences, restoring the camera pose and
// the navigation config.
func (a *App) ApplyPrefs(prefs *ViewPrefs) {
	if prefs == nil {
		return
	}

	if prefs.CameraDistance > 0 {
		target := mgl32.Vec3{prefs.CameraTarget[0], prefs.CameraTarget[1], prefs.CameraTarget[2]}
		a.pose.SetFromSpherical(prefs.CameraYaw, prefs.CameraPitch, prefs.CameraDistance, target)
	}

	cfg := a.dispatcher.Config()
	if prefs.PanSensitivity > 0 {
		cfg.PanSensitivity = prefs.PanSensitivity
	}
	if prefs.OrbitSensitivity > 0 {
		cfg.OrbitSensitivity = prefs.OrbitSensitivity
	}
	if prefs.ZoomSensitivity > 0 {
		cfg.ZoomSensitivity = prefs.ZoomSensitivity
	}
	if prefs.FlySpeed > 0 {
		cfg.FlySpeed = prefs.FlySpeed
		a.targetSpeed = float64(prefs.FlySpeed)
		a.speed = float64(prefs.FlySpeed)
	}
	cfg.InvertLook = prefs.InvertLook
	a.dispatcher.SetConfig(cfg)

	a.showPanel = prefs.ShowPanel
	a.showGrid = prefs.ShowGrid
	a.culling = prefs.Culling
}
