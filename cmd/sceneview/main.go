// sceneview - Scene Viewport Editor
//
// Controls:
//
//	RMB drag      - Look around; WASD+QE to fly, Shift to sprint
//	MMB drag      - Pan (Ctrl+RMB also pans)
//	Alt+LMB drag  - Orbit the camera target
//	Scroll        - Zoom (RMB held: adjust fly speed instead)
//	LMB           - Pick object (Shift+LMB toggles in/out of selection)
//	F             - Frame the selection
//	Alt+1..6      - Front/Back/Left/Right/Top/Bottom view
//	Tab           - Toggle the settings panel
//	Ctrl+S        - Save the scene
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"

	"sceneview/internal/editor"
	"sceneview/internal/scene"
)

var (
	scenePath string
	targetFPS int
	freshView bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "sceneview",
		Short: "Scene viewport editor",
		Long: `sceneview - Scene Viewport Editor

Fly, orbit and pan a 3D viewport over a JSON scene, pick and drag
objects, and save the result back out.

Controls:
  RMB drag      - Look around; WASD+QE to fly, Shift to sprint
  MMB drag      - Pan (Ctrl+RMB also pans)
  Alt+LMB drag  - Orbit the camera target
  Scroll        - Zoom (RMB held: adjust fly speed instead)
  LMB           - Pick object (Shift+LMB toggles selection)
  F             - Frame the selection
  Alt+1..6      - Front/Back/Left/Right/Top/Bottom view
  Tab           - Toggle the settings panel
  Ctrl+S        - Save the scene`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Change working directory to executable location for deployed
			// builds, so the scene and prefs files sit next to the binary.
			// Skip this for "go run" which puts the binary in a temp directory.
			if execPath, err := os.Executable(); err == nil {
				execDir := filepath.Dir(execPath)
				if !strings.Contains(execDir, "go-build") {
					os.Chdir(execDir)
				}
			}

			app := editor.New(editor.Options{
				ScenePath: scenePath,
				FPS:       targetFPS,
				FreshView: freshView,
			})
			return app.Run()
		},
	}

	cmd.Flags().StringVar(&scenePath, "scene", "scene.json", "Path to the scene file")
	cmd.Flags().IntVar(&targetFPS, "fps", 120, "Target FPS")
	cmd.Flags().BoolVar(&freshView, "fresh-view", false, "Ignore the saved view preferences")

	// Add info subcommand
	infoCmd := &cobra.Command{
		Use:   "info <scene.json>",
		Short: "Display scene information",
		Long:  "Display entity and node counts for a scene file together with the world-space bounds of its renderable geometry.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
	cmd.AddCommand(infoCmd)

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func runInfo(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	s, err := scene.Load(path)
	if err != nil {
		return err
	}

	nodes := s.Renderables()

	fmt.Printf("File:       %s\n", filepath.Base(path))
	if s.Name != "" {
		fmt.Printf("Scene:      %s\n", s.Name)
	}
	fmt.Printf("Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Println()
	fmt.Printf("Entities:   %d\n", countEntities(s.Entities))
	fmt.Printf("Nodes:      %d\n", len(nodes))

	if len(nodes) == 0 {
		return nil
	}

	lo := mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi := lo.Mul(-1)
	for _, n := range nodes {
		center := s.NodeWorldCenter(n)
		var half mgl32.Vec3
		if n.Shape == scene.ShapeSphere {
			half = mgl32.Vec3{n.Radius, n.Radius, n.Radius}
		} else {
			half = s.NodeWorldSize(n).Mul(0.5)
		}
		for i := 0; i < 3; i++ {
			if center[i]-half[i] < lo[i] {
				lo[i] = center[i] - half[i]
			}
			if center[i]+half[i] > hi[i] {
				hi[i] = center[i] + half[i]
			}
		}
	}
	size := hi.Sub(lo)
	center := lo.Add(hi).Mul(0.5)

	fmt.Println()
	fmt.Printf("Bounds Min: (%.3f, %.3f, %.3f)\n", lo.X(), lo.Y(), lo.Z())
	fmt.Printf("Bounds Max: (%.3f, %.3f, %.3f)\n", hi.X(), hi.Y(), hi.Z())
	fmt.Printf("Dimensions: %.3f x %.3f x %.3f\n", size.X(), size.Y(), size.Z())
	fmt.Printf("Center:     (%.3f, %.3f, %.3f)\n", center.X(), center.Y(), center.Z())

	return nil
}

func countEntities(roots []*scene.Entity) int {
	n := 0
	for _, e := range roots {
		n += 1 + countEntities(e.Children)
	}
	return n
}
