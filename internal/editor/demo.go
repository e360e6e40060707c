package editor

import (
	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/scene"
)

// DefaultScene builds the fallback scene shown when no scene file loads.
func DefaultScene() *scene.Scene {
	s := scene.NewScene("demo")

	crate := scene.NewEntity("crate")
	crate.Position = mgl32.Vec3{4, 1, 0}
	s.AddEntity(crate)
	s.AttachRender(crate, scene.NewBox("body", mgl32.Vec3{2, 2, 2}, scene.LookupColor("Orange")))

	ball := scene.NewEntity("ball")
	ball.Position = mgl32.Vec3{-4, 1, 0}
	s.AddEntity(ball)
	s.AttachRender(ball, scene.NewSphere("body", 1.0, scene.LookupColor("Red")))

	// Composite visual: base, post and bulb are nodes of one entity, so
	// picking any part selects the lamp.
	lamp := scene.NewEntity("lamp")
	lamp.Position = mgl32.Vec3{0, 0, -5}
	s.AddEntity(lamp)
	base := scene.NewBox("base", mgl32.Vec3{0.8, 0.4, 0.8}, scene.LookupColor("Gray"))
	base.Offset = mgl32.Vec3{0, 0.2, 0}
	post := scene.NewBox("post", mgl32.Vec3{0.15, 1.6, 0.15}, scene.LookupColor("DarkGray"))
	post.Offset = mgl32.Vec3{0, 1.2, 0}
	bulb := scene.NewSphere("bulb", 0.35, scene.LookupColor("Yellow"))
	bulb.Offset = mgl32.Vec3{0, 2.2, 0}
	base.AddChild(post)
	base.AddChild(bulb)
	s.AttachRender(lamp, base)

	// Child entity: the beacon moves with the tower but selects on its own.
	tower := scene.NewEntity("tower")
	tower.Position = mgl32.Vec3{-2, 0, 6}
	s.AttachRender(tower, scene.NewBox("body", mgl32.Vec3{1, 3, 1}, scene.LookupColor("Beige")))

	beacon := scene.NewEntity("beacon")
	beacon.Position = mgl32.Vec3{0, 3.8, 0}
	s.AttachRender(beacon, scene.NewSphere("light", 0.4, scene.LookupColor("SkyBlue")))
	tower.AddChild(beacon)
	s.AddEntity(tower)

	return s
}

// ensureGrid adds the ground grid entity when the scene has none. The grid
// is a flat non-selectable slab tagged internal, so rays that hit it report
// a decoration hit instead of a miss and Save leaves it out of the file.
func ensureGrid(s *scene.Scene) {
	for _, e := range s.Entities {
		if e.HasTag(scene.TagInternal) {
			return
		}
	}

	grid := scene.NewEntity("grid")
	grid.Tags = []string{scene.TagInternal}
	slab := scene.NewBox("plane", mgl32.Vec3{120, 0.01, 120}, scene.LookupColor("DarkGray"))
	slab.Selectable = false
	s.AddEntity(grid)
	s.AttachRender(grid, slab)
}
