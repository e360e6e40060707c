package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// --- JSON types ---

type SceneFile struct {
	Name     string      `json:"name,omitempty"`
	Entities []EntityDef `json:"entities"`
}

type EntityDef struct {
	Name     string      `json:"name"`
	Tags     []string    `json:"tags,omitempty"`
	Position [3]float32  `json:"position"`
	Rotation [3]float32  `json:"rotation"`
	Scale    [3]float32  `json:"scale"`
	Shape    *ShapeDef   `json:"shape,omitempty"`
	Children []EntityDef `json:"children,omitempty"`
}

type ShapeDef struct {
	Kind       string     `json:"kind,omitempty"` // "box", "sphere", empty for a grouping node
	Name       string     `json:"name,omitempty"`
	Offset     [3]float32 `json:"offset,omitempty"`
	Size       [3]float32 `json:"size,omitempty"`
	Radius     float32    `json:"radius,omitempty"`
	Color      string     `json:"color,omitempty"`
	Selectable *bool      `json:"selectable,omitempty"`
	Parts      []ShapeDef `json:"parts,omitempty"`
}

// TagInternal marks editor-managed entities such as the ground grid.
// They are skipped when saving.
const TagInternal = "internal"

// --- Color mapping ---

var colorByName = map[string]Color{
	"Red":       {230, 41, 55, 255},
	"Blue":      {0, 121, 241, 255},
	"Green":     {0, 228, 48, 255},
	"Purple":    {200, 122, 255, 255},
	"Orange":    {255, 161, 0, 255},
	"Yellow":    {253, 249, 0, 255},
	"Pink":      {255, 109, 194, 255},
	"SkyBlue":   {102, 191, 255, 255},
	"Lime":      {0, 158, 47, 255},
	"Magenta":   {255, 0, 255, 255},
	"White":     {255, 255, 255, 255},
	"LightGray": {200, 200, 200, 255},
	"Gray":      {130, 130, 130, 255},
	"DarkGray":  {80, 80, 80, 255},
	"Black":     {0, 0, 0, 255},
	"Brown":     {127, 106, 79, 255},
	"Beige":     {211, 176, 131, 255},
	"Maroon":    {190, 33, 55, 255},
	"Gold":      {255, 203, 0, 255},
}

var nameByColor map[Color]string

func init() {
	nameByColor = make(map[Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// LookupColor resolves a palette name or "#rrggbbaa" hex string,
// falling back to white.
func LookupColor(name string) Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if n, err := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); err == nil && n == 4 {
		return Color{r, g, b, a}
	}
	return Color{255, 255, 255, 255}
}

// LookupColorName returns the palette name for a color, or its hex form.
func LookupColorName(c Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Loading ---

// Load reads a scene file and builds the entity and render trees.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	s := NewScene(sf.Name)
	for _, def := range sf.Entities {
		s.AddEntity(s.buildEntity(def))
	}
	return s, nil
}

func (s *Scene) buildEntity(def EntityDef) *Entity {
	e := NewEntity(def.Name)
	e.Tags = def.Tags
	e.Position = mgl32.Vec3{def.Position[0], def.Position[1], def.Position[2]}
	e.Rotation = mgl32.Vec3{def.Rotation[0], def.Rotation[1], def.Rotation[2]}

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		e.Scale = mgl32.Vec3{1, 1, 1}
	} else {
		e.Scale = mgl32.Vec3{def.Scale[0], def.Scale[1], def.Scale[2]}
	}

	if def.Shape != nil {
		s.AttachRender(e, buildNode(*def.Shape))
	}

	for _, childDef := range def.Children {
		e.AddChild(s.buildEntity(childDef))
	}
	return e
}

func buildNode(def ShapeDef) *Node {
	var n *Node
	switch def.Kind {
	case "box":
		n = NewBox(def.Name, mgl32.Vec3{def.Size[0], def.Size[1], def.Size[2]}, LookupColor(def.Color))
	case "sphere":
		n = NewSphere(def.Name, def.Radius, LookupColor(def.Color))
	default:
		n = NewNode(def.Name, ShapeNone)
	}
	n.Offset = mgl32.Vec3{def.Offset[0], def.Offset[1], def.Offset[2]}
	if def.Selectable != nil {
		n.Selectable = *def.Selectable
	}
	for _, part := range def.Parts {
		n.AddChild(buildNode(part))
	}
	return n
}

// --- Saving ---

// Save writes the scene back out, skipping editor-internal entities.
func (s *Scene) Save(path string) error {
	sf := SceneFile{Name: s.Name}
	for _, e := range s.Entities {
		if e.HasTag(TagInternal) {
			continue
		}
		sf.Entities = append(sf.Entities, entityDef(e))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func entityDef(e *Entity) EntityDef {
	def := EntityDef{
		Name:     e.Name,
		Tags:     e.Tags,
		Position: [3]float32{e.Position.X(), e.Position.Y(), e.Position.Z()},
		Rotation: [3]float32{e.Rotation.X(), e.Rotation.Y(), e.Rotation.Z()},
		Scale:    [3]float32{e.Scale.X(), e.Scale.Y(), e.Scale.Z()},
	}
	if e.render != nil {
		sd := shapeDef(e.render)
		def.Shape = &sd
	}
	for _, c := range e.Children {
		def.Children = append(def.Children, entityDef(c))
	}
	return def
}

func shapeDef(n *Node) ShapeDef {
	def := ShapeDef{
		Name:   n.Name,
		Offset: [3]float32{n.Offset.X(), n.Offset.Y(), n.Offset.Z()},
	}
	switch n.Shape {
	case ShapeBox:
		def.Kind = "box"
		def.Size = [3]float32{n.Size.X(), n.Size.Y(), n.Size.Z()}
		def.Color = LookupColorName(n.Color)
	case ShapeSphere:
		def.Kind = "sphere"
		def.Radius = n.Radius
		def.Color = LookupColorName(n.Color)
	}
	if !n.Selectable {
		f := false
		def.Selectable = &f
	}
	for _, c := range n.Children {
		def.Parts = append(def.Parts, shapeDef(c))
	}
	return def
}
