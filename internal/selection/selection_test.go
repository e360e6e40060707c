package selection

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/pick"
	"sceneview/internal/scene"
)

func entityAt(name string, pos mgl32.Vec3) *scene.Entity {
	e := scene.NewEntity(name)
	e.Position = pos
	return e
}

func picked(e *scene.Entity) pick.Result {
	return pick.Result{Kind: pick.Picked, Hit: pick.Hit{Entity: e}}
}

func TestSelectSingleReplaces(t *testing.T) {
	s := NewSelection()
	a := entityAt("a", mgl32.Vec3{})
	b := entityAt("b", mgl32.Vec3{})

	s.SelectSingle(a)
	s.SelectSingle(b)

	if s.Count() != 1 || !s.IsSelected(b) {
		t.Errorf("Expected only b selected, got %d selected", s.Count())
	}
	if s.Active() != b {
		t.Errorf("Expected b active, got %v", s.Active())
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewSelection()
	a := entityAt("a", mgl32.Vec3{})
	b := entityAt("b", mgl32.Vec3{})

	s.Toggle(a)
	s.Toggle(b)
	if s.Count() != 2 {
		t.Fatalf("Expected 2 selected, got %d", s.Count())
	}
	if s.Active() != b {
		t.Errorf("Expected b active after adding, got %v", s.Active())
	}

	s.Toggle(b)
	if s.IsSelected(b) {
		t.Errorf("Expected b removed after second toggle")
	}
	if s.Active() != a {
		t.Errorf("Expected active to fall back to a, got %v", s.Active())
	}
}

func TestApplyPolicy(t *testing.T) {
	s := NewSelection()
	a := entityAt("a", mgl32.Vec3{})
	b := entityAt("b", mgl32.Vec3{})

	s.Apply(picked(a), false)
	if !s.IsSelected(a) {
		t.Fatalf("Expected a selected after a plain pick")
	}

	// Additive pick keeps a and adds b.
	s.Apply(picked(b), true)
	if s.Count() != 2 {
		t.Errorf("Expected 2 after additive pick, got %d", s.Count())
	}

	// Decoration-only clicks never change the selection.
	s.Apply(pick.Result{Kind: pick.Ignored}, false)
	if s.Count() != 2 {
		t.Errorf("Expected an ignored pick to leave the selection alone, got %d", s.Count())
	}

	// Additive miss keeps the selection, plain miss clears it.
	s.Apply(pick.Result{Kind: pick.Miss}, true)
	if s.Count() != 2 {
		t.Errorf("Expected an additive miss to keep the selection, got %d", s.Count())
	}
	s.Apply(pick.Result{Kind: pick.Miss}, false)
	if s.HasSelection() {
		t.Errorf("Expected a plain miss to clear the selection")
	}
}

func TestCenterAveragesWorldPositions(t *testing.T) {
	s := NewSelection()

	if _, ok := s.Center(); ok {
		t.Errorf("Expected no center for an empty selection")
	}

	s.Toggle(entityAt("a", mgl32.Vec3{0, 0, 0}))
	s.Toggle(entityAt("b", mgl32.Vec3{4, 2, -6}))

	center, ok := s.Center()
	if !ok {
		t.Fatal("Expected a center with entities selected")
	}
	if center != (mgl32.Vec3{2, 1, -3}) {
		t.Errorf("Expected center (2, 1, -3), got %v", center)
	}
}

func TestChangedFiresOnMutationsOnly(t *testing.T) {
	s := NewSelection()
	a := entityAt("a", mgl32.Vec3{})

	fired := 0
	var last Change
	s.Changed.AddListener(func(c Change) {
		fired++
		last = c
	})

	s.SelectSingle(a)
	if fired != 1 || last.Active != a || last.Count != 1 {
		t.Errorf("Expected one change with a active, got fired=%d last=%+v", fired, last)
	}

	// Re-selecting the sole entity is not a change.
	s.SelectSingle(a)
	if fired != 1 {
		t.Errorf("Expected no event for a no-op reselect, got %d", fired)
	}

	s.Clear()
	if fired != 2 || last.Count != 0 || last.Active != nil {
		t.Errorf("Expected a clear event, got fired=%d last=%+v", fired, last)
	}

	// Clearing an empty selection stays silent.
	s.Clear()
	if fired != 2 {
		t.Errorf("Expected no event for clearing nothing, got %d", fired)
	}
}
