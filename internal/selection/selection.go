// Package selection tracks which entities are selected in the editor.
// Picks feed in through Apply, which owns the replace/toggle policy;
// everything downstream (gizmo, framing, highlight rendering) only
// reads the current set.
package selection

import (
	"github.com/go-gl/mathgl/mgl32"

	"sceneview/internal/pick"
	"sceneview/internal/scene"
)

// Change describes the selection after a mutation.
type Change struct {
	Active *scene.Entity // last selected, nil when the selection is empty
	Count  int
}

// Selection is an ordered set of selected entities. Order is selection
// order; the active entity is the most recently selected one.
type Selection struct {
	entities []*scene.Entity
	active   *scene.Entity

	// Changed fires after every mutation that alters the set.
	Changed scene.Event[Change]
}

func NewSelection() *Selection {
	return &Selection{}
}

// Entities returns the selected entities in selection order.
func (s *Selection) Entities() []*scene.Entity {
	return s.entities
}

// Active returns the most recently selected entity, nil when empty.
func (s *Selection) Active() *scene.Entity {
	return s.active
}

func (s *Selection) Count() int {
	return len(s.entities)
}

func (s *Selection) HasSelection() bool {
	return len(s.entities) > 0
}

// IsSelected checks if an entity is selected.
func (s *Selection) IsSelected(e *scene.Entity) bool {
	for _, cur := range s.entities {
		if cur == e {
			return true
		}
	}
	return false
}

// Clear removes all selections.
func (s *Selection) Clear() {
	if len(s.entities) == 0 {
		return
	}
	s.entities = s.entities[:0]
	s.active = nil
	s.notify()
}

// SelectSingle selects one entity, clearing the previous selection.
func (s *Selection) SelectSingle(e *scene.Entity) {
	if e == nil {
		s.Clear()
		return
	}
	if len(s.entities) == 1 && s.entities[0] == e {
		return
	}
	s.entities = []*scene.Entity{e}
	s.active = e
	s.notify()
}

// Toggle adds the entity to the selection, or removes it if already
// selected.
func (s *Selection) Toggle(e *scene.Entity) {
	if e == nil {
		return
	}
	for i, cur := range s.entities {
		if cur == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			if s.active == e {
				if len(s.entities) > 0 {
					s.active = s.entities[len(s.entities)-1]
				} else {
					s.active = nil
				}
			}
			s.notify()
			return
		}
	}
	s.entities = append(s.entities, e)
	s.active = e
	s.notify()
}

// Apply folds a pick result into the selection. A picked entity
// replaces the selection, or toggles when additive. A miss clears
// unless additive. An ignored pick, decoration only, never changes
// anything.
func (s *Selection) Apply(res pick.Result, additive bool) {
	switch res.Kind {
	case pick.Picked:
		if additive {
			s.Toggle(res.Hit.Entity)
		} else {
			s.SelectSingle(res.Hit.Entity)
		}
	case pick.Miss:
		if !additive {
			s.Clear()
		}
	case pick.Ignored:
		// Keep the selection as is.
	}
}

// Center returns the average world position of the selected entities.
// The second result is false when nothing is selected.
func (s *Selection) Center() (mgl32.Vec3, bool) {
	if len(s.entities) == 0 {
		return mgl32.Vec3{}, false
	}
	var center mgl32.Vec3
	for _, e := range s.entities {
		center = center.Add(e.WorldPosition())
	}
	return center.Mul(1 / float32(len(s.entities))), true
}

func (s *Selection) notify() {
	s.Changed.Invoke(Change{Active: s.active, Count: len(s.entities)})
}
