package world

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gameobjects-sim/internal/census"
	"gameobjects-sim/internal/common"
)

// Scene holds the entities of a game world in insertion order.
type Scene struct {
	entities []Entity          // All entities, in the order they were added
	byID     map[string]Entity // Quick access by ID
	enrolled map[string]bool   // IDs of movables taking part in the movement pass

	log *slog.Logger
}

// NewScene creates an empty scene. A nil logger means slog.Default().
func NewScene(log *slog.Logger) *Scene {
	if log == nil {
		log = slog.Default()
	}
	return &Scene{
		byID:     make(map[string]Entity),
		enrolled: make(map[string]bool),
		log:      log,
	}
}

// Add appends an entity to the scene.
func (s *Scene) Add(e Entity) error {
	id := e.ID()
	if _, exists := s.byID[id]; exists {
		return fmt.Errorf("entity with ID %s already exists", id)
	}
	s.entities = append(s.entities, e)
	s.byID[id] = e
	s.log.Debug("entity added", "id", id, "kind", e.Kind())
	return nil
}

// Enroll marks the movable entity with the given ID for the movement pass.
func (s *Scene) Enroll(id string) error {
	e, exists := s.byID[id]
	if !exists {
		return fmt.Errorf("no entity with ID %s", id)
	}
	if _, ok := e.(Movable); !ok {
		return fmt.Errorf("entity %s of kind %s is not movable", id, e.Kind())
	}
	s.enrolled[id] = true
	return nil
}

// Get returns an entity by its ID.
func (s *Scene) Get(id string) (Entity, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Len returns the number of entities in the scene.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Entities returns all entities in insertion order.
func (s *Scene) Entities() []Entity {
	entities := make([]Entity, len(s.entities))
	copy(entities, s.entities)
	return entities
}

// Movables returns the enrolled movables in insertion order.
func (s *Scene) Movables() []Movable {
	movables := make([]Movable, 0, len(s.enrolled))
	for _, e := range s.entities {
		if !s.enrolled[e.ID()] {
			continue
		}
		movables = append(movables, e.(Movable))
	}
	return movables
}

// MovablesOf returns every entity of entities that implements Movable, keeping their order.
func MovablesOf(entities []Entity) []Movable {
	var movables []Movable
	for _, e := range entities {
		if m, ok := e.(Movable); ok {
			movables = append(movables, m)
		}
	}
	return movables
}

// PrintAll writes every entity to w, one per line.
func (s *Scene) PrintAll(w io.Writer) error {
	for _, e := range s.entities {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return fmt.Errorf("print entity %s: %w", e.ID(), err)
		}
	}
	return nil
}

// MoveAll moves each of movables by two values drawn from deltas and writes
// the moved entity to w.
func (s *Scene) MoveAll(w io.Writer, movables []Movable, deltas DeltaSource) error {
	for _, m := range movables {
		a := deltas.Next()
		b := deltas.Next()
		before := m.Position()
		m.Move(a, b)
		s.log.Debug("entity moved", "id", m.ID(), "kind", m.Kind(), "from", before, "to", m.Position())
		if _, err := fmt.Fprintln(w, m); err != nil {
			return fmt.Errorf("print entity %s: %w", m.ID(), err)
		}
	}
	return nil
}

// Run prints the scene, a blank line, then moves and prints the movables.
// When moveAll is set every movable entity is moved, not only the enrolled ones.
func (s *Scene) Run(w io.Writer, deltas DeltaSource, moveAll bool) error {
	if err := s.PrintAll(w); err != nil {
		return err
	}
	s.logCensus("initial")
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("print separator: %w", err)
	}

	movables := s.Movables()
	if moveAll {
		movables = MovablesOf(s.entities)
	}
	if err := s.MoveAll(w, movables, deltas); err != nil {
		return err
	}
	s.logCensus("moved")
	return nil
}

func (s *Scene) logCensus(phase string) {
	if !s.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	points := make([]common.Point, len(s.entities))
	for i, e := range s.entities {
		points[i] = e.Position()
	}
	sum := census.Summarize(points)
	s.log.Debug("scene census",
		"phase", phase,
		"count", sum.Count,
		"centroid", sum.Centroid,
		"min", sum.Min,
		"max", sum.Max,
		"spread", sum.MeanDistance,
	)
}
