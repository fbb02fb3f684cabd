// Package scenefile loads scenes from YAML files.
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"gameobjects-sim/internal/world"
)

// Entry describes one entity of a scene file.
type Entry struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Name   string  `yaml:"name,omitempty"`   // character only
	Color  string  `yaml:"color,omitempty"`  // vehicle only
	Height float64 `yaml:"height,omitempty"` // tree only
	Moves  bool    `yaml:"moves,omitempty"`
}

// Document is the top-level structure of a scene file.
type Document struct {
	Entities []Entry `yaml:"entities"`
}

var ErrEmptyScene = errors.New("scene has no entities")

// LoadFile reads the scene file at path.
func LoadFile(path string, log *slog.Logger) (*world.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f, log)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return s, nil
}

// Load reads a scene in YAML format from r.
func Load(r io.Reader, log *slog.Logger) (*world.Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Build(doc, log)
}

// Build creates a scene from a decoded document.
func Build(doc Document, log *slog.Logger) (*world.Scene, error) {
	if len(doc.Entities) == 0 {
		return nil, ErrEmptyScene
	}
	s := world.NewScene(log)
	for i, e := range doc.Entities {
		entity, err := e.entity()
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		if err := s.Add(entity); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		if !e.Moves {
			continue
		}
		if err := s.Enroll(entity.ID()); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}
	return s, nil
}

func (e Entry) entity() (world.Entity, error) {
	kind, err := world.ParseKind(e.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case world.KindCharacter:
		return world.NewCharacter(e.X, e.Y, e.Name), nil
	case world.KindVehicle:
		return world.NewVehicle(e.X, e.Y, e.Color), nil
	case world.KindTree:
		return world.NewTree(e.X, e.Y, e.Height), nil
	}
	return world.NewObject(e.X, e.Y), nil
}
