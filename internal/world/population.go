package world

import (
	"fmt"
	"log/slog"
)

const (
	PopulationReference = "reference"
	PopulationTemplate  = "template"
)

// Populations lists the names of the built-in scenes.
var Populations = []string{PopulationReference, PopulationTemplate}

// Populate builds one of the built-in scenes.
func Populate(name string, log *slog.Logger) (*Scene, error) {
	s := NewScene(log)
	var err error
	switch name {
	case PopulationReference:
		err = populateReference(s)
	case PopulationTemplate:
		err = populateTemplate(s)
	default:
		return nil, fmt.Errorf("unknown population %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("populate %s: %w", name, err)
	}
	return s, nil
}

func populateReference(s *Scene) error {
	dayelle := NewCharacter(1.0, 1.0, "Dayelle")
	aghata := NewCharacter(1.0, 1.0, "Aghata")
	blue := NewVehicle(4.0, 2.0, "Azul")
	black := NewVehicle(4.0, 2.0, "Preto")

	return fill(s,
		[]Entity{
			dayelle,
			aghata,
			NewCharacter(1.5, 1.0, "Itania"),
			blue,
			NewVehicle(4.0, 4.0, "Vermelho"),
			NewTree(5.0, 5.0, 5.5),
			black,
			NewVehicle(4.0, 4.0, "Preto"),
		},
		[]Movable{dayelle, aghata, blue, black},
	)
}

func populateTemplate(s *Scene) error {
	joao := NewCharacter(1.0, 1.0, "João")
	blue := NewVehicle(4.0, 2.0, "Azul")

	return fill(s,
		[]Entity{
			joao,
			NewCharacter(1.5, 1.0, "Maria"),
			blue,
			NewVehicle(4.0, 4.0, "Vermelho"),
			NewTree(5.0, 5.0, 5.5),
		},
		[]Movable{joao, blue},
	)
}

func fill(s *Scene, entities []Entity, movers []Movable) error {
	for _, e := range entities {
		if err := s.Add(e); err != nil {
			return err
		}
	}
	for _, m := range movers {
		if err := s.Enroll(m.ID()); err != nil {
			return err
		}
	}
	return nil
}
