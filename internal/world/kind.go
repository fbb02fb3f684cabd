package world

import (
	"fmt"
	"strings"
)

// Kind identifies the concrete type of an entity.
type Kind int

const (
	KindObject Kind = iota
	KindCharacter
	KindVehicle
	KindTree
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindCharacter:
		return "character"
	case KindVehicle:
		return "vehicle"
	case KindTree:
		return "tree"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var kindNames = map[string]Kind{
	"object":     KindObject,
	"objeto":     KindObject,
	"character":  KindCharacter,
	"personagem": KindCharacter,
	"vehicle":    KindVehicle,
	"veiculo":    KindVehicle,
	"tree":       KindTree,
	"arvore":     KindTree,
}

// ParseKind returns the kind for an English or Portuguese kind name.
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown entity kind %q", s)
	}
	return k, nil
}
