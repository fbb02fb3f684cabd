package scenefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScene = `
entities:
  - kind: character
    x: 1.0
    y: 1.0
    name: Dayelle
    moves: true
  - kind: arvore
    x: 5
    y: 5
    height: 5.5
  - kind: vehicle
    x: 4
    y: 2
    color: Azul
    moves: true
  - kind: object
    x: 0.5
    y: 0.25
`

func TestLoad(t *testing.T) {
	t.Run("should build scene from yaml", func(t *testing.T) {
		s, err := Load(strings.NewReader(sampleScene), nil)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, s.PrintAll(&buf))
		assert.Equal(t, "Personagem{nome='Dayelle'x=1.0, y=1.0}\n"+
			"Arvore{altura=5.5, x=5.0, y=5.0}\n"+
			"Veiculo{x=4.0y=2.0corAzul'}\n"+
			"Objeto{x=0.5, y=0.25}\n", buf.String())
		movables := s.Movables()
		require.Len(t, movables, 2)
		assert.Equal(t, "Personagem{nome='Dayelle'x=1.0, y=1.0}", movables[0].String())
		assert.Equal(t, "Veiculo{x=4.0y=2.0corAzul'}", movables[1].String())
	})
	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := Load(strings.NewReader("entities:\n  - kind: rock\n"), nil)
		assert.ErrorContains(t, err, "entity 0")
	})
	t.Run("should reject moving tree", func(t *testing.T) {
		_, err := Load(strings.NewReader("entities:\n  - kind: tree\n    moves: true\n"), nil)
		assert.ErrorContains(t, err, "not movable")
	})
	t.Run("should reject empty scene", func(t *testing.T) {
		_, err := Load(strings.NewReader("entities: []\n"), nil)
		assert.ErrorIs(t, err, ErrEmptyScene)
	})
	t.Run("should reject malformed yaml", func(t *testing.T) {
		_, err := Load(strings.NewReader("entities: [\n"), nil)
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(p, []byte(sampleScene), 0o644))
	s, err := LoadFile(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
