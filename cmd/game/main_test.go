package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("should print the reference scene twice", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, run(nil, &stdout, &stderr))
		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 13)
		assert.Equal(t, "Personagem{nome='Dayelle'x=1.0, y=1.0}", lines[0])
		assert.Equal(t, "", lines[8])
		assert.True(t, strings.HasPrefix(lines[9], "Personagem{nome='Dayelle'x="))
		assert.True(t, strings.HasSuffix(lines[9], ", y=1.0}"))
		assert.True(t, strings.HasSuffix(lines[12], "corPreto'}"))
		assert.Empty(t, stderr.String())
	})
	t.Run("should repeat output for a fixed seed", func(t *testing.T) {
		var a, b bytes.Buffer
		require.NoError(t, run([]string{"-seed", "12345", "-population", "template"}, &a, &bytes.Buffer{}))
		require.NoError(t, run([]string{"-seed", "12345", "-population", "template"}, &b, &bytes.Buffer{}))
		assert.Equal(t, a.String(), b.String())
		assert.Len(t, strings.Split(strings.TrimSuffix(a.String(), "\n"), "\n"), 5+1+2)
	})
	t.Run("should log at debug level", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{"-loglevel", "debug", "-seed", "1"}, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "scene census")
		assert.Contains(t, stderr.String(), "entity moved")
	})
	t.Run("should load scene file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "scene.yaml")
		data := "entities:\n  - kind: vehicle\n    x: 1\n    y: 2\n    color: Verde\n  - kind: tree\n    x: 0\n    y: 0\n    height: 3\n"
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		var stdout bytes.Buffer
		require.NoError(t, run([]string{"-scene", p, "-move-all", "-scale", "1", "-seed", "3"}, &stdout, &bytes.Buffer{}))
		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Veiculo{x=1.0y=2.0corVerde'}", lines[0])
		assert.Equal(t, "Arvore{altura=3.0, x=0.0, y=0.0}", lines[1])
		assert.True(t, strings.HasPrefix(lines[3], "Veiculo{x="))
		assert.True(t, strings.HasSuffix(lines[3], "corVerde'}"))
	})
	t.Run("should fail on invalid flags", func(t *testing.T) {
		var stderr bytes.Buffer
		assert.Error(t, run([]string{"-scale", "0"}, &bytes.Buffer{}, &stderr))
		assert.Error(t, run([]string{"-population", "other"}, &bytes.Buffer{}, &stderr))
		assert.Error(t, run([]string{"-loglevel", "loud"}, &bytes.Buffer{}, &stderr))
		assert.Error(t, run([]string{"-scene", "missing.yaml"}, &bytes.Buffer{}, &stderr))
	})
}
