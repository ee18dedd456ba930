package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gesture"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckConfig(t *testing.T) {
	ok := writeFile(t, "ok.yaml", "maxScale: 3\nboundaries: true\n")
	require.NoError(t, doCheckConfig(ok))

	bad := writeFile(t, "bad.yaml", "minScale: 4\nmaxScale: 2\n")
	require.ErrorIs(t, doCheckConfig(bad), gesture.ErrInvalidConfig)
}

func TestReplayExportsFrames(t *testing.T) {
	path := writeFile(t, "pinch.yaml", `
element: {width: 120, height: 80}
events:
  - {at: 0ms, kind: start, contacts: [[40, 40], [80, 40]]}
  - {at: 16ms, kind: move, contacts: [[30, 40], [90, 40]]}
  - {at: 32ms, kind: move, contacts: [[20, 40], [100, 40]]}
  - {at: 48ms, kind: end}
`)
	dir := filepath.Join(t.TempDir(), "frames")

	require.NoError(t, doReplay(path, dir, 0, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.FileExists(t, filepath.Join(dir, "frame-0000.png"))
	assert.FileExists(t, filepath.Join(dir, "frame-0001.png"))
}

func TestReplayWithoutExport(t *testing.T) {
	path := writeFile(t, "drag.yaml", `
element: {width: 50, height: 50}
events:
  - {at: 0ms, kind: start, contacts: [[10, 10]]}
  - {at: 16ms, kind: move, contacts: [[20, 10]]}
`)
	require.NoError(t, doReplay(path, "", 1, 0))
}
