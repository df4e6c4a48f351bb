package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleScene = `
engine:
  position_iterations: 6
  velocity_iterations: 4
  gravity: [0, 0.001]
  enable_sleeping: true
bodies:
  - vertices: [[-5, -5], [5, -5], [5, 5], [-5, 5]]
    position: [0, 0]
    density: 0.001
  - vertices: [[-50, -5], [50, -5], [50, 5], [-50, 5]]
    position: [0, 100]
    is_static: true
`

func writeScene(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture scene: %v", err)
	}
	return path
}

func TestLoadSceneBuildsEngineWithBodies(t *testing.T) {
	path := writeScene(t, sampleScene)

	e, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene() error = %v", err)
	}
	if len(e.Bodies()) != 2 {
		t.Fatalf("len(Bodies) = %d, want 2", len(e.Bodies()))
	}
}

func TestLoadSceneRejectsDegenerateBody(t *testing.T) {
	path := writeScene(t, `
bodies:
  - vertices: [[0, 0], [1, 1]]
`)

	if _, err := LoadScene(path); err == nil {
		t.Fatal("expected error for body with fewer than 3 vertices")
	}
}

func TestLoadSceneRejectsZeroAreaBody(t *testing.T) {
	// Three collinear points: >= 3 vertices, but zero signed area.
	path := writeScene(t, `
bodies:
  - vertices: [[0, 0], [5, 0], [10, 0]]
`)

	if _, err := LoadScene(path); err == nil {
		t.Fatal("expected error for body with zero signed area")
	}
}

func TestLoadSceneRejectsMissingFile(t *testing.T) {
	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing scene file")
	}
}
