package compose

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadIdealsPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ideals.yaml")
	content := `
presets:
  default:
    ramp: 8
    lands: 35
    basicLands: 20
    creatures: 25
    removal: 10
    wipes: 2
    cardAdvantage: 10
    protection: 8
    freeSlots: 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ideals, err := LoadIdealsPreset(path, "default")
	if err != nil {
		t.Fatalf("LoadIdealsPreset: %v", err)
	}
	if ideals.Creatures != 25 || ideals.Lands != 35 {
		t.Errorf("unexpected ideals: %+v", ideals)
	}
}

func TestLoadIdealsPresetUnknownName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ideals.yaml")
	if err := os.WriteFile(path, []byte("presets:\n  default:\n    ramp: 1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadIdealsPreset(path, "nonexistent"); err == nil {
		t.Error("expected error for unknown preset name")
	}
}
