package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/brendino500/space-invaders/pkg/embedded"
)

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	diskPath := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(diskPath, []byte("formation:\n  stepInterval: 0.5\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("formation:\n  stepInterval: -1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	embedded.Init(fstest.MapFS{
		"data/embedded.yaml": &fstest.MapFile{Data: []byte("formation:\n  stepInterval: 0.25\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	tests := []struct {
		name         string
		path         string
		wantErr      bool
		wantInterval float64
	}{
		{name: "file on disk", path: diskPath, wantInterval: 0.5},
		{name: "embedded fallback", path: "data/embedded.yaml", wantInterval: 0.25},
		{name: "defaults", path: "data/nowhere.yaml", wantInterval: 1.0},
		{name: "invalid file", path: badPath, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadGameConfig(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadGameConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Formation.StepInterval != tt.wantInterval {
				t.Errorf("StepInterval = %f, want %f", cfg.Formation.StepInterval, tt.wantInterval)
			}
		})
	}
}
