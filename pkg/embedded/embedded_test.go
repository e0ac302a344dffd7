package embedded

import (
	"strings"
	"testing"
	"testing/fstest"
)

func withData(t *testing.T, files fstest.MapFS) {
	t.Helper()
	prevFS, prevInit := dataFS, initialized
	t.Cleanup(func() {
		dataFS, initialized = prevFS, prevInit
	})
	if files == nil {
		dataFS, initialized = nil, false
		return
	}
	Init(files)
}

func TestNotInitialized(t *testing.T) {
	withData(t, nil)

	if IsInitialized() {
		t.Fatal("Expected package to be uninitialized")
	}
	if _, err := ReadFile("data/game.yaml"); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Expected not initialized error, got %v", err)
	}
	if Exists("data/game.yaml") {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	withData(t, fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("screen:\n  width: 640\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "plain path", path: "data/game.yaml"},
		{name: "dot prefix", path: "./data/game.yaml"},
		{name: "missing file", path: "data/missing.yaml", wantErr: true},
		{name: "invalid prefix", path: "assets/game.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && !strings.Contains(string(data), "640") {
				t.Errorf("Unexpected content: %q", data)
			}
			if got := Exists(tt.path); got != !tt.wantErr {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, !tt.wantErr)
			}
		})
	}
}

func TestInitNil(t *testing.T) {
	withData(t, nil)
	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}
