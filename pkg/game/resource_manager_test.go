package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// createTestImage creates a simple 10x10 PNG image for testing purposes.
func createTestImage(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func TestResourceManager_NoAssets(t *testing.T) {
	rm := NewResourceManager(config.AssetsConfig{})

	if rm.HasAssets() {
		t.Error("Expected HasAssets() to be false without a directory")
	}
	if err := rm.PreloadAll(); err != nil {
		t.Errorf("PreloadAll without assets should succeed, got %v", err)
	}
	if frames := rm.Frames(config.SpritePlayer); frames != nil {
		t.Errorf("Expected no frames, got %d", len(frames))
	}

	var nilManager *ResourceManager
	if nilManager.HasAssets() || nilManager.Frames("duck") != nil {
		t.Error("nil ResourceManager should behave as empty")
	}
}

func TestLoadImage_CachingMechanism(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ship.png")
	if err := createTestImage(path); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	rm := NewResourceManager(config.AssetsConfig{Dir: dir})
	img1, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	img2, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("Second LoadImage failed: %v", err)
	}
	if img1 != img2 {
		t.Error("Expected cached image to be returned on second load")
	}

	bounds := img1.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 10 {
		t.Errorf("Expected 10x10 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.png")
	if err := os.WriteFile(invalid, []byte("not a png"), 0644); err != nil {
		t.Fatalf("Failed to write invalid file: %v", err)
	}

	rm := NewResourceManager(config.AssetsConfig{Dir: dir})

	if _, err := rm.LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := rm.LoadImage(invalid); err == nil {
		t.Error("Expected error for invalid image data")
	}
}

func TestPreloadAll(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"duck_0.png", "duck_1.png", "player.png"} {
		if err := createTestImage(filepath.Join(dir, name)); err != nil {
			t.Fatalf("Failed to create test image: %v", err)
		}
	}

	t.Run("all sprites present", func(t *testing.T) {
		rm := NewResourceManager(config.AssetsConfig{
			Dir: dir,
			Sprites: map[string][]string{
				"duck":              {"duck_0.png", "duck_1.png"},
				config.SpritePlayer: {"player.png"},
			},
		})
		if err := rm.PreloadAll(); err != nil {
			t.Fatalf("PreloadAll failed: %v", err)
		}
		if got := len(rm.Frames("duck")); got != 2 {
			t.Errorf("Expected 2 duck frames, got %d", got)
		}
		if got := len(rm.Frames(config.SpritePlayer)); got != 1 {
			t.Errorf("Expected 1 player frame, got %d", got)
		}
	})

	t.Run("missing frame aborts preload", func(t *testing.T) {
		rm := NewResourceManager(config.AssetsConfig{
			Dir: dir,
			Sprites: map[string][]string{
				"bunny": {"bunny_0.png"},
			},
		})
		if err := rm.PreloadAll(); err == nil {
			t.Error("Expected PreloadAll to fail for a missing frame")
		}
	})

	t.Run("undeclared sprite", func(t *testing.T) {
		rm := NewResourceManager(config.AssetsConfig{Dir: dir})
		if _, err := rm.LoadSprite("angryPig"); err == nil {
			t.Error("Expected error for undeclared sprite")
		}
	})
}
