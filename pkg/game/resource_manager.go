package game

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"os"
	"path/filepath"
	"sort"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager is responsible for loading and caching sprite images.
//
// Sprites are declared in the assets section of the game config: each sprite name
// maps to an ordered list of frame files relative to the assets directory.
// When no assets directory is configured the manager stays empty and every
// entity is drawn as a solid rectangle.
//
// This implementation is NOT thread-safe; all loading happens on the game goroutine
// before the first frame.
type ResourceManager struct {
	assets     config.AssetsConfig
	imageCache map[string]*ebiten.Image   // path -> Image
	sprites    map[string][]*ebiten.Image // sprite name -> frames
}

// NewResourceManager creates a ResourceManager for the given assets configuration.
func NewResourceManager(assets config.AssetsConfig) *ResourceManager {
	return &ResourceManager{
		assets:     assets,
		imageCache: make(map[string]*ebiten.Image),
		sprites:    make(map[string][]*ebiten.Image),
	}
}

// HasAssets reports whether an assets directory is configured.
func (rm *ResourceManager) HasAssets() bool {
	return rm != nil && rm.assets.Dir != ""
}

// LoadImage loads an image file and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadSprite loads every frame of the named sprite.
func (rm *ResourceManager) LoadSprite(name string) ([]*ebiten.Image, error) {
	if frames, ok := rm.sprites[name]; ok {
		return frames, nil
	}

	files, ok := rm.assets.Sprites[name]
	if !ok || len(files) == 0 {
		return nil, fmt.Errorf("sprite %q is not declared in the assets config", name)
	}

	frames := make([]*ebiten.Image, 0, len(files))
	for _, f := range files {
		img, err := rm.LoadImage(filepath.Join(rm.assets.Dir, f))
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", name, err)
		}
		frames = append(frames, img)
	}

	rm.sprites[name] = frames
	return frames, nil
}

// PreloadAll loads every declared sprite. Any failure aborts the preload,
// which the app treats as a fatal boot error.
func (rm *ResourceManager) PreloadAll() error {
	if !rm.HasAssets() {
		return nil
	}

	names := make([]string, 0, len(rm.assets.Sprites))
	for name := range rm.assets.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := rm.LoadSprite(name); err != nil {
			return err
		}
	}
	return nil
}

// Frames returns the preloaded frames of a sprite, or nil if the sprite is unknown
// or the manager itself is nil.
func (rm *ResourceManager) Frames(name string) []*ebiten.Image {
	if rm == nil {
		return nil
	}
	return rm.sprites[name]
}
