package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// BuiltinFontName is the cache name used for the built-in Go Regular font.
const BuiltinFontName = "goregular"

// ResourceManager is responsible for loading and caching font faces.
// A font source is parsed once per file; faces are cached per (path, size).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont("", 64) // built-in Go Regular
//	if err != nil {
//	    return err
//	}
type ResourceManager struct {
	fontSourceCache map[string]*text.GoTextFaceSource // Cache for parsed font sources: path -> source
	fontFaceCache   map[string]*text.GoTextFace       // Cache for text faces: "path:size" -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
	}
}

// LoadFont loads a TTF/OTF font at the given size and caches the resulting face.
// An empty path selects the built-in Go Regular font.
//
// Parameters:
//   - path: The font file path, or "" for the built-in font.
//   - size: The font size in points.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be read or parsed, or the size is not positive.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %.1f", size)
	}

	cacheKey := fontCacheKey(path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.loadFontSource(path)
	if err != nil {
		return nil, err
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// It returns nil if the face has not been loaded yet.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fontCacheKey(path, size)]
}

// Release drops every cached font source and face.
// Faces handed out earlier must not be used afterwards.
func (rm *ResourceManager) Release() {
	clear(rm.fontFaceCache)
	clear(rm.fontSourceCache)
}

func (rm *ResourceManager) loadFontSource(path string) (*text.GoTextFaceSource, error) {
	name := fontSourceName(path)
	if cached, exists := rm.fontSourceCache[name]; exists {
		return cached, nil
	}

	fontData := goregular.TTF
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
	}

	rm.fontSourceCache[name] = source
	return source, nil
}

func fontSourceName(path string) string {
	if path == "" {
		return BuiltinFontName
	}
	return path
}

func fontCacheKey(path string, size float64) string {
	return fmt.Sprintf("%s:%.1f", fontSourceName(path), size)
}
