// Package assets acquires the font resources the scene is drawn with.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// EmbeddedFontName names the built-in fallback font.
const EmbeddedFontName = "gomono"

// ErrFontLoading is returned by Pending.Poll while the font is still loading.
var ErrFontLoading = errors.New("assets: font still loading")

// Font is a parsed font together with its raw bytes. The bytes are kept
// because some renderers (ebiten text/v2) parse their own face source.
type Font struct {
	Name string
	Sum  string // short content hash
	Data []byte
	SFNT *opentype.Font
}

// Key identifies the font by name and content, so two files sharing a
// stem (or a file named like the embedded font) never collide in a cache.
func (f Font) Key() string {
	return f.Name + "-" + f.Sum
}

// LoadFont reads and parses the TrueType/OpenType file at path. An empty
// path selects the embedded Go Mono font.
func LoadFont(path string) (Font, error) {
	if path == "" {
		return ParseFont(EmbeddedFontName, gomono.TTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Font{}, fmt.Errorf("assets: read font: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseFont(name, data)
}

// ParseFont parses font data already in memory.
func ParseFont(name string, data []byte) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return Font{}, fmt.Errorf("assets: parse font %s: %w", name, err)
	}
	sum := sha256.Sum256(data)
	return Font{Name: name, Sum: hex.EncodeToString(sum[:4]), Data: data, SFNT: f}, nil
}
