package glyph

import (
	"errors"
	"fmt"
)

var (
	ErrNoRenderer     = errors.New("no font renderer")
	ErrEmptyAlphabet  = errors.New("empty alphabet")
	ErrBadCell        = errors.New("cell size must be positive")
	ErrDuplicateGlyph = errors.New("duplicate glyph in alphabet")
	ErrNoTexture      = errors.New("renderer returned no texture")
	ErrShortStrip     = errors.New("rendered strip smaller than alphabet")
	ErrMissingGlyph   = errors.New("font has no glyph")
)

// BuildError reports why an atlas could not be built. A scene cannot render
// without its atlas, so callers treat this as fatal.
type BuildError struct {
	Renderer string
	Alphabet string
	Cell     Size
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("glyph: build atlas %q at %s with %q: %v", e.Alphabet, e.Cell, e.Renderer, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
