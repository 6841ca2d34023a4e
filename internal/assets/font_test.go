package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont_EmbeddedByDefault(t *testing.T) {
	f, err := LoadFont("")
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Name != EmbeddedFontName || f.SFNT == nil || len(f.Data) == 0 {
		t.Fatalf("unexpected font %q sfnt=%v bytes=%d", f.Name, f.SFNT != nil, len(f.Data))
	}
}

func TestLoadFont_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono-Regular.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := LoadFont(path)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Name != "mono-Regular" {
		t.Fatalf("expected name from file stem, got %q", f.Name)
	}
}

func TestLoadFont_KeyTracksContent(t *testing.T) {
	embedded, err := LoadFont("")
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	path := filepath.Join(t.TempDir(), EmbeddedFontName+".ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	impostor, err := LoadFont(path)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if impostor.Name != embedded.Name {
		t.Fatalf("expected same stem, got %q and %q", impostor.Name, embedded.Name)
	}
	if impostor.Key() == embedded.Key() {
		t.Fatalf("different fonts share key %q", embedded.Key())
	}

	same, err := ParseFont(EmbeddedFontName, gomono.TTF)
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	if same.Key() != embedded.Key() {
		t.Fatalf("expected stable key, got %q and %q", same.Key(), embedded.Key())
	}
}

func TestLoadFont_MissingFile(t *testing.T) {
	_, err := LoadFont(filepath.Join(t.TempDir(), "nope.ttf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseFont_Garbage(t *testing.T) {
	if _, err := ParseFont("junk", []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}

func pollUntilDone(t *testing.T, p *Pending) (Font, LoadState, error) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		f, st, err := p.Poll()
		if st != Loading {
			return f, st, err
		}
		if !errors.Is(err, ErrFontLoading) {
			t.Fatalf("loading state must report ErrFontLoading, got %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("font load did not finish")
	return Font{}, Loading, nil
}

func TestLoadAsync_Ready(t *testing.T) {
	p := LoadAsync("")
	f, st, err := pollUntilDone(t, p)
	if st != Ready || err != nil {
		t.Fatalf("expected ready, got %s (%v)", st, err)
	}
	if f.SFNT == nil {
		t.Fatal("ready font has no parsed face data")
	}
	// The result is sticky.
	if _, st2, _ := p.Poll(); st2 != Ready {
		t.Fatalf("state changed to %s after ready", st2)
	}
}

func TestLoadAsync_Failed(t *testing.T) {
	p := LoadAsync(filepath.Join(t.TempDir(), "missing.ttf"))
	_, st, err := pollUntilDone(t, p)
	if st != Failed || err == nil {
		t.Fatalf("expected failed with error, got %s (%v)", st, err)
	}
}
