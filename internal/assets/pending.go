package assets

import "log"

// LoadState is the progress of an asynchronous load.
type LoadState uint8

const (
	Loading LoadState = iota
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type loadResult struct {
	font Font
	err  error
}

// Pending is a font being loaded in the background. It is polled from the
// frame loop, which owns it; Poll must not be called concurrently.
type Pending struct {
	ch    chan loadResult
	state LoadState
	font  Font
	err   error
}

// LoadAsync starts loading the font at path (empty for the embedded font)
// on its own goroutine and returns immediately.
func LoadAsync(path string) *Pending {
	p := &Pending{ch: make(chan loadResult, 1)}
	go func() {
		f, err := LoadFont(path)
		p.ch <- loadResult{font: f, err: err}
	}()
	return p
}

// Poll reports the load state without blocking. Once the state is Ready or
// Failed it stays that way and the same font or error is returned.
func (p *Pending) Poll() (Font, LoadState, error) {
	if p.state == Loading {
		select {
		case r := <-p.ch:
			p.font, p.err = r.font, r.err
			if r.err != nil {
				p.state = Failed
				log.Printf("assets: font load failed: %v", r.err)
			} else {
				p.state = Ready
				log.Printf("assets: loaded font %s (%d bytes)", r.font.Name, len(r.font.Data))
			}
		default:
			return Font{}, Loading, ErrFontLoading
		}
	}
	return p.font, p.state, p.err
}
