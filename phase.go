package asyncimage

import (
	"fmt"
	"image"
)

// PhaseKind identifies which variant of a load Phase is populated
type PhaseKind string

const (
	// PhaseIdle means no content has been resolved yet
	PhaseIdle PhaseKind = "Idle"

	// PhaseLoaded means the fetch succeeded and a decoded image is available
	PhaseLoaded PhaseKind = "Loaded"

	// PhaseFailed means the fetch ended with an error
	PhaseFailed PhaseKind = "Failed"
)

// String returns the string representation of PhaseKind
func (pk PhaseKind) String() string {
	return string(pk)
}

// IsTerminal returns true if the kind ends a fetch (loaded or failed)
func (pk PhaseKind) IsTerminal() bool {
	return pk == PhaseLoaded || pk == PhaseFailed
}

// Phase is the tagged state of one image load attempt. The zero value is the
// idle phase.
type Phase struct {
	kind PhaseKind
	img  image.Image
	err  error
}

// Idle returns the phase shown before any fetch has resolved
func Idle() Phase {
	return Phase{kind: PhaseIdle}
}

// Loaded returns the phase carrying a successfully decoded image
func Loaded(img image.Image) Phase {
	return Phase{kind: PhaseLoaded, img: img}
}

// Failed returns the phase carrying the error that ended the fetch
func Failed(err error) Phase {
	return Phase{kind: PhaseFailed, err: err}
}

// Kind returns which variant this phase is
func (p Phase) Kind() PhaseKind {
	if p.kind == "" {
		return PhaseIdle
	}
	return p.kind
}

// Image returns the decoded image for a loaded phase, nil otherwise
func (p Phase) Image() image.Image {
	return p.img
}

// Err returns the fetch error for a failed phase, nil otherwise
func (p Phase) Err() error {
	return p.err
}

// IsIdle returns true if no fetch has resolved yet
func (p Phase) IsIdle() bool {
	return p.Kind() == PhaseIdle
}

// IsLoaded returns true if the phase carries a decoded image
func (p Phase) IsLoaded() bool {
	return p.kind == PhaseLoaded
}

// IsFailed returns true if the phase carries a fetch error
func (p Phase) IsFailed() bool {
	return p.kind == PhaseFailed
}

// String returns a short human readable description for logs
func (p Phase) String() string {
	switch p.Kind() {
	case PhaseLoaded:
		if p.img != nil {
			b := p.img.Bounds()
			return fmt.Sprintf("Loaded(%dx%d)", b.Dx(), b.Dy())
		}
		return "Loaded"
	case PhaseFailed:
		return fmt.Sprintf("Failed(%v)", p.err)
	default:
		return "Idle"
	}
}
