package asyncimage

import (
	"errors"
	"image"
	"testing"
)

func TestPhaseKind_IsTerminal(t *testing.T) {
	tests := []struct {
		kind     PhaseKind
		expected bool
	}{
		{PhaseIdle, false},
		{PhaseLoaded, true},
		{PhaseFailed, true},
	}

	for _, test := range tests {
		if result := test.kind.IsTerminal(); result != test.expected {
			t.Errorf("IsTerminal() for %s = %v, expected %v", test.kind, result, test.expected)
		}
	}
}

func TestPhase_ZeroValueIsIdle(t *testing.T) {
	var p Phase
	if p.Kind() != PhaseIdle {
		t.Errorf("zero Phase kind = %s, expected %s", p.Kind(), PhaseIdle)
	}
	if !p.IsIdle() {
		t.Error("zero Phase should be idle")
	}
	if p.Image() != nil || p.Err() != nil {
		t.Error("zero Phase should carry neither image nor error")
	}
}

func TestPhase_Loaded(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	p := Loaded(img)

	if p.Kind() != PhaseLoaded {
		t.Errorf("Kind() = %s, expected %s", p.Kind(), PhaseLoaded)
	}
	if !p.IsLoaded() || p.IsIdle() || p.IsFailed() {
		t.Error("Loaded phase predicates are wrong")
	}
	if p.Image() != image.Image(img) {
		t.Error("Image() should return the decoded image unchanged")
	}
	if p.String() != "Loaded(4x2)" {
		t.Errorf("String() = %s, expected Loaded(4x2)", p.String())
	}
}

func TestPhase_Failed(t *testing.T) {
	cause := errors.New("boom")
	p := Failed(cause)

	if p.Kind() != PhaseFailed {
		t.Errorf("Kind() = %s, expected %s", p.Kind(), PhaseFailed)
	}
	if !p.IsFailed() {
		t.Error("Failed phase should report IsFailed")
	}
	if p.Err() != cause {
		t.Error("Err() should return the underlying error unchanged")
	}
}
