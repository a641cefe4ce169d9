package asyncimage

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// layer is one slot of the two-layer composition: the phase it represents and
// the canvas object the render function produced for it
type layer struct {
	phase Phase
	obj   fyne.CanvasObject
}

// crossfadeRenderer composes the outgoing (previous phase) and incoming
// (current phase) layers and fades the incoming one in whenever a transition
// moves it on top
type crossfadeRenderer struct {
	owner *Image

	outgoing layer
	incoming layer
	lastRev  uint64

	fade *fyne.Animation
}

// newCrossfadeRenderer creates the renderer and builds both layers for the
// widget's present state
func newCrossfadeRenderer(ai *Image) *crossfadeRenderer {
	r := &crossfadeRenderer{owner: ai, lastRev: ai.rev()}
	r.rebuild()
	return r
}

// rebuild invokes the render function once per phase value
func (r *crossfadeRenderer) rebuild() {
	ai := r.owner
	r.outgoing = layer{phase: ai.PreviousPhase(), obj: r.renderPhase(ai.PreviousPhase())}
	r.incoming = layer{phase: ai.Phase(), obj: r.renderPhase(ai.Phase())}
}

// renderPhase calls the caller-supplied render function, substituting a blank
// layer when none was supplied
func (r *crossfadeRenderer) renderPhase(p Phase) fyne.CanvasObject {
	if r.owner.render == nil {
		return canvas.NewRectangle(color.Transparent)
	}
	if obj := r.owner.render(p); obj != nil {
		return obj
	}
	return canvas.NewRectangle(color.Transparent)
}

// naturalSize returns the layer's preferred size: decoded pixel dimensions
// divided by the rendering scale for a loaded phase, the object's minimum
// size otherwise
func (r *crossfadeRenderer) naturalSize(l layer) fyne.Size {
	if l.phase.IsLoaded() && l.phase.Image() != nil {
		scale := r.owner.Scale()
		if scale <= 0 {
			scale = 1
		}
		b := l.phase.Image().Bounds()
		return fyne.NewSize(float32(b.Dx())/scale, float32(b.Dy())/scale)
	}
	return l.obj.MinSize()
}

// Layout arranges both layers. Loaded layers smaller than the available area
// are placed at their natural size per the configured alignment; everything
// else fills the area, stack style.
func (r *crossfadeRenderer) Layout(size fyne.Size) {
	r.place(r.outgoing, size)
	r.place(r.incoming, size)
}

func (r *crossfadeRenderer) place(l layer, size fyne.Size) {
	if !l.phase.IsLoaded() {
		l.obj.Resize(size)
		l.obj.Move(fyne.NewPos(0, 0))
		return
	}

	sz := r.naturalSize(l)
	if sz.Width >= size.Width && sz.Height >= size.Height {
		l.obj.Resize(size)
		l.obj.Move(fyne.NewPos(0, 0))
		return
	}
	if sz.Width > size.Width {
		sz.Width = size.Width
	}
	if sz.Height > size.Height {
		sz.Height = size.Height
	}

	var x float32
	switch r.owner.align {
	case AlignCenter:
		x = (size.Width - sz.Width) / 2
	case AlignTrailing:
		x = size.Width - sz.Width
	}

	l.obj.Resize(sz)
	l.obj.Move(fyne.NewPos(x, (size.Height-sz.Height)/2))
}

// MinSize returns the union of both layers' natural sizes
func (r *crossfadeRenderer) MinSize() fyne.Size {
	return r.naturalSize(r.outgoing).Max(r.naturalSize(r.incoming))
}

// Refresh rebuilds the layers after a phase transition and starts the
// cross-fade; otherwise it just repaints the existing layers
func (r *crossfadeRenderer) Refresh() {
	if rev := r.owner.rev(); rev != r.lastRev {
		r.lastRev = rev
		r.rebuild()
		// The replaced layer objects start at zero size; the toolkit only
		// lays out on resize, so place them for the current bounds here.
		r.Layout(r.owner.Size())
		r.startFade()
	}

	r.outgoing.obj.Refresh()
	r.incoming.obj.Refresh()
}

// Objects returns the layers bottom-up; the later object draws on top
func (r *crossfadeRenderer) Objects() []fyne.CanvasObject {
	if r.owner.NewOnTop() {
		return []fyne.CanvasObject{r.outgoing.obj, r.incoming.obj}
	}
	return []fyne.CanvasObject{r.incoming.obj, r.outgoing.obj}
}

// Destroy stops any running fade and releases the fetch operation
func (r *crossfadeRenderer) Destroy() {
	if r.fade != nil {
		r.fade.Stop()
		r.fade = nil
	}
	r.owner.tasks.Deactivate()
}

// startFade animates the incoming layer from transparent to opaque with the
// configured curve and duration. Only canvas images expose translucency; any
// other object appears at full opacity when the transition lands, which is a
// plain swap at the top of the stack.
func (r *crossfadeRenderer) startFade() {
	if r.fade != nil {
		r.fade.Stop()
		r.fade = nil
	}

	img, ok := r.incoming.obj.(*canvas.Image)
	if !ok || r.owner.fadeDuration <= 0 {
		return
	}

	img.Translucency = 1
	anim := fyne.NewAnimation(r.owner.fadeDuration, func(done float32) {
		img.Translucency = float64(1 - done)
		canvas.Refresh(img)
	})
	anim.Curve = r.owner.fadeCurve
	r.fade = anim
	anim.Start()
}
