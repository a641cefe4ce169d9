package asyncimage

import (
	"context"
	"net/http"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// RenderFunc maps a load phase to the canvas object representing it. The
// function must be a pure mapping with no side effects: the renderer invokes
// it for both the outgoing and the incoming layer within the same draw.
type RenderFunc func(Phase) fyne.CanvasObject

// Image is a widget that fetches a remote image once per appearance and
// cross-fades from the previously rendered phase to the new one. The widget
// adds no cache layer; cache behavior belongs to the HTTP client configured
// via WithClient and the request's CachePolicy.
//
// Phase state is owned by the event loop: fetch results re-enter it through
// fyne.Do before any transition is applied.
type Image struct {
	widget.BaseWidget

	request *Request
	render  RenderFunc
	client  *http.Client

	fadeCurve    fyne.AnimationCurve
	fadeDuration time.Duration
	align        Alignment

	state   transitionState
	stateMu sync.RWMutex
	tasks   taskLifecycle
}

// New creates an image widget fetching url. A caller-supplied render function
// decides what each phase looks like; nil render falls back to a blank layer
// for every phase.
func New(url string, render RenderFunc, opts ...Option) *Image {
	return build(newRequest(url), render, opts...)
}

// NewFromRequest creates an image widget around a caller-built request. The
// request's own headers survive; cache policy headers are layered on top. A
// nil request means no fetch ever runs and the phase stays idle.
func NewFromRequest(raw *http.Request, render RenderFunc, opts ...Option) *Image {
	return build(newRawRequest(raw), render, opts...)
}

func build(request *Request, render RenderFunc, opts ...Option) *Image {
	ai := &Image{
		request: request,
		render:  render,
	}
	defaultAnimation(ai)
	for _, opt := range opts {
		opt(ai)
	}
	ai.ExtendBaseWidget(ai)
	return ai
}

// Phase returns the latest resolved phase
func (ai *Image) Phase() Phase {
	ai.stateMu.RLock()
	defer ai.stateMu.RUnlock()
	return ai.state.current
}

// PreviousPhase returns the phase shown immediately before the current one
func (ai *Image) PreviousPhase() Phase {
	ai.stateMu.RLock()
	defer ai.stateMu.RUnlock()
	return ai.state.previous
}

// NewOnTop reports whether the current layer is the opaque top layer
func (ai *Image) NewOnTop() bool {
	ai.stateMu.RLock()
	defer ai.stateMu.RUnlock()
	return ai.state.newOnTop
}

// rev returns the transition counter used by the renderer to detect changes
func (ai *Image) rev() uint64 {
	ai.stateMu.RLock()
	defer ai.stateMu.RUnlock()
	return ai.state.rev
}

// Fetching reports whether a fetch operation handle is retained
func (ai *Image) Fetching() bool {
	return ai.tasks.Active()
}

// Scale returns the rendering scale: the explicit one if configured, else the
// scale of the canvas the widget is attached to, else 1.
func (ai *Image) Scale() float32 {
	if ai.request != nil && ai.request.scale > 0 {
		return ai.request.scale
	}
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		if c := app.Driver().CanvasForObject(ai); c != nil {
			return c.Scale()
		}
	}
	return 1
}

// CreateRenderer creates the two-layer cross-fade renderer. First render
// counts as appearance, so the fetch starts here.
func (ai *Image) CreateRenderer() fyne.WidgetRenderer {
	ai.start()
	return newCrossfadeRenderer(ai)
}

// Show makes the widget visible and starts the fetch if none is active
func (ai *Image) Show() {
	ai.start()
	ai.BaseWidget.Show()
}

// Hide makes the widget invisible, cancelling any in-flight fetch. A fetch
// that already produced a result will not mutate the phase afterwards.
func (ai *Image) Hide() {
	ai.tasks.Deactivate()
	ai.BaseWidget.Hide()
}

// start activates the fetch lifecycle. Without a usable request descriptor
// nothing happens and the phase stays idle forever.
func (ai *Image) start() {
	if !ai.request.valid() {
		return
	}

	ai.tasks.Activate(func(ctx context.Context, gen uint64) {
		phase, ok := newFetcher(ai.request, ai.client).run(ctx)
		if !ok {
			return
		}

		fyne.Do(func() {
			if !ai.tasks.Live(gen) {
				return
			}
			ai.stateMu.Lock()
			ai.state.advance(phase)
			ai.stateMu.Unlock()
			ai.Refresh()
		})
	})
}
