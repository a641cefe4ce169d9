package asyncimage

import (
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Alignment positions the rendered layers within the widget area when a
// layer has a natural size smaller than the space available
type Alignment int

const (
	// AlignLeading anchors layers to the leading edge (default)
	AlignLeading Alignment = iota

	// AlignCenter centers layers horizontally
	AlignCenter

	// AlignTrailing anchors layers to the trailing edge
	AlignTrailing
)

// Option configures an Image at construction time
type Option func(*Image)

// WithCachePolicy sets how the transport may use stored responses
func WithCachePolicy(p CachePolicy) Option {
	return func(ai *Image) {
		ai.request.policy = p
	}
}

// WithTimeout bounds the whole fetch, connection through decode
func WithTimeout(d time.Duration) Option {
	return func(ai *Image) {
		ai.request.timeout = d
	}
}

// WithScale sets an explicit rendering scale instead of the ambient canvas
// scale. Pixel dimensions are divided by the scale to obtain the layer's
// natural size.
func WithScale(s float32) Option {
	return func(ai *Image) {
		ai.request.scale = s
	}
}

// WithAnimation sets the cross-fade curve and duration
func WithAnimation(curve fyne.AnimationCurve, d time.Duration) Option {
	return func(ai *Image) {
		ai.fadeCurve = curve
		ai.fadeDuration = d
	}
}

// WithAlignment sets how layers are positioned during composition
func WithAlignment(a Alignment) Option {
	return func(ai *Image) {
		ai.align = a
	}
}

// WithClient sets the HTTP client used for the fetch. The client's transport
// owns all cache behavior.
func WithClient(c *http.Client) Option {
	return func(ai *Image) {
		ai.client = c
	}
}

// defaultAnimation applies the construction defaults for the cross-fade
func defaultAnimation(ai *Image) {
	ai.fadeCurve = fyne.AnimationEaseInOut
	ai.fadeDuration = canvas.DurationStandard
}
