package ui

import (
	"fmt"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	asyncimage "github.com/valvoline/CachedAsyncImage"
	"github.com/valvoline/CachedAsyncImage/internal/config"
)

// Gallery is the demo's main screen: a grid of asyncimage tiles fed from the
// persisted URL list, with an entry to add more
type Gallery struct {
	window   fyne.Window
	settings *config.Settings

	urlEntry *widget.Entry
	grid     *fyne.Container

	urls []string
}

// NewGallery creates the gallery backed by the given settings
func NewGallery(window fyne.Window, settings *config.Settings) *Gallery {
	return &Gallery{
		window:   window,
		settings: settings,
	}
}

// Build creates the gallery UI and loads the persisted image list
func (g *Gallery) Build() fyne.CanvasObject {
	g.urlEntry = widget.NewEntry()
	g.urlEntry.SetPlaceHolder(URLPlaceholder)
	g.urlEntry.OnSubmitted = func(s string) { g.onAdd() }

	addBtn := widget.NewButton(AddButtonLabel, g.onAdd)
	addBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, func() {
		NewSettingsDialog(g.settings, g.window).Show()
	})

	g.grid = container.NewGridWrap(fyne.NewSize(TileWidth, TileHeight))
	for _, target := range g.settings.GetGalleryURLs() {
		g.appendTile(target)
	}

	toolbar := container.NewBorder(nil, nil, nil, container.NewHBox(addBtn, settingsBtn), g.urlEntry)
	return container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(g.grid))
}

// onAdd validates the entry text and adds a tile for it
func (g *Gallery) onAdd() {
	target := g.urlEntry.Text
	if err := validateURL(target); err != nil {
		log.Printf("gallery: rejected %q: %v", target, err)
		g.urlEntry.SetValidationError(err)
		return
	}

	g.urlEntry.SetText("")
	g.appendTile(target)
	g.settings.SetGalleryURLs(g.urls)
	log.Printf("gallery: added %s", target)
}

// appendTile creates one tile and registers its URL
func (g *Gallery) appendTile(target string) {
	g.urls = append(g.urls, target)
	g.grid.Add(g.makeTile(target))
}

// newImage builds an asyncimage widget configured from current settings
func (g *Gallery) newImage(target string) *asyncimage.Image {
	return asyncimage.New(target, RenderPhase,
		asyncimage.WithCachePolicy(g.settings.GetCachePolicy()),
		asyncimage.WithTimeout(g.settings.GetTimeout()),
		asyncimage.WithAnimation(fyne.AnimationEaseInOut, g.settings.GetFadeDuration()),
		asyncimage.WithAlignment(asyncimage.AlignCenter),
	)
}

// makeTile composes one gallery tile: the image, a caption, and the
// reload/remove controls
func (g *Gallery) makeTile(target string) fyne.CanvasObject {
	holder := container.NewStack(g.newImage(target))

	reloadBtn := widget.NewButton(IconReload, func() {
		// The widget has no reload API: retry means a fresh instance,
		// which starts over from the idle phase.
		holder.Objects = []fyne.CanvasObject{g.newImage(target)}
		holder.Refresh()
		log.Printf("gallery: reloaded %s", target)
	})

	caption := widget.NewLabel(shortenURL(target))
	caption.Truncation = fyne.TextTruncateEllipsis

	var tile fyne.CanvasObject
	removeBtn := widget.NewButton(IconRemove, func() {
		g.removeTile(tile, target)
	})

	controls := container.NewHBox(layout.NewSpacer(), reloadBtn, removeBtn)
	footer := container.NewBorder(nil, nil, nil, controls, caption)
	tile = container.NewBorder(nil, footer, nil, nil, holder)
	return tile
}

// removeTile drops a tile from the grid and the persisted list
func (g *Gallery) removeTile(tile fyne.CanvasObject, target string) {
	g.grid.Remove(tile)

	kept := g.urls[:0]
	removed := false
	for _, u := range g.urls {
		if u == target && !removed {
			removed = true
			continue
		}
		kept = append(kept, u)
	}
	g.urls = kept
	g.settings.SetGalleryURLs(g.urls)
	log.Printf("gallery: removed %s", target)
}

// RenderPhase is the gallery's render function: a spinner while idle, the
// image when loaded, a broken-image marker on failure. It is a pure mapping
// from phase to canvas object, as the widget requires.
func RenderPhase(p asyncimage.Phase) fyne.CanvasObject {
	switch {
	case p.IsLoaded():
		img := canvas.NewImageFromImage(p.Image())
		img.FillMode = canvas.ImageFillContain
		return img
	case p.IsFailed():
		msg := widget.NewLabel(FailedTileLabel)
		msg.Alignment = fyne.TextAlignCenter
		return container.NewCenter(container.NewVBox(widget.NewIcon(theme.BrokenImageIcon()), msg))
	default:
		// ProgressBarInfinite animates from its own renderer, so the
		// mapping stays side-effect free and a discarded layer stops
		// with it.
		return container.NewCenter(widget.NewProgressBarInfinite())
	}
}

// validateURL accepts absolute http(s) URLs only
func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty URL")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// shortenURL trims a URL for the tile caption
func shortenURL(raw string) string {
	if len(raw) <= CaptionMaxLength {
		return raw
	}
	return raw[:CaptionMaxLength] + CaptionEllipsis
}
