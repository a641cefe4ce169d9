package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	asyncimage "github.com/valvoline/CachedAsyncImage"
	"github.com/valvoline/CachedAsyncImage/internal/config"
)

// SettingsDialog configures fetch behavior for newly added gallery images
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	policySelect *widget.Select
	timeoutEntry *widget.Entry
	fadeEntry    *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	policyOptions := []string{}
	for _, policy := range sd.settings.GetCachePolicyOptions() {
		policyOptions = append(policyOptions, string(policy))
	}
	sd.policySelect = widget.NewSelect(policyOptions, nil)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("seconds")

	sd.fadeEntry = widget.NewEntry()
	sd.fadeEntry.SetPlaceHolder("milliseconds")

	form := container.NewVBox(
		widget.NewLabel("Fetch Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Cache Policy:"),
		sd.policySelect,

		widget.NewLabel("Timeout (seconds):"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel("Cross-fade"),
		widget.NewSeparator(),

		widget.NewLabel("Duration (ms, 0 disables):"),
		sd.fadeEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.policySelect.SetSelected(string(sd.settings.GetCachePolicy()))
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetTimeout().Seconds())))
	sd.fadeEntry.SetText(strconv.Itoa(int(sd.settings.GetFadeDuration().Milliseconds())))
}

// onSave handles saving the settings. Changes apply to images added after
// the save; existing tiles keep the descriptor they were constructed with.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.policySelect.Selected != "" {
		sd.settings.SetCachePolicy(asyncimage.CachePolicy(sd.policySelect.Selected))
	}

	if sd.timeoutEntry.Text != "" {
		if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
			sd.settings.SetTimeoutSeconds(seconds)
		}
	}

	if sd.fadeEntry.Text != "" {
		if millis, err := strconv.Atoi(sd.fadeEntry.Text); err == nil {
			sd.settings.SetFadeMillis(millis)
		}
	}

	dialog.ShowInformation("Settings", "Settings saved", sd.window)
}
