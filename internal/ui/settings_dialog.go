package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pan-manager/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	verifyTLSCheck *widget.Check
	timeoutEntry   *widget.Entry
	inventoryEntry *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.verifyTLSCheck = widget.NewCheck(l.GetText(KeyVerifyTLS), nil)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinTimeoutSeconds) + "-" + strconv.Itoa(config.MaxTimeoutSeconds))

	sd.inventoryEntry = widget.NewEntry()
	sd.inventoryEntry.SetPlaceHolder("devices.csv")
	browseBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseInventory)
	inventoryRow := container.NewBorder(nil, nil, nil, browseBtn, sd.inventoryEntry)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		sd.verifyTLSCheck,

		widget.NewLabel(l.GetText(KeyTimeoutSeconds)),
		sd.timeoutEntry,

		widget.NewLabel(l.GetText(KeyInventoryFile)),
		inventoryRow,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.verifyTLSCheck.SetChecked(sd.settings.GetVerifyTLS())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetTimeoutSeconds()))
	sd.inventoryEntry.SetText(sd.settings.GetInventoryFile())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseInventory picks the inventory CSV
func (sd *SettingsDialog) onBrowseInventory() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.inventoryEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the dialog fields to settings and notifies the owner
func (sd *SettingsDialog) apply() {
	sd.settings.SetVerifyTLS(sd.verifyTLSCheck.Checked)

	if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetTimeoutSeconds(seconds)
	}

	// An empty path turns the inventory off
	sd.settings.SetInventoryFile(sd.inventoryEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
