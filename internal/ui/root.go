package ui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/pan-manager/internal/config"
	"github.com/ytget/pan-manager/internal/inventory"
	"github.com/ytget/pan-manager/internal/manage"
	"github.com/ytget/pan-manager/internal/model"
)

// noGroupSelected marks an empty device-group selection
const noGroupSelected = -1

// RootUI represents the main form
type RootUI struct {
	window       fyne.Window
	manager      manage.Manager
	settings     *config.Settings
	localization *Localization
	log          logrus.FieldLogger

	// Credentials
	usernameLabel   *widget.Label
	passwordLabel   *widget.Label
	hostLabel       *widget.Label
	deviceTypeLabel *widget.Label
	usernameEntry   *widget.Entry
	passwordEntry   *widget.Entry
	hostEntry       *widget.Entry
	deviceTypeRadio *widget.RadioGroup

	// Inventory selector, hidden when no inventory is configured
	inventoryLabel  *widget.Label
	inventorySelect *widget.Select
	inventoryRow    *fyne.Container
	inventory       []model.InventoryDevice

	// Section headings
	deviceGroupsHeading *widget.Label
	preRulesHeading     *widget.Label
	jobsHeading         *widget.Label

	// Actions and results
	deviceGroupsBtn *widget.Button
	preRulesBtn     *widget.Button
	jobsBtn         *widget.Button
	deviceGroupList *widget.List
	deviceGroups    []string
	selectedGroup   int
	preRulesText    *widget.Entry
	jobsText        *widget.Entry

	// Status line under the results
	statusLabel *widget.Label

	// showError displays one modal error. Replaced in tests.
	showError func(title, message string)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, manager manage.Manager, logger logrus.FieldLogger) *RootUI {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		manager:       manager,
		settings:      settings,
		localization:  localization,
		log:           logger,
		selectedGroup: noGroupSelected,
	}
	ui.showError = ui.showErrorDialog

	manager.SetConnectOptions(settings.ConnectOptions())

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.reloadInventory()

	logger.WithField("language", localization.GetCurrentLanguage()).Debug("form initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.createMenu()

	ui.usernameLabel = widget.NewLabel(l.GetText(KeyUsername))
	ui.usernameEntry = widget.NewEntry()
	ui.usernameEntry.SetText(ui.settings.GetLastUsername())

	ui.passwordLabel = widget.NewLabel(l.GetText(KeyPassword))
	ui.passwordEntry = widget.NewPasswordEntry()

	ui.hostLabel = widget.NewLabel(l.GetText(KeyIPAddress))
	ui.hostEntry = widget.NewEntry()
	ui.hostEntry.SetText(ui.settings.GetLastHost())

	ui.deviceTypeLabel = widget.NewLabel(l.GetText(KeyDeviceType))
	deviceTypes := []string{}
	for _, dt := range model.DeviceTypes() {
		deviceTypes = append(deviceTypes, dt.String())
	}
	ui.deviceTypeRadio = widget.NewRadioGroup(deviceTypes, nil)
	ui.deviceTypeRadio.Horizontal = true
	ui.deviceTypeRadio.Required = true
	ui.deviceTypeRadio.SetSelected(ui.settings.GetDeviceType().String())

	ui.inventoryLabel = widget.NewLabel(l.GetText(KeyKnownDevices))
	ui.inventorySelect = widget.NewSelect(nil, ui.onInventorySelected)

	form := container.New(layout.NewFormLayout(),
		ui.usernameLabel, ui.usernameEntry,
		ui.passwordLabel, ui.passwordEntry,
		ui.hostLabel, ui.hostEntry,
		ui.deviceTypeLabel, ui.deviceTypeRadio,
	)
	ui.inventoryRow = container.New(layout.NewFormLayout(), ui.inventoryLabel, ui.inventorySelect)
	ui.inventoryRow.Hide()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.inventoryRow),
		form,
	)

	// Device groups
	ui.deviceGroupsHeading = widget.NewLabelWithStyle(l.GetText(KeyDeviceGroups), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.deviceGroupsBtn = widget.NewButton(l.GetText(KeyGetDeviceGroups), ui.onGetDeviceGroups)
	ui.deviceGroupsBtn.Importance = widget.HighImportance
	ui.deviceGroupList = widget.NewList(
		func() int {
			return len(ui.deviceGroups)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.deviceGroups) {
				obj.(*widget.Label).SetText(ui.deviceGroups[id])
			}
		},
	)
	ui.deviceGroupList.OnSelected = func(id widget.ListItemID) {
		ui.selectedGroup = id
	}
	ui.deviceGroupList.OnUnselected = func(id widget.ListItemID) {
		if ui.selectedGroup == id {
			ui.selectedGroup = noGroupSelected
		}
	}

	// Pre-rules
	ui.preRulesHeading = widget.NewLabelWithStyle(l.GetText(KeyPreRules), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.preRulesBtn = widget.NewButton(l.GetText(KeyShowPreRules), ui.onShowPreRules)
	ui.preRulesText = widget.NewMultiLineEntry()
	ui.preRulesText.Wrapping = fyne.TextWrapOff
	ui.preRulesText.TextStyle = fyne.TextStyle{Monospace: true}

	// Jobs
	ui.jobsHeading = widget.NewLabelWithStyle(l.GetText(KeyJobs), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.jobsBtn = widget.NewButton(l.GetText(KeyCheckJobs), ui.onCheckJobs)
	ui.jobsText = widget.NewMultiLineEntry()
	ui.jobsText.Wrapping = fyne.TextWrapOff
	ui.jobsText.TextStyle = fyne.TextStyle{Monospace: true}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	results := container.NewGridWithRows(3,
		container.NewBorder(container.NewVBox(ui.deviceGroupsHeading, ui.deviceGroupsBtn), nil, nil, nil, ui.deviceGroupList),
		container.NewBorder(container.NewVBox(ui.preRulesHeading, ui.preRulesBtn), nil, nil, nil, ui.preRulesText),
		container.NewBorder(container.NewVBox(ui.jobsHeading, ui.jobsBtn), nil, nil, nil, ui.jobsText),
	)

	content := container.NewBorder(
		top,            // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		results,        // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	addDeviceItem := fyne.NewMenuItem(ui.localization.GetText(KeyAddToInventory), ui.onAddToInventory)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, addDeviceItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.usernameLabel.SetText(l.GetText(KeyUsername))
	ui.passwordLabel.SetText(l.GetText(KeyPassword))
	ui.hostLabel.SetText(l.GetText(KeyIPAddress))
	ui.deviceTypeLabel.SetText(l.GetText(KeyDeviceType))
	ui.inventoryLabel.SetText(l.GetText(KeyKnownDevices))
	ui.deviceGroupsHeading.SetText(l.GetText(KeyDeviceGroups))
	ui.preRulesHeading.SetText(l.GetText(KeyPreRules))
	ui.jobsHeading.SetText(l.GetText(KeyJobs))
	ui.deviceGroupsBtn.SetText(l.GetText(KeyGetDeviceGroups))
	ui.preRulesBtn.SetText(l.GetText(KeyShowPreRules))
	ui.jobsBtn.SetText(l.GetText(KeyCheckJobs))
}

// credentials reads the form fields
func (ui *RootUI) credentials() model.Credentials {
	dt, err := model.ParseDeviceType(ui.deviceTypeRadio.Selected)
	if err != nil {
		dt = model.DefaultDeviceType
	}
	return model.Credentials{
		Username:   ui.usernameEntry.Text,
		Password:   ui.passwordEntry.Text,
		Host:       ui.hostEntry.Text,
		DeviceType: dt,
	}
}

// remember stores everything but the password for the next start
func (ui *RootUI) remember(creds model.Credentials) {
	creds = creds.Normalized()
	ui.settings.SetLastUsername(creds.Username)
	ui.settings.SetLastHost(creds.Host)
	ui.settings.SetDeviceType(creds.DeviceType)
}

// selectedDeviceGroup returns the active list entry: the selected one, or
// the first one before anything is clicked. An empty list yields "".
func (ui *RootUI) selectedDeviceGroup() string {
	if len(ui.deviceGroups) == 0 {
		return ""
	}
	if ui.selectedGroup < 0 || ui.selectedGroup >= len(ui.deviceGroups) {
		return ui.deviceGroups[0]
	}
	return ui.deviceGroups[ui.selectedGroup]
}

// onGetDeviceGroups handles the Get Device Groups button
func (ui *RootUI) onGetDeviceGroups() {
	creds := ui.credentials()

	names, err := ui.manager.ListDeviceGroups(creds)
	if err != nil {
		ui.reportError(err)
		return
	}
	ui.remember(creds)

	ui.deviceGroups = names
	ui.selectedGroup = noGroupSelected
	ui.deviceGroupList.UnselectAll()
	ui.deviceGroupList.Refresh()

	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyGroupsLoaded), len(names)))
}

// onShowPreRules handles the Show Pre-Rules button
func (ui *RootUI) onShowPreRules() {
	creds := ui.credentials()
	group := ui.selectedDeviceGroup()

	lines, err := ui.manager.ListPreRules(creds, group)
	if err != nil {
		ui.reportError(err)
		return
	}
	ui.remember(creds)

	text := strings.Join(lines, "\n")
	if text != "" {
		text += "\n"
	}
	ui.preRulesText.SetText(text)

	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyRulesLoaded), len(lines), group))
}

// onCheckJobs handles the Check Jobs button
func (ui *RootUI) onCheckJobs() {
	creds := ui.credentials()

	out, err := ui.manager.CheckJobs(creds)
	if err != nil {
		ui.reportError(err)
		return
	}
	ui.remember(creds)

	ui.jobsText.SetText(out)

	ui.setStatus(ui.localization.GetText(KeyJobsLoaded))
}

// errorText picks the dialog title and message for err
func (ui *RootUI) errorText(err error) (string, string) {
	l := ui.localization

	switch {
	case errors.Is(err, model.ErrMissingFields):
		return l.GetText(KeyInputErrorTitle), l.GetText(KeyMissingFields)
	case errors.Is(err, model.ErrNotPanorama):
		return l.GetText(KeyErrorTitle), l.GetText(KeyNotPanorama)
	case errors.Is(err, model.ErrNoDeviceGroup):
		return l.GetText(KeySelectErrorTitle), l.GetText(KeyNoDeviceGroup)
	}

	var opErr *model.OperationError
	if errors.As(err, &opErr) {
		switch opErr.Op {
		case model.OpConnect:
			return l.GetText(KeyConnectErrorTitle), fmt.Sprintf(l.GetText(KeyFailedConnect), opErr.Err)
		case model.OpDeviceGroups:
			return l.GetText(KeyErrorTitle), fmt.Sprintf(l.GetText(KeyFailedGroups), opErr.Err)
		case model.OpPreRules:
			return l.GetText(KeyErrorTitle), fmt.Sprintf(l.GetText(KeyFailedPreRules), opErr.Err)
		case model.OpJobs:
			return l.GetText(KeyErrorTitle), fmt.Sprintf(l.GetText(KeyFailedJobs), opErr.Err)
		}
	}

	return l.GetText(KeyErrorTitle), err.Error()
}

// reportError shows exactly one error dialog for err
func (ui *RootUI) reportError(err error) {
	title, message := ui.errorText(err)
	ui.setStatus(message)
	ui.showError(title, message)
}

// showErrorDialog is the default error presenter
func (ui *RootUI) showErrorDialog(title, message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	body := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, label)
	d := dialog.NewCustom(title, ui.localization.GetText(KeyOK), body, ui.window)
	d.Resize(fyne.NewSize(SettingsDialogW, 0))
	d.Show()
}

// setStatus updates the status line
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies changed settings
func (ui *RootUI) onSettingsSaved() {
	ui.manager.SetConnectOptions(ui.settings.ConnectOptions())

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	ui.reloadInventory()
}

// reloadInventory loads the configured inventory file into the selector
func (ui *RootUI) reloadInventory() {
	path := ui.settings.GetInventoryFile()
	if path == "" {
		ui.inventory = nil
		ui.inventorySelect.SetOptions(nil)
		ui.inventoryRow.Hide()
		return
	}

	devices, err := inventory.Load(path)
	if err != nil {
		ui.log.WithError(err).WithField("file", path).Warn("inventory not loaded")
		ui.inventory = nil
		ui.inventorySelect.SetOptions(nil)
		ui.inventoryRow.Hide()
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyInventoryFailed), err))
		return
	}

	ui.inventory = devices
	ui.inventorySelect.ClearSelected()
	ui.inventorySelect.SetOptions(inventory.Labels(devices))
	ui.inventoryRow.Show()

	ui.log.WithFields(logrus.Fields{"file": path, "devices": len(devices)}).Info("inventory loaded")
}

// onInventorySelected fills host and device type from the inventory
func (ui *RootUI) onInventorySelected(label string) {
	dev, ok := inventory.Find(ui.inventory, label)
	if !ok {
		return
	}
	ui.hostEntry.SetText(dev.Host)
	ui.deviceTypeRadio.SetSelected(dev.DeviceType.String())
}

// onAddToInventory saves the host and device type on the form to the
// inventory file, asking for a file when none is configured yet
func (ui *RootUI) onAddToInventory() {
	creds := ui.credentials().Normalized()
	if creds.Host == "" {
		ui.showError(ui.localization.GetText(KeyInputErrorTitle), ui.localization.GetText(KeyHostRequired))
		return
	}
	dev := model.InventoryDevice{Host: creds.Host, DeviceType: creds.DeviceType}

	if path := ui.settings.GetInventoryFile(); path != "" {
		ui.addToInventory(path, dev)
		return
	}

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		ui.settings.SetInventoryFile(path)
		ui.addToInventory(path, dev)
	}, ui.window)
	fileDialog.SetFileName("devices.csv")
	fileDialog.Show()
}

// addToInventory writes dev into the inventory at path and reloads the selector
func (ui *RootUI) addToInventory(path string, dev model.InventoryDevice) {
	devices := inventory.Add(ui.inventory, dev)
	if err := inventory.Save(path, devices); err != nil {
		ui.log.WithError(err).WithField("file", path).Warn("inventory not saved")
		ui.showError(ui.localization.GetText(KeyErrorTitle), fmt.Sprintf(ui.localization.GetText(KeyInventorySaveErr), err))
		return
	}

	ui.reloadInventory()
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyInventorySaved), dev.Host, path))
}
