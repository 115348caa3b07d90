// Package ui contains the Fyne desktop form: credential entries, the device
// type selector, and one button per management action with the widget that
// shows its result. Failures surface as a single error dialog. All strings
// are localized via Localization.
package ui
