package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pan-manager/internal/model"
	"github.com/ytget/pan-manager/internal/panos"
)

// Settings keys for Fyne preferences
const (
	KeyLastUsername   = "last_username"
	KeyLastHost       = "last_host"
	KeyDeviceType     = "device_type"
	KeyLanguage       = "app_language"
	KeyVerifyTLS      = "verify_tls"
	KeyTimeoutSeconds = "request_timeout_seconds"
	KeyInventoryFile  = "inventory_file"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultVerifyTLS      = false
	DefaultTimeoutSeconds = 30
	MinTimeoutSeconds     = 5
	MaxTimeoutSeconds     = 300
)

// Settings manages application configuration. The password is never stored.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastUsername returns the username of the last action
func (s *Settings) GetLastUsername() string {
	return s.app.Preferences().String(KeyLastUsername)
}

// SetLastUsername remembers the username
func (s *Settings) SetLastUsername(username string) {
	s.app.Preferences().SetString(KeyLastUsername, username)
}

// GetLastHost returns the IP address or host name of the last action
func (s *Settings) GetLastHost() string {
	return s.app.Preferences().String(KeyLastHost)
}

// SetLastHost remembers the IP address or host name
func (s *Settings) SetLastHost(host string) {
	s.app.Preferences().SetString(KeyLastHost, host)
}

// GetDeviceType returns the remembered device type selection
func (s *Settings) GetDeviceType() model.DeviceType {
	dt, err := model.ParseDeviceType(s.app.Preferences().String(KeyDeviceType))
	if err != nil {
		s.SetDeviceType(model.DefaultDeviceType)
		return model.DefaultDeviceType
	}
	return dt
}

// SetDeviceType remembers the device type selection
func (s *Settings) SetDeviceType(dt model.DeviceType) {
	if !dt.IsValid() {
		dt = model.DefaultDeviceType
	}
	s.app.Preferences().SetString(KeyDeviceType, dt.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetVerifyTLS returns whether device certificates are verified
func (s *Settings) GetVerifyTLS() bool {
	return s.app.Preferences().BoolWithFallback(KeyVerifyTLS, DefaultVerifyTLS)
}

// SetVerifyTLS sets whether device certificates are verified
func (s *Settings) SetVerifyTLS(verify bool) {
	s.app.Preferences().SetBool(KeyVerifyTLS, verify)
}

// GetTimeoutSeconds returns the per-request timeout in seconds
func (s *Settings) GetTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyTimeoutSeconds)
	if value <= 0 {
		s.SetTimeoutSeconds(DefaultTimeoutSeconds)
		return DefaultTimeoutSeconds
	}
	return value
}

// SetTimeoutSeconds sets the per-request timeout, clamped to 5..300 seconds
func (s *Settings) SetTimeoutSeconds(seconds int) {
	if seconds < MinTimeoutSeconds {
		seconds = MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		seconds = MaxTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyTimeoutSeconds, seconds)
}

// GetInventoryFile returns the path of the device inventory CSV, if any
func (s *Settings) GetInventoryFile() string {
	return s.app.Preferences().String(KeyInventoryFile)
}

// SetInventoryFile sets the device inventory CSV path
func (s *Settings) SetInventoryFile(path string) {
	s.app.Preferences().SetString(KeyInventoryFile, path)
}

// ConnectOptions returns the client options the current settings describe
func (s *Settings) ConnectOptions() panos.Options {
	return panos.Options{
		InsecureSkipVerify: !s.GetVerifyTLS(),
		Timeout:            time.Duration(s.GetTimeoutSeconds()) * time.Second,
	}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
