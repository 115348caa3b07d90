package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/pan-manager/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLastUsernameAndHost(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastUsername() != "" || settings.GetLastHost() != "" {
		t.Error("Username and host should start empty")
	}

	settings.SetLastUsername("admin")
	settings.SetLastHost("192.0.2.10")

	if settings.GetLastUsername() != "admin" {
		t.Errorf("Expected username admin, got %s", settings.GetLastUsername())
	}
	if settings.GetLastHost() != "192.0.2.10" {
		t.Errorf("Expected host 192.0.2.10, got %s", settings.GetLastHost())
	}
}

func TestDeviceType(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dt := settings.GetDeviceType(); dt != model.DeviceTypePanorama {
		t.Errorf("Expected default device type Panorama, got %s", dt)
	}

	settings.SetDeviceType(model.DeviceTypeFirewall)
	if dt := settings.GetDeviceType(); dt != model.DeviceTypeFirewall {
		t.Errorf("Expected device type Firewall, got %s", dt)
	}

	// Invalid values fall back to the default
	settings.SetDeviceType(model.DeviceType("switch"))
	if dt := settings.GetDeviceType(); dt != model.DeviceTypePanorama {
		t.Errorf("Invalid device type should store Panorama, got %s", dt)
	}

	app.Preferences().SetString(KeyDeviceType, "garbage")
	if dt := settings.GetDeviceType(); dt != model.DeviceTypePanorama {
		t.Errorf("Corrupt preference should read as Panorama, got %s", dt)
	}
}

func TestTimeoutSeconds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetTimeoutSeconds(); got != DefaultTimeoutSeconds {
		t.Errorf("Expected default timeout %d, got %d", DefaultTimeoutSeconds, got)
	}

	settings.SetTimeoutSeconds(60)
	if got := settings.GetTimeoutSeconds(); got != 60 {
		t.Errorf("Expected timeout 60, got %d", got)
	}

	// Test boundary values
	settings.SetTimeoutSeconds(1) // Should be clamped to 5
	if settings.GetTimeoutSeconds() != MinTimeoutSeconds {
		t.Error("Timeout should be clamped to minimum 5")
	}

	settings.SetTimeoutSeconds(1000) // Should be clamped to 300
	if settings.GetTimeoutSeconds() != MaxTimeoutSeconds {
		t.Error("Timeout should be clamped to maximum 300")
	}
}

func TestVerifyTLSAndConnectOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	opts := settings.ConnectOptions()
	if !opts.InsecureSkipVerify {
		t.Error("Certificate checks should be skipped by default")
	}
	if opts.Timeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", opts.Timeout)
	}

	settings.SetVerifyTLS(true)
	settings.SetTimeoutSeconds(10)

	opts = settings.ConnectOptions()
	if opts.InsecureSkipVerify {
		t.Error("Certificate checks should be on after SetVerifyTLS(true)")
	}
	if opts.Timeout != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", opts.Timeout)
	}
}

func TestInventoryFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetInventoryFile() != "" {
		t.Error("Inventory file should start empty")
	}

	settings.SetInventoryFile("/etc/pan/devices.csv")
	if settings.GetInventoryFile() != "/etc/pan/devices.csv" {
		t.Errorf("Unexpected inventory file %s", settings.GetInventoryFile())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
