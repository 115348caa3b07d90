package model

import (
	"fmt"
	"strings"
)

// DeviceType represents the kind of management endpoint the form talks to
type DeviceType string

const (
	// DeviceTypePanorama is the centralized management server
	DeviceTypePanorama DeviceType = "Panorama"

	// DeviceTypeFirewall is a standalone firewall
	DeviceTypeFirewall DeviceType = "Firewall"
)

// DefaultDeviceType is selected when nothing else is known
const DefaultDeviceType = DeviceTypePanorama

// String returns the string representation of DeviceType
func (dt DeviceType) String() string {
	return string(dt)
}

// IsPanorama returns true if the device is a Panorama server
func (dt DeviceType) IsPanorama() bool {
	return dt == DeviceTypePanorama
}

// IsValid returns true for the two known device types
func (dt DeviceType) IsValid() bool {
	return dt == DeviceTypePanorama || dt == DeviceTypeFirewall
}

// DeviceTypes returns the selectable device types in display order
func DeviceTypes() []DeviceType {
	return []DeviceType{DeviceTypePanorama, DeviceTypeFirewall}
}

// ParseDeviceType parses a device type case-insensitively. An empty value
// yields DefaultDeviceType.
func ParseDeviceType(value string) (DeviceType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return DefaultDeviceType, nil
	case "panorama":
		return DeviceTypePanorama, nil
	case "firewall", "fw", "panos":
		return DeviceTypeFirewall, nil
	}
	return "", fmt.Errorf("unknown device type: %q", value)
}
