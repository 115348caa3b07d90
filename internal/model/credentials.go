package model

import "strings"

// Credentials holds what the form collects for a single action. The password
// is never persisted or logged.
type Credentials struct {
	Username   string
	Password   string
	Host       string
	DeviceType DeviceType
}

// Validate checks that username, password and host are all filled out
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" || strings.TrimSpace(c.Host) == "" {
		return ErrMissingFields
	}
	return nil
}

// Normalized returns a copy with surrounding whitespace removed from the
// username and host, and the default device type applied when unset.
func (c Credentials) Normalized() Credentials {
	out := c
	out.Username = strings.TrimSpace(c.Username)
	out.Host = strings.TrimSpace(c.Host)
	if !out.DeviceType.IsValid() {
		out.DeviceType = DefaultDeviceType
	}
	return out
}
