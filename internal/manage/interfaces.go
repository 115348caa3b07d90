package manage

import (
	"github.com/ytget/pan-manager/internal/model"
	"github.com/ytget/pan-manager/internal/panos"
)

// Manager defines the interface for the form actions.
type Manager interface {
	// ListDeviceGroups returns device-group names in the order the device lists them
	ListDeviceGroups(creds model.Credentials) ([]string, error)

	// ListPreRules returns one display line per pre-rulebase security rule
	ListPreRules(creds model.Credentials, deviceGroup string) ([]string, error)

	// CheckJobs returns the raw job status text
	CheckJobs(creds model.Credentials) (string, error)

	// SetConnectOptions changes TLS and timeout behaviour for later actions
	SetConnectOptions(opts panos.Options)
}

// Device is what an action needs from an open session.
type Device interface {
	DeviceGroups() ([]model.DeviceGroup, error)
	PreRules(devicegroup string) ([]model.Rule, error)
	Op(cmd string) (string, error)
}

// Connector opens a new session for the given credentials.
type Connector func(creds model.Credentials, opts panos.Options) (Device, error)

// PanosConnector opens sessions with the PAN-OS XML API client.
func PanosConnector(creds model.Credentials, opts panos.Options) (Device, error) {
	session, err := panos.Connect(creds.Host, creds.Username, creds.Password, creds.DeviceType, opts)
	if err != nil {
		return nil, err
	}
	return session, nil
}
