package model

import (
	"fmt"
	"strings"
)

// DeviceGroup is an administrative grouping of firewalls on Panorama
type DeviceGroup struct {
	Name    string
	Devices []string // serial numbers
}

// Rule is a single security policy rule
type Rule struct {
	Name        string
	From        []string
	To          []string
	Source      []string
	Destination []string
	Application []string
	Service     []string
	Action      string
	Disabled    bool
	Description string
}

// Line renders the rule as a single display line
func (r Rule) Line() string {
	return fmt.Sprintf("Name: %s, Source: %s, Destination: %s, Action: %s",
		r.Name, formatMembers(r.Source), formatMembers(r.Destination), r.Action)
}

// formatMembers renders a member list as [a, b]
func formatMembers(members []string) string {
	return "[" + strings.Join(members, ", ") + "]"
}

// InventoryDevice is a known management endpoint loaded from an inventory file
type InventoryDevice struct {
	Name       string
	Host       string
	DeviceType DeviceType
}

// Label returns the text shown in the device selector
func (d InventoryDevice) Label() string {
	if d.Name == "" || d.Name == d.Host {
		return fmt.Sprintf("%s (%s)", d.Host, d.DeviceType)
	}
	return fmt.Sprintf("%s - %s (%s)", d.Name, d.Host, d.DeviceType)
}
