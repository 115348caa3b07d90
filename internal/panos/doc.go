// Package panos talks to Palo Alto Networks firewalls and Panorama through
// the PAN-OS XML API. It covers what the form needs: API key generation,
// configuration reads for device groups and security rulebases, and
// operational commands.
package panos
