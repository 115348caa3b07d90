package panos

import (
	"encoding/xml"
	"net/url"

	"github.com/pkg/errors"

	"github.com/ytget/pan-manager/internal/model"
)

const deviceGroupXpath = "/config/devices/entry[@name='localhost.localdomain']/device-group"

// deviceGroups lists all of the device-groups in Panorama.
type deviceGroups struct {
	XMLName xml.Name      `xml:"response"`
	Groups  []deviceGroup `xml:"result>device-group>entry"`
}

// deviceGroup contains information about each individual device-group.
type deviceGroup struct {
	Name    string   `xml:"name,attr"`
	Devices []serial `xml:"devices>entry"`
}

// serial contains the serial number of each device in the device-group.
type serial struct {
	Serial string `xml:"name,attr"`
}

// DeviceGroups returns every device-group configured on Panorama in the
// order the configuration lists them.
func (s *Session) DeviceGroups() ([]model.DeviceGroup, error) {
	if err := s.requirePanorama("device groups"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("type", "config")
	params.Set("action", "get")
	params.Set("xpath", deviceGroupXpath)

	body, err := s.get("device-group", params)
	if err != nil {
		return nil, err
	}

	var resp deviceGroups
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		return nil, errors.Wrap(err, "decoding device-group response")
	}

	groups := make([]model.DeviceGroup, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		dg := model.DeviceGroup{Name: g.Name}
		for _, d := range g.Devices {
			dg.Devices = append(dg.Devices, d.Serial)
		}
		groups = append(groups, dg)
	}
	return groups, nil
}
