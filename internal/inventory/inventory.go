// Package inventory loads a list of known management endpoints from a CSV
// file so the form can prefill the IP address and device type, and saves the
// list back when the user adds a device.
//
// Each row is name,host[,type]; rows may mix two and three columns. The type
// column accepts Panorama or Firewall and defaults to Panorama. A header row
// starting with "name", blank rows and lines starting with '#' are skipped.
package inventory

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	easycsv "github.com/scottdware/go-easycsv"

	"github.com/ytget/pan-manager/internal/model"
)

// Load reads the inventory file at path.
func Load(path string) ([]model.InventoryDevice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading inventory %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	var devices []model.InventoryDevice
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading inventory %s", path)
		}
		line, _ := reader.FieldPos(0)

		cells := trimCells(row)
		if len(cells) == 0 {
			continue
		}
		header := first && strings.EqualFold(cells[0], "name")
		first = false
		if header {
			continue
		}

		dev, err := parseRow(cells)
		if err != nil {
			return nil, errors.Wrapf(err, "inventory %s line %d", path, line)
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

func parseRow(cells []string) (model.InventoryDevice, error) {
	if len(cells) < 2 || cells[1] == "" {
		return model.InventoryDevice{}, errors.Errorf("expected name,host[,type], got %q", strings.Join(cells, ","))
	}

	dt := model.DefaultDeviceType
	if len(cells) > 2 {
		var err error
		if dt, err = model.ParseDeviceType(cells[2]); err != nil {
			return model.InventoryDevice{}, err
		}
	}

	return model.InventoryDevice{
		Name:       cells[0],
		Host:       cells[1],
		DeviceType: dt,
	}, nil
}

// trimCells trims every cell and drops trailing empty ones. An all-empty
// row yields nil.
func trimCells(row []string) []string {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = strings.TrimSpace(c)
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	if len(cells) == 0 {
		return nil
	}
	return cells
}

// Add returns devices with dev in it. An entry with the same host is
// replaced in place and keeps its name when dev has none.
func Add(devices []model.InventoryDevice, dev model.InventoryDevice) []model.InventoryDevice {
	out := make([]model.InventoryDevice, 0, len(devices)+1)
	replaced := false
	for _, d := range devices {
		if !replaced && strings.EqualFold(d.Host, dev.Host) {
			if dev.Name == "" {
				dev.Name = d.Name
			}
			out = append(out, dev)
			replaced = true
			continue
		}
		out = append(out, d)
	}
	if !replaced {
		out = append(out, dev)
	}
	return out
}

// Save writes devices to path with a header row, replacing the file.
func Save(path string, devices []model.InventoryDevice) error {
	c, err := easycsv.NewCSV(path)
	if err != nil {
		return errors.Wrapf(err, "writing inventory %s", path)
	}
	defer c.End()

	c.Write("name,host,type\n")
	for _, d := range devices {
		line := strings.Join([]string{quote(d.Name), quote(d.Host), d.DeviceType.String()}, ",")
		// Write treats its argument as a format string
		c.Write(strings.ReplaceAll(line, "%", "%%") + "\n")
	}
	return nil
}

func quote(cell string) string {
	if !strings.ContainsAny(cell, ",\"\r\n") && !strings.HasPrefix(cell, "#") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// Labels returns the selector labels of devices in order.
func Labels(devices []model.InventoryDevice) []string {
	labels := make([]string, 0, len(devices))
	for _, d := range devices {
		labels = append(labels, d.Label())
	}
	return labels
}

// Find returns the device whose label is label.
func Find(devices []model.InventoryDevice, label string) (model.InventoryDevice, bool) {
	for _, d := range devices {
		if d.Label() == label {
			return d, true
		}
	}
	return model.InventoryDevice{}, false
}
