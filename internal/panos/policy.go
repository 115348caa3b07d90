package panos

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/ytget/pan-manager/internal/model"
)

// rulebase lists the security rules of one rulebase.
type rulebase struct {
	XMLName xml.Name  `xml:"response"`
	Rules   []xmlRule `xml:"result>rules>entry"`
}

// xmlRule contains information about each individual security rule.
type xmlRule struct {
	Name        string   `xml:"name,attr"`
	From        []string `xml:"from>member"`
	To          []string `xml:"to>member"`
	Source      []string `xml:"source>member"`
	Destination []string `xml:"destination>member"`
	Application []string `xml:"application>member"`
	Service     []string `xml:"service>member"`
	Action      string   `xml:"action"`
	Disabled    string   `xml:"disabled"`
	Description string   `xml:"description"`
}

func rulebaseXpath(devicegroup, rulebase string) string {
	return fmt.Sprintf("/config/devices/entry[@name='localhost.localdomain']/device-group/entry[@name='%s']/%s/security/rules",
		devicegroup, rulebase)
}

// PreRules returns the pre-rulebase security rules of devicegroup. A device
// group without pre-rules yields an empty slice.
func (s *Session) PreRules(devicegroup string) ([]model.Rule, error) {
	const base = "pre-rulebase"

	if err := s.requirePanorama("security rules"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(devicegroup) == "" {
		return nil, errors.New("you must specify a device-group when viewing policies on a Panorama device")
	}
	if strings.ContainsAny(devicegroup, "'") {
		return nil, errors.Errorf("invalid device-group name %q", devicegroup)
	}

	params := url.Values{}
	params.Set("type", "config")
	params.Set("action", "get")
	params.Set("xpath", rulebaseXpath(devicegroup, base))

	body, err := s.get(base, params)
	if err != nil {
		return nil, err
	}

	var resp rulebase
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		return nil, errors.Wrapf(err, "decoding %s response", base)
	}

	rules := make([]model.Rule, 0, len(resp.Rules))
	for _, r := range resp.Rules {
		rules = append(rules, model.Rule{
			Name:        r.Name,
			From:        r.From,
			To:          r.To,
			Source:      r.Source,
			Destination: r.Destination,
			Application: r.Application,
			Service:     r.Service,
			Action:      r.Action,
			Disabled:    r.Disabled == "yes",
			Description: r.Description,
		})
	}
	return rules, nil
}
