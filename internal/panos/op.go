package panos

import (
	"encoding/xml"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// commandOutput holds the results of our operational mode commands.
type commandOutput struct {
	XMLName xml.Name `xml:"response"`
	Result  struct {
		Inner string `xml:",innerxml"`
	} `xml:"result"`
}

// Op runs an operational command and returns the body of <result> as
// text. cmd may be in CLI form ("show jobs all") or already in XML form.
func (s *Session) Op(cmd string) (string, error) {
	cmdXML, err := CommandXML(cmd)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("type", "op")
	params.Set("cmd", cmdXML)

	body, err := s.get("op", params)
	if err != nil {
		return "", err
	}

	var out commandOutput
	if err := xml.Unmarshal([]byte(body), &out); err != nil {
		return "", errors.Wrap(err, "decoding op response")
	}
	return strings.TrimSpace(out.Result.Inner), nil
}
