package panos

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/pan-manager/internal/model"
)

const preRulesBody = `<response status="success" code="19">
  <result total-count="1" count="1">
    <rules>
      <entry name="allow-web" uuid="2b6c6f2e">
        <from><member>trust</member></from>
        <to><member>untrust</member></to>
        <source><member>10.0.0.0/8</member><member>branch-nets</member></source>
        <destination><member>any</member></destination>
        <application><member>web-browsing</member><member>ssl</member></application>
        <service><member>application-default</member></service>
        <action>allow</action>
        <description>outbound web</description>
      </entry>
      <entry name="block-bad">
        <source><member>any</member></source>
        <destination><member>bad-hosts</member></destination>
        <action>deny</action>
        <disabled>yes</disabled>
      </entry>
    </rules>
  </result>
</response>`

func TestPreRules(t *testing.T) {
	dev, srv := newFakeDevice(t)
	dev.handle("config", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, rulebaseXpath("Branch", "pre-rulebase"), r.FormValue("xpath"))
		fmt.Fprint(w, preRulesBody)
	})

	s := connectTest(t, srv.URL, model.DeviceTypePanorama)
	rules, err := s.PreRules("Branch")
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, model.Rule{
		Name:        "allow-web",
		From:        []string{"trust"},
		To:          []string{"untrust"},
		Source:      []string{"10.0.0.0/8", "branch-nets"},
		Destination: []string{"any"},
		Application: []string{"web-browsing", "ssl"},
		Service:     []string{"application-default"},
		Action:      "allow",
		Description: "outbound web",
	}, rules[0])

	assert.Equal(t, "block-bad", rules[1].Name)
	assert.True(t, rules[1].Disabled)
	assert.Equal(t, "Name: block-bad, Source: [any], Destination: [bad-hosts], Action: deny", rules[1].Line())
}

func TestPreRules_InvalidInput(t *testing.T) {
	dev, srv := newFakeDevice(t)
	s := connectTest(t, srv.URL, model.DeviceTypePanorama)
	before := dev.requestCount()

	_, err := s.PreRules("  ")
	assert.Error(t, err)

	_, err = s.PreRules("x' or '1")
	assert.Error(t, err)

	fw := connectTest(t, srv.URL, model.DeviceTypeFirewall)
	_, err = fw.PreRules("Branch")
	assert.Error(t, err)

	assert.Equal(t, before+1, dev.requestCount(), "only the second keygen should reach the device")
}
