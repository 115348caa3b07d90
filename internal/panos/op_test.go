package panos

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/pan-manager/internal/model"
)

func TestOp_ShowJobsAll(t *testing.T) {
	dev, srv := newFakeDevice(t)
	dev.handle("op", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "<show><jobs><all></all></jobs></show>", r.FormValue("cmd"))
		fmt.Fprint(w, `<response status="success"><result>
  <job><id>12</id><type>Commit</type><status>FIN</status><result>OK</result></job>
</result></response>`)
	})

	s := connectTest(t, srv.URL, model.DeviceTypeFirewall)
	out, err := s.Op("show jobs all")
	require.NoError(t, err)
	assert.Equal(t, "<job><id>12</id><type>Commit</type><status>FIN</status><result>OK</result></job>", out)
}

func TestOp_Error(t *testing.T) {
	dev, srv := newFakeDevice(t)
	dev.handle("op", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<response status="error"><msg><line><![CDATA[ show -> jobs -> bogus is unexpected]]></line></msg></response>`)
	})

	s := connectTest(t, srv.URL, model.DeviceTypePanorama)
	_, err := s.Op("show jobs bogus")
	require.Error(t, err)
	assert.Equal(t, "show -> jobs -> bogus is unexpected", err.Error())

	_, err = s.Op("")
	assert.Error(t, err)
}

func TestCommandXML(t *testing.T) {
	tests := []struct {
		cmd      string
		expected string
		wantErr  bool
	}{
		{"show jobs all", "<show><jobs><all></all></jobs></show>", false},
		{"  show   system info ", "<show><system><info></info></system></show>", false},
		{`show jobs id "4"`, "<show><jobs><id>4</id></jobs></show>", false},
		{`test routing fib-lookup virtual-router 'default' ip "8.8.8.8"`,
			"<test><routing><fib-lookup><virtual-router>default</virtual-router><ip>8.8.8.8</ip></fib-lookup></routing></test>", false},
		{`show config "a<b"`, "<show><config>a&lt;b</config></show>", false},
		{"<show><jobs><all/></jobs></show>", "<show><jobs><all/></jobs></show>", false},
		{"", "", true},
		{`"orphan"`, "", true},
		{`show jobs id "4`, "", true},
	}

	for _, test := range tests {
		got, err := CommandXML(test.cmd)
		if test.wantErr {
			assert.Error(t, err, test.cmd)
			continue
		}
		require.NoError(t, err, test.cmd)
		assert.Equal(t, test.expected, got, test.cmd)
	}
}
