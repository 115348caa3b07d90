package panos

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const testKey = "LUFRPT14MW5xOEo1R09KVlBZNnpnemh0VHRBOWl6TGM9bXcwM3JHUGVhRlNiY0dCR0srNERUQT09"

// fakeDevice is a minimal PAN-OS XML API endpoint.
type fakeDevice struct {
	mu       sync.Mutex
	requests []*http.Request
	handlers map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeDevice(t *testing.T) (*fakeDevice, *httptest.Server) {
	t.Helper()

	dev := &fakeDevice{handlers: map[string]func(http.ResponseWriter, *http.Request){}}
	dev.handlers["keygen"] = func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("user") != "admin" || r.FormValue("password") != "s3cr&t=pw" {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `<response status="error" code="403"><result><msg>Invalid Credential</msg></result></response>`)
			return
		}
		fmt.Fprintf(w, `<response status="success"><result><key>%s</key></result></response>`, testKey)
	}

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		dev.mu.Lock()
		dev.requests = append(dev.requests, r)
		handler, ok := dev.handlers[r.FormValue("type")]
		dev.mu.Unlock()

		if r.URL.Path != "/api/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if !ok {
			fmt.Fprint(w, `<response status="error" code="17"><msg><line>unknown request type</line></msg></response>`)
			return
		}
		if r.FormValue("type") != "keygen" && r.FormValue("key") != testKey {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `<response status="error" code="403"><result><msg>Invalid key</msg></result></response>`)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return dev, srv
}

func (d *fakeDevice) handle(kind string, fn func(w http.ResponseWriter, r *http.Request)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = fn
}

func (d *fakeDevice) requestCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.requests)
}

func (d *fakeDevice) lastRequest() *http.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.requests) == 0 {
		return nil
	}
	return d.requests[len(d.requests)-1]
}

func testOptions() Options {
	logger, _ := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return Options{InsecureSkipVerify: true, Timeout: 5 * time.Second, Logger: logger}
}
