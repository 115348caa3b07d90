package panos

import (
	"crypto/tls"
	"encoding/xml"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/parnurzeal/gorequest"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ytget/pan-manager/internal/model"
)

// DefaultTimeout bounds every request when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options tune the HTTP side of a session.
type Options struct {
	// InsecureSkipVerify disables certificate checks. Management interfaces
	// usually present self-signed certificates.
	InsecureSkipVerify bool

	// Timeout applies to each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// Logger receives debug output. Nil means the logrus standard logger.
	Logger logrus.FieldLogger
}

// Session holds the API key and transport for one device. It is created for
// a single form action and then dropped.
type Session struct {
	Host       string
	DeviceType model.DeviceType

	uri   string
	key   string
	agent *gorequest.SuperAgent
	log   logrus.FieldLogger
}

// envelope is the part of every API response we check before decoding the
// payload.
type envelope struct {
	XMLName   xml.Name `xml:"response"`
	Status    string   `xml:"status,attr"`
	Code      string   `xml:"code,attr"`
	Msg       apiMsg   `xml:"msg"`
	ResultMsg apiMsg   `xml:"result>msg"`
}

// authKey holds our API key.
type authKey struct {
	XMLName xml.Name `xml:"response"`
	Key     string   `xml:"result>key"`
}

// Connect generates an API key for username/password on host and returns a
// session that uses it. host may be a bare address, host:port or a full
// https URL.
func Connect(host, username, password string, deviceType model.DeviceType, opts Options) (*Session, error) {
	base, err := baseURL(host)
	if err != nil {
		return nil, err
	}

	s := newSession(host, base, deviceType, opts)

	form := url.Values{}
	form.Set("type", "keygen")
	form.Set("user", username)
	form.Set("password", password)

	s.log.WithField("host", s.Host).Debug("requesting api key")

	resp, body, errs := s.agent.Post(s.uri).Type("form").Send(form.Encode()).End()
	if err := checkResponse("keygen", resp, body, errs); err != nil {
		return nil, err
	}

	var keygen authKey
	if err := xml.Unmarshal([]byte(body), &keygen); err != nil {
		return nil, errors.Wrap(err, "decoding keygen response")
	}
	if keygen.Key == "" {
		return nil, errors.New("keygen response did not contain an api key")
	}

	s.key = keygen.Key
	return s, nil
}

func newSession(host, base string, deviceType model.DeviceType, opts Options) *Session {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	agent := gorequest.New().
		Timeout(timeout).
		TLSClientConfig(&tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify})

	return &Session{
		Host:       strings.TrimSpace(host),
		DeviceType: deviceType,
		uri:        base + "/api/",
		agent:      agent,
		log:        logger,
	}
}

// baseURL turns what the user typed into the scheme://host[:port] prefix.
func baseURL(host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", errors.New("host is empty")
	}
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return "", errors.Wrapf(err, "invalid host %q", host)
	}
	if u.Host == "" {
		return "", errors.Errorf("invalid host %q", host)
	}
	return u.Scheme + "://" + u.Host, nil
}

// get issues a GET with the session key and returns the raw body once the
// response carries status="success".
func (s *Session) get(kind string, params url.Values) (string, error) {
	params.Set("key", s.key)

	s.log.WithFields(logrus.Fields{"host": s.Host, "request": kind}).Debug("api request")

	resp, body, errs := s.agent.Get(s.uri).Query(params.Encode()).End()
	if err := checkResponse(kind, resp, body, errs); err != nil {
		return "", err
	}
	return body, nil
}

// checkResponse folds transport errors, HTTP errors and API status errors
// into one error value.
func checkResponse(kind string, resp gorequest.Response, body string, errs []error) error {
	if len(errs) > 0 {
		return errors.Wrapf(errs[0], "%s request", kind)
	}

	var env envelope
	if err := xml.Unmarshal([]byte(body), &env); err != nil {
		if resp != nil && resp.StatusCode >= http.StatusBadRequest {
			return errors.Errorf("%s request: http status %d", kind, resp.StatusCode)
		}
		return errors.Wrapf(err, "decoding %s response", kind)
	}

	if env.Status != "success" {
		msg := env.ResultMsg.String()
		if msg == "" {
			msg = env.Msg.String()
		}
		code := env.Code
		if code == "" && resp != nil && resp.StatusCode >= http.StatusBadRequest {
			code = strconv.Itoa(resp.StatusCode)
		}
		return &APIError{Code: code, Message: msg}
	}
	return nil
}

// requirePanorama rejects calls that only make sense on Panorama.
func (s *Session) requirePanorama(what string) error {
	if !s.DeviceType.IsPanorama() {
		return errors.Errorf("%s can only be retrieved from Panorama", what)
	}
	return nil
}
