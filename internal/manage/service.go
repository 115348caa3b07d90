package manage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ytget/pan-manager/internal/model"
	"github.com/ytget/pan-manager/internal/panos"
)

// JobsCommand is the operational command behind Check Jobs
const JobsCommand = "show jobs all"

// Service runs form actions. Every action opens its own session.
type Service struct {
	connect Connector
	log     logrus.FieldLogger

	optsMutex sync.RWMutex
	opts      panos.Options
}

// NewService creates a new action service. A nil connector means
// PanosConnector and a nil logger means the logrus standard logger.
func NewService(connect Connector, opts panos.Options, logger logrus.FieldLogger) *Service {
	if connect == nil {
		connect = PanosConnector
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	return &Service{
		connect: connect,
		log:     logger,
		opts:    opts,
	}
}

// SetConnectOptions changes TLS and timeout behaviour for later actions
func (s *Service) SetConnectOptions(opts panos.Options) {
	s.optsMutex.Lock()
	defer s.optsMutex.Unlock()
	if opts.Logger == nil {
		opts.Logger = s.log
	}
	s.opts = opts
}

func (s *Service) connectOptions() panos.Options {
	s.optsMutex.RLock()
	defer s.optsMutex.RUnlock()
	return s.opts
}

// Validate reports ErrMissingFields unless username, password and host are
// all filled out. Every action runs it before connecting.
func Validate(creds model.Credentials) error {
	return creds.Normalized().Validate()
}

// ListDeviceGroups fetches device-group names from Panorama
func (s *Service) ListDeviceGroups(creds model.Credentials) ([]string, error) {
	creds = creds.Normalized()
	act := s.begin(model.OpDeviceGroups, creds)

	if err := Validate(creds); err != nil {
		return nil, act.fail(err)
	}
	if !creds.DeviceType.IsPanorama() {
		return nil, act.fail(model.ErrNotPanorama)
	}

	dev, err := s.open(act, creds)
	if err != nil {
		return nil, err
	}

	groups, err := dev.DeviceGroups()
	if err != nil {
		return nil, act.fail(&model.OperationError{Op: model.OpDeviceGroups, Err: err})
	}

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}

	act.done(logrus.Fields{"count": len(names)})
	return names, nil
}

// ListPreRules fetches the pre-rulebase of deviceGroup and formats one line
// per rule
func (s *Service) ListPreRules(creds model.Credentials, deviceGroup string) ([]string, error) {
	creds = creds.Normalized()
	act := s.begin(model.OpPreRules, creds)
	act.entry = act.entry.WithField("device_group", deviceGroup)

	if err := Validate(creds); err != nil {
		return nil, act.fail(err)
	}
	if deviceGroup == "" {
		return nil, act.fail(model.ErrNoDeviceGroup)
	}

	dev, err := s.open(act, creds)
	if err != nil {
		return nil, err
	}

	rules, err := dev.PreRules(deviceGroup)
	if err != nil {
		return nil, act.fail(&model.OperationError{Op: model.OpPreRules, Err: err})
	}

	lines := make([]string, 0, len(rules))
	for _, r := range rules {
		lines = append(lines, r.Line())
	}

	act.done(logrus.Fields{"count": len(lines)})
	return lines, nil
}

// CheckJobs runs "show jobs all" and returns the raw output
func (s *Service) CheckJobs(creds model.Credentials) (string, error) {
	creds = creds.Normalized()
	act := s.begin(model.OpJobs, creds)

	if err := Validate(creds); err != nil {
		return "", act.fail(err)
	}

	dev, err := s.open(act, creds)
	if err != nil {
		return "", err
	}

	out, err := dev.Op(JobsCommand)
	if err != nil {
		return "", act.fail(&model.OperationError{Op: model.OpJobs, Err: err})
	}

	act.done(logrus.Fields{"bytes": len(out)})
	return out, nil
}

// open connects with the current options
func (s *Service) open(act *action, creds model.Credentials) (Device, error) {
	dev, err := s.connect(creds, s.connectOptions())
	if err != nil {
		return nil, act.fail(&model.OperationError{Op: model.OpConnect, Err: err})
	}
	if dev == nil {
		return nil, act.fail(&model.OperationError{Op: model.OpConnect, Err: errors.New("no session returned")})
	}
	act.entry.Debug("session opened")
	return dev, nil
}

// action tags log lines of one button click
type action struct {
	entry   *logrus.Entry
	started time.Time
}

func (s *Service) begin(op string, creds model.Credentials) *action {
	act := &action{
		entry: s.log.WithFields(logrus.Fields{
			"action":      uuid.NewString(),
			"op":          op,
			"host":        creds.Host,
			"device_type": creds.DeviceType.String(),
		}),
		started: time.Now(),
	}
	act.entry.Info("action started")
	return act
}

func (a *action) fail(err error) error {
	entry := a.entry.WithField("elapsed", time.Since(a.started).Round(time.Millisecond))
	if model.IsInputError(err) {
		entry.WithError(err).Warn("action rejected")
	} else {
		entry.WithError(err).WithField("cause", errors.Cause(err).Error()).Warn("action failed")
	}
	return err
}

func (a *action) done(fields logrus.Fields) {
	a.entry.WithFields(fields).
		WithField("elapsed", time.Since(a.started).Round(time.Millisecond)).
		Info("action completed")
}
