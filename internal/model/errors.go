package model

import (
	"errors"
	"fmt"
)

// Input errors. These are raised before any connection is attempted.
var (
	ErrMissingFields = errors.New("all fields (username, password, ip address) must be filled out")
	ErrNotPanorama   = errors.New("device groups can only be retrieved from panorama")
	ErrNoDeviceGroup = errors.New("no device group selected")
)

// Operation names used in OperationError
const (
	OpConnect      = "connect"
	OpDeviceGroups = "get device groups"
	OpPreRules     = "get pre-rules"
	OpJobs         = "check jobs"
)

// OperationError reports a failed connection or data fetch
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause
func (e *OperationError) Unwrap() error {
	return e.Err
}

// Cause makes OperationError work with github.com/pkg/errors.Cause
func (e *OperationError) Cause() error {
	return e.Err
}

// IsInputError returns true for errors caused by missing or unusable form input
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingFields) || errors.Is(err, ErrNotPanorama) || errors.Is(err, ErrNoDeviceGroup)
}
