// Package apierr defines the failure kinds shared by the TMDb and YouTube gateways.
//
// Callers branch on kind with errors.As or the Is helpers below:
// a ConfigError degrades to mock data or a disabled feature, while
// UpstreamError and NetworkError propagate to whoever asked.
package apierr

import (
	"errors"
	"fmt"
)

// ConfigError reports a missing credential.
type ConfigError struct {
	Service string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s API key is not configured", e.Service)
}

// UpstreamError reports a non-success status from a third-party API.
type UpstreamError struct {
	Service string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s API error: status %d", e.Service, e.Status)
	}
	return fmt.Sprintf("%s API error: status %d: %s", e.Service, e.Status, e.Message)
}

// NetworkError reports a transport failure before any response arrived.
type NetworkError struct {
	Service string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that a name search matched nothing.
type NotFoundError struct {
	What  string
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s: %s", e.What, e.Query)
}

func IsConfig(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
