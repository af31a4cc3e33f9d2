// Package auth stores API keys in the OS keyring.
package auth

import (
	"errors"

	"github.com/cinerow/cinerow/constant"
	"github.com/zalando/go-keyring"
)

// Services whose credential can live in the keyring.
const (
	TMDB    = "tmdb"
	YouTube = "youtube"
)

// Services lists every keyring entry cinerow knows about.
var Services = []string{TMDB, YouTube}

// ErrNotFound is returned when no key is stored for a service.
var ErrNotFound = keyring.ErrNotFound

// Set stores the API key for service.
func Set(service, apiKey string) error {
	return keyring.Set(constant.App, user(service), apiKey)
}

// Get returns the stored API key for service.
func Get(service string) (string, error) {
	return keyring.Get(constant.App, user(service))
}

// Lookup is Get with a missing entry or an unavailable keyring reported as "".
func Lookup(service string) string {
	apiKey, err := Get(service)
	if err != nil {
		return ""
	}
	return apiKey
}

// Delete removes the stored API key. Deleting a missing key is not an error.
func Delete(service string) error {
	err := keyring.Delete(constant.App, user(service))
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

func user(service string) string {
	return service + "-api-key"
}
