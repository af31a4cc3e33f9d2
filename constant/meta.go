// Package constant defines immutable application-level identifiers.
package constant

import _ "embed"

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "cinerow"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request to TMDb and YouTube.
	UserAgent = App + "/" + Version

	// Repository hosts releases checked by the version notifier.
	Repository = "https://github.com/cinerow/cinerow"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)

// AsciiArtLogo is the banner of the root help.
//
//go:embed ascii.txt
var AsciiArtLogo string
