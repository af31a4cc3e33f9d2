// Package tui is the interactive row browser.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinerow/cinerow/aggregate"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/player"
	"github.com/cinerow/cinerow/search"
	"github.com/cinerow/cinerow/tmdb"
)

// Variants of the browser.
const (
	VariantCatalog  = "catalog"
	VariantChannels = "channels"
)

// Options wires the browser to its data sources.
type Options struct {
	Variant  string
	Channels []string

	Service *aggregate.Service
	Backend player.Backend

	// Search runs a remote search. When nil, typing filters the loaded rows locally.
	Search search.Func

	// Details fetches runtime and genres for the player overlay. Optional.
	Details func(ctx context.Context, item catalog.Item) (*tmdb.Details, error)

	// Warning is shown in the header for the whole session, such as a missing API key.
	Warning string
}

// Run starts the program and blocks until the user quits.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.teardown()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
