package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinerow/cinerow/aggregate"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/player"
	"github.com/cinerow/cinerow/search"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/samber/mo"
)

type catalogLoadedMsg struct {
	catalog *aggregate.Catalog
}

type channelsLoadedMsg struct {
	rows []catalog.Row
}

type searchResultMsg search.Result

type trailerResolvedMsg struct {
	ticket uint64
	key    mo.Option[string]
}

type detailsMsg struct {
	ticket  uint64
	details *tmdb.Details
}

type hideControlsMsg struct {
	gen uint64
}

type playStartedMsg struct {
	ticket uint64
}

type playerEventMsg struct {
	ticket uint64
	event  player.Event
}

type playerExitedMsg struct {
	ticket uint64
}

// load fetches the rows of the current variant. Failures arrive as a plain error.
func (b *statefulBubble) load() tea.Cmd {
	ctx, service, options := b.ctx, b.options.Service, b.options

	return func() tea.Msg {
		if service == nil {
			return fmt.Errorf("no content source configured")
		}

		if options.Variant == VariantChannels {
			rows, err := service.LoadChannelFeed(ctx, options.Channels)
			if err != nil {
				return err
			}
			return channelsLoadedMsg{rows: rows}
		}

		c, err := service.LoadCatalog(ctx)
		if err != nil {
			return err
		}
		return catalogLoadedMsg{catalog: c}
	}
}

// waitForSearch delivers the next settled remote search, or nothing after teardown.
func (b *statefulBubble) waitForSearch() tea.Cmd {
	results, done := b.remote.Results(), b.ctx.Done()

	return func() tea.Msg {
		select {
		case res := <-results:
			return searchResultMsg(res)
		case <-done:
			return nil
		}
	}
}

func (b *statefulBubble) resolveTrailer(ticket uint64, item catalog.Item) tea.Cmd {
	ctx, service := b.ctx, b.options.Service

	return func() tea.Msg {
		if service == nil {
			return trailerResolvedMsg{ticket: ticket, key: mo.None[string]()}
		}
		return trailerResolvedMsg{ticket: ticket, key: service.ResolveTrailer(ctx, item)}
	}
}

func (b *statefulBubble) fetchDetails(ticket uint64, item catalog.Item) tea.Cmd {
	fetch := b.options.Details
	if fetch == nil || item.Kind == catalog.Video {
		return nil
	}

	ctx := b.ctx
	return func() tea.Msg {
		d, err := fetch(ctx, item)
		if err != nil {
			log.Warnf("tui: details of %q: %v", catalog.Title(item), err)
			return nil
		}
		return detailsMsg{ticket: ticket, details: d}
	}
}

// hideControlsAfter schedules hiding the controls for generation gen.
var hideControlsAfter = func(gen uint64) tea.Cmd {
	return tea.Tick(player.ControlsTimeout, func(time.Time) tea.Msg {
		return hideControlsMsg{gen: gen}
	})
}

// play hands the key to the backend once any earlier Close has returned.
// Failures become a notification.
func (b *statefulBubble) play(ticket uint64, videoKey, title string) tea.Cmd {
	backend := b.backend
	if backend == nil {
		return nil
	}

	pending := b.closing
	return func() tea.Msg {
		if pending != nil {
			<-pending
		}

		if err := backend.Play(videoKey, title); err != nil {
			log.Errorf("tui: play %s: %v", videoKey, err)
			return fmt.Sprintf("Playback failed: %v", err)
		}
		return playStartedMsg{ticket: ticket}
	}
}

// waitForPlayer relays property changes and the exit of an observable backend.
func (b *statefulBubble) waitForPlayer(ticket uint64) tea.Cmd {
	observable, ok := b.backend.(player.Observable)
	if !ok {
		return nil
	}

	events, exited, done := observable.Events(), observable.Wait(), b.ctx.Done()
	return func() tea.Msg {
		select {
		case event := <-events:
			return playerEventMsg{ticket: ticket, event: event}
		case <-exited:
			return playerExitedMsg{ticket: ticket}
		case <-done:
			return nil
		}
	}
}

// apply forwards an overlay action to the backend.
func (b *statefulBubble) apply(action player.Action) tea.Cmd {
	backend := b.backend
	if backend == nil || action == player.ActionNone {
		return nil
	}

	if action != player.ActionClose && b.playing.IsAbsent() {
		return nil
	}

	var closed chan struct{}
	if action == player.ActionClose {
		closed = make(chan struct{})
		b.closing = closed
	}

	return func() tea.Msg {
		if closed != nil {
			defer close(closed)
		}

		if err := player.Apply(backend, action); err != nil {
			log.Warnf("tui: player action %d: %v", action, err)
			return fmt.Sprintf("Player: %v", err)
		}
		return nil
	}
}
