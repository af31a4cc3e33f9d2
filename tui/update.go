package tui

import (
	"math"
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinerow/cinerow/apierr"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/internal/ui"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/player"
	"github.com/cinerow/cinerow/query"
	"github.com/cinerow/cinerow/search"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/samber/mo"
)

const searchRowTitle = "Search Results"

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case spinner.TickMsg:
		if b.state != loadingState && !b.resolving() {
			return b, cmd
		}
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case error:
		return b, tea.Batch(cmd, b.onLoadError(msg))
	case catalogLoadedMsg:
		b.rows = msg.catalog.Rows
		b.hero = msg.catalog.Hero
		b.setFiltered(mo.None[[]catalog.Row]())
		b.setState(browseState)
		if msg.catalog.Degraded {
			return b, tea.Batch(cmd, ui.Notify("Some genre rows could not be loaded"))
		}
		return b, cmd
	case channelsLoadedMsg:
		b.rows = msg.rows
		b.hero = mo.None[catalog.Item]()
		b.setFiltered(mo.None[[]catalog.Row]())
		b.setState(browseState)
		return b, cmd
	case searchResultMsg:
		return b, tea.Batch(cmd, b.onSearchResult(search.Result(msg)), b.waitForSearch())
	case trailerResolvedMsg:
		return b, tea.Batch(cmd, b.onTrailerResolved(msg))
	case detailsMsg:
		if b.machine.IsOpen() && msg.ticket == b.ticket {
			b.details = mo.Some(msg.details)
		}
		return b, cmd
	case hideControlsMsg:
		b.machine.HideControls(msg.gen)
		return b, cmd
	case playStartedMsg:
		if msg.ticket != b.ticket {
			return b, cmd
		}
		b.playing = mo.Some(msg.ticket)
		return b, tea.Batch(cmd, b.waitForPlayer(msg.ticket))
	case playerEventMsg:
		if msg.ticket == b.ticket {
			b.machine.Sync(msg.event)
		}
		return b, tea.Batch(cmd, b.waitForPlayer(msg.ticket))
	case playerExitedMsg:
		// The player window was closed by hand.
		if current, ok := b.playing.Get(); ok && current == msg.ticket && b.machine.IsOpen() {
			b.closePlayer()
		}
		return b, cmd
	case tea.MouseMsg:
		if b.machine.IsOpen() && msg.Action == tea.MouseActionMotion {
			return b, tea.Batch(cmd, hideControlsAfter(b.machine.PointerMoved()))
		}
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, b.quit()
		}

		if b.machine.IsOpen() {
			return b, tea.Batch(cmd, b.updatePlayer(msg))
		}
	}

	switch b.state {
	case loadingState:
		return b, cmd
	case errorState:
		return b, tea.Batch(cmd, b.updateError(msg))
	case browseState:
		return b, tea.Batch(cmd, b.updateBrowse(msg))
	case searchState:
		return b, tea.Batch(cmd, b.updateSearch(msg))
	}

	return b, cmd
}

func (b *statefulBubble) resolving() bool {
	return b.machine.IsOpen() && b.machine.State().Resolving
}

func (b *statefulBubble) quit() tea.Cmd {
	b.teardown()
	return tea.Quit
}

// onLoadError shows the retry screen, except for a missing YouTube key which leaves an empty browser.
func (b *statefulBubble) onLoadError(err error) tea.Cmd {
	if b.ctx.Err() != nil {
		return nil
	}

	if b.options.Variant == VariantChannels && apierr.IsConfig(err) {
		b.rows = nil
		b.setFiltered(mo.None[[]catalog.Row]())
		b.setState(browseState)
		if b.options.Warning == "" {
			b.options.Warning = err.Error()
		}
		return nil
	}

	log.Errorf("tui: load failed: %v", err)
	b.raiseError(err)
	return nil
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.retry):
		b.lastError = nil
		return tea.Batch(b.startLoading(), b.load())
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return b.quit()
	}
	return nil
}

func (b *statefulBubble) updateBrowse(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if b.scrollLocked {
		return nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return b.quit()
	case bubblesKey.Matches(keyMsg, b.keymap.search):
		b.newState(searchState)
		return b.inputC.Focus()
	case bubblesKey.Matches(keyMsg, b.keymap.back):
		if b.filtered.IsPresent() {
			b.inputC.SetValue("")
			b.searchSuggestion = mo.None[string]()
			b.clearSearch()
		}
	case bubblesKey.Matches(keyMsg, b.keymap.up):
		b.moveRow(-1)
	case bubblesKey.Matches(keyMsg, b.keymap.down):
		b.moveRow(1)
	case bubblesKey.Matches(keyMsg, b.keymap.left):
		b.moveCol(-1)
	case bubblesKey.Matches(keyMsg, b.keymap.right):
		b.moveCol(1)
	case bubblesKey.Matches(keyMsg, b.keymap.top):
		b.setCol(0)
	case bubblesKey.Matches(keyMsg, b.keymap.bottom):
		b.setCol(math.MaxInt)
	case bubblesKey.Matches(keyMsg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	case bubblesKey.Matches(keyMsg, b.keymap.confirm):
		if item, ok := b.selected().Get(); ok {
			return b.openPlayer(item)
		}
	}

	return nil
}

func (b *statefulBubble) updateSearch(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.back):
			b.inputC.SetValue("")
			b.inputC.Blur()
			b.searchSuggestion = mo.None[string]()
			b.clearSearch()
			b.previousState()
			return nil
		case bubblesKey.Matches(keyMsg, b.keymap.confirm):
			value := b.inputC.Value()
			if err := query.Remember(value, 1); err != nil {
				log.Warnf("tui: remember query: %v", err)
			}
			b.inputC.Blur()
			b.previousState()
			return nil
		case bubblesKey.Matches(keyMsg, b.keymap.acceptSearchSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
				b.searchSuggestion = mo.None[string]()
				return b.onQueryChanged(suggestion)
			}
			return nil
		}
	}

	before := b.inputC.Value()

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	if value := b.inputC.Value(); value != before {
		b.searchSuggestion = query.Suggest(value)
		return tea.Batch(cmd, b.onQueryChanged(value))
	}
	return cmd
}

// onQueryChanged debounces a remote search or filters the loaded rows in place.
func (b *statefulBubble) onQueryChanged(value string) tea.Cmd {
	if b.remote != nil {
		b.searchSeq = b.remote.Query(value)
		return nil
	}

	if isBlank(value) {
		b.setFiltered(mo.None[[]catalog.Row]())
		return nil
	}
	b.setFiltered(mo.Some(search.Filter(b.rows, value)))
	return nil
}

func (b *statefulBubble) clearSearch() {
	if b.remote != nil {
		b.searchSeq = b.remote.Query("")
	}
	b.setFiltered(mo.None[[]catalog.Row]())
}

func (b *statefulBubble) onSearchResult(res search.Result) tea.Cmd {
	if !b.remote.Latest(res.Seq) {
		return nil
	}

	if isBlank(res.Query) {
		b.setFiltered(mo.None[[]catalog.Row]())
		return nil
	}

	if res.Err != nil {
		log.Warnf("tui: search %q: %v", res.Query, res.Err)
		return ui.Notify("Search failed: " + res.Err.Error())
	}

	if len(res.Items) == 0 {
		b.setFiltered(mo.Some([]catalog.Row{}))
		return nil
	}

	b.setFiltered(mo.Some([]catalog.Row{{Title: searchRowTitle, Source: "search", Items: res.Items}}))
	return nil
}

func (b *statefulBubble) openPlayer(item catalog.Item) tea.Cmd {
	b.ticket = b.machine.Open(item)
	b.details = mo.None[*tmdb.Details]()
	b.keymap.setPlayer(true)

	return tea.Batch(
		b.resolveTrailer(b.ticket, item),
		b.fetchDetails(b.ticket, item),
		hideControlsAfter(b.machine.ControlsGeneration()),
		b.spinnerC.Tick,
	)
}

func (b *statefulBubble) closePlayer() {
	if b.machine.IsOpen() {
		b.machine.Close()
	}
	b.playing = mo.None[uint64]()
	b.details = mo.None[*tmdb.Details]()
	b.keymap.setPlayer(false)
}

func (b *statefulBubble) onTrailerResolved(msg trailerResolvedMsg) tea.Cmd {
	if !b.machine.Resolve(msg.ticket, msg.key) {
		return nil
	}

	videoKey, ok := msg.key.Get()
	if !ok {
		return nil
	}

	title := catalog.Title(b.machine.State().Item)
	return b.play(msg.ticket, videoKey, title)
}

// updatePlayer routes keys to the overlay. Everything else is swallowed while it is open.
func (b *statefulBubble) updatePlayer(msg tea.KeyMsg) tea.Cmd {
	action := b.machine.HandleKey(msg.String())
	if action == player.ActionNone {
		return nil
	}

	cmd := b.apply(action)

	if action == player.ActionClose {
		b.closePlayer()
		return cmd
	}

	return tea.Batch(cmd, hideControlsAfter(b.machine.ControlsGeneration()))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
