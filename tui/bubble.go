package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/internal/ui"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/player"
	"github.com/cinerow/cinerow/search"
	"github.com/cinerow/cinerow/style"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/cinerow/cinerow/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const (
	minCardWidth  = 12
	defaultWidth  = 100
	defaultHeight = 30
)

// statefulBubble is the whole browser: loaded rows, the search box and the player overlay.
type statefulBubble struct {
	state   state
	history []state

	keymap *statefulKeymap

	spinnerC spinner.Model
	inputC   textinput.Model
	helpC    help.Model

	rows     []catalog.Row
	hero     mo.Option[catalog.Item]
	filtered mo.Option[[]catalog.Row]

	// row is the selected row of the visible rows, cols the selected item per row.
	row  int
	cols []int

	remote           *search.Remote
	searchSeq        uint64
	searchSuggestion mo.Option[string]

	machine      *player.Machine
	backend      player.Backend
	scrollLocked bool
	details      mo.Option[*tmdb.Details]

	// playing is the open ticket whose video the backend is currently showing.
	playing mo.Option[uint64]
	ticket  uint64

	// closing is closed once the last backend Close returns. Play waits on it.
	closing chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	cardWidth    int
	showURLs     bool
	backdropSize string

	lastError     error
	width, height int
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	log.Debugf("tui: %s -> %s", b.state, s)
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != loadingState && b.state != errorState {
		b.history = append(b.history, b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if n := len(b.history); n > 0 {
		prev := b.history[n-1]
		b.history = b.history[:n-1]
		b.setState(prev)
	}
}

// Lock and Unlock implement player.ScrollLock. Row navigation is frozen while locked.
func (b *statefulBubble) Lock() {
	b.scrollLocked = true
}

func (b *statefulBubble) Unlock() {
	b.scrollLocked = false
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.setState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
	b.inputC.Width = b.width - lipgloss.Width(b.inputC.Prompt) - 1
}

// visibleRows is the filtered view when a search is active, the loaded rows otherwise.
func (b *statefulBubble) visibleRows() []catalog.Row {
	return b.filtered.OrElse(b.rows)
}

// setFiltered replaces the filtered view and resets the cursor.
func (b *statefulBubble) setFiltered(rows mo.Option[[]catalog.Row]) {
	b.filtered = rows
	b.resetCursor()
}

func (b *statefulBubble) resetCursor() {
	b.row = 0
	b.cols = make([]int, len(b.visibleRows()))
}

// selected returns the item under the cursor.
func (b *statefulBubble) selected() mo.Option[catalog.Item] {
	rows := b.visibleRows()
	if b.row >= len(rows) || b.row >= len(b.cols) {
		return mo.None[catalog.Item]()
	}

	items := rows[b.row].Items
	col := b.cols[b.row]
	if col >= len(items) {
		return mo.None[catalog.Item]()
	}
	return mo.Some(items[col])
}

func (b *statefulBubble) moveRow(delta int) {
	rows := b.visibleRows()
	if len(rows) == 0 {
		return
	}
	b.row = lo.Clamp(b.row+delta, 0, len(rows)-1)
}

func (b *statefulBubble) moveCol(delta int) {
	if b.row < len(b.cols) {
		b.setCol(b.cols[b.row] + delta)
	}
}

// setCol moves the cursor of the selected row, clamped to its items.
func (b *statefulBubble) setCol(col int) {
	rows := b.visibleRows()
	if b.row >= len(rows) || b.row >= len(b.cols) {
		return
	}
	b.cols[b.row] = lo.Clamp(col, 0, max(len(rows[b.row].Items)-1, 0))
}

// teardown closes the overlay, stops search and playback and cancels in-flight loads.
// It is safe to call more than once.
func (b *statefulBubble) teardown() {
	b.machine.Close()

	if b.remote != nil {
		b.remote.Close()
	}

	b.cancel()

	if b.backend != nil {
		_ = b.backend.Close()
	}
}

func newBubble(options *Options) *statefulBubble {
	if options.Variant == "" {
		options.Variant = VariantCatalog
	}

	ctx, cancel := context.WithCancel(context.Background())

	bubble := &statefulBubble{
		keymap:       newStatefulKeymap(),
		backend:      options.Backend,
		ctx:          ctx,
		cancel:       cancel,
		cardWidth:    max(viper.GetInt(key.TUICardWidth), minCardWidth),
		showURLs:     viper.GetBool(key.TUIShowURLs),
		backdropSize: viper.GetString(key.TMDBBackdropSize),
		notifier:     &ui.Model{},
		options:      options,
	}
	bubble.machine = player.NewMachine(bubble)

	if options.Search != nil {
		window := time.Duration(viper.GetInt(key.SearchDebounceMs)) * time.Millisecond
		bubble.remote = search.NewRemote(options.Search, window)
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = "/ "
	if options.Variant == VariantChannels {
		bubble.inputC.Placeholder = fmt.Sprintf("Filter videos (%s v%s)", constant.App, constant.Version)
	} else {
		bubble.inputC.Placeholder = fmt.Sprintf("Search movies and shows (%s v%s)", constant.App, constant.Version)
	}

	bubble.resize(defaultWidth, defaultHeight)
	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}
