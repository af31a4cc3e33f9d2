package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/color"
	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/icon"
	"github.com/cinerow/cinerow/player"
	"github.com/cinerow/cinerow/style"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/cinerow/cinerow/youtube"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.BorderColor).
			Padding(0, 1)

	selectedCardStyle = cardStyle.BorderForeground(style.ActiveBorderColor)

	rowTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(style.SecondaryColor)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(style.AccentColor).
			Padding(1, 2)
)

// rowHeight is the row title, a bordered two line card and a spacer.
const rowHeight = 6

func (b *statefulBubble) View() string {
	var output string

	switch {
	case b.machine.IsOpen():
		output = b.viewPlayer()
	case b.state == loadingState:
		output = b.viewLoading()
	case b.state == errorState:
		output = b.viewError()
	case b.state == browseState, b.state == searchState:
		output = b.viewBrowse()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	what := "catalog"
	if b.options.Variant == VariantChannels {
		what = "channels"
	}

	return b.renderLines(
		true,
		[]string{
			style.Title(constant.App),
			"",
			b.spinnerC.View() + " Loading " + what,
		},
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Could not load content.",
			"",
			errorMsg,
			"",
			style.Faint("Press r to try again."),
		},
	)
}

func (b *statefulBubble) viewBrowse() string {
	lines := []string{b.viewHeader()}

	if warning := b.options.Warning; warning != "" {
		lines = append(lines, style.Fg(style.WarningColor)(icon.Get(icon.Warn)+" "+warning))
	}

	if b.state == searchState {
		input := b.inputC.View()
		if suggestion, ok := b.searchSuggestion.Get(); ok {
			input += " " + style.Faint(suggestion)
		}
		lines = append(lines, "", input)
	}

	if b.filtered.IsAbsent() && b.options.Variant == VariantCatalog {
		lines = append(lines, "", b.viewHero())
	}

	lines = append(lines, "")
	used := lipgloss.Height(strings.Join(lines, "\n"))

	rows := b.visibleRows()
	if len(rows) == 0 {
		lines = append(lines, style.Faint(b.emptyMessage()))
	} else {
		lines = append(lines, b.viewRows(rows, b.height-used-2)...)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewHeader() string {
	variant := "Movies & TV"
	if b.options.Variant == VariantChannels {
		variant = "Channels"
	}
	return style.Title(constant.App) + " " + style.Faint(variant)
}

func (b *statefulBubble) emptyMessage() string {
	switch {
	case b.filtered.IsPresent():
		return "No results for " + fmt.Sprintf("%q", b.inputC.Value())
	case b.options.Variant == VariantChannels:
		return "No videos found for the configured channels."
	default:
		return "Nothing to show."
	}
}

func (b *statefulBubble) viewHero() string {
	hero, ok := b.hero.Get()
	if !ok {
		return style.Faint("No featured title")
	}

	meta := []string{}
	if year := catalog.FormatReleaseDate(catalog.ReleaseDate(hero)); year != "" {
		meta = append(meta, year)
	}
	if hero.Rating > 0 {
		meta = append(meta, fmt.Sprintf("%s %.1f", icon.Get(icon.Star), catalog.StarRating(hero.Rating)))
	}
	if genres := catalog.Genres(hero.GenreIDs); len(genres) > 0 {
		meta = append(meta, strings.Join(genres, ", "))
	}

	lines := []string{
		style.Bold(style.Fg(style.AccentColor)(catalog.Title(hero))),
		style.Faint(strings.Join(meta, " · ")),
		wrap.String(catalog.TruncateText(hero.Overview, 240), max(b.width/2, 40)),
	}

	if b.showURLs {
		lines = append(lines, style.Faint(tmdb.BackdropURL(hero.BackdropPath, b.backdropSize)))
	}

	return strings.Join(lines, "\n")
}

// viewRows renders as many rows as fit in height, keeping the selected row on screen.
func (b *statefulBubble) viewRows(rows []catalog.Row, height int) []string {
	fit := max(height/rowHeight, 1)
	start := 0
	if b.row >= fit {
		start = b.row - fit + 1
	}
	end := min(start+fit, len(rows))

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, b.viewRow(i, rows[i]))
	}
	return lines
}

func (b *statefulBubble) viewRow(index int, row catalog.Row) string {
	col := 0
	if index < len(b.cols) {
		col = b.cols[index]
	}

	cardOuter := b.cardWidth + 4
	fit := max(b.width/cardOuter, 1)
	start := 0
	if col >= fit {
		start = col - fit + 1
	}
	end := min(start+fit, len(row.Items))

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, b.viewCard(row.Items[i], index == b.row && i == col))
	}

	title := rowTitleStyle.Render(row.Title)
	position := style.Faint(fmt.Sprintf(" %d/%d", col+1, len(row.Items)))
	if index != b.row {
		position = ""
	}

	return title + position + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (b *statefulBubble) viewCard(item catalog.Item, selected bool) string {
	s := cardStyle
	if selected {
		s = selectedCardStyle
	}

	title := truncate.StringWithTail(catalog.Title(item), uint(b.cardWidth), catalog.Ellipsis)
	if selected {
		title = style.Fg(style.AccentColor)(title)
	}

	return s.Width(b.cardWidth + 2).Render(title + "\n" + style.Faint(truncate.String(cardMeta(item), uint(b.cardWidth))))
}

func cardMeta(item catalog.Item) string {
	switch item.Kind {
	case catalog.Video:
		return catalog.FormatReleaseDate(item.ReleaseDate) + " " + item.Channel
	default:
		parts := lo.Compact([]string{kindIcon(item.Kind), catalog.FormatReleaseDate(catalog.ReleaseDate(item))})
		if item.Rating > 0 {
			parts = append(parts, fmt.Sprintf("%.1f", catalog.StarRating(item.Rating)))
		}
		return strings.Join(parts, " ")
	}
}

func kindIcon(kind catalog.Kind) string {
	switch kind {
	case catalog.Movie:
		return icon.Get(icon.Movie)
	case catalog.TV:
		return icon.Get(icon.Show)
	default:
		return icon.Get(icon.Video)
	}
}

func (b *statefulBubble) viewPlayer() string {
	st := b.machine.State()
	item := st.Item

	lines := []string{
		style.Title("Now Playing"),
		"",
		style.Bold(catalog.Title(item)),
	}

	if d, ok := b.details.Get(); ok && d != nil {
		meta := lo.Compact([]string{
			catalog.FormatRuntime(d.Minutes()),
			strings.Join(lo.Map(d.Genres, func(g tmdb.Genre, _ int) string { return g.Name }), ", "),
		})
		lines = append(lines, style.Faint(strings.Join(meta, " · ")))
		if d.Tagline != "" {
			lines = append(lines, style.Italic(d.Tagline))
		}
	}

	lines = append(lines, "")

	videoKey, hasKey := st.Key.Get()
	switch {
	case st.Resolving:
		lines = append(lines, b.spinnerC.View()+" Looking for a trailer")
	case !hasKey:
		lines = append(lines,
			style.Fg(color.Yellow)(icon.Get(icon.Warn)+" Trailer not available"),
			"",
			wrap.String(item.Overview, max(b.width-8, 20)),
		)
	default:
		lines = append(lines, style.Fg(style.SuccessColor)(icon.Get(icon.Play)+" Playing"))
		if b.showURLs {
			lines = append(lines, style.Faint(youtube.WatchURL(videoKey)))
		}
	}

	if st.ControlsVisible {
		lines = append(lines, "", b.viewControls(st))
	}

	box := overlayStyle.Width(max(b.width-6, 20)).Render(strings.Join(lines, "\n"))
	return b.renderLines(true, []string{box})
}

func (b *statefulBubble) viewControls(st player.State) string {
	toggle := func(on bool, label string) string {
		if on {
			return style.Fg(style.AccentColor)("[" + label + "]")
		}
		return style.Faint(label)
	}

	pause := icon.Get(icon.Play)
	if st.Paused {
		pause = icon.Get(icon.Pause)
	}

	return strings.Join([]string{
		pause + " " + toggle(st.Paused, "paused"),
		toggle(st.Muted, "muted"),
		toggle(st.Fullscreen, "fullscreen"),
	}, "  ")
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
