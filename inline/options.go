package inline

import (
	"io"
	"strconv"
	"strings"

	"github.com/cinerow/cinerow/aggregate"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/search"
)

// Options configures a single non-interactive run.
type Options struct {
	Out io.Writer

	Variant  string
	Channels []string

	Service *aggregate.Service

	// Search runs remote searches for Query. When nil, Query filters the loaded rows.
	Search search.Func
	Query  string

	// Rows keeps only the rows whose source, title or index matches one of the selectors.
	Rows []string

	// Limit caps the items printed per row. Zero keeps them all.
	Limit int

	// Trailers resolves a playable YouTube key for every item.
	Trailers bool

	Json bool

	// PosterSize is the TMDb size token of image_url.
	PosterSize string

	// Width wraps plain output. Zero asks the terminal.
	Width int
}

// RowSelector reports whether the row at index should be printed.
type RowSelector func(index int, row catalog.Row) bool

// ParseRowSelectors turns selectors into a RowSelector.
// A selector is a row index starting at 0, a source such as "popular-movies",
// or a case-insensitive row title. No selectors keeps every row.
func ParseRowSelectors(selectors []string) RowSelector {
	if len(selectors) == 0 {
		return func(int, catalog.Row) bool { return true }
	}

	return func(index int, row catalog.Row) bool {
		for _, s := range selectors {
			s = strings.TrimSpace(s)
			if i, err := strconv.Atoi(s); err == nil {
				if i == index {
					return true
				}
				continue
			}

			if strings.EqualFold(s, row.Source) || strings.EqualFold(s, row.Title) {
				return true
			}
		}
		return false
	}
}
