package aggregate

import (
	"context"
	"fmt"

	"github.com/cinerow/cinerow/apierr"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sourcegraph/conc"
)

// Catalog is the result of LoadCatalog.
type Catalog struct {
	Hero mo.Option[catalog.Item]
	Rows []catalog.Row

	// Degraded is set when the genre rows were dropped.
	Degraded bool
}

type feed struct {
	title   string
	source  string
	primary bool
	fetch   func(ctx context.Context, src CatalogSource, window string) ([]catalog.Item, error)
}

func genreFeed(id int) func(context.Context, CatalogSource, string) ([]catalog.Item, error) {
	return func(ctx context.Context, src CatalogSource, _ string) ([]catalog.Item, error) {
		return src.MoviesByGenre(ctx, id)
	}
}

// feeds is the display order of the catalog rows. Primary feeds come first.
var feeds = []feed{
	{"Trending Now", "trending", true, func(ctx context.Context, src CatalogSource, window string) ([]catalog.Item, error) {
		return src.Trending(ctx, "all", window)
	}},
	{"Popular Movies", "popular-movies", true, func(ctx context.Context, src CatalogSource, _ string) ([]catalog.Item, error) {
		return src.PopularMovies(ctx)
	}},
	{"Popular TV Shows", "popular-tv", true, func(ctx context.Context, src CatalogSource, _ string) ([]catalog.Item, error) {
		return src.PopularTV(ctx)
	}},
	{"Top Rated", "top-rated", true, func(ctx context.Context, src CatalogSource, _ string) ([]catalog.Item, error) {
		return src.TopRated(ctx)
	}},
	{"Action Movies", "action", false, genreFeed(catalog.GenreAction)},
	{"Comedy Movies", "comedy", false, genreFeed(catalog.GenreComedy)},
	{"Drama Movies", "drama", false, genreFeed(catalog.GenreDrama)},
	{"Horror Movies", "horror", false, genreFeed(catalog.GenreHorror)},
}

type outcome struct {
	items []catalog.Item
	err   error
}

// LoadCatalog fetches every feed concurrently and assembles the rows in feeds order.
// A failing primary feed fails the load. A failing genre feed drops all genre rows.
func (s *Service) LoadCatalog(ctx context.Context) (*Catalog, error) {
	if s.catalog == nil {
		return nil, &apierr.ConfigError{Service: "TMDb"}
	}

	// Each goroutine owns one slot, so arrival order cannot affect the result.
	outcomes := make([]outcome, len(feeds))

	var wg conc.WaitGroup
	for i, f := range feeds {
		wg.Go(func() {
			items, err := f.fetch(ctx, s.catalog, s.window)
			outcomes[i] = outcome{items: items, err: err}
		})
	}
	wg.Wait()

	var (
		rows       = make([]catalog.Row, 0, len(feeds))
		genreRows  []catalog.Row
		genreError error
	)

	for i, f := range feeds {
		o := outcomes[i]
		if o.err != nil {
			if f.primary {
				return nil, fmt.Errorf("load %s: %w", f.source, o.err)
			}
			if genreError == nil {
				genreError = fmt.Errorf("load %s: %w", f.source, o.err)
			}
			continue
		}

		row := catalog.Row{
			Title:  f.title,
			Source: f.source,
			Items:  lo.Subset(o.items, 0, uint(s.rowLimit)),
		}

		if f.primary {
			rows = append(rows, row)
		} else {
			genreRows = append(genreRows, row)
		}
	}

	result := &Catalog{Hero: hero(rows[0].Items)}
	if genreError != nil {
		log.Warnf("aggregate: genre rows unavailable: %v", genreError)
		result.Degraded = true
	} else {
		rows = append(rows, genreRows...)
	}

	result.Rows = rows
	return result, nil
}

// hero is the first trending item that has a backdrop to show.
func hero(trending []catalog.Item) mo.Option[catalog.Item] {
	item, ok := lo.Find(trending, func(item catalog.Item) bool {
		return item.BackdropPath != ""
	})
	if !ok {
		return mo.None[catalog.Item]()
	}
	return mo.Some(item)
}
