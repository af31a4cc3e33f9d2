// Package inline prints rows or search results without the TUI, as text or JSON.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/search"
	"github.com/cinerow/cinerow/util"
	"github.com/cinerow/cinerow/youtube"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sourcegraph/conc/pool"
)

const (
	VariantCatalog  = "catalog"
	VariantChannels = "channels"

	searchRowTitle = "Search Results"

	// trailerWorkers bounds concurrent trailer lookups.
	trailerWorkers = 4
)

// Run loads, filters and prints according to options.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Service == nil {
		return errors.New("no content source configured")
	}
	if options.Variant == "" {
		options.Variant = VariantCatalog
	}

	hero, rows, err := load(ctx, options)
	if err != nil {
		return err
	}

	selector := ParseRowSelectors(options.Rows)
	rows = lo.Filter(rows, func(row catalog.Row, i int) bool {
		return selector(i, row)
	})

	if options.Limit > 0 {
		rows = lo.Map(rows, func(row catalog.Row, _ int) catalog.Row {
			return catalog.Row{Title: row.Title, Source: row.Source, Items: lo.Subset(row.Items, 0, uint(options.Limit))}
		})
	}

	output := &Output{Variant: options.Variant, Query: options.Query}
	for _, row := range rows {
		output.Rows = append(output.Rows, &Row{
			Title:  row.Title,
			Source: row.Source,
			Items:  entries(ctx, options, row.Items),
		})
	}

	if item, ok := hero.Get(); ok && options.Query == "" {
		output.Hero = newEntry(item, mo.None[string](), options.PosterSize)
	}

	if options.Json {
		return writeJson(options.Out, output)
	}
	return writePlain(options, output)
}

func load(ctx context.Context, options *Options) (mo.Option[catalog.Item], []catalog.Row, error) {
	none := mo.None[catalog.Item]()

	if strings.TrimSpace(options.Query) != "" && options.Search != nil {
		items, err := options.Search(ctx, options.Query)
		if err != nil {
			return none, nil, fmt.Errorf("search %q: %w", options.Query, err)
		}
		if len(items) == 0 {
			return none, nil, nil
		}
		return none, []catalog.Row{{Title: searchRowTitle, Source: "search", Items: items}}, nil
	}

	var (
		hero = none
		rows []catalog.Row
	)

	if options.Variant == VariantChannels {
		feed, err := options.Service.LoadChannelFeed(ctx, options.Channels)
		if err != nil {
			return none, nil, err
		}
		rows = feed
	} else {
		c, err := options.Service.LoadCatalog(ctx)
		if err != nil {
			return none, nil, err
		}
		hero, rows = c.Hero, c.Rows
	}

	return hero, search.Filter(rows, options.Query), nil
}

// entries converts items, resolving trailers concurrently when asked to.
func entries(ctx context.Context, options *Options, items []catalog.Item) []*Entry {
	result := make([]*Entry, len(items))

	if !options.Trailers {
		for i, item := range items {
			result[i] = newEntry(item, mo.None[string](), options.PosterSize)
		}
		return result
	}

	p := pool.New().WithMaxGoroutines(trailerWorkers)
	for i, item := range items {
		p.Go(func() {
			result[i] = newEntry(item, options.Service.ResolveTrailer(ctx, item), options.PosterSize)
		})
	}
	p.Wait()

	return result
}

func writePlain(options *Options, output *Output) error {
	width := options.Width
	if width <= 0 {
		if w, _, err := util.TerminalSize(); err == nil && w > 0 {
			width = w
		} else {
			width = 100
		}
	}

	var b strings.Builder
	for i, row := range output.Rows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", row.Title)

		for _, e := range row.Items {
			line := "  " + e.DisplayTitle
			if e.Year != "" {
				line += " (" + e.Year + ")"
			}

			switch {
			case e.WatchURL != "":
				line += "  " + e.WatchURL
			case e.Kind == catalog.Video:
				line += "  " + youtube.WatchURL(e.ID)
			}

			b.WriteString(truncate.StringWithTail(line, uint(width), catalog.Ellipsis))
			b.WriteString("\n")
		}
	}

	if len(output.Rows) == 0 {
		log.Info("inline: nothing matched")
	}

	_, err := fmt.Fprint(options.Out, b.String())
	return err
}
