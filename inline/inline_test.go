package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/cinerow/cinerow/aggregate"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/cinerow/cinerow/youtube"
	. "github.com/smartystreets/goconvey/convey"
)

func mockService() *aggregate.Service {
	return aggregate.New(
		aggregate.WithCatalog(tmdb.New("")),
		aggregate.WithChannels(youtube.New("", youtube.WithDemo(true))),
	)
}

func decode(buf *bytes.Buffer) Output {
	var output Output
	So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
	return output
}

func TestWriteJson(t *testing.T) {
	Convey("Given an output without rows", t, func() {
		var buf bytes.Buffer
		err := writeJson(&buf, &Output{Variant: VariantCatalog, Query: "dune"})
		So(err, ShouldBeNil)

		Convey("Rows should be an empty list, not null", func() {
			So(buf.String(), ShouldContainSubstring, `"rows": []`)
			output := decode(&buf)
			So(output.Query, ShouldEqual, "dune")
			So(output.Rows, ShouldHaveLength, 0)
		})
	})
}

func TestParseRowSelectors(t *testing.T) {
	row := catalog.Row{Title: "Popular Movies", Source: "popular-movies"}

	Convey("No selectors should keep every row", t, func() {
		So(ParseRowSelectors(nil)(3, row), ShouldBeTrue)
	})

	Convey("Selectors should match index, source or title", t, func() {
		So(ParseRowSelectors([]string{"1"})(1, row), ShouldBeTrue)
		So(ParseRowSelectors([]string{"2"})(1, row), ShouldBeFalse)
		So(ParseRowSelectors([]string{"popular-movies"})(5, row), ShouldBeTrue)
		So(ParseRowSelectors([]string{" popular movies "})(5, row), ShouldBeTrue)
		So(ParseRowSelectors([]string{"horror"})(5, row), ShouldBeFalse)
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given the mock catalog", t, func() {
		var buf bytes.Buffer
		options := &Options{Out: &buf, Service: mockService(), Json: true}

		Convey("All rows and the hero should be printed", func() {
			So(Run(ctx, options), ShouldBeNil)
			output := decode(&buf)
			So(output.Variant, ShouldEqual, VariantCatalog)
			So(output.Rows, ShouldHaveLength, 8)
			So(output.Hero, ShouldNotBeNil)
			So(output.Hero.DisplayTitle, ShouldEqual, "Trending Movie 1")
		})

		Convey("Row selectors and the limit should apply", func() {
			options.Rows = []string{"horror", "0"}
			options.Limit = 2
			So(Run(ctx, options), ShouldBeNil)
			output := decode(&buf)
			So(output.Rows, ShouldHaveLength, 2)
			So(output.Rows[0].Source, ShouldEqual, "trending")
			So(output.Rows[1].Source, ShouldEqual, "horror")
			So(output.Rows[1].Items, ShouldHaveLength, 2)
			So(output.Rows[1].Items[0].Year, ShouldEqual, "2024")
			So(output.Rows[1].Items[0].ImageURL, ShouldStartWith, tmdb.ImageBaseURL+"/w500/")
		})

		Convey("Trailers should be resolved when asked", func() {
			options.Rows = []string{"top-rated"}
			options.Limit = 3
			options.Trailers = true
			So(Run(ctx, options), ShouldBeNil)
			output := decode(&buf)
			So(output.Rows[0].Items, ShouldHaveLength, 3)
			for _, e := range output.Rows[0].Items {
				So(e.Trailer, ShouldEqual, "dQw4w9WgXcQ")
				So(e.WatchURL, ShouldEqual, youtube.WatchURL("dQw4w9WgXcQ"))
			}
		})

		Convey("A local query should filter the rows", func() {
			options.Query = "top rated movie 7"
			So(Run(ctx, options), ShouldBeNil)
			output := decode(&buf)
			So(output.Hero, ShouldBeNil)
			So(output.Rows, ShouldHaveLength, 1)
			So(output.Rows[0].Items[0].DisplayTitle, ShouldEqual, "Top Rated Movie 7")
		})

		Convey("Plain output should list row titles and items", func() {
			options.Json = false
			options.Width = 200
			options.Rows = []string{"popular-tv"}
			options.Limit = 1
			So(Run(ctx, options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Popular TV Shows\n  Popular TV Movie 1 (2024)\n")
		})
	})

	Convey("Given a remote search", t, func() {
		var buf bytes.Buffer
		options := &Options{Out: &buf, Service: mockService(), Json: true, Query: "dune"}

		Convey("Results should form a single row", func() {
			options.Search = func(_ context.Context, q string) ([]catalog.Item, error) {
				return []catalog.Item{{ID: "1", Title: "Dune", Kind: catalog.Movie}}, nil
			}
			So(Run(ctx, options), ShouldBeNil)
			output := decode(&buf)
			So(output.Rows, ShouldHaveLength, 1)
			So(output.Rows[0].Title, ShouldEqual, searchRowTitle)
		})

		Convey("A failing search should be returned", func() {
			options.Search = func(context.Context, string) ([]catalog.Item, error) {
				return nil, errors.New("boom")
			}
			err := Run(ctx, options)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "dune")
		})
	})

	Convey("Given the demo channels", t, func() {
		var buf bytes.Buffer
		options := &Options{
			Out:      &buf,
			Service:  mockService(),
			Variant:  VariantChannels,
			Channels: []string{"Veritasium", "Kurzgesagt"},
			Width:    300,
		}

		Convey("Every channel should get a row of watch links", func() {
			So(Run(ctx, options), ShouldBeNil)
			out := buf.String()
			So(out, ShouldStartWith, "Veritasium\n")
			So(out, ShouldContainSubstring, "\nKurzgesagt\n")
			So(strings.Count(out, youtube.WatchURL("dQw4w9WgXcQ")), ShouldEqual, 2*youtube.PageSize)
		})
	})

	Convey("Given no service", t, func() {
		So(Run(ctx, &Options{}), ShouldNotBeNil)
	})
}
