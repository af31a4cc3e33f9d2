package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cinerow/cinerow/apierr"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/filesystem"
	"github.com/cinerow/cinerow/internal/cache"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a client pointed at a fake TMDb", t, func() {
		var (
			lastPath  string
			lastQuery string
		)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.Path
			lastQuery = r.URL.RawQuery

			switch r.URL.Path {
			case "/trending/all/week":
				fmt.Fprint(w, `{"page":1,"total_pages":1,"total_results":2,"results":[
					{"id":1,"title":"Dune","backdrop_path":"/dune.jpg","vote_average":8.1,"genre_ids":[878],"media_type":"movie"},
					{"id":2,"name":"Severance","media_type":"tv"}]}`)
			case "/search/multi":
				fmt.Fprint(w, `{"page":1,"results":[{"id":3,"name":"Keanu","media_type":"person"},{"id":4,"title":"John Wick","media_type":"movie"}]}`)
			case "/tv/2/videos":
				fmt.Fprint(w, `{"id":2,"results":[{"key":"abc","site":"YouTube","type":"Teaser"}]}`)
			case "/movie/1":
				fmt.Fprint(w, `{"id":1,"title":"Dune","runtime":155,"genres":[{"id":878,"name":"Science Fiction"}]}`)
			case "/movie/popular":
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		client := New("secret", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
		ctx := context.Background()

		Convey("It should not be in mock mode", func() {
			So(client.Mock(), ShouldBeFalse)
		})

		Convey("Trending should hit the media type and window path", func() {
			items, err := client.Trending(ctx, "all", "week")
			So(err, ShouldBeNil)
			So(lastPath, ShouldEqual, "/trending/all/week")
			So(lastQuery, ShouldContainSubstring, "api_key=secret")
			So(items, ShouldHaveLength, 2)
			So(items[0].ID, ShouldEqual, "1")
			So(items[0].Tags, ShouldResemble, []string{"Science Fiction"})
			So(items[1].Kind, ShouldEqual, catalog.TV)
		})

		Convey("Search should drop people", func() {
			items, err := client.Search(ctx, "keanu")
			So(err, ShouldBeNil)
			So(lastQuery, ShouldContainSubstring, "query=keanu")
			So(items, ShouldHaveLength, 1)
			So(catalog.Title(items[0]), ShouldEqual, "John Wick")
		})

		Convey("Videos should use the tv endpoint for shows", func() {
			videos, err := client.Videos(ctx, catalog.Item{ID: "2", Name: "Severance"})
			So(err, ShouldBeNil)
			So(lastPath, ShouldEqual, "/tv/2/videos")
			So(videos, ShouldHaveLength, 1)
			So(videos[0].Key, ShouldEqual, "abc")
		})

		Convey("Details should decode runtime", func() {
			details, err := client.Details(ctx, catalog.Item{ID: "1", Title: "Dune", Kind: catalog.Movie})
			So(err, ShouldBeNil)
			So(details.Minutes(), ShouldEqual, 155)
		})

		Convey("A non-2xx status should become an UpstreamError", func() {
			_, err := client.PopularMovies(ctx)

			var upstream *apierr.UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
			So(upstream.Status, ShouldEqual, http.StatusUnauthorized)
			So(upstream.Message, ShouldStartWith, "Invalid API key")
		})

		Convey("A transport failure should become a NetworkError", func() {
			broken := New("secret", WithBaseURL("http://127.0.0.1:1"))
			_, err := broken.TopRated(ctx)
			So(apierr.IsNetwork(err), ShouldBeTrue)
		})

		Convey("A cancelled context should surface as a NetworkError wrapping the cause", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := client.TopRated(cancelled)
			So(apierr.IsNetwork(err), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("Given a cached client", t, func() {
		filesystem.SetMemMapFs()

		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			fmt.Fprint(w, `{"page":1,"results":[{"id":9,"title":"Heat"}]}`)
		}))
		defer srv.Close()

		client := New("secret", WithBaseURL(srv.URL), WithCache(cache.New("/responses", time.Hour)))

		Convey("A repeated request should be served from disk", func() {
			_, err := client.TopRated(context.Background())
			So(err, ShouldBeNil)
			items, err := client.TopRated(context.Background())
			So(err, ShouldBeNil)
			So(items[0].Title, ShouldEqual, "Heat")
			So(hits.Load(), ShouldEqual, 1)
		})
	})
}

func TestMockMode(t *testing.T) {
	Convey("Given a client without a key", t, func() {
		client := New("", WithBaseURL("http://127.0.0.1:1"))
		ctx := context.Background()

		Convey("It should report mock mode", func() {
			So(client.Mock(), ShouldBeTrue)
		})

		Convey("Every list feed should return its fixture", func() {
			trending, err := client.Trending(ctx, "all", "day")
			So(err, ShouldBeNil)
			So(trending, ShouldHaveLength, 20)
			So(trending[0].Title, ShouldEqual, "Trending Movie 1")

			tv, _ := client.PopularTV(ctx)
			So(tv[19].Title, ShouldEqual, "Popular TV Movie 20")

			horror, _ := client.MoviesByGenre(ctx, catalog.GenreHorror)
			So(horror[0].Title, ShouldEqual, "Horror Movie 1")

			results, _ := client.Search(ctx, "anything")
			So(results, ShouldHaveLength, 10)
		})

		Convey("Mock pages should share the real envelope", func() {
			page := mockPage(Query{Kind: KindTopRated})
			So(page.Page, ShouldEqual, 1)
			So(page.TotalPages, ShouldEqual, 1)
			So(page.TotalResults, ShouldEqual, len(page.Results))
		})

		Convey("Videos should include one YouTube trailer", func() {
			videos, err := client.Videos(ctx, catalog.Item{ID: "1", Title: "Trending Movie 1"})
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 1)
			So(videos[0].Type, ShouldEqual, "Trailer")
			So(videos[0].Site, ShouldEqual, "YouTube")
		})

		Convey("Details should carry a runtime", func() {
			details, err := client.Details(ctx, catalog.Item{ID: "1", Name: "Show", Kind: catalog.TV})
			So(err, ShouldBeNil)
			So(details.Title, ShouldEqual, "Mock TV Details")
			So(details.Minutes(), ShouldEqual, 45)
		})

		Convey("Every kind should be named", func() {
			for k := KindTrending; k <= KindTVDetails; k++ {
				So(k.String(), ShouldNotStartWith, "kind(")
			}
		})
	})
}

func TestImageURLs(t *testing.T) {
	Convey("Image URL builders", t, func() {
		So(ImageURL("", "w500"), ShouldEqual, PosterPlaceholder)
		So(BackdropURL("", ""), ShouldEqual, BackdropPlaceholder)
		So(ImageURL("/abc.jpg", "w342"), ShouldEqual, "https://image.tmdb.org/t/p/w342/abc.jpg")
		So(ImageURL("/abc.jpg", ""), ShouldEqual, "https://image.tmdb.org/t/p/w500/abc.jpg")
		So(BackdropURL("/b.jpg", ""), ShouldEqual, "https://image.tmdb.org/t/p/w1280/b.jpg")
		So(OriginalImageURL("/o.jpg"), ShouldEqual, "https://image.tmdb.org/t/p/original/o.jpg")
		So(ImageURL("https://i.ytimg.com/vi/x/hqdefault.jpg", "w500"), ShouldEqual, "https://i.ytimg.com/vi/x/hqdefault.jpg")
	})
}

func TestQueryParams(t *testing.T) {
	Convey("Genre queries should carry with_genres", t, func() {
		q := Query{Kind: KindTVGenre, GenreID: 35}
		So(q.Path(), ShouldEqual, "/discover/tv")
		So(q.Params().Get("with_genres"), ShouldEqual, "35")
		So(q.Params().Get("api_key"), ShouldBeEmpty)
	})
}
