// Package tmdb is a client for The Movie Database v3 API.
//
// A client without an API key serves the fixtures from mock.go instead of
// calling the network, so the catalog stays browsable in demo mode.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cinerow/cinerow/apierr"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/internal/cache"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/network"
	"github.com/cinerow/cinerow/util"
)

// BaseURL is the TMDb v3 API root.
const BaseURL = "https://api.themoviedb.org/3"

const service = "TMDb"

// Client issues one request per call. It never retries.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   *cache.Store
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache stores successful responses in s and serves them while fresh.
func WithCache(s *cache.Store) Option {
	return func(c *Client) { c.cache = s }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: BaseURL,
		http:    network.Client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mock reports whether the client serves fixtures.
func (c *Client) Mock() bool {
	return c.apiKey == ""
}

func (c *Client) Trending(ctx context.Context, mediaType, window string) ([]catalog.Item, error) {
	return c.items(ctx, Query{Kind: KindTrending, MediaType: mediaType, TimeWindow: window}, catalog.Movie)
}

func (c *Client) PopularMovies(ctx context.Context) ([]catalog.Item, error) {
	return c.items(ctx, Query{Kind: KindPopularMovies}, catalog.Movie)
}

func (c *Client) PopularTV(ctx context.Context) ([]catalog.Item, error) {
	return c.items(ctx, Query{Kind: KindPopularTV}, catalog.TV)
}

func (c *Client) TopRated(ctx context.Context) ([]catalog.Item, error) {
	return c.items(ctx, Query{Kind: KindTopRated}, catalog.Movie)
}

// MoviesByGenre discovers popular movies of one genre.
func (c *Client) MoviesByGenre(ctx context.Context, genreID int) ([]catalog.Item, error) {
	return c.items(ctx, Query{Kind: KindMovieGenre, GenreID: genreID}, catalog.Movie)
}

// TVByGenre discovers popular shows of one genre.
func (c *Client) TVByGenre(ctx context.Context, genreID int) ([]catalog.Item, error) {
	return c.items(ctx, Query{Kind: KindTVGenre, GenreID: genreID}, catalog.TV)
}

// Search runs a multi-search over movies and shows. People are dropped.
func (c *Client) Search(ctx context.Context, text string) ([]catalog.Item, error) {
	return c.items(ctx, Query{Kind: KindSearch, Text: text}, catalog.Movie)
}

// Videos lists the trailers, teasers and clips attached to item.
func (c *Client) Videos(ctx context.Context, item catalog.Item) ([]Video, error) {
	q := Query{Kind: KindMovieVideos, ID: item.ID}
	if isShow(item) {
		q.Kind = KindTVVideos
	}

	if c.Mock() {
		page := mockVideos(q)
		return page.Results, nil
	}

	var page VideoPage
	if err := c.get(ctx, q, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Details fetches the full record of item, including runtime and genres.
func (c *Client) Details(ctx context.Context, item catalog.Item) (*Details, error) {
	q := Query{Kind: KindMovieDetails, ID: item.ID}
	if isShow(item) {
		q.Kind = KindTVDetails
	}

	if c.Mock() {
		details := mockDetails(q)
		return &details, nil
	}

	var details Details
	if err := c.get(ctx, q, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// isShow treats items that only carry a name as TV, matching how TMDb fills its fields.
func isShow(item catalog.Item) bool {
	if item.Kind != "" {
		return item.Kind == catalog.TV
	}
	return item.Title == "" && item.Name != ""
}

func (c *Client) items(ctx context.Context, q Query, fallback catalog.Kind) ([]catalog.Item, error) {
	if c.Mock() {
		page := mockPage(q)
		return page.Items(fallback), nil
	}

	var page Page
	if err := c.get(ctx, q, &page); err != nil {
		return nil, err
	}
	return page.Items(fallback), nil
}

// get performs the request and decodes the body into v.
func (c *Client) get(ctx context.Context, q Query, v any) error {
	params := q.Params()
	key := cache.Key(q.Path(), params.Encode())
	if c.cache.Read(key, v) {
		log.Debugf("tmdb: cache hit for %s", q.Kind)
		return nil
	}

	params.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+q.Path()+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", q.Kind, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &apierr.NetworkError{Service: service, Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			StatusMessage string `json:"status_message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)

		msg := body.StatusMessage
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}

		log.Warnf("tmdb: %s returned %d: %s", q.Path(), resp.StatusCode, msg)
		return &apierr.UpstreamError{Service: service, Status: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", q.Kind, err)
	}

	if err := c.cache.Write(key, v); err != nil {
		log.Warnf("tmdb: cache write: %v", err)
	}

	return nil
}
