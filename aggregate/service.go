// Package aggregate builds display rows out of the gateway clients.
package aggregate

import (
	"context"

	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/cinerow/cinerow/youtube"
)

// CatalogSource is the subset of the TMDb client the catalog rows need.
type CatalogSource interface {
	Trending(ctx context.Context, mediaType, window string) ([]catalog.Item, error)
	PopularMovies(ctx context.Context) ([]catalog.Item, error)
	PopularTV(ctx context.Context) ([]catalog.Item, error)
	TopRated(ctx context.Context) ([]catalog.Item, error)
	MoviesByGenre(ctx context.Context, genreID int) ([]catalog.Item, error)
	Videos(ctx context.Context, item catalog.Item) ([]tmdb.Video, error)
}

// ChannelSource lists recent videos of a channel. Both the direct client and the relay client satisfy it.
type ChannelSource interface {
	ChannelVideos(ctx context.Context, name string) (*youtube.SearchResponse, error)
}

// TrailerSearcher finds trailers by free text.
type TrailerSearcher interface {
	SearchTrailers(ctx context.Context, title string, limit int) ([]youtube.SearchItem, error)
}

// Service is the aggregation layer. Any source may be nil, which disables
// the operations depending on it.
type Service struct {
	catalog  CatalogSource
	channels ChannelSource
	trailers TrailerSearcher

	window   string
	rowLimit int
}

type Option func(*Service)

func WithCatalog(src CatalogSource) Option {
	return func(s *Service) { s.catalog = src }
}

func WithChannels(src ChannelSource) Option {
	return func(s *Service) { s.channels = src }
}

func WithTrailerSearch(src TrailerSearcher) Option {
	return func(s *Service) { s.trailers = src }
}

// WithTrendingWindow selects the day or week trending list.
func WithTrendingWindow(window string) Option {
	return func(s *Service) { s.window = window }
}

// WithRowLimit caps the number of items kept per catalog row.
func WithRowLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.rowLimit = limit
		}
	}
}

const defaultRowLimit = 20

func New(opts ...Option) *Service {
	s := &Service{
		window:   "day",
		rowLimit: defaultRowLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
