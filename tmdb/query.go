package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
)

// Kind enumerates every request the client can make.
// The mock provider maps each kind to a fixture.
type Kind int

const (
	KindTrending Kind = iota
	KindPopularMovies
	KindPopularTV
	KindTopRated
	KindMovieGenre
	KindTVGenre
	KindSearch
	KindMovieVideos
	KindTVVideos
	KindMovieDetails
	KindTVDetails
)

var kindNames = map[Kind]string{
	KindTrending:      "trending",
	KindPopularMovies: "popular-movies",
	KindPopularTV:     "popular-tv",
	KindTopRated:      "top-rated",
	KindMovieGenre:    "movie-genre",
	KindTVGenre:       "tv-genre",
	KindSearch:        "search",
	KindMovieVideos:   "movie-videos",
	KindTVVideos:      "tv-videos",
	KindMovieDetails:  "movie-details",
	KindTVDetails:     "tv-details",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Query is one request against the TMDb v3 API.
type Query struct {
	Kind Kind

	// MediaType and TimeWindow apply to KindTrending.
	MediaType  string
	TimeWindow string

	// GenreID applies to the genre kinds.
	GenreID int

	// Text applies to KindSearch.
	Text string

	// ID applies to the videos and details kinds.
	ID string
}

// Path returns the resource path relative to the API base URL.
func (q Query) Path() string {
	switch q.Kind {
	case KindTrending:
		mediaType, window := q.MediaType, q.TimeWindow
		if mediaType == "" {
			mediaType = "all"
		}
		if window == "" {
			window = "day"
		}
		return fmt.Sprintf("/trending/%s/%s", mediaType, window)
	case KindPopularMovies:
		return "/movie/popular"
	case KindPopularTV:
		return "/tv/popular"
	case KindTopRated:
		return "/movie/top_rated"
	case KindMovieGenre:
		return "/discover/movie"
	case KindTVGenre:
		return "/discover/tv"
	case KindSearch:
		return "/search/multi"
	case KindMovieVideos:
		return "/movie/" + url.PathEscape(q.ID) + "/videos"
	case KindTVVideos:
		return "/tv/" + url.PathEscape(q.ID) + "/videos"
	case KindMovieDetails:
		return "/movie/" + url.PathEscape(q.ID)
	case KindTVDetails:
		return "/tv/" + url.PathEscape(q.ID)
	default:
		return ""
	}
}

// Params returns the query parameters, without the credential.
func (q Query) Params() url.Values {
	params := url.Values{}

	switch q.Kind {
	case KindMovieGenre, KindTVGenre:
		params.Set("with_genres", strconv.Itoa(q.GenreID))
		params.Set("sort_by", "popularity.desc")
	case KindSearch:
		params.Set("query", q.Text)
		params.Set("include_adult", "false")
	}

	return params
}
