package tmdb

import (
	"strconv"

	"github.com/cinerow/cinerow/catalog"
)

// Page is the paginated list envelope shared by every list endpoint.
type Page struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Result is a movie or show as it appears in list responses.
type Result struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	GenreIDs     []int   `json:"genre_ids"`
	MediaType    string  `json:"media_type,omitempty"`
}

// Item converts the result, using fallback when the response omits media_type.
func (r Result) Item(fallback catalog.Kind) catalog.Item {
	kind := fallback
	switch r.MediaType {
	case string(catalog.Movie):
		kind = catalog.Movie
	case string(catalog.TV):
		kind = catalog.TV
	}

	return catalog.Item{
		ID:           strconv.Itoa(r.ID),
		Title:        r.Title,
		Name:         r.Name,
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		Rating:       r.VoteAverage,
		ReleaseDate:  r.ReleaseDate,
		FirstAirDate: r.FirstAirDate,
		GenreIDs:     r.GenreIDs,
		Tags:         catalog.Genres(r.GenreIDs),
		Kind:         kind,
	}
}

// Items converts every result on the page.
func (p *Page) Items(fallback catalog.Kind) []catalog.Item {
	items := make([]catalog.Item, 0, len(p.Results))
	for _, r := range p.Results {
		// Multi-search also returns people.
		if r.MediaType == "person" {
			continue
		}
		items = append(items, r.Item(fallback))
	}
	return items
}

// Video is an entry of the per-item /videos sub-resource.
type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

// VideoPage is the /videos response.
type VideoPage struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Details is the /movie/{id} or /tv/{id} response.
type Details struct {
	Result
	Tagline        string  `json:"tagline,omitempty"`
	Runtime        int     `json:"runtime,omitempty"`
	EpisodeRunTime []int   `json:"episode_run_time,omitempty"`
	Genres         []Genre `json:"genres"`
	Status         string  `json:"status,omitempty"`
}

// Minutes returns the runtime, or the first episode runtime for shows.
func (d *Details) Minutes() int {
	if d.Runtime > 0 {
		return d.Runtime
	}
	if len(d.EpisodeRunTime) > 0 {
		return d.EpisodeRunTime[0]
	}
	return 0
}
