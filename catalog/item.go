// Package catalog holds the display model shared by the gateways, the aggregation layer and the TUI.
package catalog

// Kind discriminates what an Item points at.
type Kind string

const (
	Movie Kind = "movie"
	TV    Kind = "tv"
	Video Kind = "video"
)

// Item is a single browsable entry. It is never mutated after a gateway builds it.
type Item struct {
	ID string `json:"id"`

	// Title is the primary display name, Name the secondary one.
	// TMDb fills Title for movies and Name for shows.
	Title string `json:"title,omitempty"`
	Name  string `json:"name,omitempty"`

	Overview string `json:"overview,omitempty"`

	// PosterPath and BackdropPath are TMDb relative paths or absolute thumbnail URLs.
	PosterPath   string `json:"poster_path,omitempty"`
	BackdropPath string `json:"backdrop_path,omitempty"`

	// Rating is on TMDb's 0 to 10 scale, 0 meaning unrated.
	Rating float64 `json:"rating"`

	ReleaseDate  string `json:"release_date,omitempty"`
	FirstAirDate string `json:"first_air_date,omitempty"`

	GenreIDs []int    `json:"genre_ids,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	Kind    Kind   `json:"kind"`
	Channel string `json:"channel,omitempty"`
}

// Row is a titled, ordered group of items from one source.
type Row struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Items  []Item `json:"items"`
}

// Image returns the first non-empty image reference, preferring the backdrop.
func (i Item) Image() string {
	if i.BackdropPath != "" {
		return i.BackdropPath
	}
	return i.PosterPath
}
