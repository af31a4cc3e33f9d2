package inline

import (
	"encoding/json"
	"io"

	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/cinerow/cinerow/youtube"
	"github.com/samber/mo"
)

// Entry is an item with the URLs a script needs to show or play it.
type Entry struct {
	catalog.Item

	DisplayTitle string   `json:"display_title"`
	Year         string   `json:"year,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	ImageURL     string   `json:"image_url"`

	// Trailer is the YouTube key to play, when resolution was requested and succeeded.
	Trailer  string `json:"trailer,omitempty"`
	WatchURL string `json:"watch_url,omitempty"`
	EmbedURL string `json:"embed_url,omitempty"`
}

type Row struct {
	Title  string   `json:"title"`
	Source string   `json:"source"`
	Items  []*Entry `json:"items"`
}

// Output is the document written by json mode.
type Output struct {
	Variant string `json:"variant"`
	Query   string `json:"query,omitempty"`
	Hero    *Entry `json:"hero,omitempty"`
	Rows    []*Row `json:"rows"`
}

func newEntry(item catalog.Item, trailer mo.Option[string], posterSize string) *Entry {
	e := &Entry{
		Item:         item,
		DisplayTitle: catalog.Title(item),
		Year:         catalog.FormatReleaseDate(catalog.ReleaseDate(item)),
		Genres:       catalog.Genres(item.GenreIDs),
	}

	if item.Kind == catalog.Video {
		e.ImageURL = item.PosterPath
	} else {
		e.ImageURL = tmdb.ImageURL(item.PosterPath, posterSize)
	}

	if key, ok := trailer.Get(); ok {
		e.Trailer = key
		e.WatchURL = youtube.WatchURL(key)
		e.EmbedURL = youtube.EmbedURL(key, false)
	}

	return e
}

func writeJson(out io.Writer, output *Output) error {
	if output.Rows == nil {
		output.Rows = []*Row{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
