package youtube

import (
	"encoding/json"
	"html"

	"github.com/cinerow/cinerow/catalog"
)

// SearchResponse is the search.list envelope.
type SearchResponse struct {
	Kind          string       `json:"kind,omitempty"`
	Etag          string       `json:"etag,omitempty"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
	RegionCode    string       `json:"regionCode,omitempty"`
	PageInfo      PageInfo     `json:"pageInfo"`
	Items         []SearchItem `json:"items"`

	// Raw is the body as received, including fields the struct does not model.
	Raw json.RawMessage `json:"-"`
}

// Body returns the bytes the relay forwards: the upstream body when one
// was received, the encoded struct for fixtures.
func (r *SearchResponse) Body() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	return json.Marshal(r)
}

func decodeSearch(body []byte) (*SearchResponse, error) {
	var out SearchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	out.Raw = body
	return &out, nil
}

type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

// SearchItem is a single search hit. ID carries a video or a channel id depending on the search type.
type SearchItem struct {
	Kind    string     `json:"kind,omitempty"`
	Etag    string     `json:"etag,omitempty"`
	ID      ResourceID `json:"id"`
	Snippet Snippet    `json:"snippet"`
}

type ResourceID struct {
	Kind      string `json:"kind,omitempty"`
	VideoID   string `json:"videoId,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
}

type Snippet struct {
	PublishedAt  string     `json:"publishedAt"`
	ChannelID    string     `json:"channelId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

type Thumbnails struct {
	Default *Thumbnail `json:"default,omitempty"`
	Medium  *Thumbnail `json:"medium,omitempty"`
	High    *Thumbnail `json:"high,omitempty"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// best returns the largest thumbnail URL present.
func (t Thumbnails) best() string {
	for _, thumb := range []*Thumbnail{t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.URL != "" {
			return thumb.URL
		}
	}
	return ""
}

// Item converts a video hit. Titles come back HTML-escaped from the API.
func (s SearchItem) Item() catalog.Item {
	thumb := s.Snippet.Thumbnails.best()
	if thumb == "" {
		thumb = ThumbnailURL(s.ID.VideoID, QualityHigh)
	}

	item := catalog.Item{
		ID:           s.ID.VideoID,
		Title:        html.UnescapeString(s.Snippet.Title),
		Overview:     html.UnescapeString(s.Snippet.Description),
		PosterPath:   thumb,
		BackdropPath: thumb,
		ReleaseDate:  s.Snippet.PublishedAt,
		Kind:         catalog.Video,
		Channel:      s.Snippet.ChannelTitle,
	}
	if item.Channel != "" {
		item.Tags = []string{item.Channel}
	}
	return item
}

// Videos converts the video hits of the response, skipping channel and playlist hits.
func (r *SearchResponse) Videos() []catalog.Item {
	if r == nil {
		return nil
	}

	items := make([]catalog.Item, 0, len(r.Items))
	for _, hit := range r.Items {
		if hit.ID.VideoID == "" {
			continue
		}
		items = append(items, hit.Item())
	}
	return items
}
