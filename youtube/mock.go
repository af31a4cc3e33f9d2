package youtube

import (
	"fmt"
	"strings"
)

// mockVideoID is the playable video every demo entry points at.
const mockVideoID = "dQw4w9WgXcQ"

func mockChannelID(name string) string {
	return "UC-demo-" + strings.ReplaceAll(normalizeName(name), " ", "-")
}

func mockItem(channel, channelID, title string, day int) SearchItem {
	thumb := ThumbnailURL(mockVideoID, QualityHigh)
	return SearchItem{
		Kind: "youtube#searchResult",
		ID:   ResourceID{Kind: "youtube#video", VideoID: mockVideoID},
		Snippet: Snippet{
			PublishedAt:  fmt.Sprintf("2024-01-%02dT12:00:00Z", day),
			ChannelID:    channelID,
			Title:        title,
			Description:  "A demo video served while no YouTube API key is configured.",
			ChannelTitle: channel,
			Thumbnails: Thumbnails{
				High:    &Thumbnail{URL: thumb, Width: 480, Height: 360},
				Default: &Thumbnail{URL: ThumbnailURL(mockVideoID, QualityDefault), Width: 120, Height: 90},
			},
		},
	}
}

func mockChannelVideos(channel, channelID string) SearchResponse {
	items := make([]SearchItem, PageSize)
	for i := range items {
		// Newest first, like order=date.
		items[i] = mockItem(channel, channelID, fmt.Sprintf("%s Video %d", channel, i+1), PageSize-i)
	}
	return SearchResponse{
		Kind:     "youtube#searchListResponse",
		PageInfo: PageInfo{TotalResults: PageSize, ResultsPerPage: PageSize},
		Items:    items,
	}
}

func mockTrailerSearch(title string) SearchResponse {
	return SearchResponse{
		Kind:     "youtube#searchListResponse",
		PageInfo: PageInfo{TotalResults: 1, ResultsPerPage: 1},
		Items:    []SearchItem{mockItem("Demo Trailers", "UC-demo-trailers", title+" Official Trailer", 1)},
	}
}
