package youtube

import (
	"fmt"
	"net/url"
)

// Quality names a thumbnail rendition served by i.ytimg.com.
type Quality string

const (
	QualityDefault  Quality = "default"
	QualityMedium   Quality = "mqdefault"
	QualityHigh     Quality = "hqdefault"
	QualityStandard Quality = "sddefault"
	QualityMaxRes   Quality = "maxresdefault"
)

// ThumbnailURL returns the static thumbnail of a video. An empty quality means QualityHigh.
func ThumbnailURL(videoID string, quality Quality) string {
	if quality == "" {
		quality = QualityHigh
	}
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/%s.jpg", url.PathEscape(videoID), quality)
}

// EmbedURL returns the muted, chrome-less embed player URL for a video.
func EmbedURL(videoID string, autoplay bool) string {
	play := "0"
	if autoplay {
		play = "1"
	}
	return fmt.Sprintf(
		"https://www.youtube.com/embed/%s?autoplay=%s&mute=1&controls=1&modestbranding=1&rel=0&showinfo=0",
		url.PathEscape(videoID), play,
	)
}

// WatchURL returns the watch page URL, which mpv resolves through yt-dlp.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
}
