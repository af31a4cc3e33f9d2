package tmdb

import "strings"

const (
	// ImageBaseURL is the TMDb image CDN root. Sizes and paths are appended to it.
	ImageBaseURL = "https://image.tmdb.org/t/p"

	PosterPlaceholder   = "/placeholder-movie.jpg"
	BackdropPlaceholder = "/placeholder-backdrop.jpg"

	DefaultPosterSize   = "w500"
	DefaultBackdropSize = "w1280"
)

// ImageURL builds a poster URL. Empty paths yield PosterPlaceholder,
// absolute URLs are returned as is.
func ImageURL(path, size string) string {
	if path == "" {
		return PosterPlaceholder
	}
	return build(path, size, DefaultPosterSize)
}

// BackdropURL builds a backdrop URL. Empty paths yield BackdropPlaceholder.
func BackdropURL(path, size string) string {
	if path == "" {
		return BackdropPlaceholder
	}
	return build(path, size, DefaultBackdropSize)
}

// OriginalImageURL builds the URL of the full resolution image.
func OriginalImageURL(path string) string {
	if path == "" {
		return PosterPlaceholder
	}
	return build(path, "original", "original")
}

func build(path, size, fallback string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if size == "" {
		size = fallback
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return ImageBaseURL + "/" + size + path
}
